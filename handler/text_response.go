package handler

import "net/http"

type textResponse struct {
	status int
	body   string
}

func (t textResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(t.status)
	_, err := w.Write([]byte(t.body))
	return err
}

// Text returns a plain-text response with the given status.
func Text(status int, body string) Response {
	return textResponse{status: status, body: body}
}
