package handler

import "net/http"

type emptyResponse struct {
	status int
	header http.Header
}

func (e emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	for k, v := range e.header {
		w.Header()[k] = v
	}
	w.WriteHeader(e.status)
	return nil
}

// Empty responds 204 No Content.
func Empty() Response {
	return emptyResponse{status: http.StatusNoContent}
}

// EmptyWithStatus responds with status and no body.
func EmptyWithStatus(status int) Response {
	return emptyResponse{status: status}
}

// NotModified responds 304 and repeats the entity tag.
func NotModified(etag string) Response {
	h := http.Header{}
	if etag != "" {
		h.Set("ETag", etag)
	}
	return emptyResponse{status: http.StatusNotModified, header: h}
}
