package publication

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Index is the text served at the root.
const Index = "A Little Printer publication. GET /sample/ for a sample edition, POST /validate_config/ to subscribe."

// PushPageParams contains data for rendering the push page.
type PushPageParams struct {
	Pushed    bool
	Delivered int
	Removed   int
}

// Views renders the HTML pages of the publication.
type Views struct {
	PushPage func(PushPageParams) templ.Component
}

// DefaultViews returns the built-in pages.
func DefaultViews() *Views {
	return &Views{PushPage: PushPage}
}

const pushHead = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Push</title>
</head>
<body>
`

const pushForm = `<form method="post" action="/push/">
<p>Send a greeting to every subscribed printer.</p>
<button type="submit">Push</button>
</form>
</body>
</html>
`

// PushPage renders the confirmation form and, after a run, its counts.
func PushPage(p PushPageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, pushHead); err != nil {
			return err
		}
		if p.Pushed {
			summary := fmt.Sprintf("Pushed. Delivered: %d, removed: %d.", p.Delivered, p.Removed)
			if _, err := io.WriteString(w, `<p id="result">`+templ.EscapeString(summary)+"</p>\n"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, pushForm)
		return err
	})
}
