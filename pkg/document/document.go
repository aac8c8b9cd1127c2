package document

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
)

// ContentType is the media type of a rendered edition.
const ContentType = "text/html; charset=utf-8"

const head = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Hello, World</title>
<style>
body { width: 384px; margin: 0; padding: 0; background: #fff; color: #000; }
#hello { padding: 20px 10px; font-family: Georgia, serif; font-size: 40px; line-height: 1.2; text-align: center; }
#footer { padding: 10px; font-family: Helvetica, Arial, sans-serif; font-size: 14px; text-align: center; border-top: 2px solid #000; }
</style>
</head>
<body>
<div id="hello">`

const tail = `</div>
<div id="footer">Hello, World</div>
</body>
</html>
`

// Greeting returns the edition for a composed greeting sentence such as
// "Hello, Alice". The sentence is HTML-escaped.
func Greeting(sentence string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if _, err := io.WriteString(w, templ.EscapeString(sentence)); err != nil {
			return err
		}
		_, err := io.WriteString(w, tail)
		return err
	})
}

// Bytes renders the edition for sentence into memory.
func Bytes(ctx context.Context, sentence string) ([]byte, error) {
	var buf bytes.Buffer
	if err := Greeting(sentence).Render(ctx, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
