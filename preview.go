package poegen

import (
	"bytes"
	"context"
	"fmt"
	stdhtml "html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// previewTemplate wraps Goldmark's fragment output in a complete HTML5
// document styled to approximate the generated Word output: YaHei body
// text and dark-headed tables.
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: "Microsoft YaHei", "微软雅黑", sans-serif; font-size: 14px; line-height: 1.7; max-width: 900px; margin: 2em auto; padding: 0 1em; color: #1a1a1a; }
h1 { color: #156082; }
h2 { border-bottom: 1px solid #e0e0e0; padding-bottom: 0.3em; }
table { border-collapse: collapse; width: 100%%; margin: 1em 0; }
th, td { border: 1px solid #999; padding: 6px 10px; text-align: left; }
th { background: #156082; color: #ffffff; }
pre { background: #f6f8fa; padding: 1em; overflow-x: auto; }
</style>
</head>
<body>
%s
</body>
</html>`

// Previewer converts generated markdown to a styled standalone HTML page
// for in-browser review before the Word document is opened.
type Previewer struct {
	md goldmark.Markdown
}

// NewPreviewer creates a Previewer with GFM tables and syntax highlighting.
func NewPreviewer() *Previewer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // tables, strikethrough, autolinks
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(
					chromahtml.WithLineNumbers(false),
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)
	return &Previewer{md: md}
}

// Render converts markdown content to a standalone HTML5 document.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (p *Previewer) Render(ctx context.Context, title, content string) (string, error) {
	if content == "" {
		return "", ErrEmptyMarkdown
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := p.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: fmt.Sprintf(previewTemplate, stdhtml.EscapeString(title), buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
