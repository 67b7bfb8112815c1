package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Markdown converts markdown to HTML. It is safe for concurrent use.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown returns a converter with GFM, heading IDs, hard wraps and
// chroma highlighting of fenced code blocks in the given style.
func NewMarkdown(highlightStyle string) *Markdown {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
			gmhtml.WithUnsafe(),
			renderer.WithNodeRenderers(
				util.Prioritized(newHighlighter(highlightStyle), 100),
			),
		),
	)
	return &Markdown{md: md}
}

// Render implements content.ExcerptRenderer.
func (m *Markdown) Render(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := m.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return buf.String(), nil
}

// HTML is Render typed for templates.
func (m *Markdown) HTML(src []byte) (template.HTML, error) {
	s, err := m.Render(src)
	return template.HTML(s), err
}
