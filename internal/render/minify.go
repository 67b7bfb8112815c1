package render

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"regexp"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/json"
	"github.com/tdewolff/minify/v2/svg"
	"github.com/tdewolff/minify/v2/xml"
)

var mediaTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
	".json": "application/json",
	".svg":  "image/svg+xml",
	".xml":  "text/xml",
}

// Minifier minifies published files by extension. A disabled Minifier
// copies its input unchanged.
type Minifier struct {
	m       *minify.M
	enabled bool
}

func NewMinifier(enabled bool) *Minifier {
	m := minify.New()
	m.Add("text/html", &html.Minifier{
		KeepDocumentTags:        true,
		KeepConditionalComments: true,
		KeepEndTags:             true,
		KeepDefaultAttrVals:     true,
	})
	m.AddFunc("text/css", css.Minify)
	m.AddRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), &js.Minifier{})
	m.AddRegexp(regexp.MustCompile(`^(application|text)/(x-|(ld|manifest)\+)?json$`), &json.Minifier{})
	m.AddFunc("image/svg+xml", svg.Minify)
	m.AddRegexp(regexp.MustCompile("[/+]xml$"), &xml.Minifier{})
	return &Minifier{m: m, enabled: enabled}
}

// Write writes src to w, minified when the file name has a known extension.
func (mf *Minifier) Write(w io.Writer, name string, src []byte) error {
	mediatype, ok := mediaTypes[path.Ext(name)]
	if !mf.enabled || !ok {
		_, err := w.Write(src)
		return err
	}
	if err := mf.m.Minify(mediatype, w, bytes.NewReader(src)); err != nil {
		return fmt.Errorf("failed to minify %s: %w", name, err)
	}
	return nil
}
