package content

import (
	"bytes"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ExcerptRenderer turns the markdown excerpt block into HTML.
type ExcerptRenderer interface {
	Render(src []byte) (string, error)
}

type Options struct {
	// CleanURLs drops the .html suffix from derived URLs.
	CleanURLs bool
	// ExcerptSeparator is the line that ends the excerpt block. Documents
	// without it have no excerpt.
	ExcerptSeparator string
	IncludeDrafts    bool
	Renderer         ExcerptRenderer
}

// Meta is the typed view of the front matter fields the site understands.
type Meta struct {
	Title       string   `mapstructure:"title"`
	Date        any      `mapstructure:"date"`
	Tags        []string `mapstructure:"tags"`
	Description string   `mapstructure:"description"`
	Layout      string   `mapstructure:"layout"`
	Draft       bool     `mapstructure:"draft"`
}

// Document is a parsed markdown source file.
type Document struct {
	Path        string // slash path relative to the content root
	URL         string
	Frontmatter map[string]any
	Meta        Meta
	Excerpt     string
	Body        []byte
}

// ParseDocument reads rel below root and splits it into front matter,
// excerpt and body. Front matter errors are returned as *ParseError.
func ParseDocument(fsys afero.Fs, root, rel string, opts Options) (Document, error) {
	full := filepath.Join(root, filepath.FromSlash(rel))
	raw, err := afero.ReadFile(fsys, full)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read file '%s': %w", full, err)
	}
	return parse(rel, raw, opts)
}

func parse(rel string, raw []byte, opts Options) (Document, error) {
	var fm map[string]any
	rest, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return Document{}, &ParseError{Path: rel, Err: err}
	}

	params, err := normalizeParams(fm)
	if err != nil {
		return Document{}, &ParseError{Path: rel, Err: err}
	}

	meta, err := decodeMeta(params)
	if err != nil {
		return Document{}, &ParseError{Path: rel, Err: err}
	}

	doc := Document{
		Path:        rel,
		URL:         URLFor(rel, opts.CleanURLs),
		Frontmatter: params,
		Meta:        meta,
		Body:        rest,
	}

	excerpt, body, found := splitExcerpt(rest, opts.ExcerptSeparator)
	if found {
		doc.Body = body
		doc.Excerpt = strings.TrimSpace(string(excerpt))
		if opts.Renderer != nil {
			html, err := opts.Renderer.Render(excerpt)
			if err != nil {
				return Document{}, fmt.Errorf("failed to render excerpt of %s: %w", rel, err)
			}
			doc.Excerpt = html
		}
	}
	return doc, nil
}

func decodeMeta(params map[string]any) (Meta, error) {
	var meta Meta
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &meta,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return meta, err
	}
	if err := dec.Decode(params); err != nil {
		return meta, fmt.Errorf("decode front matter: %w", err)
	}
	return meta, nil
}

// normalizeParams converts the nested map[interface{}]interface{} values the
// YAML decoder produces into map[string]any so the front matter can be
// serialized as JSON.
func normalizeParams(in map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(in))
	for k, v := range in {
		nv, err := normalizeValue(v)
		if err != nil {
			return nil, fmt.Errorf("front matter key %q: %w", k, err)
		}
		out[k] = nv
	}
	return out, nil
}

func normalizeValue(v any) (any, error) {
	switch vv := v.(type) {
	case map[any]any, map[string]any:
		m, err := cast.ToStringMapE(vv)
		if err != nil {
			return nil, err
		}
		return normalizeParams(m)
	case []any:
		list := make([]any, len(vv))
		for i, item := range vv {
			ni, err := normalizeValue(item)
			if err != nil {
				return nil, err
			}
			list[i] = ni
		}
		return list, nil
	default:
		return v, nil
	}
}

// splitExcerpt returns the content before the first separator line, and the
// content with that line removed.
func splitExcerpt(src []byte, sep string) (excerpt, body []byte, found bool) {
	if sep == "" {
		return nil, src, false
	}
	for offset := 0; offset < len(src); {
		next := len(src)
		line := src[offset:]
		if i := bytes.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
			next = offset + i + 1
		}
		if strings.TrimSpace(string(line)) == sep {
			excerpt = src[:offset]
			body = append(append([]byte{}, src[:offset]...), src[next:]...)
			return excerpt, body, true
		}
		offset = next
	}
	return nil, src, false
}

// URLFor maps a content-relative source path to its site URL.
func URLFor(rel string, clean bool) string {
	p := path.Clean("/" + filepath.ToSlash(rel))
	p = strings.TrimSuffix(p, path.Ext(p))
	if path.Base(p) == "index" {
		dir := path.Dir(p)
		if dir == "/" {
			return "/"
		}
		return dir + "/"
	}
	if clean {
		return p
	}
	return p + ".html"
}

// DisplayTitle returns the front matter title, or one derived from the file
// name when the front matter has none.
func DisplayTitle(doc Document) string {
	if doc.Meta.Title != "" {
		return doc.Meta.Title
	}
	base := path.Base(doc.Path)
	base = strings.TrimSuffix(base, path.Ext(base))
	if base == "index" {
		if dir := path.Base(path.Dir(doc.Path)); dir != "." && dir != "/" {
			base = dir
		}
	}
	base = strings.ReplaceAll(strings.ReplaceAll(base, "-", " "), "_", " ")
	return cases.Title(language.English).String(base)
}
