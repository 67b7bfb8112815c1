// Package theme holds the page layouts and assets the site is rendered with.
//
// A layout set is a base.html, the partials under partials/, and one page
// layout per remaining .html file. Each page layout is parsed into its own
// clone of base.html and partials, so page layouts can all define "main"
// without overriding one another.
package theme

import (
	"embed"
	"fmt"
	"html"
	"html/template"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/Bitlatte/shadowlight/internal/config"
)

const (
	BaseLayout   = "base.html"
	HomeLayout   = "home.html"
	SingleLayout = "single.html"
	partialsDir  = "partials"
)

//go:embed layouts assets
var embedded embed.FS

// Layouts is a parsed layout set, keyed by layout file path.
type Layouts struct {
	sets map[string]*template.Template
}

// Default returns the layouts shipped with the binary.
func Default() (*Layouts, error) {
	sub, err := fs.Sub(embedded, "layouts")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// Assets returns the files the default theme publishes next to the pages.
func Assets() fs.FS {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

// Load parses the layout set rooted at fsys.
func Load(fsys fs.FS) (*Layouts, error) {
	var partials, pages []string
	hasBase := false

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".html") {
			return nil
		}
		switch {
		case p == BaseLayout:
			hasBase = true
		case strings.HasPrefix(p, partialsDir+"/"):
			partials = append(partials, p)
		default:
			pages = append(pages, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find layout files: %w", err)
	}
	if !hasBase {
		return nil, fmt.Errorf("%s not found in layouts", BaseLayout)
	}

	base, err := template.New(BaseLayout).Funcs(Funcs()).ParseFS(fsys, append([]string{BaseLayout}, partials...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s and partials: %w", BaseLayout, err)
	}

	l := &Layouts{sets: make(map[string]*template.Template, len(pages))}
	for _, p := range pages {
		set, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone %s for %s: %w", BaseLayout, p, err)
		}
		if _, err := set.ParseFS(fsys, p); err != nil {
			return nil, fmt.Errorf("failed to parse layout %s: %w", p, err)
		}
		l.sets[p] = set
	}
	return l, nil
}

// Has reports whether a page layout with this name exists.
func (l *Layouts) Has(name string) bool {
	_, ok := l.sets[name]
	return ok
}

// Names lists the page layouts in lexical order.
func (l *Layouts) Names() []string {
	names := make([]string, 0, len(l.sets))
	for name := range l.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute renders the page layout name through base.html.
func (l *Layouts) Execute(w io.Writer, name string, data any) error {
	set, ok := l.sets[name]
	if !ok {
		return fmt.Errorf("layout %q not found", name)
	}
	if err := set.ExecuteTemplate(w, BaseLayout, data); err != nil {
		return fmt.Errorf("failed to execute layout %q: %w", name, err)
	}
	return nil
}

// LayoutName maps a front matter layout value to a layout file name.
func LayoutName(layout string) string {
	if layout == "" {
		return ""
	}
	if path.Ext(layout) == "" {
		return layout + ".html"
	}
	return layout
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"formatDate": formatDate,
		"safeHTML":   func(s string) template.HTML { return template.HTML(s) },
		"headTag":    headTag,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

var voidHeadTags = map[string]bool{"meta": true, "link": true, "base": true}

// headTag renders a configured <head> element. Only tags that belong in the
// head are accepted.
func headTag(tag config.HeadTag) (template.HTML, error) {
	name := strings.ToLower(tag.Tag)
	switch name {
	case "meta", "link", "base", "script", "style", "noscript":
	default:
		return "", fmt.Errorf("unsupported head tag %q", tag.Tag)
	}

	keys := make([]string, 0, len(tag.Attrs))
	for k := range tag.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("<" + name)
	for _, k := range keys {
		fmt.Fprintf(&b, ` %s="%s"`, html.EscapeString(k), html.EscapeString(tag.Attrs[k]))
	}
	b.WriteString(">")
	if !voidHeadTags[name] {
		b.WriteString("</" + name + ">")
	}
	return template.HTML(b.String()), nil
}
