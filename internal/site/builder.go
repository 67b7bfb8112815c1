// Package site builds the static site: it loads the markdown content,
// renders every page through the theme layouts and writes the result to the
// configured output directory.
package site

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/Bitlatte/shadowlight/internal/config"
	"github.com/Bitlatte/shadowlight/internal/content"
	"github.com/Bitlatte/shadowlight/internal/model"
	"github.com/Bitlatte/shadowlight/internal/render"
	"github.com/Bitlatte/shadowlight/internal/search"
	"github.com/Bitlatte/shadowlight/internal/theme"
)

const (
	ContentDir = "content"
	LayoutsDir = "layouts"
	StaticDir  = "static"

	// PagesPattern selects every markdown file below the content root.
	PagesPattern = "**.md"

	PostsIndexFile  = "posts.json"
	SearchIndexFile = "search-index.json"

	highlightStyle = "github"
)

// Dirs are the source directories, relative to the builder's file system.
type Dirs struct {
	Content string
	Layouts string
	Static  string
}

// Result describes a finished build.
type Result struct {
	Pages     int
	Posts     int
	HomePages int
	Duration  time.Duration
}

type Builder struct {
	fs   afero.Fs
	cfg  config.Config
	dirs Dirs
	log  *slog.Logger

	md  *render.Markdown
	min *render.Minifier
}

type Option func(*Builder)

func WithDirs(dirs Dirs) Option {
	return func(b *Builder) { b.dirs = dirs }
}

func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) { b.log = logger }
}

func New(fsys afero.Fs, cfg config.Config, opts ...Option) *Builder {
	b := &Builder{
		fs:   fsys,
		cfg:  cfg,
		dirs: Dirs{Content: ContentDir, Layouts: LayoutsDir, Static: StaticDir},
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.md = render.NewMarkdown(highlightStyle)
	b.min = render.NewMinifier(cfg.Minify)
	return b
}

// Build renders the whole site into the output directory, replacing
// whatever was there.
func (b *Builder) Build(ctx context.Context) (Result, error) {
	start := time.Now()
	b.log.Info("starting build", "output", b.cfg.OutputDir, "baseURL", b.cfg.BaseURL)

	if ok, _ := afero.DirExists(b.fs, b.dirs.Content); !ok {
		return Result{}, fmt.Errorf("content directory '%s' not found", b.dirs.Content)
	}

	layouts, err := b.layouts()
	if err != nil {
		return Result{}, err
	}

	if err := b.cleanOutput(); err != nil {
		return Result{}, err
	}
	if err := b.copyAssets(); err != nil {
		return Result{}, err
	}
	if err := b.copyStatic(); err != nil {
		return Result{}, err
	}

	loader := content.NewLoader(b.fs, b.dirs.Content, content.Options{
		CleanURLs:        b.cfg.CleanURLs,
		ExcerptSeparator: b.cfg.ExcerptSeparator,
		IncludeDrafts:    b.cfg.BuildDrafts,
		Renderer:         b.md,
	}, b.log)

	posts, err := loader.Load(b.cfg.Posts)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load posts: %w", err)
	}
	docs, err := loader.Documents(PagesPattern)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load pages: %w", err)
	}

	site := &model.SiteData{
		Title:       b.cfg.Title(),
		Description: b.cfg.Description,
		Lang:        b.cfg.Lang,
		BaseURL:     b.cfg.BaseURL,
		Posts:       posts,
		Tags:        TagCounts(posts),
	}

	pages, err := b.pages(docs)
	if err != nil {
		return Result{}, err
	}
	site.Pages = pages

	var home *model.Page
	rest := make([]*model.Page, 0, len(pages))
	for _, p := range pages {
		if p.URL == "/" {
			home = p
			continue
		}
		rest = append(rest, p)
	}

	if err := b.renderPages(ctx, layouts, site, rest); err != nil {
		return Result{}, err
	}
	homePages, err := b.renderHome(layouts, site, home)
	if err != nil {
		return Result{}, err
	}

	if err := b.writeJSON(PostsIndexFile, posts); err != nil {
		return Result{}, err
	}
	if b.cfg.Theme.LocalSearch() {
		if err := b.writeJSON(SearchIndexFile, search.NewIndex(posts).Entries()); err != nil {
			return Result{}, err
		}
	}
	b.checkRedirectAssets()

	res := Result{
		Pages:     len(rest),
		Posts:     len(posts),
		HomePages: homePages,
		Duration:  time.Since(start),
	}
	b.log.Info("build completed", "pages", res.Pages, "posts", res.Posts, "homePages", res.HomePages, "duration", res.Duration)
	return res, nil
}

// layouts prefers a layouts directory in the site over the built-in theme.
func (b *Builder) layouts() (*theme.Layouts, error) {
	if ok, _ := afero.DirExists(b.fs, b.dirs.Layouts); !ok {
		b.log.Debug("using built-in layouts")
		return theme.Default()
	}
	b.log.Debug("loading layouts", "dir", b.dirs.Layouts)
	layouts, err := theme.Load(afero.NewIOFS(afero.NewBasePathFs(b.fs, b.dirs.Layouts)))
	if err != nil {
		return nil, fmt.Errorf("failed to load layouts from '%s': %w", b.dirs.Layouts, err)
	}
	return layouts, nil
}

func (b *Builder) cleanOutput() error {
	out := b.cfg.OutputDir
	if err := b.fs.RemoveAll(out); err != nil {
		return fmt.Errorf("failed to remove output directory '%s': %w", out, err)
	}
	if err := b.fs.MkdirAll(out, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", out, err)
	}
	return nil
}

// copyAssets publishes the theme's stylesheet and other assets. Files in
// the static directory are copied afterwards and win on conflict.
func (b *Builder) copyAssets() error {
	assets := theme.Assets()
	return fs.WalkDir(assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(assets, p)
		if err != nil {
			return fmt.Errorf("failed to read theme asset %s: %w", p, err)
		}
		return b.writeFile(p, data)
	})
}

func (b *Builder) copyStatic() error {
	src := b.dirs.Static
	if ok, _ := afero.DirExists(b.fs, src); !ok {
		b.log.Debug("static directory not found, skipping copy", "dir", src)
		return nil
	}
	err := afero.Walk(b.fs, src, func(p string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", p, err)
		}
		data, err := afero.ReadFile(b.fs, p)
		if err != nil {
			return fmt.Errorf("failed to read static file %s: %w", p, err)
		}
		return b.writeFile(filepath.ToSlash(rel), data)
	})
	if err != nil {
		return fmt.Errorf("failed to copy static assets: %w", err)
	}
	return nil
}

func (b *Builder) pages(docs []content.Document) ([]*model.Page, error) {
	pages := make([]*model.Page, 0, len(docs))
	for _, doc := range docs {
		date, err := doc.PublishedAt()
		if err != nil {
			return nil, err
		}
		html, err := b.md.HTML(doc.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to render '%s': %w", doc.Path, err)
		}
		pages = append(pages, &model.Page{
			Title:       content.DisplayTitle(doc),
			URL:         doc.URL,
			Date:        date,
			Tags:        doc.Meta.Tags,
			Layout:      theme.LayoutName(doc.Meta.Layout),
			SourcePath:  doc.Path,
			ContentHTML: html,
			Frontmatter: doc.Frontmatter,
		})
	}
	sort.SliceStable(pages, func(i, j int) bool { return pages[i].URL < pages[j].URL })
	return pages, nil
}

func (b *Builder) renderPages(ctx context.Context, layouts *theme.Layouts, site *model.SiteData, pages []*model.Page) error {
	sidebar := theme.NewSidebarIndex(b.cfg.Theme.Sidebar)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, page := range pages {
		page := page
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			name := b.layoutFor(layouts, page)
			data := model.PageData{
				Config:  b.cfg,
				Site:    site,
				Page:    page,
				Sidebar: sidebar.For(page.URL),
			}
			if err := b.renderTo(layouts, name, OutputPath(page.URL), data); err != nil {
				return fmt.Errorf("failed to render '%s': %w", page.SourcePath, err)
			}
			b.log.Debug("rendered page", "source", page.SourcePath, "url", page.URL, "layout", name)
			return nil
		})
	}
	return g.Wait()
}

func (b *Builder) layoutFor(layouts *theme.Layouts, page *model.Page) string {
	if page.Layout == "" {
		return theme.SingleLayout
	}
	if !layouts.Has(page.Layout) {
		b.log.Warn("layout not found, using default", "layout", page.Layout, "source", page.SourcePath, "default", theme.SingleLayout)
		return theme.SingleLayout
	}
	return page.Layout
}

// renderHome writes the paginated post listing: the first page at "/", the
// rest at "/page/N/". root is the content's index page, if it has one.
func (b *Builder) renderHome(layouts *theme.Layouts, site *model.SiteData, root *model.Page) (int, error) {
	per := b.cfg.Paginate
	if per <= 0 {
		per = len(site.Posts)
	}
	total := 1
	if len(site.Posts) > per {
		total = (len(site.Posts) + per - 1) / per
	}

	stats := Stats(site)
	cards := b.cfg.Theme.Cards()

	for n := 1; n <= total; n++ {
		lo := (n - 1) * per
		hi := lo + per
		if hi > len(site.Posts) {
			hi = len(site.Posts)
		}

		pager := model.Pager{Number: n, Total: total}
		if n > 1 {
			pager.Prev = PageURL(n - 1)
		}
		if n < total {
			pager.Next = PageURL(n + 1)
		}

		data := model.PageData{
			Config: b.cfg,
			Site:   site,
			Home: &model.HomeData{
				Posts: site.Posts[lo:hi],
				Pager: pager,
				Stats: stats,
				Cards: cards,
				Tags:  site.Tags,
			},
		}
		if n == 1 {
			data.Page = root
		}
		if err := b.renderTo(layouts, theme.HomeLayout, OutputPath(PageURL(n)), data); err != nil {
			return 0, fmt.Errorf("failed to render home page %d: %w", n, err)
		}
	}
	return total, nil
}

func (b *Builder) renderTo(layouts *theme.Layouts, layout, name string, data model.PageData) error {
	var buf bytes.Buffer
	if err := layouts.Execute(&buf, layout, data); err != nil {
		return err
	}
	return b.writeFile(name, buf.Bytes())
}

func (b *Builder) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	return b.writeFile(name, data)
}

// writeFile writes data to name below the output directory, minifying it
// when enabled.
func (b *Builder) writeFile(name string, data []byte) error {
	dst := filepath.Join(b.cfg.OutputDir, filepath.FromSlash(name))
	if err := b.fs.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dst, err)
	}
	f, err := b.fs.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	if err := b.min.Write(f, name, data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return f.Close()
}

// checkRedirectAssets warns when the pages reference the redirect binder
// but its files were not published. They are built separately, see
// cmd/redirect-wasm.
func (b *Builder) checkRedirectAssets() {
	hr := b.cfg.HomeRedirect
	if !hr.Enabled {
		return
	}
	for _, p := range []string{hr.WasmPath, hr.ExecPath} {
		if strings.Contains(p, "://") {
			continue
		}
		dst := filepath.Join(b.cfg.OutputDir, filepath.FromSlash(strings.TrimPrefix(p, "/")))
		if ok, _ := afero.Exists(b.fs, dst); !ok {
			b.log.Warn("home redirect asset missing from output, add it to the static directory", "path", p)
		}
	}
}

// PageURL is the URL of home page n.
func PageURL(n int) string {
	if n <= 1 {
		return "/"
	}
	return "/page/" + strconv.Itoa(n) + "/"
}

// OutputPath maps a page URL to the file it is written to. Clean URLs are
// written as .html files, which is how static hosts resolve them.
func OutputPath(url string) string {
	p := strings.TrimPrefix(path.Clean("/"+url), "/")
	switch {
	case p == "":
		return "index.html"
	case strings.HasSuffix(url, "/"):
		return p + "/index.html"
	case path.Ext(p) == ".html":
		return p
	default:
		return p + ".html"
	}
}
