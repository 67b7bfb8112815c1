// Package redirect sends clicks on the site's listing elements back to the
// home page.
//
// Instead of attaching one listener per element on every render, the Binder
// installs a single delegated click listener on the document and resolves
// the clicked element against Selectors at dispatch time. Re-binding after a
// render only refreshes the pointer cursor, so repeated renders never stack
// handlers.
package redirect

import (
	"log/slog"
	"sync"

	"go.uber.org/atomic"
)

// Selectors are the elements that navigate home when clicked.
var Selectors = []string{
	".VPNavBarTitle",
	".post-item",
	".sidebar-item",
	".stat-item",
	".page-info span",
	".tech-card",
	".tag",
}

// Element is a rendered DOM element.
type Element interface {
	Matches(selector string) bool
	// Parent returns nil at the top of the tree.
	Parent() Element
	SetCursor(cursor string)
}

// Document is the rendered page.
type Document interface {
	QuerySelectorAll(selector string) []Element
	// OnClick registers fn as a click listener on the document root and
	// returns a function that removes it.
	OnClick(fn func(target Element)) (remove func())
}

type Binder struct {
	doc       Document
	nav       Navigator
	selectors []string
	log       *slog.Logger

	mu        sync.Mutex // guards remove and writes to installed
	installed atomic.Bool
	remove    func()
}

type Option func(*Binder)

// WithSelectors replaces the default selector set.
func WithSelectors(selectors ...string) Option {
	return func(b *Binder) { b.selectors = selectors }
}

func WithLogger(logger *slog.Logger) Option {
	return func(b *Binder) { b.log = logger }
}

func New(doc Document, nav Navigator, opts ...Option) *Binder {
	b := &Binder{
		doc:       doc,
		nav:       nav,
		selectors: Selectors,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.nav == nil {
		b.nav = NoopNavigator{}
	}
	return b
}

// Bind marks every currently matched element as clickable and returns how
// many were found. The delegated listener is installed on the first Bind
// that finds a match and never again.
func (b *Binder) Bind() int {
	matched := 0
	for _, sel := range b.selectors {
		for _, el := range b.doc.QuerySelectorAll(sel) {
			el.SetCursor("pointer")
			matched++
		}
	}
	if matched > 0 && !b.installed.Load() {
		b.install()
	}
	b.log.Debug("home redirect bound", "matched", matched)
	return matched
}

// Attach re-binds on every render-complete event until cancel is called.
func (b *Binder) Attach(events *RenderEvents) (cancel func()) {
	return events.Subscribe(func() { b.Bind() })
}

// Close removes the delegated listener. A later Bind installs it again.
func (b *Binder) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.installed.Load() {
		return
	}
	b.remove()
	b.remove = nil
	b.installed.Store(false)
}

func (b *Binder) install() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.installed.Load() {
		return
	}
	b.remove = b.doc.OnClick(b.handleClick)
	b.installed.Store(true)
	b.log.Debug("home redirect listener installed")
}

func (b *Binder) handleClick(target Element) {
	for el := target; el != nil; el = el.Parent() {
		if b.matches(el) {
			b.nav.NavigateToRoot()
			return
		}
	}
}

func (b *Binder) matches(el Element) bool {
	for _, sel := range b.selectors {
		if el.Matches(sel) {
			return true
		}
	}
	return false
}
