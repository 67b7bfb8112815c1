package content

import (
	"fmt"
	"log/slog"

	"github.com/Bitlatte/shadowlight/internal/model"
	"github.com/spf13/afero"
)

// Loader reads markdown documents below a content root. Every call re-reads
// the file system; nothing is cached.
type Loader struct {
	fs   afero.Fs
	root string
	opts Options
	log  *slog.Logger
}

func NewLoader(fsys afero.Fs, root string, opts Options, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{fs: fsys, root: root, opts: opts, log: logger}
}

// Documents parses every file matching pattern, skipping drafts unless the
// loader was configured to include them.
func (l *Loader) Documents(pattern string) ([]Document, error) {
	paths, err := Discover(l.fs, l.root, pattern)
	if err != nil {
		return nil, fmt.Errorf("discover %q in %s: %w", pattern, l.root, err)
	}

	docs := make([]Document, 0, len(paths))
	for _, rel := range paths {
		doc, err := ParseDocument(l.fs, l.root, rel, l.opts)
		if err != nil {
			return nil, err
		}
		if doc.Meta.Draft && !l.opts.IncludeDrafts {
			l.log.Debug("skipping draft", "path", rel)
			continue
		}
		docs = append(docs, doc)
	}
	l.log.Debug("loaded documents", "pattern", pattern, "count", len(docs))
	return docs, nil
}

// Load returns the summaries of the posts matching pattern, newest first.
func (l *Loader) Load(pattern string) ([]model.PostSummary, error) {
	docs, err := l.Documents(pattern)
	if err != nil {
		return nil, err
	}
	posts, err := Transform(docs)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		if !p.HasDate() {
			l.log.Debug("post has no date, listed last", "path", p.SourcePath)
		}
	}
	return posts, nil
}
