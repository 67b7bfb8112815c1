// Package search implements the "local" search provider: an index built
// from the post summaries, published as JSON and queried by fuzzy match.
package search

import (
	"html"
	"regexp"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/Bitlatte/shadowlight/internal/model"
)

type Entry struct {
	Title string   `json:"title"`
	URL   string   `json:"url"`
	Text  string   `json:"text"`
	Tags  []string `json:"tags,omitempty"`
}

type Result struct {
	Entry
	Score int `json:"score"`
}

// Index is safe for concurrent reads once built.
type Index struct {
	entries []Entry
	keys    []string
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

func NewIndex(posts []model.PostSummary) *Index {
	idx := &Index{
		entries: make([]Entry, 0, len(posts)),
		keys:    make([]string, 0, len(posts)),
	}
	for _, p := range posts {
		e := Entry{
			Title: p.Title,
			URL:   p.URL,
			Text:  plainText(p.Excerpt),
			Tags:  p.Tags,
		}
		idx.entries = append(idx.entries, e)
		idx.keys = append(idx.keys, strings.TrimSpace(e.Title+" "+strings.Join(e.Tags, " ")))
	}
	return idx
}

func (idx *Index) Entries() []Entry { return idx.entries }

// String and Len implement fuzzy.Source.
func (idx *Index) String(i int) string { return idx.keys[i] }
func (idx *Index) Len() int            { return len(idx.keys) }

// Search ranks title and tag matches by fuzzy score, then appends posts
// whose text contains the query. limit <= 0 means no limit.
func (idx *Index) Search(query string, limit int) []Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	var results []Result
	seen := make(map[int]bool)
	for _, m := range fuzzy.FindFrom(query, idx) {
		results = append(results, Result{Entry: idx.entries[m.Index], Score: m.Score})
		seen[m.Index] = true
	}

	lower := strings.ToLower(query)
	for i, e := range idx.entries {
		if seen[i] {
			continue
		}
		if strings.Contains(strings.ToLower(e.Text), lower) {
			results = append(results, Result{Entry: e})
		}
	}

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

func plainText(s string) string {
	s = tagPattern.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	return strings.Join(strings.Fields(s), " ")
}
