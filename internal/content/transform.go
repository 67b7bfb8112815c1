package content

import (
	"sort"
	"strings"
	"time"

	"github.com/Bitlatte/shadowlight/internal/model"
	"github.com/spf13/cast"
)

// Transform maps parsed documents to post summaries ordered newest first.
// Posts without a date sort after every dated post. Equal timestamps keep
// their input order. A date that does not parse fails the whole transform
// with *InvalidDateError.
func Transform(docs []Document) ([]model.PostSummary, error) {
	posts := make([]model.PostSummary, 0, len(docs))
	for _, doc := range docs {
		published, err := doc.PublishedAt()
		if err != nil {
			return nil, err
		}
		posts = append(posts, model.PostSummary{
			Title:       doc.Meta.Title,
			URL:         doc.URL,
			Excerpt:     doc.Excerpt,
			Frontmatter: doc.Frontmatter,
			PublishedAt: published,
			Tags:        doc.Meta.Tags,
			SourcePath:  doc.Path,
		})
	}
	SortByDate(posts)
	return posts, nil
}

// PublishedAt returns the front matter date, or the zero time when the
// document has none.
func (d Document) PublishedAt() (time.Time, error) {
	t, err := parseDate(d.Meta.Date)
	if err != nil {
		return time.Time{}, &InvalidDateError{Path: d.Path, Value: d.Meta.Date, Err: err}
	}
	return t, nil
}

// parseDate returns the zero time for a missing or empty date.
func parseDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return d, nil
	case string:
		d = strings.TrimSpace(d)
		if d == "" {
			return time.Time{}, nil
		}
		t, err := cast.ToTimeE(d)
		if err == nil {
			return t, nil
		}
		for _, layout := range dateLayouts {
			if t, perr := time.Parse(layout, d); perr == nil {
				return t, nil
			}
		}
		return time.Time{}, err
	default:
		return cast.ToTimeE(d)
	}
}

// dateLayouts are tried when cast cannot parse a front matter date.
var dateLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006/01/02",
	"2006/01/02 15:04",
	"2006/01/02 15:04:05",
	"2006-1-2",
	"2006-1-2 15:04",
	"2006/1/2",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// SortByDate stable sorts posts by date, newest first, undated last.
func SortByDate(posts []model.PostSummary) {
	postBy(newestFirst).Sort(posts)
}

var newestFirst = func(p1, p2 *model.PostSummary) bool {
	if p1.HasDate() != p2.HasDate() {
		return p1.HasDate()
	}
	return p1.PublishedAt.After(p2.PublishedAt)
}

// postBy is the closure used in the Sort.Less method.
type postBy func(p1, p2 *model.PostSummary) bool

func (by postBy) Sort(posts []model.PostSummary) {
	sort.Stable(&postSorter{posts: posts, by: by})
}

type postSorter struct {
	posts []model.PostSummary
	by    postBy
}

func (ps *postSorter) Len() int           { return len(ps.posts) }
func (ps *postSorter) Swap(i, j int)      { ps.posts[i], ps.posts[j] = ps.posts[j], ps.posts[i] }
func (ps *postSorter) Less(i, j int) bool { return ps.by(&ps.posts[i], &ps.posts[j]) }
