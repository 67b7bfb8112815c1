package model

import (
	"html/template"
	"time"
)

// PostSummary represents one blog post for listing purposes.
type PostSummary struct {
	Title       string         `json:"title" yaml:"title"`
	URL         string         `json:"url" yaml:"url"`
	Excerpt     string         `json:"excerpt" yaml:"excerpt"`
	Frontmatter map[string]any `json:"frontmatter" yaml:"frontmatter"`

	PublishedAt time.Time `json:"-" yaml:"-"`
	Tags        []string  `json:"-" yaml:"-"`
	SourcePath  string    `json:"-" yaml:"-"`
}

// HasDate reports whether the post carried a date in its front matter.
func (p PostSummary) HasDate() bool {
	return !p.PublishedAt.IsZero()
}

// Page is a single rendered markdown document (post or standalone page).
type Page struct {
	Title       string
	URL         string
	Date        time.Time
	Tags        []string
	Layout      string
	SourcePath  string
	ContentHTML template.HTML
	Frontmatter map[string]any
}

// SiteData holds all site-wide data handed to the templates.
type SiteData struct {
	Title       string
	Description string
	Lang        string
	BaseURL     string
	Pages       []*Page
	Posts       []PostSummary
	Tags        []TagCount
}

// TagCount is a tag and the number of posts carrying it.
type TagCount struct {
	Name  string
	Count int
}
