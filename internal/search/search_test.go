package search

import (
	"testing"

	"github.com/Bitlatte/shadowlight/internal/model"
)

func samplePosts() []model.PostSummary {
	return []model.PostSummary{
		{Title: "欢迎来到光影博客", URL: "/posts/welcome", Excerpt: "<p>First post &amp; hello</p>"},
		{Title: "Vite in practice", URL: "/posts/vite", Tags: []string{"build"}},
		{Title: "Pinia stores", URL: "/posts/pinia", Excerpt: "<p>State management for <em>Vue</em></p>", Tags: []string{"vue"}},
	}
}

func TestNewIndex_PlainText(t *testing.T) {
	idx := NewIndex(samplePosts())
	if idx.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", idx.Len())
	}
	if got := idx.Entries()[0].Text; got != "First post & hello" {
		t.Errorf("expected stripped text, got %q", got)
	}
	if got := idx.String(2); got != "Pinia stores vue" {
		t.Errorf("unexpected key %q", got)
	}
}

func TestSearch(t *testing.T) {
	idx := NewIndex(samplePosts())

	tests := []struct {
		name  string
		query string
		first string
		count int
	}{
		{"fuzzy title", "vite", "/posts/vite", 1},
		{"tag", "build", "/posts/vite", 1},
		{"text fallback", "management", "/posts/pinia", 1},
		{"chinese title", "光影", "/posts/welcome", 1},
		{"no match", "zzzz", "", 0},
		{"blank", "  ", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idx.Search(tt.query, 0)
			if len(got) != tt.count {
				t.Fatalf("expected %d results, got %d: %+v", tt.count, len(got), got)
			}
			if tt.count > 0 && got[0].URL != tt.first {
				t.Errorf("expected first result %s, got %s", tt.first, got[0].URL)
			}
		})
	}
}

func TestSearch_FuzzyMatchesBeforeTextMatches(t *testing.T) {
	idx := NewIndex([]model.PostSummary{
		{Title: "Notes", URL: "/posts/notes", Excerpt: "<p>Saying <strong>Hello</strong> again</p>"},
		{Title: "Hello world", URL: "/posts/hello"},
		{Title: "Other", URL: "/posts/other", Tags: []string{"hello"}},
	})

	got := idx.Search("hello", 0)
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %+v", got)
	}
	last := got[2]
	if last.URL != "/posts/notes" || last.Score != 0 {
		t.Errorf("expected text match last and unscored, got %+v", last)
	}
	for _, r := range got[:2] {
		if r.URL == "/posts/notes" {
			t.Errorf("text-only match ranked among fuzzy matches: %+v", got)
		}
	}
}

func TestSearch_Limit(t *testing.T) {
	idx := NewIndex(samplePosts())
	if all := idx.Search("i", 0); len(all) != 3 {
		t.Fatalf("expected 3 unlimited results, got %d", len(all))
	}
	if got := idx.Search("i", 2); len(got) != 2 {
		t.Errorf("expected limit to cap results at 2, got %d", len(got))
	}
}
