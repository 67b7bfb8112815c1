package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/Bitlatte/shadowlight/internal/model"
)

func samplePosts() []model.PostSummary {
	return []model.PostSummary{
		{
			Title:       "Welcome",
			URL:         "/posts/welcome",
			Excerpt:     "<p>hi</p>",
			Frontmatter: map[string]any{"title": "Welcome"},
			PublishedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Tags:        []string{"intro"},
		},
		{Title: "Undated", URL: "/posts/undated"},
	}
}

func TestWritePosts_Table(t *testing.T) {
	var buf bytes.Buffer
	if err := writePosts(&buf, samplePosts(), "table"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"2 posts", "2024-03-01", "Welcome", "/posts/welcome", "intro", "Undated"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestWritePosts_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := writePosts(&buf, nil, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No posts found") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestWritePosts_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writePosts(&buf, samplePosts(), "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 2 || got[0]["url"] != "/posts/welcome" {
		t.Errorf("unexpected posts %v", got)
	}
	if _, ok := got[0]["PublishedAt"]; ok {
		t.Error("internal fields should not be encoded")
	}
}

func TestWritePosts_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := writePosts(&buf, samplePosts(), "yaml"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid yaml: %v", err)
	}
	if len(got) != 2 || got[1]["title"] != "Undated" {
		t.Errorf("unexpected posts %v", got)
	}
}

func TestWritePosts_UnknownFormat(t *testing.T) {
	if err := writePosts(&bytes.Buffer{}, samplePosts(), "xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
