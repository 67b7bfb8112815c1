package theme

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/Bitlatte/shadowlight/internal/config"
	"github.com/Bitlatte/shadowlight/internal/model"
)

func TestDefault_RendersHome(t *testing.T) {
	layouts, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []string{HomeLayout, SingleLayout} {
		if !layouts.Has(name) {
			t.Fatalf("expected default layout %s, have %v", name, layouts.Names())
		}
	}

	data := model.PageData{
		Config: config.Config{
			SiteTitle: "光影博客",
			Lang:      "zh-CN",
			Head:      []config.HeadTag{{Tag: "meta", Attrs: map[string]string{"name": "theme-color", "content": "#1e293b"}}},
			Theme: config.ThemeConfig{
				Logo:     "/images/logo.jpg",
				LogoLink: "/",
				Nav:      []config.NavItem{{Text: "主页", Link: "/"}},
				Footer:   config.Footer{Copyright: "Copyright © 2025 光影博客"},
			},
		},
		Site: &model.SiteData{Title: "光影博客"},
		Home: &model.HomeData{
			Posts: []model.PostSummary{{
				Title:       "Welcome",
				URL:         "/posts/welcome",
				Excerpt:     "<p>hello</p>",
				PublishedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
				Tags:        []string{"intro"},
			}},
			Pager: model.Pager{Number: 1, Total: 2, Next: "/page/2/"},
			Stats: []model.Stat{{Label: "Posts", Value: "1"}},
			Cards: []config.TechCard{{Title: "Vue", Items: []string{"Pinia"}}},
		},
	}

	var buf bytes.Buffer
	if err := layouts.Execute(&buf, HomeLayout, data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`class="VPNavBarTitle"`,
		`class="post-item"`,
		`class="stat-item"`,
		`class="tech-card"`,
		`class="page-info"`,
		`<span class="tag">intro</span>`,
		`<p>hello</p>`,
		`2025-01-01`,
		`<meta content="#1e293b" name="theme-color">`,
		`Copyright © 2025 光影博客`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
	if strings.Contains(out, "new Go()") {
		t.Error("redirect script should only be emitted when enabled")
	}
}

func TestDefault_RendersSingleWithSidebar(t *testing.T) {
	layouts, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := model.PageData{
		Config: config.Config{
			SiteTitle:    "site",
			HomeRedirect: config.HomeRedirect{Enabled: true, WasmPath: "/redirect.wasm", ExecPath: "/wasm_exec.js"},
		},
		Site:    &model.SiteData{},
		Page:    &model.Page{Title: "Welcome", ContentHTML: "<p>body</p>"},
		Sidebar: []config.SidebarGroup{{Text: "最新文章", Items: []config.SidebarLink{{Text: "Welcome", Link: "/posts/welcome"}}}},
	}

	var buf bytes.Buffer
	if err := layouts.Execute(&buf, SingleLayout, data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<title>Welcome | site</title>",
		`<a class="sidebar-item" href="/posts/welcome">Welcome</a>`,
		"<p>body</p>",
		`src="/wasm_exec.js"`,
		"new Go()",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestLoad_LayoutsDoNotOverrideEachOther(t *testing.T) {
	fsys := fstest.MapFS{
		"base.html":         {Data: []byte(`[{{block "main" .}}{{end}}|{{template "sig" .}}]`)},
		"partials/sig.html": {Data: []byte(`{{define "sig"}}sig{{end}}`)},
		"a.html":            {Data: []byte(`{{define "main"}}A{{end}}`)},
		"b.html":            {Data: []byte(`{{define "main"}}B{{end}}`)},
	}

	layouts, err := Load(fsys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, want := range map[string]string{"a.html": "[A|sig]", "b.html": "[B|sig]"} {
		var buf bytes.Buffer
		if err := layouts.Execute(&buf, name, nil); err != nil {
			t.Fatalf("execute %s: %v", name, err)
		}
		if buf.String() != want {
			t.Errorf("%s: expected %q, got %q", name, want, buf.String())
		}
	}

	if err := layouts.Execute(&bytes.Buffer{}, "missing.html", nil); err == nil {
		t.Error("expected error for missing layout")
	}
}

func TestLoad_RequiresBase(t *testing.T) {
	_, err := Load(fstest.MapFS{"a.html": {Data: []byte("a")}})
	if err == nil {
		t.Fatal("expected error without base.html")
	}
}

func TestHeadTag_Rejects(t *testing.T) {
	if _, err := headTag(config.HeadTag{Tag: "div"}); err == nil {
		t.Error("expected error for non-head tag")
	}
	got, err := headTag(config.HeadTag{Tag: "link", Attrs: map[string]string{"rel": "icon", "href": "/favicon.ico"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `<link href="/favicon.ico" rel="icon">` {
		t.Errorf("unexpected tag %q", got)
	}
}

func TestLayoutName(t *testing.T) {
	if LayoutName("") != "" || LayoutName("post") != "post.html" || LayoutName("x.html") != "x.html" {
		t.Error("unexpected layout name mapping")
	}
}

func TestSidebarIndex(t *testing.T) {
	idx := NewSidebarIndex(map[string][]config.SidebarGroup{
		"/posts/":      {{Text: "posts"}},
		"/posts/2025/": {{Text: "2025"}},
		"guide/":       {{Text: "guide"}},
	})

	tests := []struct {
		url  string
		want string
	}{
		{"/posts/welcome", "posts"},
		{"/posts/2025/new-year", "2025"},
		{"/Posts/Upper", "posts"},
		{"/guide/intro", "guide"},
		{"/about", ""},
	}
	for _, tt := range tests {
		groups := idx.For(tt.url)
		got := ""
		if len(groups) > 0 {
			got = groups[0].Text
		}
		if got != tt.want {
			t.Errorf("For(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}

	var nilIdx *SidebarIndex
	if nilIdx.For("/posts/x") != nil {
		t.Error("nil index should return nil")
	}
}
