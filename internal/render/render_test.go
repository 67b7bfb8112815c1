package render

import (
	"bytes"
	"strings"
	"testing"
)

func TestMarkdown_Render(t *testing.T) {
	md := NewMarkdown("github")

	out, err := md.Render([]byte("# Hello\n\nSome *text*.\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `<h1 id="hello">Hello</h1>`) {
		t.Errorf("expected heading with id, got %q", out)
	}
	if !strings.Contains(out, "<em>text</em>") {
		t.Errorf("expected emphasis, got %q", out)
	}
}

func TestMarkdown_FencedCode(t *testing.T) {
	md := NewMarkdown("github")

	out, err := md.Render([]byte("```go\nfunc main() {}\n```\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "<pre") || !strings.Contains(out, "main") {
		t.Errorf("expected highlighted block, got %q", out)
	}

	out, err = md.Render([]byte("```nosuchlang\n<b>x</b>\n```\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `<code class="language-nosuchlang">&lt;b&gt;x&lt;/b&gt;`) {
		t.Errorf("expected escaped plain block, got %q", out)
	}
}

func TestMinifier(t *testing.T) {
	src := []byte("<html>\n  <body>\n    <p>  hi  </p>\n  </body>\n</html>\n")

	var plain bytes.Buffer
	if err := NewMinifier(false).Write(&plain, "index.html", src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(plain.Bytes(), src) {
		t.Errorf("disabled minifier changed output: %q", plain.String())
	}

	var min bytes.Buffer
	if err := NewMinifier(true).Write(&min, "index.html", src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if min.Len() >= len(src) {
		t.Errorf("expected smaller output, got %q", min.String())
	}

	var bin bytes.Buffer
	if err := NewMinifier(true).Write(&bin, "logo.png", src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(bin.Bytes(), src) {
		t.Error("unknown extensions should pass through")
	}
}
