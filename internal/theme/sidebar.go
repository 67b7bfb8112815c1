package theme

import (
	"strings"

	"github.com/armon/go-radix"

	"github.com/Bitlatte/shadowlight/internal/config"
)

// SidebarIndex resolves the sidebar for a URL by longest matching path
// prefix, the way the sidebar config is keyed.
type SidebarIndex struct {
	tree *radix.Tree
}

func NewSidebarIndex(sidebar map[string][]config.SidebarGroup) *SidebarIndex {
	tree := radix.New()
	for prefix, groups := range sidebar {
		tree.Insert(normalizePrefix(prefix), groups)
	}
	return &SidebarIndex{tree: tree}
}

// For returns the sidebar groups for url, or nil when no prefix matches.
func (s *SidebarIndex) For(url string) []config.SidebarGroup {
	if s == nil {
		return nil
	}
	_, v, ok := s.tree.LongestPrefix(strings.ToLower(url))
	if !ok {
		return nil
	}
	return v.([]config.SidebarGroup)
}

func normalizePrefix(p string) string {
	p = strings.ToLower(strings.TrimSpace(p))
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
