package model

import "github.com/Bitlatte/shadowlight/internal/config"

// PageData is the context every layout is executed with. Home is set only
// on the home pages, where Page is the content's index page, if any.
type PageData struct {
	Config  config.Config
	Site    *SiteData
	Page    *Page
	Sidebar []config.SidebarGroup
	Home    *HomeData
}

// HomeData is one page of the paginated post listing.
type HomeData struct {
	Posts []PostSummary
	Pager Pager
	Stats []Stat
	Cards []config.TechCard
	Tags  []TagCount
}

type Pager struct {
	Number int
	Total  int
	Prev   string
	Next   string
}

type Stat struct {
	Label string
	Value string
}
