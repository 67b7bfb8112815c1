package config

const (
	SearchLocal = "local"
	SearchNone  = "none"
)

// ThemeConfig is handed to the layouts as-is.
type ThemeConfig struct {
	Logo        string                    `mapstructure:"logo"`
	SiteTitle   string                    `mapstructure:"siteTitle"`
	LogoLink    string                    `mapstructure:"logoLink"`
	Nav         []NavItem                 `mapstructure:"nav"`
	Sidebar     map[string][]SidebarGroup `mapstructure:"sidebar"`
	Search      Search                    `mapstructure:"search"`
	SocialLinks []SocialLink              `mapstructure:"socialLinks"`
	Footer      Footer                    `mapstructure:"footer"`
	TechCards   []TechCard                `mapstructure:"techCards"`
}

// NavItem is a navigation entry; an item with Items renders as a dropdown.
type NavItem struct {
	Text  string    `mapstructure:"text"`
	Link  string    `mapstructure:"link"`
	Items []NavItem `mapstructure:"items"`
}

type SidebarGroup struct {
	Text  string        `mapstructure:"text"`
	Items []SidebarLink `mapstructure:"items"`
}

type SidebarLink struct {
	Text string `mapstructure:"text"`
	Link string `mapstructure:"link"`
}

type Search struct {
	Provider string `mapstructure:"provider"`
}

type SocialLink struct {
	Icon string `mapstructure:"icon"`
	Link string `mapstructure:"link"`
}

type Footer struct {
	Message   string `mapstructure:"message"`
	Copyright string `mapstructure:"copyright"`
}

// TechCard is a home page card. When none are configured they are derived
// from the navigation dropdowns.
type TechCard struct {
	Title string   `mapstructure:"title"`
	Link  string   `mapstructure:"link"`
	Items []string `mapstructure:"items"`
}

// Cards returns the configured tech cards, falling back to one card per
// navigation dropdown.
func (t ThemeConfig) Cards() []TechCard {
	if len(t.TechCards) > 0 {
		return t.TechCards
	}
	var cards []TechCard
	for _, item := range t.Nav {
		if len(item.Items) == 0 {
			continue
		}
		card := TechCard{Title: item.Text, Link: item.Link}
		for _, sub := range item.Items {
			card.Items = append(card.Items, sub.Text)
		}
		cards = append(cards, card)
	}
	return cards
}

// LocalSearch reports whether a local search index should be published.
func (t ThemeConfig) LocalSearch() bool {
	return t.Search.Provider == "" || t.Search.Provider == SearchLocal
}
