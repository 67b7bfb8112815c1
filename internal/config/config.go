package config

import (
	"fmt"
	"strings"
)

type Config struct {
	SiteTitle   string `mapstructure:"siteTitle"`
	Description string `mapstructure:"description"`
	Lang        string `mapstructure:"lang"`
	OutputDir   string `mapstructure:"outputDir"`
	BaseURL     string `mapstructure:"baseURL"`

	// Posts is the glob, relative to the content directory, that selects
	// the markdown files listed on the home page.
	Posts            string `mapstructure:"posts"`
	CleanURLs        bool   `mapstructure:"cleanUrls"`
	Paginate         int    `mapstructure:"paginate"`
	Minify           bool   `mapstructure:"minify"`
	ExcerptSeparator string `mapstructure:"excerptSeparator"`
	BuildDrafts      bool   `mapstructure:"buildDrafts"`

	HomeRedirect HomeRedirect `mapstructure:"homeRedirect"`
	Head         []HeadTag    `mapstructure:"head"`
	Theme        ThemeConfig  `mapstructure:"themeConfig"`
}

// HomeRedirect controls the script tags that load the click-redirect binder.
type HomeRedirect struct {
	Enabled  bool   `mapstructure:"enabled"`
	WasmPath string `mapstructure:"wasmPath"`
	ExecPath string `mapstructure:"execPath"`
}

// HeadTag is an extra element injected into every page's <head>.
type HeadTag struct {
	Tag   string            `mapstructure:"tag"`
	Attrs map[string]string `mapstructure:"attrs"`
}

// Defaults returns the values used when neither the config file nor the
// environment set a key.
func Defaults() map[string]any {
	return map[string]any{
		"outputDir":             "public",
		"baseURL":               "",
		"siteTitle":             "光影博客",
		"lang":                  "zh-CN",
		"posts":                 "posts/*.md",
		"cleanUrls":             true,
		"paginate":              10,
		"minify":                false,
		"excerptSeparator":      "---",
		"buildDrafts":           false,
		"homeRedirect.enabled":  false,
		"homeRedirect.wasmPath": "/redirect.wasm",
		"homeRedirect.execPath": "/wasm_exec.js",
		"themeConfig.logoLink":  "/",
		"themeConfig.search":    map[string]any{"provider": SearchLocal},
	}
}

// Validate checks the decoded configuration for values the builder cannot
// work with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("outputDir must not be empty")
	}
	if c.Posts == "" {
		return fmt.Errorf("posts pattern must not be empty")
	}
	if c.Paginate <= 0 {
		return fmt.Errorf("paginate must be positive, got %d", c.Paginate)
	}
	switch c.Theme.Search.Provider {
	case "", SearchLocal, SearchNone:
	default:
		return fmt.Errorf("unknown search provider %q", c.Theme.Search.Provider)
	}
	return nil
}

// Title returns the title shown in the navigation bar.
func (c Config) Title() string {
	if c.Theme.SiteTitle != "" {
		return c.Theme.SiteTitle
	}
	return c.SiteTitle
}
