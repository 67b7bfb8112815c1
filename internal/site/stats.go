package site

import (
	"sort"
	"strconv"

	"github.com/Bitlatte/shadowlight/internal/model"
)

// TagCounts tallies the tags of posts, most used first and ties by name.
func TagCounts(posts []model.PostSummary) []model.TagCount {
	counts := make(map[string]int)
	for _, p := range posts {
		for _, tag := range p.Tags {
			counts[tag]++
		}
	}

	tags := make([]model.TagCount, 0, len(counts))
	for name, n := range counts {
		tags = append(tags, model.TagCount{Name: name, Count: n})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Name < tags[j].Name
	})
	return tags
}

// Stats are the figures shown at the top of the home page.
func Stats(site *model.SiteData) []model.Stat {
	latest := "-"
	// Posts are sorted newest first.
	if len(site.Posts) > 0 && site.Posts[0].HasDate() {
		latest = site.Posts[0].PublishedAt.Format("2006-01-02")
	}
	return []model.Stat{
		{Label: "Posts", Value: strconv.Itoa(len(site.Posts))},
		{Label: "Tags", Value: strconv.Itoa(len(site.Tags))},
		{Label: "Updated", Value: latest},
	}
}
