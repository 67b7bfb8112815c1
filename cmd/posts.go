package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/Bitlatte/shadowlight/internal/content"
	"github.com/Bitlatte/shadowlight/internal/model"
	"github.com/Bitlatte/shadowlight/internal/site"
)

var postsFormat string

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List the posts in the order they appear on the home page",
	Long: `List the posts selected by the 'posts' pattern, newest first.

Examples:
  shadowlight posts
  shadowlight posts --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := loadPosts()
		if err != nil {
			return err
		}
		return writePosts(cmd.OutOrStdout(), posts, postsFormat)
	},
}

func loadPosts() ([]model.PostSummary, error) {
	loader := content.NewLoader(afero.NewOsFs(), site.ContentDir, content.Options{
		CleanURLs:        appConfig.CleanURLs,
		ExcerptSeparator: appConfig.ExcerptSeparator,
		IncludeDrafts:    appConfig.BuildDrafts,
	}, logger)
	return loader.Load(appConfig.Posts)
}

func writePosts(w io.Writer, posts []model.PostSummary, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(posts)
	case "yaml":
		out, err := yaml.Marshal(posts)
		if err != nil {
			return fmt.Errorf("failed to encode posts: %w", err)
		}
		_, err = w.Write(out)
		return err
	case "table", "":
		if len(posts) == 0 {
			_, err := fmt.Fprintln(w, "No posts found")
			return err
		}
		fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%d posts", len(posts))))
		for _, p := range posts {
			date := "-"
			if p.HasDate() {
				date = p.PublishedAt.Format("2006-01-02")
			}
			line := dateStyle.Render(date) + titleStyle.Render(p.Title) + " " + urlStyle.Render(p.URL)
			if len(p.Tags) > 0 {
				line += " " + tagStyle.Render(strings.Join(p.Tags, ", "))
			}
			fmt.Fprintln(w, line)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q, want table, json or yaml", format)
	}
}

func init() {
	postsCmd.Flags().StringVarP(&postsFormat, "format", "f", "table", "output format: table, json or yaml")
	rootCmd.AddCommand(postsCmd)
}
