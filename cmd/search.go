package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Bitlatte/shadowlight/internal/search"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the posts",
	Long: `Search the posts by title, tag, or excerpt text.

Results are ranked by relevance using fuzzy matching.

Examples:
  shadowlight search golang
  shadowlight search "static site" --limit 5`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !appConfig.Theme.LocalSearch() {
			return fmt.Errorf("local search is disabled (search provider %q)", appConfig.Theme.Search.Provider)
		}
		posts, err := loadPosts()
		if err != nil {
			return err
		}

		results := search.NewIndex(posts).Search(strings.Join(args, " "), searchLimit)
		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No results found")
			return nil
		}
		for _, r := range results {
			fmt.Fprintln(out, titleStyle.Render(r.Title)+" "+urlStyle.Render(r.URL))
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results, 0 for all")
	rootCmd.AddCommand(searchCmd)
}
