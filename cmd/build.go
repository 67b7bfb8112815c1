package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Bitlatte/shadowlight/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the static site from content, layouts, and static assets",
	Long: `The build command processes Markdown files from './content/',
extracts frontmatter, orders the posts matching the 'posts' pattern by date,
applies the layouts from './layouts/' (or the built-in theme), copies static
assets from './static/', and generates the site in the configured output
directory (default './public/').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := newBuilder().Build(cmd.Context())
		return err
	},
}

func newBuilder() *site.Builder {
	return site.New(afero.NewOsFs(), appConfig, site.WithLogger(logger))
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
