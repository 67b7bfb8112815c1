package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Bitlatte/shadowlight/internal/config"
)

var (
	cfgFile   string
	verbose   bool
	appConfig config.Config
	logger    = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "shadowlight",
	Short: "Shadowlight - a markdown blog generator",
	Long: `Shadowlight is a CLI tool that takes your Markdown posts, orders them
by date, and outputs a static HTML blog.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")
}

func initializeConfig(_ *cobra.Command) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, used, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if used != "" {
		logger.Debug("using config file", "path", used)
	} else {
		logger.Debug("no config file found, using defaults and environment")
	}
	appConfig = cfg
	return nil
}
