// Package commands implements the stripes CLI.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/agiangrant/stripes/internal/theme"
	"github.com/agiangrant/stripes/tw"
)

// NewRootCmd builds the stripes command tree.
func NewRootCmd(version string) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "stripes",
		Short: "Generate striped background utilities from a theme palette",
		Long: `stripes generates striped background utility classes from the colours
in theme.toml and writes them as CSS.

Configuration:
  theme.toml [stripes] sets size, angle, opacity, bg_opacity and prefix.
  STRIPES_* environment variables (or a .env file) override it.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := theme.LogLevel(slog.LevelWarn)
			if cmd.Flags().Changed("log-level") {
				if err := level.UnmarshalText([]byte(logLevel)); err != nil {
					return err
				}
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
			tw.SetLogger(logger)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(
		newGenerateCmd(),
		newCheckCmd(),
		newPaletteCmd(),
		newInitCmd(),
	)
	return root
}

// loadTheme loads the theme at path, or the first theme file found in the
// working directory when path is empty.
func loadTheme(path string) (*theme.Theme, error) {
	if path == "" {
		path = theme.Find(".")
	}
	return theme.Load(path)
}
