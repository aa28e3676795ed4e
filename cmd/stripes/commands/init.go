package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agiangrant/stripes/internal/theme"
)

func newInitCmd() *cobra.Command {
	var force bool
	var path string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter theme.toml",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to stat %s: %w", path, err)
			}

			if err := os.WriteFile(path, []byte(theme.Starter), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			logStatus(cmd.ErrOrStderr(), "success", "Created "+path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	cmd.Flags().StringVar(&path, "path", theme.DefaultFile, "Where to write the theme file")
	return cmd
}
