package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agiangrant/stripes/internal/theme"
)

func newCheckCmd() *cobra.Command {
	var themeFile string
	var userOnly bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report colours that will be skipped or rendered as currentColor",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTheme(themeFile)
			if err != nil {
				return err
			}

			table := t.Table()
			if userOnly {
				table = t.Colors
			}

			out := cmd.OutOrStdout()
			findings := theme.Check(table)
			for _, f := range findings {
				logStatus(out, f.Severity.String(), f.String())
			}

			if theme.HasErrors(findings) {
				return fmt.Errorf("theme has problems (%d findings)", len(findings))
			}
			if len(findings) == 0 {
				logStatus(out, "success", fmt.Sprintf("%d colour families OK", len(table)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&themeFile, "theme", "", "Path to theme.toml (default: search the working directory)")
	cmd.Flags().BoolVar(&userOnly, "user", false, "Check only colours defined in the theme file")
	return cmd
}
