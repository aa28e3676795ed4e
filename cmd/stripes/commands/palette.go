package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agiangrant/stripes/internal/theme"
	"github.com/agiangrant/stripes/tw"
)

func newPaletteCmd() *cobra.Command {
	var themeFile string

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "List the class names the theme generates",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTheme(themeFile)
			if err != nil {
				return err
			}
			prefix := theme.ApplyEnv(t.Options()).Resolve().Prefix
			printPalette(cmd.OutOrStdout(), t.Table(), prefix)
			return nil
		},
	}

	cmd.Flags().StringVar(&themeFile, "theme", "", "Path to theme.toml (default: search the working directory)")
	return cmd
}

func printPalette(w io.Writer, table tw.ColorTable, prefix string) {
	for _, family := range table {
		switch entry := family.Entry.(type) {
		case tw.Single:
			fmt.Fprintf(w, "%s %s\n", clrAccent.Sprint(pad(prefix+"-"+family.Name)), entry)
		case tw.Scale:
			for _, shade := range entry {
				if shade.Value == "" {
					continue
				}
				name := prefix + "-" + family.Name
				if shade.Key != tw.DefaultShade {
					name += "-" + shade.Key
				}
				fmt.Fprintf(w, "%s %s\n", clrAccent.Sprint(pad(name)), shade.Value)
			}
		case tw.Invalid:
			fmt.Fprintf(w, "%s %s\n", clrDim.Sprint(pad(family.Name)), clrWarning.Sprint("skipped: "+entry.Reason))
		}
	}
}

// pad left-aligns name in the class column. Padding is applied before
// colouring so escape codes do not count towards the width.
func pad(name string) string {
	return fmt.Sprintf("%-32s", name)
}
