package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	clrDim     = color.New(color.FgHiBlack)
	clrAccent  = color.New(color.FgCyan, color.Bold)
	clrSuccess = color.New(color.FgGreen)
	clrError   = color.New(color.FgRed)
	clrWarning = color.New(color.FgYellow)
	clrInfo    = color.New(color.FgBlue)
)

// logStatus writes a one-line status message with an icon for category.
func logStatus(w io.Writer, category, message string) {
	var icon, styled string
	switch category {
	case "success":
		icon = clrSuccess.Sprint("✔")
		styled = clrSuccess.Sprint(message)
	case "error":
		icon = clrError.Sprint("✖")
		styled = clrError.Sprint(message)
	case "warning":
		icon = clrWarning.Sprint("⚠")
		styled = clrWarning.Sprint(message)
	case "info":
		icon = clrInfo.Sprint("ℹ")
		styled = message
	default:
		icon = clrDim.Sprint("●")
		styled = message
	}
	fmt.Fprintf(w, "%s  %s\n", icon, styled)
}
