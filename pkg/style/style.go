// Package style renders per-link outcome lines with pterm styling.
package style

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/relink/pkg/linker"
	"github.com/arthur-debert/relink/pkg/status"
	"github.com/arthur-debert/relink/pkg/types"
)

// ErrorTag labels per-link errors that fall outside the status and result
// enumerations.
const ErrorTag = "error"

// tagWidth aligns the outcome column across lines.
const tagWidth = 14

// AutoColor disables pterm color output when stdout is not a terminal or
// the NO_COLOR/CLICOLOR conventions ask for plain output.
func AutoColor() {
	if termenv.EnvNoColor() || !isatty.IsTerminal(os.Stdout.Fd()) {
		pterm.DisableColor()
	}
}

// StatusStyle returns the pterm style for an inspection status
func StatusStyle(st status.Status) *pterm.Style {
	switch st {
	case status.StatusOK:
		return pterm.NewStyle(pterm.FgGreen)
	case status.StatusMissing:
		return pterm.NewStyle(pterm.FgYellow)
	case status.StatusBroken:
		return pterm.NewStyle(pterm.FgRed)
	case status.StatusWrongTarget:
		return pterm.NewStyle(pterm.FgRed)
	case status.StatusNotSymlink:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// ResultStyle returns the pterm style for a mutation result
func ResultStyle(res linker.Result) *pterm.Style {
	switch res {
	case linker.ResultCreated:
		return pterm.NewStyle(pterm.FgGreen)
	case linker.ResultCreatedBroken:
		return pterm.NewStyle(pterm.FgYellow)
	case linker.ResultSkipped:
		return pterm.NewStyle(pterm.FgCyan)
	case linker.ResultFailed:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// RenderStatusLine renders one doctor line for a link
func RenderStatusLine(link types.ExpandedLink, st status.Status) string {
	tag := StatusStyle(st).Sprint(pad(string(st)))

	var detail string
	switch st {
	case status.StatusOK:
		detail = fmt.Sprintf("points to %s", link.Source)
	case status.StatusMissing:
		detail = "no link on disk"
	case status.StatusBroken:
		detail = fmt.Sprintf("points to missing %s", link.Source)
	case status.StatusWrongTarget:
		detail = fmt.Sprintf("does not point to %s", link.Source)
	case status.StatusNotSymlink:
		detail = "exists but is not a symlink"
	}

	return fmt.Sprintf("  %s %s : %s", tag, link.Destination, detail)
}

// RenderResultLine renders one link-command line for a link
func RenderResultLine(link types.ExpandedLink, res linker.Result, err error) string {
	tag := ResultStyle(res).Sprint(pad(string(res)))

	var detail string
	switch res {
	case linker.ResultCreated:
		detail = fmt.Sprintf("-> %s", link.Source)
	case linker.ResultCreatedBroken:
		detail = fmt.Sprintf("-> %s (source does not exist)", link.Source)
	case linker.ResultSkipped:
		detail = "destination already exists (use force to replace)"
	case linker.ResultFailed:
		detail = fmt.Sprintf("%v", err)
	}

	return fmt.Sprintf("  %s %s : %s", tag, link.Destination, detail)
}

// RenderErrorLine renders a generic per-link error line
func RenderErrorLine(destination string, err error) string {
	tag := pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint(pad(ErrorTag))
	return fmt.Sprintf("  %s %s : %v", tag, destination, err)
}

func pad(tag string) string {
	return fmt.Sprintf("%-*s", tagWidth, tag)
}
