package report

import (
	"fmt"

	"github.com/pterm/pterm"

	"pl0c/common"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// paint applies a foreground colour to text if colouring is enabled.
func (r *Reporter) paint(c pterm.Color, text string) string {
	if r.color {
		return c.Sprint(text)
	}

	return text
}

// tag renders a message tag, styled as a banner if colouring is enabled.
func (r *Reporter) tag(s *pterm.Style, text string) string {
	if r.color {
		return s.Sprint(text) + " "
	}

	return text + ": "
}

// displayCompileError displays the one-line diagnostic of a compile error.
// The text is the diagnostic itself: no banner is prepended so the line on the
// console matches the line written to the object file.
func (r *Reporter) displayCompileError(cerr *CompileError) {
	fmt.Fprintln(r.out, r.paint(ErrorColorFG, cerr.Message))
}

// displayICE displays an internal compiler error message.
func (r *Reporter) displayICE(msg string) {
	fmt.Fprintln(r.out, r.tag(ErrorStyleBG, "internal compiler error")+r.paint(ErrorColorFG, msg))
}

// displayFatal displays a fatal error message.
func (r *Reporter) displayFatal(msg string) {
	fmt.Fprintln(r.out, r.tag(ErrorStyleBG, "fatal error")+r.paint(ErrorColorFG, msg))
}

// displayWarning displays a warning message.
func (r *Reporter) displayWarning(msg string) {
	fmt.Fprintln(r.out, r.tag(WarnStyleBG, "warning")+r.paint(WarnColorFG, msg))
}

// displayInfo displays an informational message.
func (r *Reporter) displayInfo(tag, msg string) {
	fmt.Fprintln(r.out, r.tag(InfoStyleBG, tag)+r.paint(InfoColorFG, msg))
}

// -----------------------------------------------------------------------------

// displayCompileHeader displays all the compiler information before starting
// compilation.
func (r *Reporter) displayCompileHeader(profileName, format string) {
	fmt.Fprintf(
		r.out,
		"pl0c %s -- profile: %s, format: %s\n",
		r.paint(InfoColorFG, "v"+common.PL0CVersion),
		r.paint(InfoColorFG, profileName),
		r.paint(InfoColorFG, format),
	)
}

// displayCompilationFinished displays a compilation finished message.
func (r *Reporter) displayCompilationFinished(success bool, outputPath string, instrCount int) {
	fmt.Fprintln(r.out)

	if success {
		fmt.Fprint(r.out, r.paint(SuccessColorFG, "All done! "))
		fmt.Fprintf(r.out, "(%d instructions written to %s)\n", instrCount, outputPath)
	} else {
		fmt.Fprint(r.out, r.paint(ErrorColorFG, "Oh no! "))
		fmt.Fprintf(r.out, "(diagnostic written to %s)\n", outputPath)
	}
}
