// Package output prints unbrew's user-facing messages.
//
// Regular messages go to the standard writer, warnings and errors to the
// error writer. Quiet mode drops the informational messages (the removal
// listing, section titles, the summary) but never warnings, errors or
// dry-run previews.
package output

import (
	"fmt"
	"io"

	"github.com/arthur-debert/unbrew/pkg/style"
	"github.com/arthur-debert/unbrew/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Printer writes styled messages. It implements removal.Reporter.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	theme  style.Theme
	quiet  bool
}

// NewPrinter returns a Printer. When color is false every style renders as
// plain text.
func NewPrinter(out, errOut io.Writer, color, quiet bool) *Printer {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		out:    out,
		errOut: errOut,
		theme:  style.NewTheme(r),
		quiet:  quiet,
	}
}

// Section prints a "==> title" heading.
func (p *Printer) Section(title string) {
	if p.quiet {
		return
	}
	p.println(p.out, p.theme.Arrow.Render("==>")+" "+p.theme.Title.Render(title))
}

// RemovalList announces the owned paths before anything is touched.
func (p *Printer) RemovalList(owned []types.OwnedPath, dryRun bool) {
	if p.quiet {
		return
	}
	verb := "will"
	if dryRun {
		verb = "would"
	}
	p.Warning(fmt.Sprintf("This script %s remove:", verb))
	for _, o := range owned {
		p.println(p.out, p.theme.Path.Render(o.Path))
	}
}

// WouldDeleteHeader precedes a dry-run listing.
func (p *Printer) WouldDeleteHeader() {
	p.println(p.out, "Would delete:")
}

// Listed prints one dry-run match.
func (p *Printer) Listed(path string) {
	p.println(p.out, p.theme.Path.Render(path))
}

// WouldDelete prints a dry-run deletion of path.
func (p *Printer) WouldDelete(path string) {
	p.println(p.out, "Would delete "+p.theme.Path.Render(path))
}

// Warning prints msg prefixed with "Warning:" on the error writer.
func (p *Printer) Warning(msg string) {
	p.println(p.errOut, p.theme.Warning.Render("Warning")+": "+msg)
}

// Error prints err prefixed with "Error:" on the error writer.
func (p *Printer) Error(err error) {
	p.println(p.errOut, p.theme.Error.Render("Error")+": "+err.Error())
}

// Summary reports the overall outcome of a run.
func (p *Printer) Summary(result *types.Result) {
	if p.quiet || result.DryRun {
		return
	}
	if result.Failed() {
		p.Warning("Homebrew partially uninstalled (but there were steps that failed)!")
		p.println(p.out, "To finish uninstalling rerun this script with `sudo`.")
		return
	}
	p.println(p.out, p.theme.Arrow.Render("==>")+" "+p.theme.Success.Render("Homebrew uninstalled!"))
}

// Residual lists directories that may still hold Homebrew files.
func (p *Printer) Residual(dirs []string) {
	if p.quiet || len(dirs) == 0 {
		return
	}
	p.println(p.out, "The following possible Homebrew files were not deleted:")
	for _, d := range dirs {
		p.println(p.out, p.theme.Path.Render(d))
	}
	p.println(p.out, p.theme.Muted.Render("You may wish to remove them yourself."))
}

func (p *Printer) println(w io.Writer, s string) {
	_, _ = fmt.Fprintln(w, s)
}
