// Package output prints styled status lines for the inputhandler CLI.
//
// Validated prompt values are written plain so scripts can capture them;
// everything around them (notices, steps, failures) goes through a Printer.
package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled lines to a single writer.
type Printer struct {
	out     io.Writer
	verbose bool

	success lipgloss.Style
	err     lipgloss.Style
	info    lipgloss.Style
	step    lipgloss.Style
}

// NewPrinter creates a Printer for w. Colors are only emitted when w is a
// terminal that supports them.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		out:     w,
		success: r.NewStyle().Foreground(lipgloss.Color("green")).Bold(true),
		err:     r.NewStyle().Foreground(lipgloss.Color("red")).Bold(true),
		info:    r.NewStyle().Foreground(lipgloss.Color("cyan")),
		step:    r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// SetVerbose enables or disables Verbose lines.
func (p *Printer) SetVerbose(v bool) {
	p.verbose = v
}

// Success prints a completed-operation line.
//
// Example:
//
//	p.Success("Wrote inputhandler.yml")
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.out, p.success.Render("✔ "+msg))
}

// Error prints a failure that needs user attention.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.out, p.err.Render("✘ "+msg))
}

// Info prints a status update.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.out, p.info.Render("ℹ "+msg))
}

// Step prints an indented sub-item.
func (p *Printer) Step(msg string) {
	fmt.Fprintln(p.out, p.step.Render("   "+msg))
}

// Verbose prints a debug line only when verbose mode is on.
func (p *Printer) Verbose(msg string) {
	if p.verbose {
		fmt.Fprintln(p.out, p.step.Render("… "+msg))
	}
}

var (
	stdOnce sync.Once
	std     *Printer
)

func stdout() *Printer {
	stdOnce.Do(func() {
		std = NewPrinter(os.Stdout)
	})
	return std
}

// SetVerbose toggles Verbose on the stdout printer. The CLI calls this when
// --verbose is set.
func SetVerbose(v bool) { stdout().SetVerbose(v) }

func Success(msg string) { stdout().Success(msg) }
func Error(msg string)   { stdout().Error(msg) }
func Info(msg string)    { stdout().Info(msg) }
func Step(msg string)    { stdout().Step(msg) }
func Verbose(msg string) { stdout().Verbose(msg) }
