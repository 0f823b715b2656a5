// Package output renders command results in text or JSON, with styling only
// when stdout is an interactive terminal.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Mode selects how command output is rendered.
type Mode string

// Output modes.
const (
	// ModeAuto picks text with styling on a TTY, plain text otherwise.
	ModeAuto Mode = "auto"
	// ModeText forces plain text.
	ModeText Mode = "text"
	// ModeJSON forces machine-readable JSON.
	ModeJSON Mode = "json"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
)

// Renderer writes command output in the selected mode.
type Renderer struct {
	out     io.Writer
	errOut  io.Writer
	mode    Mode
	styling bool
}

// NewRenderer creates a renderer. ModeAuto resolves against the environment:
// styling is enabled only when stdout is a terminal that supports color.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	r := &Renderer{out: out, errOut: errOut, mode: mode}
	switch mode {
	case ModeText, ModeJSON:
	default:
		r.mode = ModeAuto
	}
	if r.mode == ModeAuto {
		f, isFile := out.(*os.File)
		r.styling = isFile && termenv.NewOutput(f).ColorProfile() != termenv.Ascii
	}
	return r
}

// EffectiveMode returns the resolved mode (ModeAuto resolves to ModeText).
func (r *Renderer) EffectiveMode() Mode {
	if r.mode == ModeAuto {
		return ModeText
	}
	return r.mode
}

// Out returns the renderer's standard output writer.
func (r *Renderer) Out() io.Writer {
	return r.out
}

// Success prints a confirmation line.
func (r *Renderer) Success(msg string) {
	if r.styling {
		fmt.Fprintln(r.out, successStyle.Render("✓ "+msg))
		return
	}
	fmt.Fprintln(r.out, msg)
}

// Errorf prints a failure line to the error stream.
func (r *Renderer) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if r.styling {
		fmt.Fprintln(r.errOut, errorStyle.Render("✗ "+msg))
		return
	}
	fmt.Fprintln(r.errOut, msg)
}

// Header prints a section heading.
func (r *Renderer) Header(msg string) {
	if r.styling {
		fmt.Fprintln(r.out, headerStyle.Render(msg))
		return
	}
	fmt.Fprintln(r.out, msg)
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
