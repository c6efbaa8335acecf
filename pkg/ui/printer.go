package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes user facing messages, styled when its format allows it
type Printer struct {
	out    io.Writer
	styled bool
}

// NewPrinter returns a printer on out. FormatAuto is resolved against
// os.Stdout when out is not a file.
func NewPrinter(out io.Writer, format Format) *Printer {
	if format == FormatAuto {
		f, ok := out.(*os.File)
		if !ok {
			f = os.Stdout
		}
		format = DetectFormat(f)
	}
	return &Printer{out: out, styled: format == FormatTerminal}
}

// Writer returns the underlying writer
func (p *Printer) Writer() io.Writer {
	return p.out
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}

// Title prints a heading
func (p *Printer) Title(format string, args ...interface{}) {
	_, _ = fmt.Fprintln(p.out, p.render(TitleStyle, fmt.Sprintf(format, args...)))
}

// Line prints a plain line
func (p *Printer) Line(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

// Success prints a line prefixed with a check mark
func (p *Printer) Success(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n", p.render(SuccessStyle, "✓"), fmt.Sprintf(format, args...))
}

// Warn prints a line prefixed with a warning mark
func (p *Printer) Warn(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n", p.render(WarningStyle, "!"), fmt.Sprintf(format, args...))
}

// Error prints a line prefixed with a cross
func (p *Printer) Error(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n", p.render(ErrorStyle, "✗"), fmt.Sprintf(format, args...))
}

// Item prints an indented list entry
func (p *Printer) Item(s string) {
	_, _ = fmt.Fprintf(p.out, "  %s %s\n", p.render(MutedStyle, "•"), s)
}

// Path styles a file system path
func (p *Printer) Path(path string) string {
	return p.render(PathStyle, path)
}

// Command styles a command line
func (p *Printer) Command(commandLine string) string {
	return p.render(CommandStyle, commandLine)
}

// Muted styles secondary text
func (p *Printer) Muted(s string) string {
	return p.render(MutedStyle, s)
}
