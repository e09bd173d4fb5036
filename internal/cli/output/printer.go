package output

import (
	"io"

	"github.com/fatih/color"
)

// Printer writes user-facing messages. Every message is followed by a
// blank line. Failures are red when colour is enabled.
type Printer struct {
	w       io.Writer
	failure *color.Color
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer, useColor bool) *Printer {
	failure := color.New(color.FgRed)
	if useColor {
		failure.EnableColor()
	} else {
		failure.DisableColor()
	}
	return &Printer{w: w, failure: failure}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Message prints msg followed by a blank line.
func (p *Printer) Message(msg string) {
	io.WriteString(p.w, msg+"\n\n")
}

// Failure prints msg in the failure colour followed by a blank line.
func (p *Printer) Failure(msg string) {
	io.WriteString(p.w, p.failure.Sprint(msg)+"\n\n")
}
