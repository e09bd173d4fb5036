// Package repl provides the interactive prompt for kappa-cli.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	// Greeting is printed once when the loop starts.
	Greeting = "hello kappa!"

	// Prompt is printed before every read.
	Prompt = "k => "
)

// Dispatcher executes one tokenized input line. Dispatch never fails;
// every outcome is reported on the dispatcher's own output.
type Dispatcher interface {
	Dispatch(ctx context.Context, args []string)
}

// REPL represents the Read-Eval-Print Loop.
type REPL struct {
	input      io.Reader
	output     io.Writer
	dispatcher Dispatcher
	prompt     *color.Color
}

// Option configures a REPL.
type Option func(*REPL)

// WithInput sets the input stream.
func WithInput(r io.Reader) Option {
	return func(repl *REPL) {
		repl.input = r
	}
}

// WithOutput sets the output stream.
func WithOutput(w io.Writer) Option {
	return func(repl *REPL) {
		repl.output = w
	}
}

// WithColor enables or disables the purple prompt.
func WithColor(enabled bool) Option {
	return func(repl *REPL) {
		if enabled {
			repl.prompt.EnableColor()
		} else {
			repl.prompt.DisableColor()
		}
	}
}

// New creates a new REPL instance reading stdin and writing stdout. The
// prompt is coloured only when stdout is a terminal unless WithColor says
// otherwise.
func New(d Dispatcher, opts ...Option) *REPL {
	r := &REPL{
		input:      os.Stdin,
		output:     os.Stdout,
		dispatcher: d,
		prompt:     color.New(color.FgMagenta),
	}
	if !ColorSupported(os.Stdout) {
		r.prompt.DisableColor()
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// ColorSupported reports whether w is a terminal that can show colour.
func ColorSupported(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Run starts the REPL loop. It returns nil at end of input or on exit/quit,
// and an error only when reading the input fails.
func (r *REPL) Run(ctx context.Context) error {
	reader := bufio.NewReader(r.input)

	fmt.Fprintln(r.output, Greeting)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fmt.Fprint(r.output, r.prompt.Sprint(Prompt))

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read input: %w", err)
		}
		eof := err != nil

		fmt.Fprintln(r.output)

		if eof && line == "" {
			return nil
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		switch line {
		case "":
		case "exit", "quit":
			return nil
		default:
			r.dispatcher.Dispatch(ctx, Split(line))
		}

		if eof {
			return nil
		}
	}
}

// Split tokenizes a line on single spaces. Consecutive spaces yield empty
// tokens.
func Split(line string) []string {
	return strings.Split(line, " ")
}
