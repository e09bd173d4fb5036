package repl

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// recorder is a Dispatcher that records every call.
type recorder struct {
	calls [][]string
}

func (r *recorder) Dispatch(_ context.Context, args []string) {
	r.calls = append(r.calls, args)
}

func newTestREPL(input string) (*REPL, *recorder, *bytes.Buffer) {
	rec := &recorder{}
	out := &bytes.Buffer{}
	r := New(rec, WithInput(strings.NewReader(input)), WithOutput(out), WithColor(false))
	return r, rec, out
}

func TestREPL_Run_Exit(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"exit command", "exit\nlist\n"},
		{"quit command", "quit\nlist\n"},
		{"EOF", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, rec, _ := newTestREPL(tt.input)

			if err := r.Run(context.Background()); err != nil {
				t.Errorf("Run() returned error: %v", err)
			}
			if len(rec.calls) != 0 {
				t.Errorf("dispatched %q after exit", rec.calls)
			}
		})
	}
}

func TestREPL_Run_Transcript(t *testing.T) {
	r, _, out := newTestREPL("help\n")

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := "hello kappa!\nk => \nk => \n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestREPL_Run_Dispatch(t *testing.T) {
	r, rec, _ := newTestREPL("view sneakers\r\ncreate a b c paid-lifetime 5\nedit  x\n")

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := [][]string{
		{"view", "sneakers"},
		{"create", "a", "b", "c", "paid-lifetime", "5"},
		{"edit", "", "x"},
	}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %q, want %q", rec.calls, want)
	}
}

func TestREPL_Run_EmptyLines(t *testing.T) {
	r, rec, out := newTestREPL("\n\r\n\nlist\n")

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(rec.calls) != 1 {
		t.Errorf("calls = %d, want 1", len(rec.calls))
	}
	if prompts := strings.Count(out.String(), Prompt); prompts != 5 {
		t.Errorf("prompts = %d, want 5", prompts)
	}
}

func TestREPL_Run_LastLineWithoutNewline(t *testing.T) {
	r, rec, _ := newTestREPL("list")

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(rec.calls) != 1 || rec.calls[0][0] != "list" {
		t.Errorf("calls = %q", rec.calls)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestREPL_Run_ReadError(t *testing.T) {
	r := New(&recorder{}, WithInput(failingReader{}), WithOutput(&bytes.Buffer{}), WithColor(false))

	err := r.Run(context.Background())
	if err == nil {
		t.Fatal("Run() should fail on read error")
	}
	if !strings.Contains(err.Error(), "device gone") {
		t.Errorf("error = %v", err)
	}
}

func TestREPL_Run_Cancelled(t *testing.T) {
	r, rec, _ := newTestREPL("list\nlist\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := r.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("calls = %d, want 0", len(rec.calls))
	}
}

func TestREPL_ColorPrompt(t *testing.T) {
	rec := &recorder{}
	out := &bytes.Buffer{}
	r := New(rec, WithInput(strings.NewReader("")), WithOutput(out), WithColor(true))

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "\x1b[35mk => \x1b[0m") {
		t.Errorf("output = %q, want purple prompt", out.String())
	}
}

func TestColorSupported(t *testing.T) {
	if ColorSupported(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"list", []string{"list"}},
		{"view a", []string{"view", "a"}},
		{"view  a", []string{"view", "", "a"}},
		{"view ", []string{"view", ""}},
	}

	for _, tt := range tests {
		if got := Split(tt.line); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Split(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}
