// Package repl provides interactive mode for kappa-cli.
//
// The loop prints a greeting, then repeatedly prints the prompt, reads one
// line, strips its terminator, splits it on single spaces and hands the
// tokens to a Dispatcher. Empty lines are skipped; exit and quit end the
// loop, as does end of input.
package repl
