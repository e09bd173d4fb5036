// Package command provides CLI command definitions for kappa-cli.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: root command, global flags, setup and interactive mode
//   - parse.go: turns an input line into a validated Command
//   - executor.go: runs a Command against the drop service and renders it
//   - drops.go: single-shot list, view, create, edit and delete
//   - config.go: config show, path and init
//
// The interactive prompt and the single-shot commands share one Executor,
// so both produce the same output for the same input.
package command
