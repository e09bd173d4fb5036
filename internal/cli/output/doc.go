// Package output provides output formatting for kappa-cli.
//
//   - formatter.go: Format values and the Formatter factory
//   - text.go: labelled one-field-per-line drop records
//   - table.go: aligned drop tables
//   - json.go, yaml.go: machine-readable output
//   - printer.go: messages and coloured failures
//
// Text is the default and matches the interactive transcript exactly.
package output
