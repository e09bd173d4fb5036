// Package main provides the entry point for kappa-cli.
//
// The CLI talks to a drop service over HTTP:
//
//   - Interactive prompt (no arguments)
//   - Single commands: list, view, create, edit, delete
//   - Configuration: config show, config path, config init
//
// Usage:
//
//	kappa-cli
//	kappa-cli --server http://localhost:3000/ list
//	kappa-cli -o json view sneakers
//	kappa-cli edit sneakers stock 75
package main
