// Package confloader provides configuration loading for kappa-cli.
//
//   - loader.go: koanf-backed loader over file, env and override sources
//   - provider.go: koanf provider for flag overrides
//   - watcher.go: fsnotify watcher that reports edits to the config file
//
// Priority (highest to lowest):
//
//  1. Overrides (command-line flags)
//  2. Environment variables (KAPPA_*)
//  3. Configuration file
//  4. Defaults held by the target struct
package confloader
