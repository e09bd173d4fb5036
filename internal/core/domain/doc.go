// Package domain defines the core domain models for kappa.
//
// Domain models are pure value objects without any IO dependencies or
// framework coupling. This package contains:
//
//   - Drop: a named, typed, stock-limited purchasable item
//   - DropType and DropField: the closed sets of drop types and editable fields
//   - Request/response records exchanged with the drop service
//   - Errors: domain-specific error definitions
//
// The client never mutates drops itself; these types only describe the
// payloads it sends and the results it renders.
package domain
