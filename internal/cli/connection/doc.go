// Package connection provides the drop service client for kappa-cli.
//
//   - http.go: HTTP transport, credential header, response decoding
//   - drops.go: typed list/get/create/edit/delete calls
//   - manager.go: the active connection, swappable at runtime
//
// Requests are never retried. A request that gets no response fails with
// domain.ErrTransport; a response that does not match the expected schema
// fails with domain.ErrMalformedResponse.
package connection
