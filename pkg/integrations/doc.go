// Package integrations provides HTTP clients for package registry APIs.
//
// # Overview
//
// This package contains the shared transport used by registry clients.
// Each registry has its own subpackage:
//
//   - [maven]: Java Maven Central search index
//
// # Client Pattern
//
// Registry clients embed [Client] and expose two flavours of every lookup:
//
//	deps := client.Search(ctx, "guava")              // empty slice on any failure
//	deps, err := client.FetchSearch(ctx, "guava")    // distinct transport error
//
// The shared [Client] handles:
//   - Connect and read timeouts ([NewHTTPClient])
//   - Default and per-request headers
//   - Status classification into [ErrNotFound] and [ErrNetwork]
//   - Request reporting through [observability.HTTPHooks]
//
// Requests are not retried and responses are not cached.
//
// [maven]: github.com/matzehuels/mvnsearch/pkg/integrations/maven
// [observability.HTTPHooks]: github.com/matzehuels/mvnsearch/pkg/observability.HTTPHooks
package integrations
