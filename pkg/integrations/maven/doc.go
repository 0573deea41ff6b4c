// Package maven provides an HTTP client for the Maven Central search index.
//
// # Overview
//
// This package queries the Solr API behind https://search.maven.org, the
// primary index of published Java artifacts, and decodes its responses into
// [Dependency] values.
//
// # Usage
//
//	client := maven.NewClient(maven.Options{Logger: logger})
//
//	for _, dep := range client.Search(ctx, "g:org.slf4j") {
//	    fmt.Println(dep.Coordinate(), dep.Versions[0])
//	}
//
//	versions := client.Versions(ctx, "org.slf4j", "slf4j-api")
//
// # Search Terms
//
// Terms are passed to the index unchanged (URL-encoded only), so Solr field
// scopes work: "g:org.slf4j" restricts to a group, "a:guava" to an artifact
// name, and they can be combined with AND.
//
// # Failure Contract
//
// [Client.Search], [Client.Versions], [Client.Suggest] and [Client.Browse]
// return an empty, non-nil slice for every failure: unreachable host,
// timeout, non-2xx status, malformed JSON or no matches. The cause is logged.
// Callers that must tell "no matches" from "index unreachable" use
// [Client.FetchSearch] and [Client.FetchVersions] instead.
//
// # Limits
//
// Search returns the first 100 matches and version listings the first 98.
// There is no pagination, retry or caching.
package maven
