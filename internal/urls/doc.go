// Package urls centralizes every URL and route the client talks to.
//
// The remote items API is reached through a fixed HTTP contract. Keeping the
// route table in one place lets the client, the API documentation command and
// the test fake agree on the same paths.
//
// Usage:
//
//	import "github.com/muurk/itemctl/internal/urls"
//
//	resp, err := http.Get(base + urls.Items)
package urls
