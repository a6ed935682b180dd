// Package items provides an HTTP client for the items REST API.
//
// The API exposes a greeting route and CRUD routes over named items:
//
//	GET    /hii          plain-text greeting
//	GET    /items        JSON array of {id, name, description}
//	POST   /items        create from {name, description}
//	GET    /items/{id}   single item
//	PUT    /items/{id}   replace name and description
//	DELETE /items/{id}   remove
//
// All routes live under an API base. For a page origin whose host is
// "localhost" the base is http://localhost:5000/api; any other origin uses
// <origin>/api.
//
// # Usage Example
//
//	client, err := items.NewClient("http://localhost:3000")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	list, err := client.ListItems(ctx)
//	if err != nil {
//	    fmt.Println(items.GetShortErrorMessage(err))
//	    fmt.Println(items.GetTroubleshootingHint(err))
//	    return
//	}
//
// # Error Handling
//
// Every failure is an *APIError. Any non-2xx response is an ErrTypeHTTP error
// whose message is "HTTP error! status: <code>". Transport failures are
// classified into timeout, connection refused, DNS and general network errors.
// Validation errors are produced before any request is sent.
//
// Requests are attempted exactly once. There is no retry and no cache.
package items
