package router

import (
	"github.com/indigo-web/martian/http"
)

// Router is what the server hands parsed requests to. OnStart is called once, before the
// first request is served. OnRequest is called concurrently, so implementations must not
// mutate their state in it.
type Router interface {
	OnStart() error
	OnRequest(request http.Request) http.Response
}
