package inbuilt

import (
	"github.com/indigo-web/martian/http"
	"github.com/indigo-web/martian/http/method"
)

// Handler serves a request. Implementations may carry their own dependencies.
type Handler interface {
	Serve(request http.Request) http.Response
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(request http.Request) http.Response

func (h HandlerFunc) Serve(request http.Request) http.Response {
	return h(request)
}

// Middleware wraps a handler. The next handler must be called explicitly in order to
// continue the chain.
type Middleware func(next Handler, request http.Request) http.Response

// Binding identifies a route. Both the method and the URI are matched exactly.
type Binding struct {
	Method method.Method
	URI    string
}

func (b Binding) String() string {
	return b.Method.String() + " " + b.URI
}
