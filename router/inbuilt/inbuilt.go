package inbuilt

import (
	"github.com/indigo-web/martian/http"
	"github.com/indigo-web/martian/http/status"
	"github.com/indigo-web/martian/router"
)

var _ router.Router = new(Router)

// Router matches requests by their method and URI exactly: no trailing slash normalization,
// no wildcards, and the query is a part of the URI, so /foo and /foo?x=1 are different routes.
//
// Routes are registered while the router is being built. OnStart seals it, after which the
// routes are only read, so serving from multiple goroutines is safe.
type Router struct {
	routes      map[Binding]Handler
	middlewares []Middleware
	notFound    Handler
	sealed      bool
}

// New constructs a new instance of inbuilt router
func New() *Router {
	return &Router{
		routes:   make(map[Binding]Handler),
		notFound: HandlerFunc(defaultNotFound),
	}
}

// OnStart seals the router. Any attempt to change it afterwards results in a panic.
func (r *Router) OnStart() error {
	r.Seal()
	return nil
}

// Seal forbids any further modifications of the router.
func (r *Router) Seal() {
	r.sealed = true
}

func (r *Router) Sealed() bool {
	return r.sealed
}

// Dispatch finds the handler bound to the request's method and URI and calls it. If there's
// none, false is returned along with a zero response and no handler is called.
func (r *Router) Dispatch(request http.Request) (response http.Response, found bool) {
	handler, found := r.routes[Binding{Method: request.Method, URI: request.URI}]
	if !found {
		return response, false
	}

	return r.chain(handler).Serve(request), true
}

// OnRequest dispatches the request, replying with the not found handler's response
// if there's no matching route.
func (r *Router) OnRequest(request http.Request) http.Response {
	if response, found := r.Dispatch(request); found {
		return response
	}

	return r.chain(r.notFound).Serve(request)
}

// chain wraps the handler into the registered middlewares. The middleware registered first
// is called first.
func (r *Router) chain(handler Handler) Handler {
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		handler = wrap(r.middlewares[i], handler)
	}

	return handler
}

func wrap(mw Middleware, next Handler) Handler {
	return HandlerFunc(func(request http.Request) http.Response {
		return mw(next, request)
	})
}

func defaultNotFound(request http.Request) http.Response {
	return http.Respond(request).Error(status.ErrNotFound)
}
