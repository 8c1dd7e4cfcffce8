package inbuilt

import (
	"fmt"

	"github.com/indigo-web/martian/http/method"
)

// Route binds the handler to the method and the URI. Registering the same binding twice
// is considered a programming error, therefore the method panics with ErrDuplicateBinding
// no matter whether the handler is the same. Registering on a sealed router panics as well.
func (r *Router) Route(m method.Method, uri string, handler Handler) *Router {
	if err := r.add(Binding{Method: m, URI: uri}, handler); err != nil {
		panic(err)
	}

	return r
}

func (r *Router) add(binding Binding, handler Handler) error {
	switch {
	case r.sealed:
		return fmt.Errorf("%w: cannot register %s", ErrSealed, binding)
	case binding.Method == method.Unknown || binding.Method > method.Count:
		return fmt.Errorf("%w: unsupported method in %s", ErrBadRoute, binding)
	case isNil(handler):
		return fmt.Errorf("%w: nil handler for %s", ErrBadRoute, binding)
	}

	if _, found := r.routes[binding]; found {
		return fmt.Errorf("%w: %s", ErrDuplicateBinding, binding)
	}

	r.routes[binding] = handler
	return nil
}

// Use adds middlewares. They are applied to every route, including the not found handler.
func (r *Router) Use(middlewares ...Middleware) *Router {
	if r.sealed {
		panic(fmt.Errorf("%w: cannot add middlewares", ErrSealed))
	}

	r.middlewares = append(r.middlewares, middlewares...)
	return r
}

// NotFound replaces the handler called by OnRequest for requests no route matches.
func (r *Router) NotFound(handler Handler) *Router {
	if r.sealed {
		panic(fmt.Errorf("%w: cannot replace not found handler", ErrSealed))
	}

	if isNil(handler) {
		panic(fmt.Errorf("%w: nil not found handler", ErrBadRoute))
	}

	r.notFound = handler
	return r
}

// Routes returns all the registered bindings in no particular order.
func (r *Router) Routes() []Binding {
	bindings := make([]Binding, 0, len(r.routes))
	for binding := range r.routes {
		bindings = append(bindings, binding)
	}

	return bindings
}

func isNil(handler Handler) bool {
	if handler == nil {
		return true
	}

	fn, ok := handler.(HandlerFunc)
	return ok && fn == nil
}
