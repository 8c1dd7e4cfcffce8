package inbuilt

import (
	"github.com/indigo-web/martian/http/method"
)

/*
This file is responsible for methods predicates - shortcuts for Route method
with already set method taken from name of the method
*/

func (r *Router) Get(uri string, handler HandlerFunc) *Router {
	return r.Route(method.GET, uri, handler)
}

func (r *Router) Post(uri string, handler HandlerFunc) *Router {
	return r.Route(method.POST, uri, handler)
}

func (r *Router) Delete(uri string, handler HandlerFunc) *Router {
	return r.Route(method.DELETE, uri, handler)
}

func (r *Router) Options(uri string, handler HandlerFunc) *Router {
	return r.Route(method.OPTIONS, uri, handler)
}

// Binder registers multiple URIs under the same method.
type Binder struct {
	router *Router
	method method.Method
}

// Bind returns a binder for the method, so routes may be registered in a chain:
//
//	r.Bind(method.GET).
//		To("/", index).
//		To("/about", about)
func (r *Router) Bind(m method.Method) Binder {
	return Binder{router: r, method: m}
}

// To registers the handler by the URI. It panics the same way Router.Route does.
func (b Binder) To(uri string, handler Handler) Binder {
	b.router.Route(b.method, uri, handler)
	return b
}
