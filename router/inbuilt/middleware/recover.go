package middleware

import (
	"github.com/indigo-web/martian/http"
	"github.com/indigo-web/martian/http/status"
	"github.com/indigo-web/martian/router/inbuilt"
)

// Recover is a basic middleware that catches any panics, and returns 500 Internal Server Error
// instead. Whatever the handler managed to build is discarded.
func Recover(next inbuilt.Handler, request http.Request) (response http.Response) {
	defer func() {
		if r := recover(); r != nil {
			response = http.Respond(request).Error(status.ErrInternalServerError)
		}
	}()

	return next.Serve(request)
}
