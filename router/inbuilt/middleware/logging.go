package middleware

import (
	"log"

	"github.com/indigo-web/martian/http"
	"github.com/indigo-web/martian/router/inbuilt"
)

type Logger interface {
	Printf(fmt string, v ...any)
}

// LogRequests logs every request along with the response code. If no loggers are passed,
// log.Default() is used.
func LogRequests(loggers ...Logger) inbuilt.Middleware {
	if len(loggers) == 0 {
		loggers = append(loggers, log.Default())
	}

	return func(next inbuilt.Handler, request http.Request) http.Response {
		response := next.Serve(request)

		for _, logger := range loggers {
			logger.Printf("%s %s %d", request.Method, request.URI, response.Code)
		}

		return response
	}
}
