package middleware

import (
	"fmt"
	"testing"

	"github.com/indigo-web/martian/http"
	"github.com/indigo-web/martian/http/method"
	"github.com/indigo-web/martian/http/status"
	"github.com/indigo-web/martian/router/inbuilt"
	"github.com/stretchr/testify/require"
)

type logger struct {
	lines []string
}

func (l *logger) Printf(format string, v ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func TestLogRequests(t *testing.T) {
	l := new(logger)
	r := inbuilt.New().
		Use(LogRequests(l)).
		Get("/", http.Respond)
	require.NoError(t, r.OnStart())

	r.OnRequest(http.Request{Method: method.GET, URI: "/", Version: 1.1})
	r.OnRequest(http.Request{Method: method.POST, URI: "/missing", Version: 1.1})

	require.Equal(t, []string{"GET / 200", "POST /missing 404"}, l.lines)
}

func TestRecover(t *testing.T) {
	r := inbuilt.New().
		Use(Recover).
		Get("/panic", func(http.Request) http.Response {
			panic("oops")
		})
	require.NoError(t, r.OnStart())

	var resp http.Response
	require.NotPanics(t, func() {
		resp = r.OnRequest(http.Request{Method: method.GET, URI: "/panic", Version: 1.0})
	})
	require.Equal(t, status.InternalServerError, resp.Code)
	require.Equal(t, 1.0, resp.Version)
}
