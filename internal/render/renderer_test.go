package render

import (
	"testing"

	"github.com/indigo-web/martian/http"
	"github.com/indigo-web/martian/http/status"
	"github.com/stretchr/testify/require"
)

func TestResponse(t *testing.T) {
	t.Run("no body", func(t *testing.T) {
		data := Response(nil, http.NewResponse())
		require.Equal(t, "HTTP/1.1 200 OK\r\nContent-Length: 0\r\nConnection: close\r\n\r\n", string(data))
	})

	t.Run("body and headers", func(t *testing.T) {
		response := http.NewResponse().
			WithCode(status.Created).
			WithHeader("Content-Type", "text/plain").
			WithHeader("content-length", "100").
			String("Hello, World!")

		data := Response(make([]byte, 0, 128), response)
		require.Equal(t,
			"HTTP/1.1 201 Created\r\nContent-Type: text/plain\r\nContent-Length: 13\r\nConnection: close\r\n\r\nHello, World!",
			string(data),
		)
	})

	t.Run("version", func(t *testing.T) {
		response := http.Respond(http.Request{Version: 1.0}).WithCode(status.NotFound)
		data := Response(nil, response)
		require.Equal(t, "HTTP/1.0 404 Not Found\r\nContent-Length: 0\r\nConnection: close\r\n\r\n", string(data))
	})

	t.Run("zero value", func(t *testing.T) {
		data := Response(nil, http.Response{})
		require.Equal(t,
			"HTTP/1.1 500 Internal Server Error\r\nContent-Length: 0\r\nConnection: close\r\n\r\n",
			string(data),
		)
	})
}
