package http

import (
	"io"
	"log"
	"math"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/indigo-web/martian/http"
	"github.com/indigo-web/martian/http/status"
	"github.com/indigo-web/martian/router/inbuilt"
	"github.com/indigo-web/martian/settings"
	"github.com/stretchr/testify/require"
)

func getServer(t *testing.T, s settings.Settings) *Server {
	r := inbuilt.New().
		Get("/", http.Respond).
		Post("/echo", func(request http.Request) http.Response {
			return http.Respond(request).String(request.Body)
		})
	require.NoError(t, r.OnStart())

	s.Logger = log.New(io.Discard, "", 0)

	return NewServer(r, settings.Fill(s))
}

// roundTrip writes the request chunk by chunk and returns everything the server replied.
func roundTrip(t *testing.T, server *Server, chunks ...string) string {
	client, conn := net.Pipe()
	go server.Serve(conn)

	go func() {
		for _, chunk := range chunks {
			if _, err := client.Write([]byte(chunk)); err != nil {
				return
			}
		}
	}()

	require.NoError(t, client.SetReadDeadline(time.Now().Add(5*time.Second)))
	data, err := io.ReadAll(client)
	require.NoError(t, err)
	_ = client.Close()

	return string(data)
}

func TestServe(t *testing.T) {
	server := getServer(t, settings.Settings{})

	t.Run("simple", func(t *testing.T) {
		resp := roundTrip(t, server, "GET / HTTP/1.1\r\n\r\n")
		require.True(t, strings.HasPrefix(resp, "HTTP/1.1 200 OK\r\n"), resp)
	})

	t.Run("version is mirrored", func(t *testing.T) {
		resp := roundTrip(t, server, "GET / HTTP/1.0\r\n\r\n")
		require.True(t, strings.HasPrefix(resp, "HTTP/1.0 200 OK\r\n"), resp)
	})

	t.Run("body split among writes", func(t *testing.T) {
		resp := roundTrip(t, server,
			"POST /echo HTTP/1.1\r\nContent-Length: 13\r\n",
			"\r\nHello, ",
			"World!",
		)
		require.True(t, strings.HasPrefix(resp, "HTTP/1.1 200 OK\r\n"), resp)
		require.True(t, strings.HasSuffix(resp, "\r\n\r\nHello, World!"), resp)
	})

	t.Run("not found", func(t *testing.T) {
		resp := roundTrip(t, server, "POST /unregistered HTTP/1.1\r\n\r\n")
		require.True(t, strings.HasPrefix(resp, "HTTP/1.1 404 Not Found\r\n"), resp)
	})

	t.Run("unknown method", func(t *testing.T) {
		resp := roundTrip(t, server, "PUT / HTTP/1.1\r\n\r\n")
		require.True(t, strings.HasPrefix(resp, "HTTP/1.1 501 Not Implemented\r\n"), resp)
	})

	t.Run("bad content length", func(t *testing.T) {
		resp := roundTrip(t, server, "POST /echo HTTP/1.1\r\nContent-Length: many\r\n\r\n")
		require.True(t, strings.HasPrefix(resp, "HTTP/1.1 400 Bad Request\r\n"), resp)
	})
}

func TestLimits(t *testing.T) {
	t.Run("too large", func(t *testing.T) {
		server := getServer(t, settings.Settings{
			Read: settings.Read{BufferSize: 16, MaxRequestSize: 64},
		})

		resp := roundTrip(t, server, "POST /echo HTTP/1.1\r\nContent-Length: 1000\r\n\r\n")
		require.True(t, strings.HasPrefix(resp, "HTTP/1.1 413 Request Entity Too Large\r\n"), resp)
	})

	t.Run("content length close to int limit", func(t *testing.T) {
		server := getServer(t, settings.Settings{})

		resp := roundTrip(t, server,
			"POST /echo HTTP/1.1\r\nContent-Length: "+strconv.Itoa(math.MaxInt-10)+"\r\n\r\nhi",
		)
		require.True(t, strings.HasPrefix(resp, "HTTP/1.1 413 Request Entity Too Large\r\n"), resp)
	})

	t.Run("timeout", func(t *testing.T) {
		server := getServer(t, settings.Settings{
			Read: settings.Read{Timeout: 50 * time.Millisecond},
		})

		resp := roundTrip(t, server, "GET / HTTP/1.1\r\n")
		require.True(t, strings.HasPrefix(resp, "HTTP/1.1 408 Request Timeout\r\n"), resp)
	})
}

func TestHandleRequest(t *testing.T) {
	server := getServer(t, settings.Settings{})

	for _, tc := range []struct {
		Raw  string
		Code status.Code
	}{
		{"GET / HTTP/1.1\r\n\r\n", status.OK},
		{"get / HTTP/1.1\r\n\r\n", status.OK},
		{"GET /\r\n\r\n", status.BadRequest},
		{"do / HTTP/1.1\r\n\r\n", status.NotImplemented},
		{"GET / HTTP/G\r\n\r\n", status.HTTPVersionNotSupported},
		{"GET / HTTP/1.1\r\nHost localhost\r\n\r\n", status.BadRequest},
		{"GET /missing HTTP/1.1\r\n\r\n", status.NotFound},
	} {
		require.Equal(t, tc.Code, server.HandleRequest(tc.Raw).Code, tc.Raw)
	}
}
