// Package http serves a single request per connection: the request is read in full,
// parsed, handed to the router and the rendered response is written back, after which
// the connection is closed.
package http

import (
	"bytes"
	"errors"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/indigo-web/martian/http"
	"github.com/indigo-web/martian/http/parser"
	"github.com/indigo-web/martian/http/status"
	"github.com/indigo-web/martian/internal/render"
	"github.com/indigo-web/martian/router"
	"github.com/indigo-web/martian/settings"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

var headersTerminator = []byte("\r\n\r\n")

type Server struct {
	router   router.Router
	settings settings.Settings
}

func NewServer(r router.Router, s settings.Settings) *Server {
	return &Server{
		router:   r,
		settings: s,
	}
}

// Serve handles exactly one request and closes the connection.
func (s *Server) Serve(conn net.Conn) {
	defer func() {
		_ = conn.Close()
	}()

	raw, err := s.read(conn)
	if err != nil {
		if errors.Is(err, io.EOF) {
			// the client disconnected without sending anything
			return
		}

		s.settings.Logger.Printf("martian: %s: reading request: %s", conn.RemoteAddr(), err)
		s.write(conn, http.NewResponse().Error(err))
		return
	}

	s.write(conn, s.HandleRequest(uf.B2S(raw)))
}

// HandleRequest parses the raw request and dispatches it. Parse errors are converted
// into responses with the corresponding status code.
func (s *Server) HandleRequest(raw string) http.Response {
	request, err := parser.Parse(raw)
	if err != nil {
		return http.NewResponse().Error(err)
	}

	return s.router.OnRequest(request)
}

func (s *Server) write(conn net.Conn, response http.Response) {
	if err := conn.SetWriteDeadline(time.Now().Add(s.settings.Write.Timeout)); err != nil {
		s.settings.Logger.Printf("martian: %s: setting write deadline: %s", conn.RemoteAddr(), err)
		return
	}

	if _, err := conn.Write(render.Response(nil, response)); err != nil {
		s.settings.Logger.Printf("martian: %s: writing response: %s", conn.RemoteAddr(), err)
	}
}

// read reads until the headers section is terminated and as many body bytes as
// Content-Length announces are received. If the client stops sending earlier by
// closing its side of the connection, whatever was received is returned.
func (s *Server) read(conn net.Conn) ([]byte, error) {
	if err := conn.SetReadDeadline(time.Now().Add(s.settings.Read.Timeout)); err != nil {
		return nil, err
	}

	var (
		data  []byte
		total = -1
		buff  = make([]byte, s.settings.Read.BufferSize)
	)

	for {
		n, err := conn.Read(buff)
		data = append(data, buff[:n]...)

		if len(data) > s.settings.Read.MaxRequestSize {
			return nil, status.ErrTooLarge
		}

		if total == -1 {
			if end := bytes.Index(data, headersTerminator); end != -1 {
				length, lerr := contentLength(data[:end])
				if lerr != nil {
					return nil, lerr
				}

				if length > s.settings.Read.MaxRequestSize {
					return nil, status.ErrTooLarge
				}

				total = end + len(headersTerminator) + length
				if total > s.settings.Read.MaxRequestSize {
					return nil, status.ErrTooLarge
				}
			}
		}

		if total != -1 && len(data) >= total {
			return data, nil
		}

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			if len(data) == 0 {
				return nil, io.EOF
			}

			return data, nil
		case errors.Is(err, os.ErrDeadlineExceeded):
			return nil, status.ErrRequestTimeout
		default:
			return nil, err
		}
	}
}

// contentLength looks for the Content-Length header among the header lines. Its absence
// means there's no body to wait for.
func contentLength(head []byte) (int, error) {
	for _, line := range strings.Split(uf.B2S(head), "\r\n")[1:] {
		key, value, found := strings.Cut(line, ":")
		if !found || !strcomp.EqualFold(strings.TrimSpace(key), "content-length") {
			continue
		}

		length, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || length < 0 {
			return 0, status.ErrBadRequest
		}

		return length, nil
	}

	return 0, nil
}
