// Package parser turns a raw HTTP/1.x request into an http.Request.
//
// The request must be read in full before being passed, as the parser doesn't support
// streaming. Neither Content-Length nor Transfer-Encoding is taken into account: the body
// is everything after the blank line terminating the headers section.
package parser

import (
	"fmt"
	"strings"

	"github.com/indigo-web/martian/http"
	"github.com/indigo-web/martian/http/method"
	"github.com/indigo-web/martian/http/proto"
	"github.com/indigo-web/martian/http/status"
	"github.com/indigo-web/martian/kv"
)

const (
	crlf            = "\r\n"
	headerSeparator = ": "
)

// Parse builds a request out of the raw data. Returned errors always wrap one of
// status.ErrMalformedRequest, status.ErrUnknownMethod, status.ErrInvalidVersion or
// status.ErrMalformedHeader.
func Parse(raw string) (request http.Request, err error) {
	lines := strings.Split(raw, crlf)

	request.Method, request.URI, request.Version, err = parseRequestLine(lines[0])
	if err != nil {
		return http.Request{}, err
	}

	request.Headers, err = parseHeaders(lines[1:])
	if err != nil {
		return http.Request{}, err
	}

	request.Body = findBody(lines)

	return request, nil
}

func parseRequestLine(line string) (m method.Method, uri string, version float64, err error) {
	tokens := strings.Split(line, " ")
	if len(tokens) != 3 {
		return m, uri, version, fmt.Errorf("%w: %q", status.ErrMalformedRequest, line)
	}

	if m, err = method.Parse(tokens[0]); err != nil {
		return m, uri, version, fmt.Errorf("%w: %q", err, tokens[0])
	}

	if version, err = proto.Parse(tokens[2]); err != nil {
		return m, uri, version, err
	}

	return m, tokens[1], version, nil
}

// parseHeaders consumes lines until the first empty one. Nil is returned if there
// were no header lines at all.
func parseHeaders(lines []string) (http.Headers, error) {
	var headers http.Headers

	for _, line := range lines {
		if len(line) == 0 {
			break
		}

		key, value, found := strings.Cut(line, headerSeparator)
		if !found {
			return nil, fmt.Errorf("%w: %q", status.ErrMalformedHeader, line)
		}

		if headers == nil {
			headers = kv.New()
		}

		headers.Set(key, value)
	}

	return headers, nil
}

// findBody looks for the first empty line directly followed by a non-empty one. The body
// then starts at the non-empty line and lasts until the end of the data.
func findBody(lines []string) string {
	for i := 0; i < len(lines)-1; i++ {
		if len(lines[i]) == 0 && len(lines[i+1]) > 0 {
			return strings.Join(lines[i+1:], crlf)
		}
	}

	return ""
}
