package http

import (
	"strings"

	"github.com/indigo-web/martian/http/method"
	"github.com/indigo-web/martian/http/mime"
	"github.com/indigo-web/martian/http/query"
	"github.com/indigo-web/martian/http/status"
	"github.com/indigo-web/martian/kv"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

type (
	Headers = *kv.Storage
	Params  = *kv.Storage
)

// Request represents a parsed HTTP request. It must be treated as immutable once parsed:
// handlers receive it by value, however Headers are shared among the copies.
type Request struct {
	// Method is one of the supported methods, never method.Unknown for a parsed request.
	Method method.Method
	// URI is kept exactly as it arrived, including the query.
	URI string
	// Version is the numeric part of the protocol token, e.g. 1.1 for HTTP/1.1
	Version float64
	// Headers are nil if the request has no header lines at all.
	Headers Headers
	// Body is an empty string if absent. A present but empty body is indistinguishable
	// from an absent one.
	Body string
}

// Params derives query parameters from the URI. They aren't cached, so every call parses
// the URI again. Returns nil if there are no parameters.
func (r Request) Params() Params {
	return query.Parse(r.URI)
}

// Path returns the URI without the query part.
func (r Request) Path() string {
	path, _, _ := strings.Cut(r.URI, "?")
	return path
}

// Header looks the header up case-insensitively.
func (r Request) Header(key string) (value string, found bool) {
	if r.Headers == nil {
		return "", false
	}

	return r.Headers.Lookup(key)
}

func (r Request) HasBody() bool {
	return len(r.Body) > 0
}

// JSON decodes the body into the model, which must be a pointer. A Content-Type other than
// application/json results in status.ErrUnsupportedMedia, an absent body in status.ErrBadRequest
func (r Request) JSON(model any) error {
	if contentType, found := r.Header("Content-Type"); found && !mime.Complies(mime.JSON, contentType) {
		return status.ErrUnsupportedMedia
	}

	if !r.HasBody() {
		return status.ErrBadRequest
	}

	return json.Unmarshal(uf.S2B(r.Body), model)
}
