package http

import (
	"errors"

	"github.com/indigo-web/martian/http/mime"
	"github.com/indigo-web/martian/http/proto"
	"github.com/indigo-web/martian/http/status"
	"github.com/indigo-web/martian/kv"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

// Response is what handlers produce. Its wire representation is up to the transport.
type Response struct {
	Version float64
	Code    status.Code
	// Headers are nil unless set by Header.
	Headers Headers
	Body    []byte
}

// NewResponse returns a response to HTTP/1.1 with status code set to 200 OK.
func NewResponse() Response {
	return Response{
		Version: proto.HTTP11,
		Code:    status.OK,
	}
}

// Respond returns a 200 OK response to the request, replying with the same protocol version.
func Respond(request Request) Response {
	resp := NewResponse()
	if request.Version != 0 {
		resp.Version = request.Version
	}

	return resp
}

// WithCode sets the status code. Codes outside the supported set are replaced with
// status.InternalServerError
func (r Response) WithCode(code status.Code) Response {
	if !status.Known(code) {
		code = status.InternalServerError
	}

	r.Code = code
	return r
}

// WithHeader sets the header value. Headers are copied on every call, so responses derived
// from the same one never affect each other.
func (r Response) WithHeader(key, value string) Response {
	if r.Headers == nil {
		r.Headers = kv.NewPrealloc(1)
	} else {
		r.Headers = r.Headers.Clone()
	}

	r.Headers.Set(key, value)
	return r
}

// String sets the response's body to the passed string
func (r Response) String(body string) Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING.
func (r Response) Bytes(body []byte) Response {
	r.Body = body
	return r
}

// TryJSON serializes the model into the body and sets the corresponding Content-Type.
func (r Response) TryJSON(model any) (Response, error) {
	body, err := json.Marshal(model)
	if err != nil {
		return r, err
	}

	return r.WithHeader("Content-Type", mime.JSON).Bytes(body), nil
}

// JSON does the same as TryJSON does, except returned error is being implicitly wrapped
// by Error
func (r Response) JSON(model any) Response {
	resp, err := r.TryJSON(model)
	if err != nil {
		return r.Error(err)
	}

	return resp
}

// Error converts the error into the response. Instances of status.HTTPError (wrapped ones
// included) set the code and the body to their message, any other error results in
// 500 Internal Server Error. Nil error changes nothing.
func (r Response) Error(err error) Response {
	if err == nil {
		return r
	}

	var httpErr status.HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = status.ErrInternalServerError.(status.HTTPError)
	}

	return r.
		WithCode(httpErr.Code).
		WithHeader("Content-Type", mime.Plain).
		String(httpErr.Message)
}
