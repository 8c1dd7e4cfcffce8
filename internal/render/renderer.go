// Package render serializes responses into HTTP/1.x messages.
package render

import (
	"strconv"

	"github.com/indigo-web/martian/http"
	"github.com/indigo-web/martian/http/proto"
	"github.com/indigo-web/martian/http/status"
	"github.com/indigo-web/utils/strcomp"
)

const (
	sp   = " "
	crlf = "\r\n"
)

// Response appends the serialized response to the buffer. Content-Length is always computed
// from the body, overriding one set by the handler, and Connection: close is always added,
// as connections are never kept alive.
func Response(buff []byte, response http.Response) []byte {
	version := response.Version
	if version == 0 {
		version = proto.HTTP11
	}

	code := response.Code
	if !status.Known(code) {
		code = status.InternalServerError
	}

	buff = append(buff, proto.String(version)...)
	buff = append(buff, sp...)
	buff = strconv.AppendUint(buff, uint64(code), 10)
	buff = append(buff, sp...)
	buff = append(buff, string(status.Text(code))...)
	buff = append(buff, crlf...)

	if response.Headers != nil {
		for _, pair := range response.Headers.Expose() {
			if isReserved(pair.Key) {
				continue
			}

			buff = header(buff, pair.Key, pair.Value)
		}
	}

	buff = header(buff, "Content-Length", strconv.Itoa(len(response.Body)))
	buff = header(buff, "Connection", "close")
	buff = append(buff, crlf...)

	return append(buff, response.Body...)
}

func header(buff []byte, key, value string) []byte {
	buff = append(buff, key...)
	buff = append(buff, ": "...)
	buff = append(buff, value...)
	return append(buff, crlf...)
}

func isReserved(key string) bool {
	return strcomp.EqualFold(key, "content-length") || strcomp.EqualFold(key, "connection")
}
