package method

import (
	"github.com/indigo-web/utils/strcomp"

	"github.com/indigo-web/martian/http/status"
)

type Method uint8

const (
	Unknown Method = iota
	GET
	POST
	DELETE
	OPTIONS

	// Count is the last one enum, so contains the greatest integer value of all the
	// methods. So real number of methods is lower by 1
	Count = iota - 1
)

// List contains all the supported HTTP methods. They are sorted by their integer value, however
// Unknown method is not included. So in order to index the List, you must subtract 1 first.
var List = []Method{GET, POST, DELETE, OPTIONS}

// Parse matches the token against known methods case-insensitively. Unrecognized tokens
// result in status.ErrUnknownMethod, Unknown is never returned along with a nil error.
func Parse(str string) (Method, error) {
	switch len(str) {
	case 3:
		if strcomp.EqualFold(str, "GET") {
			return GET, nil
		}
	case 4:
		if strcomp.EqualFold(str, "POST") {
			return POST, nil
		}
	case 6:
		if strcomp.EqualFold(str, "DELETE") {
			return DELETE, nil
		}
	case 7:
		if strcomp.EqualFold(str, "OPTIONS") {
			return OPTIONS, nil
		}
	}

	return Unknown, status.ErrUnknownMethod
}

func (m Method) String() string {
	switch m {
	case GET:
		return "GET"
	case POST:
		return "POST"
	case DELETE:
		return "DELETE"
	case OPTIONS:
		return "OPTIONS"
	default:
		return "UNKNOWN"
	}
}
