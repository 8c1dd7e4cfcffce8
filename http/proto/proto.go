package proto

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/indigo-web/martian/http/status"
)

// HTTP11 is the version responses default to.
const HTTP11 = 1.1

// Parse extracts the numeric version out of the `HTTP/<float>` token. Only the part after
// the slash is validated.
func Parse(token string) (float64, error) {
	segments := strings.Split(token, "/")
	if len(segments) < 2 {
		return 0, fmt.Errorf("%w: %q", status.ErrInvalidVersion, token)
	}

	version, err := strconv.ParseFloat(segments[1], 64)
	if err != nil || math.IsNaN(version) || math.IsInf(version, 0) || version < 0 {
		return 0, fmt.Errorf("%w: %q", status.ErrInvalidVersion, token)
	}

	return version, nil
}

// String renders the version back into its token form, e.g. HTTP/1.1
func String(version float64) string {
	return "HTTP/" + strconv.FormatFloat(version, 'f', 1, 64)
}
