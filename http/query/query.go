// Package query derives URI parameters out of a raw request URI.
package query

import (
	"strings"

	"github.com/indigo-web/martian/kv"
)

// Parse extracts parameters from the uri. Everything between the first and the second
// question mark is treated as a query. Pairs are separated by ampersands, key and value
// by the first equality sign; pieces lacking it are skipped. Later duplicates override
// earlier ones. When no parameters were found, nil is returned instead of an empty storage.
func Parse(uri string) *kv.Storage {
	segments := strings.Split(uri, "?")
	if len(segments) < 2 {
		return nil
	}

	pieces := strings.Split(segments[1], "&")
	params := kv.NewPrealloc(len(pieces))
	for _, piece := range pieces {
		key, value, found := strings.Cut(piece, "=")
		if !found {
			continue
		}

		params.Set(key, value)
	}

	if params.Empty() {
		return nil
	}

	return params
}
