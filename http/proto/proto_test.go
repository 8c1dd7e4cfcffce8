package proto

import (
	"testing"

	"github.com/indigo-web/martian/http/status"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		for token, want := range map[string]float64{
			"HTTP/1.1": 1.1,
			"HTTP/1.0": 1.0,
			"HTTP/2":   2,
			"HTTP/0.9": 0.9,
		} {
			version, err := Parse(token)
			require.NoError(t, err, token)
			require.Equal(t, want, version, token)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, token := range []string{"HTTP/G", "HTTP-1.1", "HTTP/", "HTTP/NaN", "HTTP/Inf", "HTTP/-1.1", ""} {
			_, err := Parse(token)
			require.ErrorIs(t, err, status.ErrInvalidVersion, token)
		}
	})
}

func TestString(t *testing.T) {
	require.Equal(t, "HTTP/1.1", String(HTTP11))
	require.Equal(t, "HTTP/1.0", String(1))
}
