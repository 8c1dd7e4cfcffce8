package settings

import (
	"log"
	"time"
)

// Logger is anything capable of formatted printing, e.g. *log.Logger
type Logger interface {
	Printf(format string, v ...any)
}

type (
	// Read limits how a request is read off the connection.
	Read struct {
		// BufferSize is the number of bytes read from the socket at once.
		BufferSize int
		// MaxRequestSize is the limit for the whole request, including the body. Requests
		// exceeding it are answered with 413 Request Entity Too Large.
		MaxRequestSize int
		// Timeout is the time the whole request must be read within.
		Timeout time.Duration
	}

	Write struct {
		// Timeout is the time a response must be written within.
		Timeout time.Duration
	}
)

type Settings struct {
	Read  Read
	Write Write
	// Logger receives connection-level errors. Defaults to log.Default()
	Logger Logger
}

func Default() Settings {
	return Settings{
		Read: Read{
			BufferSize:     4096,
			MaxRequestSize: 1 << 20,
			Timeout:        30 * time.Second,
		},
		Write: Write{
			Timeout: 30 * time.Second,
		},
		Logger: log.Default(),
	}
}

// Fill takes some settings and fills it with default values
// everywhere where it is not filled
func Fill(original Settings) (modified Settings) {
	defaultSettings := Default()

	original.Read.BufferSize = customOrDefault(original.Read.BufferSize, defaultSettings.Read.BufferSize)
	original.Read.MaxRequestSize = customOrDefault(
		original.Read.MaxRequestSize, defaultSettings.Read.MaxRequestSize,
	)
	original.Read.Timeout = customOrDefault(original.Read.Timeout, defaultSettings.Read.Timeout)
	original.Write.Timeout = customOrDefault(original.Write.Timeout, defaultSettings.Write.Timeout)

	if original.Logger == nil {
		original.Logger = defaultSettings.Logger
	}

	return original
}

func customOrDefault[T int | time.Duration](custom, defaultVal T) T {
	if custom == 0 {
		return defaultVal
	}

	return custom
}
