package status

// HTTPError is an error carrying the status code a client must be answered with.
// All the errors are comparable, so errors.Is works even on wrapped values.
type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrMalformedRequest = NewError(BadRequest, "malformed request line")
	ErrUnknownMethod    = NewError(NotImplemented, "unknown request method")
	ErrInvalidVersion   = NewError(HTTPVersionNotSupported, "invalid protocol version")
	ErrMalformedHeader  = NewError(BadRequest, "malformed header line")

	ErrBadRequest          = NewError(BadRequest, "bad request")
	ErrNotFound            = NewError(NotFound, "not found")
	ErrRequestTimeout      = NewError(RequestTimeout, "request timeout")
	ErrTooLarge            = NewError(RequestEntityTooLarge, "request is too large")
	ErrUnsupportedMedia    = NewError(UnsupportedMediaType, "unsupported media type")
	ErrInternalServerError = NewError(InternalServerError, "internal server error")
)
