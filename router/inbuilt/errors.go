package inbuilt

import "errors"

var (
	// ErrDuplicateBinding is the error the router panics with when a route is registered
	// twice.
	ErrDuplicateBinding = errors.New("route already registered")
	ErrSealed           = errors.New("router is sealed")
	ErrBadRoute         = errors.New("bad route")
)
