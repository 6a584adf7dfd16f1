package order

import "errors"

var (
	ErrUnauthenticated = errors.New("caller is not authenticated")
	ErrMissingEmail    = errors.New("email parameter required")
	ErrUpstreamStatus  = errors.New("unexpected admin API response status")
)
