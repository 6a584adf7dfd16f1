package catalog

import "errors"

var (
	ErrNoUpstreamData = errors.New("no products found upstream")
	ErrUpstreamStatus = errors.New("unexpected upstream response status")
)
