package cart

import "errors"

var (
	// -- Validation & Input --
	ErrMissingFields   = errors.New("missing required cart fields")
	ErrInvalidQuantity = errors.New("invalid cart quantity")

	// -- Resource State --
	ErrLineNotFound = errors.New("cart line not found")
)
