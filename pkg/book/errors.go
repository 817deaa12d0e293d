package book

import "errors"

// Errors
var (
	ErrDuplicateOrder  = errors.New("duplicate order id")
	ErrInvalidSide     = errors.New("invalid side")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidArgument = errors.New("invalid argument")
)
