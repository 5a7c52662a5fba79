package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidRoute        = errors.New("invalid route: source equals destination")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrRouteNotRecommended = errors.New("route is not in recommended state")
	ErrInvalidSeed         = errors.New("invalid seed data")
)
