package model

import "errors"

// Common errors used across the application
var (
	// Player state errors
	ErrPlayerStateNotFound = errors.New("player state not found")
	ErrInvalidPlayerID     = errors.New("invalid player id")

	// Plugin errors
	ErrBorderServiceMissing = errors.New("world border service not available")
)
