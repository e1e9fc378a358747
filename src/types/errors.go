package types

import "errors"

// Domain errors. Handlers match these with errors.Is and map them to HTTP
// statuses; everything else is an internal failure.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrGameMissing        = errors.New("no game open")
	ErrEntropyUnavailable = errors.New("entropy unavailable")
)
