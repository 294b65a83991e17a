package types

import "errors"

// Domain specific errors surfaced to the HTTP layer.
var (
	ErrNotFound   = errors.New("requested item not found")
	ErrBadRequest = errors.New("bad request")
	ErrUpstream   = errors.New("upstream service failure")
)
