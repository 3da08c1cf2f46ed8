package service

import "errors"

// Domain failure classes. Callers wrap these with context and handlers
// translate them with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
)
