package domain

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidGesture  = errors.New("invalid viewport gesture")
	ErrNoSelection     = errors.New("no component selected")
)
