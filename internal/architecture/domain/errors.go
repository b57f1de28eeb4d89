package domain

import "errors"

var (
	ErrComponentNotFound = errors.New("component not found")
	ErrPhaseNotFound     = errors.New("rollout phase not found")
	ErrInvalidCatalog    = errors.New("invalid catalog")
)
