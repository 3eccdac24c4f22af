package providers

import "errors"

var (
	// ErrChainExhausted indicates every provider in a chain failed.
	ErrChainExhausted = errors.New("all providers in chain failed")
	// ErrChainNotDefined indicates no chain exists for the requested
	// platform and operation.
	ErrChainNotDefined = errors.New("no provider chain defined")
	// ErrResolverUnavailable indicates the resolver is not configured.
	ErrResolverUnavailable = errors.New("video resolver unavailable")
)
