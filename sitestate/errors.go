package sitestate

import "errors"

// ErrInvalidProbability indicates a probability outside the closed interval
// [0,1] (or NaN). Wrapped with the calling constructor's name.
// Usage: if errors.Is(err, ErrInvalidProbability) { /* reject p */ }.
var ErrInvalidProbability = errors.New("sitestate: probability out of range")
