package service

import "errors"

// Error taxonomy. ErrValidation and ErrIndex reject an operation and
// leave all state unchanged; ErrLookup is expected and recoverable
// (show "no results", retry).
var (
	ErrValidation = errors.New("invalid input")
	ErrIndex      = errors.New("index out of range")
	ErrLookup     = errors.New("lookup failed")
)
