package errors

import "errors"

var (
	// ErrNotFound - error, which signifies that the requested binding or value was not found
	ErrNotFound = errors.New("not found")
	// ErrUnexpectedStatus - error, which signifies that the remote service answered with a non-2xx status
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrBodyTooLarge - error, which signifies that the remote service answered with an oversized body
	ErrBodyTooLarge = errors.New("body too large")
)
