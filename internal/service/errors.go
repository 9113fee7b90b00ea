package service

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that the requested record does not exist.
var ErrNotFound = errors.New("service: record not found")

// ErrRejected signals bad credentials or an invalid token. It deliberately
// carries no detail about which part of the credentials was wrong.
var ErrRejected = errors.New("service: invalid credentials")

// ValidationError signals that a write was refused because its input was
// invalid. Address is set when the failure was an unresolvable address, so
// the API can echo it back.
type ValidationError struct {
	Msg     string
	Address string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func newGeocodeError(address string) *ValidationError {
	return &ValidationError{
		Msg:     fmt.Sprintf("Could not geocode address: %s. Please provide latitude and longitude manually.", address),
		Address: address,
	}
}
