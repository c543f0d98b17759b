package entity

import (
	"errors"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrStructuralLimit = errors.New("structural limit exceeded")
	ErrConfiguration   = errors.New("configuration error")
	ErrSigning         = errors.New("signing failed")
	ErrGateway         = errors.New("gateway error")
	ErrUnauthenticated = errors.New("unauthenticated")
)
