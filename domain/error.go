package domain

import (
	"errors"
	"fmt"
)

type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

// Is lets errors.Is match an Error against its code sentinel.
func (e *Error) Is(target error) bool {
	return e.code != nil && e.code == target
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrInvalidRange will throw if a distance bound is negative or min is greater than max
	ErrInvalidRange = errors.New("invalid distance range")
	// ErrInvalidFormat will throw if a coordinate or distance string can't be parsed
	ErrInvalidFormat = errors.New("invalid format")
)

var MessageInternalServerError string = "internal server error"
