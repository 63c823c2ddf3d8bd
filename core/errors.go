/*
Package core holds definitions shared by all grimoire packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package core

import (
	"errors"
	"fmt"
)

// General error codes
const (
	NOERROR   int = 0
	EMISSING  int = 122 // block or resource does not exist
	EINVALID  int = 123 // validation failed
	EFROZEN   int = 124 // attempt to modify a read-only structure
	EINTERNAL int = 125 // internal error
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case EFROZEN:
		return "read-only"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type grimoireError struct {
	error
	code int
	msg  string
}

func (e grimoireError) Unwrap() error {
	return e.error
}

func (e grimoireError) Error() string {
	if e.msg == "" {
		return fmt.Sprintf("[%d] %v", e.code, e.error)
	}
	return fmt.Sprintf("[%d] %v: %s", e.code, e.error, e.msg)
}

func (e grimoireError) ErrorCode() int {
	return e.code
}

func (e grimoireError) UserMessage() string {
	return e.msg
}

var _ AppError = grimoireError{}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return grimoireError{
		error: errors.New(errorText(code)),
		code:  code,
		msg:   fmt.Sprintf(format, v...),
	}
}

// WrapError wraps err, adding an error code and a user message.
// If err is nil, an error carrying just the text for code is wrapped.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return grimoireError{
		error: err,
		code:  code,
		msg:   fmt.Sprintf(format, v...),
	}
}

// Code returns the status code associated with an error.
// If no status code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// Errors without a user message report the text for their code.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) && e.UserMessage() != "" {
		return e.UserMessage()
	}
	return errorText(Code(err))
}
