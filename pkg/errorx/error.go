package errorx

import "fmt"

type Code int

type Error struct {
	Code    Code
	Message string

	// Details carries optional structured information the client needs to
	// react to the error, for example the checkin task id of a
	// CheckinRequired error.
	Details any
}

func (e Error) Error() string {
	return e.Message
}

func New(code Code, format string, args ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func (e Error) WithDetails(details any) Error {
	e.Details = details
	return e
}
