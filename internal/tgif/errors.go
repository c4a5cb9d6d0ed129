package tgif

import "fmt"

// Encoder error codes, matching tegif_lib.h's E_TGIF_ERR_* constants.
const (
	ErrSucceeded    = 0
	ErrOpenFailed   = 1
	ErrWriteFailed  = 2
	ErrHasScrnDscr  = 3
	ErrHasImagDscr  = 4
	ErrNoColorMap   = 5
	ErrDataTooBig   = 6
	ErrNotEnoughMem = 7
	ErrDiskIsFull   = 8
	ErrCloseFailed  = 9
	ErrNotWriteable = 10
)

// Decoder error codes, matching tdgif_lib.h's D_TGIF_ERR_* constants.
const (
	ErrMaxSz           = 20
	ErrZeroWH          = 21
	ErrTooBig          = 22
	ErrDecNotEnoughMem = 23
	ErrImageDefect     = 24
)

// Error is a TGIF codec error carrying the numeric code the reference
// implementation surfaces through TGifErrorCode(), so callers bridging to
// that ABI can recover it without parsing Error().
type Error struct {
	Code int
	msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("tgif: %s (code %d)", e.msg, e.Code)
}

func newError(code int, msg string) *Error {
	return &Error{Code: code, msg: msg}
}

// CodeOf extracts the numeric error code from err, or 0 if err is nil or
// not a *Error.
func CodeOf(err error) int {
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return 0
}
