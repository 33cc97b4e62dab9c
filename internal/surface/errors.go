package surface

import (
	"errors"
	"fmt"
)

// Error kinds. Test with errors.Is.
var (
	ErrIO            = errors.New("io error")
	ErrImageDecode   = errors.New("image decode error")
	ErrUserCancelled = errors.New("cancelled by user")
)

// Error records the user action that failed and the file involved.
type Error struct {
	Op   string // "save", "load image", "drop image", ...
	Path string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	msg += ": " + e.Kind.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(op, path string, kind, err error) error {
	return &Error{Op: op, Path: path, Kind: kind, Err: err}
}

// Cancelled reports whether err only means the user backed out.
func Cancelled(err error) bool {
	return errors.Is(err, ErrUserCancelled)
}

// UserMessage is the text shown to the user for err.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrImageDecode):
		return fmt.Sprintf("Error uploading image: %v", err)
	case errors.Is(err, ErrIO):
		return fmt.Sprintf("Error saving canvas: %v", err)
	}
	return err.Error()
}
