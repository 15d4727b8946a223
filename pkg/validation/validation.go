// Package validation holds the field-scoped error type shared by the theme
// and preset schemas.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// ErrInvalid is matched by every validation failure via errors.Is.
var ErrInvalid = errors.New("validation failed")

// Error reports a single problem with one field of a document.
type Error struct {
	// Path is the dotted field path, e.g. "colors.accent" or "shortNotes[2]".
	Path string
	// Reason says what is wrong with the value.
	Reason string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// Is makes errors.Is(err, ErrInvalid) true for any *Error.
func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}

// Errorf builds an *Error for path.
func Errorf(path, format string, args ...any) *Error {
	return &Error{Path: path, Reason: fmt.Sprintf(format, args...)}
}

// Field joins path segments with dots, skipping empty segments.
func Field(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ".")
}

// Index returns path[i].
func Index(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

// Collector accumulates field errors while a document is checked.
// The zero value is ready to use.
type Collector struct {
	err error
}

// Add records a problem at path.
func (c *Collector) Add(path, format string, args ...any) {
	c.err = multierr.Append(c.err, Errorf(path, format, args...))
}

// Merge records every field error carried by err, re-rooted under prefix.
// An err without field errors is recorded as a single problem at prefix.
func (c *Collector) Merge(prefix string, err error) {
	if err == nil {
		return
	}
	fields := Fields(err)
	if len(fields) == 0 {
		c.err = multierr.Append(c.err, &Error{Path: prefix, Reason: err.Error()})
		return
	}
	for _, fe := range fields {
		c.err = multierr.Append(c.err, &Error{Path: Field(prefix, fe.Path), Reason: fe.Reason})
	}
}

// Err returns nil when nothing was recorded, otherwise the combined error.
func (c *Collector) Err() error {
	return c.err
}

// Fields returns the field errors contained in err, in the order they were
// recorded. It looks through fmt.Errorf wrapping and combined errors;
// anything that is not a field error is skipped.
func Fields(err error) []*Error {
	var out []*Error
	collect(err, &out)
	return out
}

func collect(err error, out *[]*Error) {
	switch e := err.(type) {
	case nil:
	case *Error:
		*out = append(*out, e)
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			collect(inner, out)
		}
	case interface{ Unwrap() error }:
		collect(e.Unwrap(), out)
	}
}

// HasPath reports whether err contains a field error at exactly path.
func HasPath(err error, path string) bool {
	for _, fe := range Fields(err) {
		if fe.Path == path {
			return true
		}
	}
	return false
}
