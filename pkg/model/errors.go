package model

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors matched with errors.Is against the typed errors below.
var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrConstraintViolation  = errors.New("constraint violation")
	ErrTypeMismatch         = errors.New("type mismatch")
	ErrInvalidRange         = errors.New("invalid range")
	ErrUnknownField         = errors.New("unknown field")
)

// MissingFieldError reports a required field absent at construction time.
type MissingFieldError struct {
	Entity string
	Path   string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("model: %s %s: %s", location(e.Path, e.Entity), e.Field, ErrMissingRequiredField)
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingRequiredField }

func (e *MissingFieldError) prefix(segment string) { e.Path = joinPath(segment, e.Path) }

// ConstraintError reports a value outside the allowed-value set of a field.
type ConstraintError struct {
	Entity  string
	Path    string
	Field   string
	Value   string
	Allowed []string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("model: %s %s: %s: %q not in [%s]",
		location(e.Path, e.Entity), e.Field, ErrConstraintViolation, e.Value, quoteAll(e.Allowed))
}

func (e *ConstraintError) Is(target error) bool { return target == ErrConstraintViolation }

func (e *ConstraintError) prefix(segment string) { e.Path = joinPath(segment, e.Path) }

// TypeMismatchError reports a value that cannot be coerced to the declared
// type of a field.
type TypeMismatchError struct {
	Entity   string
	Path     string
	Field    string
	Expected string
	Value    any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("model: %s %s: %s: expected %s, got %s",
		location(e.Path, e.Entity), e.Field, ErrTypeMismatch, e.Expected, describe(e.Value))
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

func (e *TypeMismatchError) prefix(segment string) { e.Path = joinPath(segment, e.Path) }

// RangeError reports a violated lower <= value <= upper declaration. Value is
// empty for plain min/max pairs.
type RangeError struct {
	Entity     string
	Path       string
	Lower      string
	Value      string
	Upper      string
	LowerValue int
	ValueValue int
	UpperValue int
}

func (e *RangeError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("model: %s %s: %s (%d) > %s (%d)",
			location(e.Path, e.Entity), ErrInvalidRange, e.Lower, e.LowerValue, e.Upper, e.UpperValue)
	}
	return fmt.Sprintf("model: %s %s: expected %s (%d) <= %s (%d) <= %s (%d)",
		location(e.Path, e.Entity), ErrInvalidRange, e.Lower, e.LowerValue, e.Value, e.ValueValue, e.Upper, e.UpperValue)
}

func (e *RangeError) Is(target error) bool { return target == ErrInvalidRange }

func (e *RangeError) prefix(segment string) { e.Path = joinPath(segment, e.Path) }

type pathed interface {
	prefix(segment string)
}

// prefixPath rewrites the location of every model error in err so nested
// failures report where they sit in the document.
func prefixPath(err error, segment string) error {
	if err == nil || segment == "" {
		return err
	}
	var visit func(error)
	visit = func(current error) {
		if p, ok := current.(pathed); ok {
			p.prefix(segment)
			return
		}
		if joined, ok := current.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				visit(inner)
			}
		}
	}
	visit(err)
	return err
}

func joinPath(parent, child string) string {
	switch {
	case parent == "":
		return child
	case child == "":
		return parent
	case strings.HasPrefix(child, "["):
		return parent + child
	default:
		return parent + "." + child
	}
}

func location(path, entity string) string {
	if path == "" {
		return entity
	}
	return path + " (" + entity + ")"
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, value := range values {
		quoted[i] = fmt.Sprintf("%q", value)
	}
	return strings.Join(quoted, " ")
}

func describe(value any) string {
	if value == nil {
		return "null"
	}
	text := fmt.Sprintf("%T(%v)", value, value)
	if len(text) > 64 {
		text = text[:61] + "..."
	}
	return text
}
