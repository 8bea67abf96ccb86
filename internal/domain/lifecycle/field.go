// Package lifecycle models partial updates of a service and the rules applied to
// them before persistence: status inference and payload sanitizing.
package lifecycle

import (
	"bytes"
	"encoding/json"
)

type fieldState uint8

const (
	stateUnset fieldState = iota
	stateSet
	stateCleared
)

// Field is one attribute of a partial update: Unset (not touched), SetTo(value)
// or Clear (explicit removal). The zero value is Unset.
//
// Decoding JSON maps an absent key to Unset, null to Clear and any other value
// to SetTo.
type Field[T any] struct {
	state fieldState
	value T
}

func Unset[T any]() Field[T] {
	return Field[T]{}
}

func SetTo[T any](v T) Field[T] {
	return Field[T]{state: stateSet, value: v}
}

func Clear[T any]() Field[T] {
	return Field[T]{state: stateCleared}
}

func (f Field[T]) IsUnset() bool { return f.state == stateUnset }
func (f Field[T]) IsSet() bool   { return f.state == stateSet }
func (f Field[T]) IsClear() bool { return f.state == stateCleared }

// Present reports whether the update mentions the field at all.
func (f Field[T]) Present() bool { return f.state != stateUnset }

// Value returns the set value; ok is false for Unset and Clear.
func (f Field[T]) Value() (T, bool) {
	return f.value, f.state == stateSet
}

// Or returns the set value or fallback.
func (f Field[T]) Or(fallback T) T {
	if f.state == stateSet {
		return f.value
	}
	return fallback
}

// Map converts the value of a set field, keeping Unset and Clear as they are.
func Map[A, B any](f Field[A], fn func(A) (B, error)) (Field[B], error) {
	switch f.state {
	case stateSet:
		v, err := fn(f.value)
		if err != nil {
			return Field[B]{}, err
		}
		return SetTo(v), nil
	case stateCleared:
		return Clear[B](), nil
	default:
		return Unset[B](), nil
	}
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*f = Clear[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = SetTo(v)
	return nil
}
