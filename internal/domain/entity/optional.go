package entity

import (
	"encoding/json"
)

// Optional is a field of a partial update. It tells a key that is absent from the
// payload (Set is false) apart from an explicit null (Set is true, Value is nil).
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns an Optional that clears the stored value.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// IsNull reports whether the payload carried an explicit null.
func (o Optional[T]) IsNull() bool {
	return o.Set && o.Value == nil
}

// Apply overwrites *dst when the key was present, clearing it on null.
func (o Optional[T]) Apply(dst **T) {
	if o.Set {
		*dst = o.Value
	}
}

// Any returns the held value, or nil when unset or null.
func (o Optional[T]) Any() any {
	if o.Value == nil {
		return nil
	}

	return *o.Value
}

// UnmarshalJSON is only invoked for keys present in the payload, null included.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil

		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v

	return nil
}
