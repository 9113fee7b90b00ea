package models

import "encoding/json"

// Optional distinguishes the three states a JSON field can be in: absent from
// the payload, explicitly null, or set to a value. encoding/json only invokes
// UnmarshalJSON for keys present in the payload, so Set stays false for
// absent fields.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// NewOptional returns a set, non-null Optional holding v.
func NewOptional[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// Null returns a set Optional holding an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
