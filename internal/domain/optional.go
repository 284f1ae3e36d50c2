package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Optional records whether a JSON key was present in a request body and
// whether it carried a value. null and "" both count as an explicit clear.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	trimmed := bytes.TrimSpace(b)
	if bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte(`""`)) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(trimmed, &o.Value)
}

// Present reports whether the key carried a usable value.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

// Ptr returns the value as a pointer, nil when absent or cleared.
func (o Optional[T]) Ptr() *T {
	if !o.Present() {
		return nil
	}
	v := o.Value
	return &v
}

// FlexInt accepts a JSON number or a numeric string.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		*f = FlexInt(i)
		return nil
	}
	fl, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q", s)
	}
	*f = FlexInt(int(fl))
	return nil
}

// FlexFloat accepts a JSON number or a numeric string.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(strings.TrimSpace(string(b)), `"`))
	fl, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*f = FlexFloat(fl)
	return nil
}
