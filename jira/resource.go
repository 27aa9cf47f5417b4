package jira

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Resource wraps a decoded JSON value and exposes its fields through explicit
// lookups instead of static structs. Objects map keys to nested Resources,
// arrays become ordered sequences and scalars pass through unchanged, so the
// wrapped tree is always a loss-free reflection of the server payload.
//
// Lookups on missing keys return an absent Resource rather than failing,
// which makes chained navigation safe:
//
//	r.Path("fields.assignee.displayName").Str() // "" if unassigned
type Resource struct {
	value  any
	exists bool
}

// absent is the shared placeholder for failed lookups.
var absent = &Resource{}

// Decode parses raw JSON into a Resource. Numbers are kept as json.Number so
// re-serializing reproduces the payload without float rounding.
func Decode(data []byte) (*Resource, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &DecodeError{Err: err, Body: data}
	}
	// a valid payload is exactly one JSON value
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, &DecodeError{Err: errors.New("trailing data after JSON value"), Body: data}
	}
	return &Resource{value: v, exists: true}, nil
}

// Wrap wraps an already-decoded JSON value.
func Wrap(v any) *Resource {
	return &Resource{value: v, exists: true}
}

// Exists reports whether the Resource refers to a present JSON value.
// Lookups on missing keys or out-of-range indices yield an absent Resource.
func (r *Resource) Exists() bool { return r != nil && r.exists }

// Value returns the raw decoded value (map[string]any, []any, json.Number,
// string, bool or nil).
func (r *Resource) Value() any {
	if !r.Exists() {
		return nil
	}
	return r.value
}

// Get looks up a key on a JSON object.
func (r *Resource) Get(key string) *Resource {
	if !r.Exists() {
		return absent
	}
	obj, ok := r.value.(map[string]any)
	if !ok {
		return absent
	}
	v, ok := obj[key]
	if !ok {
		return absent
	}
	return &Resource{value: v, exists: true}
}

// Path follows a dot-separated chain of object keys.
func (r *Resource) Path(path string) *Resource {
	cur := r
	for _, key := range strings.Split(path, ".") {
		cur = cur.Get(key)
	}
	return cur
}

// Index returns the i-th element of a JSON array.
func (r *Resource) Index(i int) *Resource {
	if !r.Exists() {
		return absent
	}
	arr, ok := r.value.([]any)
	if !ok || i < 0 || i >= len(arr) {
		return absent
	}
	return &Resource{value: arr[i], exists: true}
}

// Len returns the length of a JSON array, or 0 for anything else.
func (r *Resource) Len() int {
	if !r.Exists() {
		return 0
	}
	arr, ok := r.value.([]any)
	if !ok {
		return 0
	}
	return len(arr)
}

// Slice returns the elements of a JSON array in order. Non-arrays yield nil.
func (r *Resource) Slice() []*Resource {
	if !r.Exists() {
		return nil
	}
	arr, ok := r.value.([]any)
	if !ok {
		return nil
	}
	out := make([]*Resource, len(arr))
	for i, v := range arr {
		out[i] = &Resource{value: v, exists: true}
	}
	return out
}

// Keys returns the sorted keys of a JSON object.
func (r *Resource) Keys() []string {
	if !r.Exists() {
		return nil
	}
	obj, ok := r.value.(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Str returns the value as a string, or "" if it is not a string.
func (r *Resource) Str() string {
	if !r.Exists() {
		return ""
	}
	s, _ := r.value.(string)
	return s
}

// Int returns the value as an int64. Numeric strings are converted; anything
// else yields 0.
func (r *Resource) Int() int64 {
	if !r.Exists() {
		return 0
	}
	switch x := r.value.(type) {
	case json.Number:
		n, err := x.Int64()
		if err != nil {
			f, ferr := x.Float64()
			if ferr != nil {
				return 0
			}
			return int64(f)
		}
		return n
	case float64:
		return int64(x)
	case int:
		return int64(x)
	case int64:
		return x
	case string:
		n, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Float returns the value as a float64, or 0 if it is not numeric.
func (r *Resource) Float() float64 {
	if !r.Exists() {
		return 0
	}
	switch x := r.value.(type) {
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0
		}
		return f
	case float64:
		return x
	case int:
		return float64(x)
	case int64:
		return float64(x)
	default:
		return 0
	}
}

// Bool returns the value as a bool, or false if it is not a bool.
func (r *Resource) Bool() bool {
	if !r.Exists() {
		return false
	}
	b, _ := r.value.(bool)
	return b
}

// MarshalJSON re-serializes the wrapped value. Absent Resources encode as
// null.
func (r *Resource) MarshalJSON() ([]byte, error) {
	if !r.Exists() {
		return []byte("null"), nil
	}
	return json.Marshal(r.value)
}
