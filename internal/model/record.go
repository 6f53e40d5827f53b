package model

import (
	"fmt"
	"strconv"
)

// Record is a flat backend record. Every managed entity carries an "id"
// plus audit fields (is_active, is_deleted, created_at, updated_at,
// deleted_at) and per-locale text fields (*_uz, *_ru, *_en, *_arab).
// Soft-delete semantics are owned by the backend; the dashboard never
// filters on them.
type Record map[string]any

// ID returns the record's identifier, or "" when absent.
func (r Record) ID() string {
	return r.Str("id")
}

// Str returns the value at key rendered as a string. Missing keys and
// explicit nulls return "".
func (r Record) Str(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		// JSON numbers decode as float64; render integers without the
		// trailing ".0".
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Bool returns the value at key as a bool, treating missing keys as false.
func (r Record) Bool(key string) bool {
	v, ok := r[key].(bool)
	return ok && v
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
