package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record is one immutable submission of a domain's fields. A new submission
// always creates a new record; stored records are never mutated.
type Record struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"timestamp"`
	Fields    map[string]any `json:"user_input"`
}

// NewRecord creates a record with a fresh ID and the current time.
func NewRecord(fields map[string]any) *Record {
	if fields == nil {
		fields = map[string]any{}
	}
	return &Record{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Fields:    fields,
	}
}

// Has reports whether the field is present and non-nil.
func (r *Record) Has(key string) bool {
	v, ok := r.Fields[key]
	return ok && v != nil
}

// Str returns the field as a trimmed string, or "" when absent or not a
// string. Absent optional fields read as neutral values, never panicking.
func (r *Record) Str(key string) string {
	if s, ok := r.Fields[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// Int returns the field as an int, tolerating JSON's float64 decoding and
// numeric strings. Absent or unparseable values read as 0.
func (r *Record) Int(key string) int {
	switch v := r.Fields[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return 0
}

// Float returns the field as a float64, tolerating ints and numeric strings.
func (r *Record) Float(key string) float64 {
	switch v := r.Fields[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return 0
}

// Bool returns the field as a bool. Absent values read as false.
func (r *Record) Bool(key string) bool {
	b, _ := r.Fields[key].(bool)
	return b
}

// BoolSet reports both the value and whether the field carried a bool at all,
// for rules that must distinguish "answered no" from "not answered".
func (r *Record) BoolSet(key string) (value, ok bool) {
	b, ok := r.Fields[key].(bool)
	return b, ok
}

// StrList returns the field as a list of strings, tolerating []any from JSON
// decoding. Absent values read as an empty list.
func (r *Record) StrList(key string) []string {
	switch v := r.Fields[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
