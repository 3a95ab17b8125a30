// Package assess provides the shared mapping kit for assessment domains:
// defensive access to untyped context records, the section pipeline that
// isolates per-section mapping failures, injected ID generation, and JSON
// import/export of context records.
package assess

import (
	"strconv"
	"strings"
)

// Record is an untyped assessment context record as it arrives from legacy
// stores, free-text notes, or structured entry. No shape is guaranteed;
// every accessor is defensive and returns a zero value for anything absent
// or of the wrong type.
type Record map[string]interface{}

// AsRecord narrows an arbitrary value to a Record.
func AsRecord(v interface{}) (Record, bool) {
	switch m := v.(type) {
	case Record:
		return m, true
	case map[string]interface{}:
		return Record(m), true
	default:
		return nil, false
	}
}

// Section returns the nested record under key, or nil when the key is
// absent or not an object.
func (r Record) Section(key string) Record {
	if r == nil {
		return nil
	}
	sec, _ := AsRecord(r[key])
	return sec
}

// Has reports whether any of the given keys is present.
func (r Record) Has(keys ...string) bool {
	if r == nil {
		return false
	}
	for _, k := range keys {
		if _, ok := r[k]; ok {
			return true
		}
	}
	return false
}

// String returns the string value under the first of the given keys that
// holds one, coercing numbers. Missing or non-scalar values yield "".
func (r Record) String(keys ...string) string {
	if r == nil {
		return ""
	}
	for _, k := range keys {
		if s := Stringify(r[k]); s != "" {
			return s
		}
	}
	return ""
}

// Bool returns the boolean under the first of the given keys, treating the
// strings "true" and "yes" as true. Anything else is false.
func (r Record) Bool(keys ...string) bool {
	if r == nil {
		return false
	}
	for _, k := range keys {
		switch v := r[k].(type) {
		case bool:
			return v
		case string:
			s := strings.ToLower(strings.TrimSpace(v))
			if s == "true" || s == "yes" {
				return true
			}
		}
	}
	return false
}

// Int returns the integer under the first of the given keys, parsing
// numeric strings and truncating floats. Missing values yield def.
func (r Record) Int(def int, keys ...string) int {
	if r == nil {
		return def
	}
	for _, k := range keys {
		switch v := r[k].(type) {
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
	}
	return def
}

// Slice returns the sequence under key, or nil when absent or not a
// sequence.
func (r Record) Slice(key string) []interface{} {
	if r == nil {
		return nil
	}
	s, _ := r[key].([]interface{})
	return s
}

// StringList returns the value under key as a list of strings: a sequence
// is converted element-wise, a bare string is split on commas. Anything
// else yields an empty list.
func (r Record) StringList(key string) []string {
	if r == nil {
		return []string{}
	}
	switch v := r[key].(type) {
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := strings.TrimSpace(Stringify(item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		out := make([]string, 0, len(v))
		for _, s := range v {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		out := []string{}
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	default:
		return []string{}
	}
}

// Stringify coerces a scalar to its string form. Objects, sequences and
// nil yield "".
func Stringify(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		return strconv.FormatBool(s)
	case nil:
		return ""
	default:
		return ""
	}
}

// ContainsAny reports whether the lower-cased text contains any of the
// given substrings.
func ContainsAny(text string, subs ...string) bool {
	lower := strings.ToLower(text)
	for _, sub := range subs {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}

// SplitFragments splits free text on '.', ',' and ';' and returns the
// non-empty trimmed fragments.
func SplitFragments(text string) []string {
	return splitOn(text, func(r rune) bool {
		return r == '.' || r == ',' || r == ';'
	})
}

// SplitSentences splits free text on sentence boundaries.
func SplitSentences(text string) []string {
	return splitOn(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
}

func splitOn(text string, boundary func(rune) bool) []string {
	var out []string
	for _, part := range strings.FieldsFunc(text, boundary) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
