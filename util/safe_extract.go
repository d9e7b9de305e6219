package util

import "encoding/json"

// DecodeJSON decodes raw into generic values (maps, slices, float64, string, bool).
// Invalid or empty input yields (nil, false).
func DecodeJSON(raw []byte) (interface{}, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false
	}
	return v, true
}

// Dig walks v along path. String elements index objects, int elements index lists.
// Any mismatch (wrong container type, missing key, out-of-range index, JSON null)
// yields (nil, false) instead of failing.
func Dig(v interface{}, path ...interface{}) (interface{}, bool) {
	cur := v
	for _, step := range path {
		switch key := step.(type) {
		case string:
			m, ok := cur.(map[string]interface{})
			if !ok {
				return nil, false
			}
			cur, ok = m[key]
			if !ok {
				return nil, false
			}
		case int:
			l, ok := cur.([]interface{})
			if !ok || key < 0 || key >= len(l) {
				return nil, false
			}
			cur = l[key]
		default:
			return nil, false
		}
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

func StringAt(v interface{}, path ...interface{}) (string, bool) {
	x, ok := Dig(v, path...)
	if !ok {
		return "", false
	}
	s, ok := x.(string)
	return s, ok
}

func FloatAt(v interface{}, path ...interface{}) (float64, bool) {
	x, ok := Dig(v, path...)
	if !ok {
		return 0, false
	}
	f, ok := x.(float64)
	return f, ok
}

func ListAt(v interface{}, path ...interface{}) ([]interface{}, bool) {
	x, ok := Dig(v, path...)
	if !ok {
		return nil, false
	}
	l, ok := x.([]interface{})
	return l, ok
}

// StringOr returns the string at path, or def.
func StringOr(def string, v interface{}, path ...interface{}) string {
	if s, ok := StringAt(v, path...); ok {
		return s
	}
	return def
}

// FloatOr returns the number at path, or def.
func FloatOr(def float64, v interface{}, path ...interface{}) float64 {
	if f, ok := FloatAt(v, path...); ok {
		return f
	}
	return def
}

// StringPtrAt returns nil when the path does not hold a string.
func StringPtrAt(v interface{}, path ...interface{}) *string {
	if s, ok := StringAt(v, path...); ok {
		return &s
	}
	return nil
}

// FloatPtrAt returns nil when the path does not hold a number.
func FloatPtrAt(v interface{}, path ...interface{}) *float64 {
	if f, ok := FloatAt(v, path...); ok {
		return &f
	}
	return nil
}

// IntPtrAt returns nil when the path does not hold a whole number.
func IntPtrAt(v interface{}, path ...interface{}) *int {
	f, ok := FloatAt(v, path...)
	if !ok || f != float64(int(f)) {
		return nil
	}
	i := int(f)
	return &i
}
