package menu

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
)

// primitiveOf maps a reflect type onto the menu's primitive set. Named types
// classify by their underlying kind.
func primitiveOf(t reflect.Type) (PrimitiveType, bool) {
	switch t.Kind() {
	case reflect.Bool:
		return Bool, true
	case reflect.Int:
		return Int, true
	case reflect.Int8:
		return Int8, true
	case reflect.Int16:
		return Int16, true
	case reflect.Int32:
		return Int32, true
	case reflect.Int64:
		return Int64, true
	case reflect.Uint:
		return Uint, true
	case reflect.Uint8:
		return Uint8, true
	case reflect.Uint16:
		return Uint16, true
	case reflect.Uint32:
		return Uint32, true
	case reflect.Uint64:
		return Uint64, true
	case reflect.Float32:
		return Float32, true
	case reflect.Float64:
		return Float64, true
	case reflect.String:
		return String, true
	}
	return 0, false
}

// bits returns the strconv bit size for numeric primitives; 0 means the
// platform int/uint width.
func (p PrimitiveType) bits() int {
	switch p {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32, Float32:
		return 32
	case Int64, Uint64, Float64:
		return 64
	}
	return 0
}

// formatPrimitive renders v canonically: parsing the result and formatting
// again yields the same string.
func formatPrimitive(p PrimitiveType, v reflect.Value) string {
	switch p {
	case Bool:
		return strconv.FormatBool(v.Bool())
	case Int, Int8, Int16, Int32, Int64:
		return strconv.FormatInt(v.Int(), 10)
	case Uint, Uint8, Uint16, Uint32, Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	}
	return v.String()
}

// parsePrimitive parses text per p and stores the result in v. On failure v
// is untouched and the error is a *ParseError.
func parsePrimitive(p PrimitiveType, v reflect.Value, text string) error {
	switch p {
	case Bool:
		b, err := parseBool(text)
		if err != nil {
			return parseErr(p, text, err)
		}
		v.SetBool(b)
	case Int, Int8, Int16, Int32, Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, p.bits())
		if err != nil {
			return parseErr(p, text, err)
		}
		v.SetInt(n)
	case Uint, Uint8, Uint16, Uint32, Uint64:
		n, err := strconv.ParseUint(strings.TrimSpace(text), 10, p.bits())
		if err != nil {
			return parseErr(p, text, err)
		}
		v.SetUint(n)
	case Float32, Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), p.bits())
		if err != nil {
			return parseErr(p, text, err)
		}
		v.SetFloat(f)
	default:
		v.SetString(text)
	}
	return nil
}

// parseBool takes the strconv spellings plus the yes/no and on/off forms
// people type into config editors.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "yes", "y", "on", "1":
		return true, nil
	case "false", "f", "no", "n", "off", "0":
		return false, nil
	}
	return false, strconv.ErrSyntax
}

// parseErr folds a strconv failure into a ParseError, keeping the range vs.
// syntax distinction.
func parseErr(p PrimitiveType, input string, err error) *ParseError {
	kind := ParseMalformed
	if errors.Is(err, strconv.ErrRange) {
		kind = ParseOutOfRange
	}
	return &ParseError{Kind: kind, Type: p, Input: input, Err: err}
}
