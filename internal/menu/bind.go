package menu

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"
)

// fieldSpec is the classification of one struct field, computed once per
// struct type and cached.
type fieldSpec struct {
	name string
	idx  int
	kind FieldKind
}

var specCache sync.Map // reflect.Type -> []fieldSpec

// Bind exposes the struct behind ptr as a Describable menu. ptr must be a
// non-nil pointer to a struct; the returned view reads and writes the
// pointed-to value in place.
func Bind(ptr any) (Describable, error) {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, fmt.Errorf("menu: Bind needs a non-nil struct pointer, got %T", ptr)
	}
	elem := rv.Elem()
	if elem.Kind() != reflect.Struct {
		return nil, fmt.Errorf("menu: Bind needs a struct pointer, got %T", ptr)
	}
	return &structView{v: elem, specs: specsOf(elem.Type())}, nil
}

// specsOf returns the cached field table for a struct type.
func specsOf(t reflect.Type) []fieldSpec {
	if cached, ok := specCache.Load(t); ok {
		return cached.([]fieldSpec)
	}
	specs := buildSpecs(t)
	specCache.Store(t, specs)
	return specs
}

func buildSpecs(t reflect.Type) []fieldSpec {
	specs := make([]fieldSpec, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, ok := fieldName(f)
		if !ok {
			continue
		}
		kind, ok := classifyType(f.Type)
		if !ok {
			// maps, funcs, channels and other unsupported shapes
			// stay invisible
			continue
		}
		specs = append(specs, fieldSpec{name: name, idx: i, kind: kind})
	}
	return specs
}

// fieldName resolves a field's menu name: the menu or toml tag when present,
// otherwise the Go name in snake_case. A "-" tag hides the field.
func fieldName(f reflect.StructField) (string, bool) {
	for _, key := range []string{"menu", "toml"} {
		tag, ok := f.Tag.Lookup(key)
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			return "", false
		}
		if name != "" {
			return name, true
		}
	}
	return snakeCase(f.Name), true
}

// classifyType maps a Go type onto the menu's kind algebra:
// primitive -> leaf, pointer -> optional, slice -> sequence, fixed array of
// primitives -> sequence edited as one line, struct -> submenu.
func classifyType(t reflect.Type) (FieldKind, bool) {
	if p, ok := primitiveOf(t); ok {
		return FieldKind{Kind: KindLeaf, Prim: p}, true
	}
	switch t.Kind() {
	case reflect.Pointer:
		inner, ok := classifyType(t.Elem())
		if !ok || inner.Kind == KindOptional || inner.Kind == KindSequence {
			return FieldKind{}, false
		}
		return FieldKind{Kind: KindOptional, Elem: &inner}, true
	case reflect.Slice:
		inner, ok := classifyType(t.Elem())
		if !ok {
			return FieldKind{}, false
		}
		return FieldKind{Kind: KindSequence, Elem: &inner}, true
	case reflect.Array:
		inner, ok := classifyType(t.Elem())
		if !ok || inner.Kind != KindLeaf {
			return FieldKind{}, false
		}
		return FieldKind{Kind: KindSequence, Elem: &inner}, true
	case reflect.Struct:
		return FieldKind{Kind: KindSubmenu}, true
	}
	return FieldKind{}, false
}

// snakeCase converts a Go field name to its menu spelling: MaxFPS becomes
// max_fps, ProxyURL becomes proxy_url.
func snakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (i > 0 && nextLower) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
