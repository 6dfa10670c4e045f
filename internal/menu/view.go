package menu

import (
	"fmt"
	"reflect"
	"strings"
)

// structView is the Describable over one struct value.
type structView struct {
	v     reflect.Value
	specs []fieldSpec
}

func (s *structView) FieldCount() int { return len(s.specs) }

func (s *structView) DescribeField(i int) (FieldDescriptor, error) {
	if i < 0 || i >= len(s.specs) {
		return FieldDescriptor{}, ErrIndexOutOfRange
	}
	sp := s.specs[i]
	return FieldDescriptor{
		Name:  sp.name,
		Kind:  sp.kind,
		Value: displayValue(sp.kind, s.v.Field(sp.idx)),
		Index: i,
	}, nil
}

func (s *structView) IsSubmenu(i int) bool {
	if i < 0 || i >= len(s.specs) {
		return false
	}
	sp := s.specs[i]
	return isSubmenuValue(sp.kind, s.v.Field(sp.idx))
}

func (s *structView) Enter(i int) (Describable, error) {
	if i < 0 || i >= len(s.specs) {
		return nil, ErrIndexOutOfRange
	}
	sp := s.specs[i]
	return enterValue(sp.kind, s.v.Field(sp.idx))
}

func (s *structView) ReadLeaf(i int) (string, error) {
	if i < 0 || i >= len(s.specs) {
		return "", ErrIndexOutOfRange
	}
	sp := s.specs[i]
	return readLeafValue(sp.kind, s.v.Field(sp.idx))
}

func (s *structView) WriteLeaf(i int, text string) error {
	if i < 0 || i >= len(s.specs) {
		return ErrIndexOutOfRange
	}
	sp := s.specs[i]
	return writeLeafValue(sp.kind, s.v.Field(sp.idx), text)
}

func (s *structView) Toggle(i int) error {
	if i < 0 || i >= len(s.specs) {
		return ErrIndexOutOfRange
	}
	sp := s.specs[i]
	return toggleValue(sp.kind, s.v.Field(sp.idx))
}

// seqView is the Describable over a slice; elements appear as positional
// children named "[0]", "[1]" and so on. It also implements SequenceOps.
type seqView struct {
	v    reflect.Value // the slice itself, settable
	elem FieldKind
}

func (q *seqView) FieldCount() int { return q.v.Len() }

func (q *seqView) DescribeField(i int) (FieldDescriptor, error) {
	if i < 0 || i >= q.v.Len() {
		return FieldDescriptor{}, ErrIndexOutOfRange
	}
	return FieldDescriptor{
		Name:  fmt.Sprintf("[%d]", i),
		Kind:  q.elem,
		Value: displayValue(q.elem, q.v.Index(i)),
		Index: i,
	}, nil
}

func (q *seqView) IsSubmenu(i int) bool {
	if i < 0 || i >= q.v.Len() {
		return false
	}
	return isSubmenuValue(q.elem, q.v.Index(i))
}

func (q *seqView) Enter(i int) (Describable, error) {
	if i < 0 || i >= q.v.Len() {
		return nil, ErrIndexOutOfRange
	}
	return enterValue(q.elem, q.v.Index(i))
}

func (q *seqView) ReadLeaf(i int) (string, error) {
	if i < 0 || i >= q.v.Len() {
		return "", ErrIndexOutOfRange
	}
	return readLeafValue(q.elem, q.v.Index(i))
}

func (q *seqView) WriteLeaf(i int, text string) error {
	if i < 0 || i >= q.v.Len() {
		return ErrIndexOutOfRange
	}
	return writeLeafValue(q.elem, q.v.Index(i), text)
}

func (q *seqView) Toggle(i int) error {
	if i < 0 || i >= q.v.Len() {
		return ErrIndexOutOfRange
	}
	return toggleValue(q.elem, q.v.Index(i))
}

func (q *seqView) Len() int { return q.v.Len() }

// Append grows the sequence with a zero-valued element.
func (q *seqView) Append() error {
	q.v.Set(reflect.Append(q.v, reflect.Zero(q.v.Type().Elem())))
	return nil
}

// Remove deletes element i; later elements shift down by one.
func (q *seqView) Remove(i int) error {
	if i < 0 || i >= q.v.Len() {
		return ErrIndexOutOfRange
	}
	q.v.Set(reflect.AppendSlice(q.v.Slice(0, i), q.v.Slice(i+1, q.v.Len())))
	return nil
}

// ----------------------------------------------------------------------------
// Shared per-value operations
//
// structView fields and seqView elements dispatch here with the value's kind
// tag and its storage. Fixed-size arrays share the KindSequence tag with
// slices but are not enterable: they read and write as one comma-separated
// line, told apart by the storage's reflect kind.
// ----------------------------------------------------------------------------

func isSubmenuValue(k FieldKind, v reflect.Value) bool {
	switch k.Kind {
	case KindSubmenu:
		return true
	case KindSequence:
		return v.Kind() == reflect.Slice
	case KindOptional:
		return k.Elem.Kind == KindSubmenu && !v.IsNil()
	}
	return false
}

func enterValue(k FieldKind, v reflect.Value) (Describable, error) {
	switch k.Kind {
	case KindSubmenu:
		return &structView{v: v, specs: specsOf(v.Type())}, nil
	case KindSequence:
		if v.Kind() != reflect.Slice {
			return nil, ErrNotASubmenu
		}
		return &seqView{v: v, elem: *k.Elem}, nil
	case KindOptional:
		if k.Elem.Kind != KindSubmenu || v.IsNil() {
			return nil, ErrNotASubmenu
		}
		return &structView{v: v.Elem(), specs: specsOf(v.Type().Elem())}, nil
	}
	return nil, ErrNotASubmenu
}

func displayValue(k FieldKind, v reflect.Value) string {
	switch k.Kind {
	case KindLeaf:
		return formatPrimitive(k.Prim, v)
	case KindOptional:
		if v.IsNil() {
			return Placeholder
		}
		if k.Elem.Kind == KindSubmenu {
			return ""
		}
		return formatPrimitive(k.Elem.Prim, v.Elem())
	case KindSequence:
		if v.Kind() == reflect.Array {
			return joinElements(k.Elem.Prim, v)
		}
		return fmt.Sprintf("[%d]", v.Len())
	}
	return ""
}

func readLeafValue(k FieldKind, v reflect.Value) (string, error) {
	if isSubmenuValue(k, v) {
		return "", ErrNotALeaf
	}
	switch k.Kind {
	case KindLeaf, KindOptional:
		return displayValue(k, v), nil
	case KindSequence:
		return joinElements(k.Elem.Prim, v), nil
	}
	return "", ErrNotALeaf
}

func writeLeafValue(k FieldKind, v reflect.Value, text string) error {
	switch k.Kind {
	case KindLeaf:
		return parsePrimitive(k.Prim, v, text)
	case KindOptional:
		return writeOptional(k, v, text)
	case KindSequence:
		if v.Kind() != reflect.Array {
			return ErrNotALeaf
		}
		return writeArray(k.Elem.Prim, v, text)
	}
	return ErrNotALeaf
}

// writeOptional clears on empty text and constructs on non-empty text. For
// optional records the text's content carries no value; being non-empty is
// the construction request.
func writeOptional(k FieldKind, v reflect.Value, text string) error {
	if strings.TrimSpace(text) == "" {
		v.Set(reflect.Zero(v.Type()))
		return nil
	}
	if k.Elem.Kind == KindSubmenu {
		if !v.IsNil() {
			return ErrNotALeaf
		}
		v.Set(reflect.New(v.Type().Elem()))
		return nil
	}
	fresh := reflect.New(v.Type().Elem())
	if err := parsePrimitive(k.Elem.Prim, fresh.Elem(), text); err != nil {
		return err
	}
	v.Set(fresh)
	return nil
}

// writeArray parses a comma-separated line into a fixed-size array, all or
// nothing: the arity and every element must check out before any of it is
// stored.
func writeArray(p PrimitiveType, v reflect.Value, text string) error {
	parts := strings.Split(text, ",")
	if len(parts) != v.Len() {
		return &ParseError{
			Kind:  ParseWrongArity,
			Type:  p,
			Input: text,
			Err:   fmt.Errorf("want %d elements, got %d", v.Len(), len(parts)),
		}
	}
	tmp := reflect.New(v.Type()).Elem()
	for i, part := range parts {
		if err := parsePrimitive(p, tmp.Index(i), strings.TrimSpace(part)); err != nil {
			return err
		}
	}
	v.Set(tmp)
	return nil
}

// joinElements renders array elements as one comma-separated line.
func joinElements(p PrimitiveType, v reflect.Value) string {
	parts := make([]string, v.Len())
	for i := range parts {
		parts[i] = formatPrimitive(p, v.Index(i))
	}
	return strings.Join(parts, ", ")
}

// toggleValue flips booleans, reaching through optionals; an absent optional
// boolean constructs as true.
func toggleValue(k FieldKind, v reflect.Value) error {
	switch {
	case k.Kind == KindLeaf && k.Prim == Bool:
		v.SetBool(!v.Bool())
		return nil
	case k.Kind == KindOptional && k.Elem.Kind == KindLeaf && k.Elem.Prim == Bool:
		if v.IsNil() {
			fresh := reflect.New(v.Type().Elem())
			fresh.Elem().SetBool(true)
			v.Set(fresh)
			return nil
		}
		v.Elem().SetBool(!v.Elem().Bool())
		return nil
	}
	return ErrNotABoolean
}
