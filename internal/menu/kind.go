package menu

// PrimitiveType identifies the concrete Go type behind a leaf field. Each
// primitive carries its own parser and formatter, so a value formatted by the
// menu always parses back to itself.
type PrimitiveType int

const (
	Bool PrimitiveType = iota
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	String
)

func (p PrimitiveType) String() string {
	switch p {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint:
		return "uint"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case String:
		return "string"
	}
	return "unknown"
}

// Kind classifies how a field behaves in the menu tree.
type Kind int

const (
	KindLeaf     Kind = iota // editable primitive value
	KindOptional             // pointer field, absent or holding one value
	KindSequence             // slice or fixed-size array of elements
	KindSubmenu              // nested struct
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindOptional:
		return "optional"
	case KindSequence:
		return "sequence"
	case KindSubmenu:
		return "submenu"
	}
	return "unknown"
}

// FieldKind is the full kind tag for one field: a leaf with its primitive
// type, an optional or sequence wrapping an element kind, or a submenu.
type FieldKind struct {
	Kind Kind
	Prim PrimitiveType // set when Kind is KindLeaf
	Elem *FieldKind    // set when Kind is KindOptional or KindSequence
}

func (k FieldKind) String() string {
	switch k.Kind {
	case KindLeaf:
		return k.Prim.String()
	case KindOptional:
		return "optional(" + k.Elem.String() + ")"
	case KindSequence:
		return "sequence(" + k.Elem.String() + ")"
	}
	return "submenu"
}

// IsBool reports whether activating the field should toggle rather than open
// an edit: a boolean leaf, or an optional boolean.
func (k FieldKind) IsBool() bool {
	if k.Kind == KindLeaf {
		return k.Prim == Bool
	}
	return k.Kind == KindOptional && k.Elem.Kind == KindLeaf && k.Elem.Prim == Bool
}

// FieldDescriptor is a point-in-time snapshot of one field. Descriptors are
// derived on demand and go stale after any edit or navigation; re-read them
// instead of caching.
type FieldDescriptor struct {
	Name  string
	Kind  FieldKind
	Value string
	Index int
}

// Placeholder is how absent optional values render.
const Placeholder = "<not set>"
