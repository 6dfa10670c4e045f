// Package menu turns plain Go records into browsable, editable settings
// menus. A record bound with Bind is exposed through the Describable
// interface: an index-addressed list of fields whose leaves read and write as
// strings, with nested structs, populated optionals and slices presented as
// enterable submenus. Views borrow the bound record directly, so edits write
// through to it; nothing is copied.
package menu

// Describable is the capability every menu-visible value offers. All
// operations are index-based against the value's directly owned fields, and
// every mutation is atomic: a failed call leaves the value exactly as it was.
type Describable interface {
	// FieldCount returns the number of directly owned fields.
	FieldCount() int

	// DescribeField returns the point-in-time descriptor for field i.
	DescribeField(i int) (FieldDescriptor, error)

	// IsSubmenu reports whether field i can be entered.
	IsSubmenu(i int) bool

	// Enter returns the nested view behind field i. The child view stays
	// bound to the same underlying storage as the parent.
	Enter(i int) (Describable, error)

	// ReadLeaf returns field i's current value as display text.
	ReadLeaf(i int) (string, error)

	// WriteLeaf parses text per field i's type and stores the value. An
	// empty write clears an optional field; a non-empty write to an absent
	// optional constructs it.
	WriteLeaf(i int, text string) error

	// Toggle flips a boolean field in place.
	Toggle(i int) error
}

// SequenceOps is implemented by sequence views alongside Describable.
// Append grows the sequence with a default-valued element at the end; Remove
// deletes by index and shifts later elements down, leaving no gaps.
type SequenceOps interface {
	Len() int
	Append() error
	Remove(i int) error
}
