// Package editor drives a menu-describable record: it owns the navigation
// stack, the edit session and the selection cursor, and exposes the closed
// set of operations a host event loop maps keys onto. Hosts render from
// Snapshot and never mutate state directly.
package editor

import (
	"io"
	"os"
	"reflect"

	"github.com/robbiew/menucfg/internal/codec"
	"github.com/robbiew/menucfg/internal/menu"
)

// StatusTag is the one-word mode a host view shows.
type StatusTag int

const (
	StatusReady StatusTag = iota
	StatusEditing
)

func (s StatusTag) String() string {
	if s == StatusEditing {
		return "Editing"
	}
	return "Ready"
}

// FieldRow pairs a field descriptor with its selection state.
type FieldRow struct {
	menu.FieldDescriptor
	Selected bool
}

// EditState is the read-only projection of an active edit.
type EditState struct {
	Buffer string
	Cursor int
	Type   menu.PrimitiveType
}

// ViewState is the full read-only projection a host renders from. It
// carries no references back into the controller, so rendering can never
// mutate menu state.
type ViewState struct {
	Breadcrumb []string
	Fields     []FieldRow
	Edit       *EditState // nil unless editing
	Status     StatusTag
	IsSequence bool // current view supports append/remove
}

// Controller owns a bound settings record and drives all navigation,
// editing and persistence against it. It is not safe for concurrent use;
// the host event loop calls it from one goroutine and every operation
// runs to completion.
type Controller struct {
	root   menu.Describable
	record any // the pointer the codec serializes
	title  string
	codec  codec.Codec

	stack    Stack
	session  Session
	selected int
}

// Option configures a Controller.
type Option func(*Controller)

// WithTitle overrides the breadcrumb root name, which defaults to the
// record's type name.
func WithTitle(title string) Option {
	return func(c *Controller) { c.title = title }
}

// WithCodec sets the persistence format. TOML is the default.
func WithCodec(cc codec.Codec) Option {
	return func(c *Controller) { c.codec = cc }
}

// New binds record, which must be a non-nil struct pointer, and returns a
// controller positioned at the root view.
func New(record any, opts ...Option) (*Controller, error) {
	view, err := menu.Bind(record)
	if err != nil {
		return nil, err
	}
	c := &Controller{
		root:   view,
		record: record,
		title:  reflect.TypeOf(record).Elem().Name(),
		codec:  codec.TOML{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Root returns the root view, for capability walks over the whole record.
func (c *Controller) Root() menu.Describable { return c.root }

// Title returns the breadcrumb root name.
func (c *Controller) Title() string { return c.title }

// Selected returns the selection index within the current view.
func (c *Controller) Selected() int { return c.selected }

// Editing reports whether an edit session is active.
func (c *Controller) Editing() bool { return c.session.Active() }

// CurrentView resolves the navigation stack against the root. A stack frame
// that no longer resolves (a sequence shrank underneath it) truncates the
// stack at that depth and resets the selection, so the menu is always
// renderable.
func (c *Controller) CurrentView() menu.Describable {
	view := c.root
	for depth, fr := range c.stack.frames {
		if fr.index >= view.FieldCount() || !view.IsSubmenu(fr.index) {
			c.stack.Truncate(depth)
			c.selected = 0
			return view
		}
		next, err := view.Enter(fr.index)
		if err != nil {
			c.stack.Truncate(depth)
			c.selected = 0
			return view
		}
		view = next
	}
	return view
}

// clampSelection keeps the selection inside the current view after the
// field count shrank.
func (c *Controller) clampSelection(view menu.Describable) {
	n := view.FieldCount()
	switch {
	case n == 0:
		c.selected = 0
	case c.selected >= n:
		c.selected = n - 1
	}
}

// SelectNext moves the selection down one field, wrapping at the bottom.
func (c *Controller) SelectNext() {
	view := c.CurrentView()
	n := view.FieldCount()
	if n == 0 {
		return
	}
	c.clampSelection(view)
	c.selected = (c.selected + 1) % n
}

// SelectPrevious moves the selection up one field, wrapping at the top.
func (c *Controller) SelectPrevious() {
	view := c.CurrentView()
	n := view.FieldCount()
	if n == 0 {
		return
	}
	c.clampSelection(view)
	c.selected = (c.selected - 1 + n) % n
}

// Activate acts on the selected field: booleans toggle in place, submenus
// open, an absent optional record constructs and opens, and any other leaf
// starts an edit session seeded with its current text. With an edit already
// in progress, Activate commits it.
func (c *Controller) Activate() error {
	if c.session.Active() {
		return c.CommitEdit()
	}
	view := c.CurrentView()
	if view.FieldCount() == 0 {
		return nil
	}
	c.clampSelection(view)
	i := c.selected
	d, err := view.DescribeField(i)
	if err != nil {
		return err
	}

	switch {
	case d.Kind.IsBool():
		return view.Toggle(i)
	case view.IsSubmenu(i):
		c.stack.Descend(i, c.selected)
		c.selected = 0
		return nil
	case d.Kind.Kind == menu.KindOptional && d.Kind.Elem.Kind == menu.KindSubmenu:
		// absent optional record: a non-empty write constructs it
		if err := view.WriteLeaf(i, "new"); err != nil {
			return err
		}
		c.stack.Descend(i, c.selected)
		c.selected = 0
		return nil
	default:
		seed, err := view.ReadLeaf(i)
		if err != nil {
			return err
		}
		if d.Kind.Kind == menu.KindOptional && seed == menu.Placeholder {
			// absent optionals edit from scratch, not from the placeholder
			seed = ""
		}
		c.session.Start(i, editPrim(d.Kind), seed)
		return nil
	}
}

// editPrim is the primitive type a session edits for a field kind: the leaf
// type, an optional's inner type, or the element type of a fixed array.
func editPrim(k menu.FieldKind) menu.PrimitiveType {
	switch k.Kind {
	case menu.KindLeaf:
		return k.Prim
	case menu.KindOptional, menu.KindSequence:
		if k.Elem != nil && k.Elem.Kind == menu.KindLeaf {
			return k.Elem.Prim
		}
	}
	return menu.String
}

// GoBack unwinds the innermost state first: an active edit cancels, then
// the stack ascends and the parent's previous selection is restored. At the
// root with nothing to unwind it fails with ErrAtRoot.
func (c *Controller) GoBack() error {
	if c.session.Active() {
		c.session.Cancel()
		return nil
	}
	cursor, err := c.stack.Ascend()
	if err != nil {
		return err
	}
	c.selected = cursor
	c.clampSelection(c.CurrentView())
	return nil
}

// InsertRune types one character into the active edit.
func (c *Controller) InsertRune(r rune) error { return c.session.InsertRune(r) }

// Backspace deletes the character before the edit cursor.
func (c *Controller) Backspace() error { return c.session.Backspace() }

// Delete deletes the character at the edit cursor.
func (c *Controller) Delete() error { return c.session.Delete() }

// MoveCursorLeft moves the edit cursor one rune left.
func (c *Controller) MoveCursorLeft() error { return c.session.MoveLeft() }

// MoveCursorRight moves the edit cursor one rune right.
func (c *Controller) MoveCursorRight() error { return c.session.MoveRight() }

// CommitEdit parses the session buffer into its field. On success the
// session closes; on a parse error it stays active with the buffer intact,
// so invalid input never loses the edit and never touches the field.
func (c *Controller) CommitEdit() error {
	if !c.session.Active() {
		return ErrNoActiveSession
	}
	view := c.CurrentView()
	if err := view.WriteLeaf(c.session.Field(), c.session.Buffer()); err != nil {
		return err
	}
	c.session.Cancel()
	return nil
}

// AppendElement grows the current sequence view by one default-valued
// element and selects it.
func (c *Controller) AppendElement() error {
	view := c.CurrentView()
	seq, ok := view.(menu.SequenceOps)
	if !ok {
		return ErrNotASequence
	}
	if err := seq.Append(); err != nil {
		return err
	}
	c.selected = seq.Len() - 1
	return nil
}

// RemoveElement deletes the selected element of the current sequence view;
// later elements shift down.
func (c *Controller) RemoveElement() error {
	view := c.CurrentView()
	seq, ok := view.(menu.SequenceOps)
	if !ok {
		return ErrNotASequence
	}
	if err := seq.Remove(c.selected); err != nil {
		return err
	}
	c.clampSelection(view)
	return nil
}

// Breadcrumb returns the names from the root to the current view, computed
// from live state on every call.
func (c *Controller) Breadcrumb() []string {
	c.CurrentView() // normalize the stack first
	names := make([]string, 0, c.stack.Depth()+1)
	names = append(names, c.title)
	view := c.root
	for _, fr := range c.stack.frames {
		d, err := view.DescribeField(fr.index)
		if err != nil {
			break
		}
		names = append(names, d.Name)
		next, err := view.Enter(fr.index)
		if err != nil {
			break
		}
		view = next
	}
	return names
}

// Snapshot assembles the read-only projection a host view renders from.
func (c *Controller) Snapshot() ViewState {
	view := c.CurrentView()
	c.clampSelection(view)

	state := ViewState{
		Breadcrumb: c.Breadcrumb(),
		Status:     StatusReady,
	}
	_, state.IsSequence = view.(menu.SequenceOps)

	n := view.FieldCount()
	state.Fields = make([]FieldRow, 0, n)
	for i := 0; i < n; i++ {
		d, err := view.DescribeField(i)
		if err != nil {
			continue
		}
		state.Fields = append(state.Fields, FieldRow{FieldDescriptor: d, Selected: i == c.selected})
	}
	if c.session.Active() {
		state.Status = StatusEditing
		state.Edit = &EditState{
			Buffer: c.session.Buffer(),
			Cursor: c.session.Cursor(),
			Type:   c.session.Prim(),
		}
	}
	return state
}

// Save encodes the record through the codec and writes it out. Menu state
// is untouched either way.
func (c *Controller) Save(w io.Writer) error {
	data, err := c.codec.Marshal(c.record)
	if err != nil {
		return &PersistError{Op: "encode", Err: err}
	}
	if _, err := w.Write(data); err != nil {
		return &PersistError{Op: "write", Err: err}
	}
	return nil
}

// SaveFile writes the record to path.
func (c *Controller) SaveFile(path string) error {
	data, err := c.codec.Marshal(c.record)
	if err != nil {
		return &PersistError{Op: "encode", Err: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &PersistError{Op: "write", Err: err}
	}
	return nil
}

// Load replaces the record wholesale from r. The swap is all or nothing:
// only after the data fully decodes does the controller adopt the new
// record, reset to the root view and drop any edit in progress. On any
// failure the controller is left exactly as it was.
func (c *Controller) Load(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return &PersistError{Op: "read", Err: err}
	}
	return c.loadBytes(data)
}

// LoadFile replaces the record from path.
func (c *Controller) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &PersistError{Op: "read", Err: err}
	}
	return c.loadBytes(data)
}

func (c *Controller) loadBytes(data []byte) error {
	fresh := reflect.New(reflect.TypeOf(c.record).Elem()).Interface()
	if err := c.codec.Unmarshal(data, fresh); err != nil {
		return &PersistError{Op: "decode", Err: err}
	}
	view, err := menu.Bind(fresh)
	if err != nil {
		return &PersistError{Op: "decode", Err: err}
	}
	c.record = fresh
	c.root = view
	c.stack.Reset()
	c.session.Cancel()
	c.selected = 0
	return nil
}
