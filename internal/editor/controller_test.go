package editor

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/robbiew/menucfg/internal/menu"
)

type gameSettings struct {
	Volume     uint32 `toml:"volume"`
	Fullscreen bool   `toml:"fullscreen"`
	MaxFPS     uint32 `toml:"max_fps"`
}

type netSettings struct {
	Host string `toml:"host"`
	Port uint16 `toml:"port"`
}

type profile struct {
	Name   string `toml:"name"`
	Rating int8   `toml:"rating"`
}

type theme struct {
	Name string `toml:"name"`
}

type deepSettings struct {
	General  gameSettings `toml:"general"`
	Network  netSettings  `toml:"network"`
	Profiles []profile    `toml:"profiles"`
	Theme    *theme       `toml:"theme,omitempty"`
}

func newDeep() *deepSettings {
	return &deepSettings{
		General:  gameSettings{Volume: 80, MaxFPS: 60},
		Network:  netSettings{Host: "localhost", Port: 8080},
		Profiles: []profile{{"default", 3}, {"work", 5}, {"travel", 1}},
	}
}

func newController(t *testing.T, rec any, opts ...Option) *Controller {
	t.Helper()
	c, err := New(rec, opts...)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return c
}

// selectField walks the selection to the named field of the current view.
func selectField(t *testing.T, c *Controller, name string) {
	t.Helper()
	snap := c.Snapshot()
	for i, row := range snap.Fields {
		if row.Name == name {
			for c.Selected() != i {
				c.SelectNext()
			}
			return
		}
	}
	t.Fatalf("field %q not in current view", name)
}

func TestActivateScenario(t *testing.T) {
	rec := &gameSettings{Volume: 80, Fullscreen: false, MaxFPS: 60}
	c := newController(t, rec)

	// booleans toggle without opening an edit session
	selectField(t, c, "fullscreen")
	if err := c.Activate(); err != nil {
		t.Fatalf("Activate(fullscreen) returned error: %v", err)
	}
	if !rec.Fullscreen {
		t.Fatal("expected fullscreen true after activate")
	}
	if c.Editing() {
		t.Fatal("expected no edit session after toggling")
	}

	// other leaves open a session seeded with the current value
	c.SelectNext()
	if err := c.Activate(); err != nil {
		t.Fatalf("Activate(max_fps) returned error: %v", err)
	}
	snap := c.Snapshot()
	if snap.Status != StatusEditing || snap.Edit == nil {
		t.Fatal("expected editing status with edit state")
	}
	if snap.Edit.Buffer != "60" {
		t.Fatalf("expected buffer seeded with %q, got %q", "60", snap.Edit.Buffer)
	}
	if snap.Edit.Cursor != 2 {
		t.Fatalf("expected cursor at end, got %d", snap.Edit.Cursor)
	}

	if err := c.InsertRune('0'); err != nil {
		t.Fatalf("InsertRune returned error: %v", err)
	}
	// activate while editing commits
	if err := c.Activate(); err != nil {
		t.Fatalf("commit returned error: %v", err)
	}
	if rec.MaxFPS != 600 {
		t.Fatalf("expected max_fps 600, got %d", rec.MaxFPS)
	}
	if c.Editing() {
		t.Fatal("expected session closed after commit")
	}
}

func TestCommitMalformedKeepsEdit(t *testing.T) {
	rec := &gameSettings{Volume: 80, MaxFPS: 60}
	c := newController(t, rec)

	selectField(t, c, "volume")
	if err := c.Activate(); err != nil {
		t.Fatalf("Activate returned error: %v", err)
	}
	c.Backspace()
	c.Backspace()
	for _, r := range "abc" {
		c.InsertRune(r)
	}

	err := c.CommitEdit()
	var perr *menu.ParseError
	if !errors.As(err, &perr) || perr.Kind != menu.ParseMalformed {
		t.Fatalf("expected malformed parse error, got %v", err)
	}
	if !c.Editing() {
		t.Fatal("expected session to survive the failed commit")
	}
	snap := c.Snapshot()
	if snap.Edit.Buffer != "abc" {
		t.Fatalf("expected buffer %q preserved, got %q", "abc", snap.Edit.Buffer)
	}
	if rec.Volume != 80 {
		t.Fatalf("expected volume unchanged at 80, got %d", rec.Volume)
	}

	// the edit is still live: fix the text and commit again
	c.Backspace()
	c.Backspace()
	c.Backspace()
	for _, r := range "95" {
		c.InsertRune(r)
	}
	if err := c.CommitEdit(); err != nil {
		t.Fatalf("second commit returned error: %v", err)
	}
	if rec.Volume != 95 {
		t.Fatalf("expected volume 95, got %d", rec.Volume)
	}
}

func TestSelectWraparound(t *testing.T) {
	c := newController(t, newDeep())

	n := c.Snapshot().Fields
	if len(n) == 0 {
		t.Fatal("expected fields at root")
	}
	start := c.Selected()
	for i := 0; i < len(n); i++ {
		c.SelectNext()
	}
	if c.Selected() != start {
		t.Fatalf("expected selection back at %d after %d moves, got %d", start, len(n), c.Selected())
	}

	c.SelectPrevious()
	if c.Selected() != len(n)-1 {
		t.Fatalf("expected wrap to %d, got %d", len(n)-1, c.Selected())
	}
}

func TestDescendAscendRestoresSelection(t *testing.T) {
	c := newController(t, newDeep(), WithTitle("Settings"))

	before := c.Snapshot()
	selectField(t, c, "network")
	sel := c.Selected()

	if err := c.Activate(); err != nil {
		t.Fatalf("descend returned error: %v", err)
	}
	inside := c.Snapshot()
	if got := strings.Join(inside.Breadcrumb, " > "); got != "Settings > network" {
		t.Fatalf("expected breadcrumb Settings > network, got %q", got)
	}
	if c.Selected() != 0 {
		t.Fatalf("expected selection reset entering submenu, got %d", c.Selected())
	}

	if err := c.GoBack(); err != nil {
		t.Fatalf("GoBack returned error: %v", err)
	}
	if c.Selected() != sel {
		t.Fatalf("expected parent selection restored to %d, got %d", sel, c.Selected())
	}

	// descend then ascend leaves the resolved view untouched
	after := c.Snapshot()
	if strings.Join(after.Breadcrumb, " > ") != strings.Join(before.Breadcrumb, " > ") {
		t.Fatalf("expected breadcrumb unchanged, got %v", after.Breadcrumb)
	}
	if len(after.Fields) != len(before.Fields) {
		t.Fatalf("expected %d fields, got %d", len(before.Fields), len(after.Fields))
	}
	for i := range before.Fields {
		if after.Fields[i].Name != before.Fields[i].Name || after.Fields[i].Value != before.Fields[i].Value {
			t.Fatalf("expected field %d unchanged, got %+v", i, after.Fields[i])
		}
	}
}

func TestGoBackUnwindsEditFirst(t *testing.T) {
	c := newController(t, newDeep())

	selectField(t, c, "general")
	c.Activate()
	selectField(t, c, "volume")
	c.Activate()
	if !c.Editing() {
		t.Fatal("expected edit session")
	}

	// first escape cancels the edit, navigation stays put
	if err := c.GoBack(); err != nil {
		t.Fatalf("GoBack returned error: %v", err)
	}
	if c.Editing() {
		t.Fatal("expected edit cancelled")
	}
	if got := len(c.Breadcrumb()); got != 2 {
		t.Fatalf("expected still inside general (breadcrumb 2), got %d", got)
	}

	// second escape ascends
	if err := c.GoBack(); err != nil {
		t.Fatalf("second GoBack returned error: %v", err)
	}
	if got := len(c.Breadcrumb()); got != 1 {
		t.Fatalf("expected root view, got breadcrumb %d", got)
	}

	// third escape has nothing to unwind
	if err := c.GoBack(); !errors.Is(err, ErrAtRoot) {
		t.Fatalf("expected ErrAtRoot, got %v", err)
	}
}

func TestStaleStackTruncation(t *testing.T) {
	rec := newDeep()
	c := newController(t, rec, WithTitle("Settings"))

	selectField(t, c, "profiles")
	c.Activate() // into the sequence
	for c.Selected() != 2 {
		c.SelectNext()
	}
	c.Activate() // into profiles[2]
	if got := strings.Join(c.Breadcrumb(), " > "); got != "Settings > profiles > [2]" {
		t.Fatalf("expected breadcrumb into [2], got %q", got)
	}

	// the sequence shrinks underneath the open view
	rec.Profiles = rec.Profiles[:2]

	snap := c.Snapshot()
	if got := strings.Join(snap.Breadcrumb, " > "); got != "Settings > profiles" {
		t.Fatalf("expected stack truncated to the sequence, got %q", got)
	}
	if len(snap.Fields) != 2 {
		t.Fatalf("expected 2 remaining elements, got %d", len(snap.Fields))
	}
	if c.Selected() != 0 {
		t.Fatalf("expected selection reset to 0, got %d", c.Selected())
	}
}

func TestActivateAbsentOptionalRecord(t *testing.T) {
	rec := newDeep()
	c := newController(t, rec, WithTitle("Settings"))

	selectField(t, c, "theme")
	if err := c.Activate(); err != nil {
		t.Fatalf("Activate(theme) returned error: %v", err)
	}
	if rec.Theme == nil {
		t.Fatal("expected theme constructed")
	}
	if got := strings.Join(c.Breadcrumb(), " > "); got != "Settings > theme" {
		t.Fatalf("expected to land inside theme, got %q", got)
	}
}

func TestAppendRemoveElements(t *testing.T) {
	rec := newDeep()
	c := newController(t, rec)

	if err := c.AppendElement(); !errors.Is(err, ErrNotASequence) {
		t.Fatalf("expected ErrNotASequence at root, got %v", err)
	}

	selectField(t, c, "profiles")
	c.Activate()

	if err := c.AppendElement(); err != nil {
		t.Fatalf("AppendElement returned error: %v", err)
	}
	if len(rec.Profiles) != 4 {
		t.Fatalf("expected 4 profiles, got %d", len(rec.Profiles))
	}
	if c.Selected() != 3 {
		t.Fatalf("expected new element selected, got %d", c.Selected())
	}

	if err := c.RemoveElement(); err != nil {
		t.Fatalf("RemoveElement returned error: %v", err)
	}
	if len(rec.Profiles) != 3 {
		t.Fatalf("expected 3 profiles after remove, got %d", len(rec.Profiles))
	}
	if c.Selected() != 2 {
		t.Fatalf("expected selection clamped to 2, got %d", c.Selected())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	rec := newDeep()
	rec.Theme = &theme{Name: "dark"}
	a := newController(t, rec, WithTitle("Settings"))

	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := a.SaveFile(path); err != nil {
		t.Fatalf("SaveFile returned error: %v", err)
	}

	b := newController(t, &deepSettings{}, WithTitle("Settings"))
	if err := b.LoadFile(path); err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}

	collect := func(c *Controller) map[string]string {
		out := map[string]string{}
		err := menu.Walk(c.Root(), func(path string, d menu.FieldDescriptor) error {
			out[path] = d.Kind.String() + "=" + d.Value
			return nil
		})
		if err != nil {
			t.Fatalf("walk returned error: %v", err)
		}
		return out
	}

	got, want := collect(b), collect(a)
	if len(got) != len(want) {
		t.Fatalf("expected %d leaves, got %d", len(want), len(got))
	}
	for path, v := range want {
		if got[path] != v {
			t.Fatalf("expected %s = %s after reload, got %s", path, v, got[path])
		}
	}
}

func TestLoadFailureLeavesStateUnchanged(t *testing.T) {
	rec := newDeep()
	c := newController(t, rec, WithTitle("Settings"))

	selectField(t, c, "network")
	c.Activate()
	c.SelectNext()

	err := c.Load(strings.NewReader("not [valid toml"))
	var perr *PersistError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PersistError, got %v", err)
	}
	if perr.Op != "decode" {
		t.Fatalf("expected decode failure, got %q", perr.Op)
	}

	snap := c.Snapshot()
	if got := strings.Join(snap.Breadcrumb, " > "); got != "Settings > network" {
		t.Fatalf("expected navigation untouched, got %q", got)
	}
	if c.Selected() != 1 {
		t.Fatalf("expected selection untouched at 1, got %d", c.Selected())
	}
	if rec.Network.Host != "localhost" {
		t.Fatalf("expected record untouched, got host %q", rec.Network.Host)
	}
}

func TestLoadResetsNavigationAndSession(t *testing.T) {
	src := newController(t, newDeep())
	var buf bytes.Buffer
	if err := src.Save(&buf); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	c := newController(t, newDeep(), WithTitle("Settings"))
	selectField(t, c, "general")
	c.Activate()
	selectField(t, c, "volume")
	c.Activate() // editing
	if !c.Editing() {
		t.Fatal("expected edit session before load")
	}

	if err := c.Load(&buf); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.Editing() {
		t.Fatal("expected session discarded by load")
	}
	snap := c.Snapshot()
	if got := strings.Join(snap.Breadcrumb, " > "); got != "Settings" {
		t.Fatalf("expected reset to root, got %q", got)
	}
	if c.Selected() != 0 {
		t.Fatalf("expected selection reset, got %d", c.Selected())
	}
}

func TestSnapshotSequenceFlag(t *testing.T) {
	c := newController(t, newDeep())

	if c.Snapshot().IsSequence {
		t.Fatal("expected root view not to be a sequence")
	}
	selectField(t, c, "profiles")
	c.Activate()
	if !c.Snapshot().IsSequence {
		t.Fatal("expected sequence view after entering profiles")
	}
}

type emptyBox struct{}

type boxHolder struct {
	Box emptyBox `toml:"box"`
}

func TestEmptyViewIsInert(t *testing.T) {
	c := newController(t, &boxHolder{})

	c.Activate() // into the empty submenu
	snap := c.Snapshot()
	if len(snap.Fields) != 0 {
		t.Fatalf("expected no fields, got %d", len(snap.Fields))
	}

	c.SelectNext()
	c.SelectPrevious()
	if c.Selected() != 0 {
		t.Fatalf("expected selection pinned at 0, got %d", c.Selected())
	}
	if err := c.Activate(); err != nil {
		t.Fatalf("expected activate on empty view to be a no-op, got %v", err)
	}
}
