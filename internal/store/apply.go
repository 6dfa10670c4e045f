package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/robbiew/menucfg/internal/menu"
)

// Apply replays snapshot rows onto a view, resolving each path through
// the menu contract. Sequences grow as needed to hold the restored
// elements and absent optional records are constructed on the way down,
// so rows saved from one tree restore cleanly onto a zero record of the
// same shape.
func Apply(view menu.Describable, rows []Row) error {
	for _, row := range rows {
		if err := writePath(view, row.Path, row.Value); err != nil {
			return fmt.Errorf("failed to apply %s: %w", row.Path, err)
		}
	}
	return nil
}

func writePath(view menu.Describable, path, value string) error {
	segs := strings.Split(path, ".")
	cur := view
	for si, seg := range segs {
		name, idxs, err := parseSegment(seg)
		if err != nil {
			return err
		}
		lastSeg := si == len(segs)-1

		if name != "" {
			fi, err := fieldIndex(cur, name)
			if err != nil {
				return err
			}
			if lastSeg && len(idxs) == 0 {
				return cur.WriteLeaf(fi, value)
			}
			next, err := enterField(cur, fi)
			if err != nil {
				return err
			}
			cur = next
		}

		for ii, idx := range idxs {
			if err := growTo(cur, idx); err != nil {
				return err
			}
			if lastSeg && ii == len(idxs)-1 {
				return cur.WriteLeaf(idx, value)
			}
			next, err := cur.Enter(idx)
			if err != nil {
				return err
			}
			cur = next
		}
	}
	return fmt.Errorf("empty path")
}

// parseSegment splits "profiles[0]" into its field name and element
// indices. A bare "[0]" has an empty name and addresses the current
// view directly.
func parseSegment(seg string) (string, []int, error) {
	open := strings.IndexByte(seg, '[')
	if open < 0 {
		return seg, nil, nil
	}
	name, rest := seg[:open], seg[open:]
	var idxs []int
	for rest != "" {
		if rest[0] != '[' {
			return "", nil, fmt.Errorf("malformed path segment %q", seg)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return "", nil, fmt.Errorf("malformed path segment %q", seg)
		}
		n, err := strconv.Atoi(rest[1:end])
		if err != nil || n < 0 {
			return "", nil, fmt.Errorf("malformed path segment %q", seg)
		}
		idxs = append(idxs, n)
		rest = rest[end+1:]
	}
	return name, idxs, nil
}

func fieldIndex(view menu.Describable, name string) (int, error) {
	for i := 0; i < view.FieldCount(); i++ {
		d, err := view.DescribeField(i)
		if err != nil {
			return 0, err
		}
		if d.Name == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no field %q in view", name)
}

// enterField enters a submenu field, constructing an absent optional
// record first when the path descends into one.
func enterField(view menu.Describable, i int) (menu.Describable, error) {
	next, err := view.Enter(i)
	if err == nil {
		return next, nil
	}
	d, derr := view.DescribeField(i)
	if derr != nil || d.Kind.Kind != menu.KindOptional || d.Kind.Elem.Kind != menu.KindSubmenu {
		return nil, err
	}
	if werr := view.WriteLeaf(i, "new"); werr != nil {
		return nil, err
	}
	return view.Enter(i)
}

func growTo(view menu.Describable, idx int) error {
	seq, ok := view.(menu.SequenceOps)
	if !ok {
		return fmt.Errorf("path indexes a non-sequence view")
	}
	for seq.Len() <= idx {
		if err := seq.Append(); err != nil {
			return err
		}
	}
	return nil
}
