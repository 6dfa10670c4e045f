package menu

import "strings"

// Walk visits every leaf reachable from view in field order, depth first.
// Paths are dotted (network.port) with sequence elements indexed inline
// (profiles[0].name). Absent optionals and fixed-size arrays are visited as
// leaves; empty sequences contribute nothing.
func Walk(view Describable, fn func(path string, d FieldDescriptor) error) error {
	return walk(view, "", fn)
}

func walk(view Describable, prefix string, fn func(string, FieldDescriptor) error) error {
	for i := 0; i < view.FieldCount(); i++ {
		d, err := view.DescribeField(i)
		if err != nil {
			return err
		}
		path := joinPath(prefix, d.Name)
		if view.IsSubmenu(i) {
			child, err := view.Enter(i)
			if err != nil {
				return err
			}
			if err := walk(child, path, fn); err != nil {
				return err
			}
			continue
		}
		if err := fn(path, d); err != nil {
			return err
		}
	}
	return nil
}

// joinPath glues path segments: names join with dots, "[i]" element names
// attach directly to their sequence.
func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	if strings.HasPrefix(name, "[") {
		return prefix + name
	}
	return prefix + "." + name
}
