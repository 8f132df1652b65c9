package components

import "strings"

// Classes is an ordered, duplicate-free set of class names. Class names are
// the stable hooks the theme styles and tests assert on.
type Classes []string

// NewClasses builds a set from names, skipping blanks and duplicates.
func NewClasses(names ...string) Classes {
	return Classes(nil).Append(names...)
}

// Has reports whether name is present.
func (c Classes) Has(name string) bool {
	for _, existing := range c {
		if existing == name {
			return true
		}
	}
	return false
}

// Append returns a copy with names added at the end.
func (c Classes) Append(names ...string) Classes {
	out := make(Classes, len(c), len(c)+len(names))
	copy(out, c)
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || out.Has(name) {
			continue
		}
		out = append(out, name)
	}
	return out
}

// If appends name only when cond holds.
func (c Classes) If(name string, cond bool) Classes {
	if !cond {
		return c.Append()
	}
	return c.Append(name)
}

// Without returns a copy with name removed.
func (c Classes) Without(name string) Classes {
	out := make(Classes, 0, len(c))
	for _, existing := range c {
		if existing != name {
			out = append(out, existing)
		}
	}
	return out
}

// Equal compares two sets including order.
func (c Classes) Equal(other Classes) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// String joins the set with spaces, the way a class attribute reads.
func (c Classes) String() string {
	return strings.Join(c, " ")
}
