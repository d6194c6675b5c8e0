package conform

import "strings"

// Union returns a descriptor matching any value accepted by at least one
// member, evaluated in declaration order. The name is the member names joined
// with " | " in that order, without deduplication or sorting.
//
// An empty Union is a construction-time misuse: it has no member to match, so
// every check fails (it never silently conforms).
func Union(members ...Descriptor) Descriptor {
	return unionType{members: append([]Descriptor(nil), members...)}
}

type unionType struct{ members []Descriptor }

func (u unionType) Name() string {
	names := make([]string, len(u.members))
	for i, m := range u.members {
		names[i] = m.Name()
	}
	return strings.Join(names, " | ")
}

func (u unionType) Check(v any) bool {
	for _, m := range u.members {
		if m.Check(v) {
			return true
		}
	}
	return false
}

// CheckExhaustive scans every member; a second match invalidates immediately.
// There is no early return on the first match because a later overlapping
// member must still be detected.
func (u unionType) CheckExhaustive(v any) bool {
	matched := false
	for _, m := range u.members {
		if m.Check(v) {
			if matched {
				return false
			}
			matched = true
		}
	}
	return matched
}

func (unionType) Optional() bool { return false }
