package analyze

import "github.com/clone2727/xoreos-tools"

// fixupDuplicateTypes unifies the type of every Variable with the types of
// everything it was linked to by a copy instruction. Variables are visited
// in insertion order; within a duplicate group, the last concrete
// (non-Any) type encountered wins and is written back to every member.
// Duplicate links were already transitively closed at creation time, so
// this is a single pass, not a fixed-point iteration.
func fixupDuplicateTypes(variables *nwscript.VariableSpace) {
	for _, v := range variables.All() {
		t := v.Type

		for _, d := range v.Duplicates {
			if d.Type != nwscript.TypeAny {
				t = d.Type
			}
		}

		v.Type = t
		for _, d := range v.Duplicates {
			d.Type = t
		}

		v.Duplicates = nil
	}
}
