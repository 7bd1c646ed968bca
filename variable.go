package nwscript

// Variable is a slot the analyzer has inferred to exist at some program
// point: a local, a global, a discovered parameter, or a discovered return
// value. Variables are born during analysis and are never destroyed.
type Variable struct {
	// ID is dense and equals this Variable's position in its VariableSpace.
	ID uint32

	Type VariableType
	Use  VariableUse

	// Creator is the instruction that first pushed this Variable. It is nil
	// for the dummy-frame seeds pushed before analysis begins.
	Creator *Instruction

	Readers []*Instruction
	Writers []*Instruction

	// Duplicates holds symmetric links to other Variables that must share a
	// type, produced by copy instructions (CPTOPSP/CPTOPBP). The set is
	// transitively closed at the moment a link is created; TypeFixup
	// consumes and clears it.
	Duplicates []*Variable
}

// AddReader records that inst read this Variable's current value.
func (v *Variable) AddReader(inst *Instruction) {
	v.Readers = append(v.Readers, inst)
}

// AddWriter records that inst wrote this Variable's current value.
func (v *Variable) AddWriter(inst *Instruction) {
	v.Writers = append(v.Writers, inst)
}

// LinkDuplicate establishes a symmetric duplicate link between v and other:
// after TypeFixup runs, both will carry the same type.
func (v *Variable) LinkDuplicate(other *Variable) {
	linkDuplicate(v, other)
}

// linkDuplicate establishes a symmetric duplicate link between v and other,
// transitively closing over whatever each side was already linked to. This
// mirrors AnalyzeStackContext::duplicateVariable in the original analyzer:
// the closure is computed once, at link time, rather than lazily at fixup.
func linkDuplicate(v, other *Variable) {
	existingV := v.Duplicates
	existingOther := other.Duplicates

	v.Duplicates = append(v.Duplicates, other)
	other.Duplicates = append(other.Duplicates, v)

	v.Duplicates = append(v.Duplicates, existingOther...)
	other.Duplicates = append(other.Duplicates, existingV...)
}

// VariableSpace is an append-only arena of Variables. It assigns stable,
// dense ids in creation order: for every VariableSpace V, V.At(i).ID == i.
type VariableSpace struct {
	vars []*Variable
}

// NewVariableSpace returns an empty arena.
func NewVariableSpace() *VariableSpace {
	return &VariableSpace{}
}

// New allocates a fresh Variable with the given type/use, assigns it the
// next dense id, and appends it to the space.
func (s *VariableSpace) New(t VariableType, use VariableUse) *Variable {
	v := &Variable{
		ID:   uint32(len(s.vars)),
		Type: t,
		Use:  use,
	}
	s.vars = append(s.vars, v)
	return v
}

// Len returns the number of Variables in the space.
func (s *VariableSpace) Len() int {
	return len(s.vars)
}

// At returns the Variable with the given id. It panics if id is out of
// range, mirroring slice-index semantics: callers only ever pass ids this
// same VariableSpace handed out.
func (s *VariableSpace) At(id uint32) *Variable {
	return s.vars[id]
}

// All returns the Variables in insertion (id) order. The returned slice
// aliases internal storage and must not be mutated by the caller.
func (s *VariableSpace) All() []*Variable {
	return s.vars
}
