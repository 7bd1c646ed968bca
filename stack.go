package nwscript

// StackCell is a reference to a Variable occupying one 4-byte slot on the
// abstract stack. Types wider than 4 bytes (Vector = 3 floats) occupy
// multiple consecutive cells.
type StackCell struct {
	Variable *Variable
}

// Stack is an ordered sequence of StackCells. Position 0 is the top;
// positions grow downward, deeper into the stack — mirroring the engine's
// SP-relative addressing, where offsets are encoded as negative multiples
// of 4 and normalize to a 0-based depth via NormalizeOffset.
type Stack []StackCell

// NormalizeOffset converts a raw SP/BP-relative offset (a negative multiple
// of 4, as encoded in the bytecode) into a 0-based depth into a Stack.
func NormalizeOffset(offset int32) int {
	return int(offset/-4) - 1
}

// Push places a new cell referencing v on top of the stack.
func (s *Stack) Push(v *Variable) {
	*s = append(Stack{{Variable: v}}, *s...)
}

// Pop removes and returns the top cell's Variable.
func (s *Stack) Pop() *Variable {
	v := (*s)[0].Variable
	*s = (*s)[1:]
	return v
}

// At returns the Variable at the given depth (0 = top) without removing it.
func (s Stack) At(depth int) *Variable {
	return s[depth].Variable
}

// Clone returns an independent copy of the stack, so that sibling branches
// in the control-flow graph can diverge without interfering with each
// other's view of the stack.
func (s Stack) Clone() Stack {
	c := make(Stack, len(s))
	copy(c, s)
	return c
}

// Truncate returns the top n cells of the stack, or the whole stack if it
// has fewer than n cells. Used to produce per-instruction snapshots that
// show only the current subroutine's own frame, not the caller's frames
// above it.
func (s Stack) Truncate(n int) Stack {
	if len(s) <= n {
		return s.Clone()
	}
	return s[:n].Clone()
}

// Len returns the number of cells on the stack.
func (s Stack) Len() int {
	return len(s)
}
