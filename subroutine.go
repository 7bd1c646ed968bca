package nwscript

// SubRoutine is a callable unit: the set of Blocks reachable from an entry
// block. Params and Returns are output fields the analyzer discovers by
// observing how the subroutine reaches above its own stack frame.
type SubRoutine struct {
	Address uint32

	// Blocks holds every block belonging to this subroutine, entry block
	// first.
	Blocks []*Block

	// Params is the ordered list of Variables the analyzer has determined
	// this subroutine pops as caller-supplied arguments.
	Params []*Variable

	// Returns is the ordered list of Variables the analyzer has determined
	// this subroutine writes as its result, beyond the parameter region.
	Returns []*Variable

	AnalyzeState AnalyzeState
}

// EntryBlock returns the subroutine's first block, or nil if it has none.
func (s *SubRoutine) EntryBlock() *Block {
	if len(s.Blocks) == 0 {
		return nil
	}
	return s.Blocks[0]
}
