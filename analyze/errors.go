package analyze

import "fmt"

// Kind classifies why the analyzer refused to continue. Every failure the
// analyzer produces carries exactly one Kind plus the address it occurred
// at; there is no recovery within the analyzer, and callers are expected to
// discard whatever partial state they were accumulating.
type Kind int

const (
	// InvalidArgument means an opcode's operands violate the 4-byte,
	// non-negative, or non-positive rules its encoding requires.
	InvalidArgument Kind = iota
	// StackUnderrun means an opcode needed more stack depth than was
	// present, and the shortfall wasn't the calling-convention case.
	StackUnderrun
	// GlobalsUnderrun means a CPTOPBP/CPDOWNBP/DECBP/INCBP reached past the
	// end of the attached globals array.
	GlobalsUnderrun
	// NoGlobals means a globals opcode ran with no globals array attached
	// to the context at all.
	NoGlobals
	// TypeMismatch means two concrete (non-Any) types disagreed where the
	// opcode requires them to unify.
	TypeMismatch
	// Recursion means a Block or SubRoutine was re-entered while still
	// InProgress.
	Recursion
	// MultipleSaveBP means SAVEBP ran more than once during one globals
	// analysis.
	MultipleSaveBP
	// SaveBPOutsideGlobals means SAVEBP appeared outside globals mode.
	SaveBPOutsideGlobals
	// InvalidInstructionType means an arithmetic instruction carried a type
	// tag the analyzer doesn't recognize.
	InvalidInstructionType
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case StackUnderrun:
		return "StackUnderrun"
	case GlobalsUnderrun:
		return "GlobalsUnderrun"
	case NoGlobals:
		return "NoGlobals"
	case TypeMismatch:
		return "TypeMismatch"
	case Recursion:
		return "Recursion"
	case MultipleSaveBP:
		return "MultipleSaveBP"
	case SaveBPOutsideGlobals:
		return "SaveBPOutsideGlobals"
	case InvalidInstructionType:
		return "InvalidInstructionType"
	default:
		return "Unknown"
	}
}

// Error is the analyzer's sole error type. It always names the address of
// the instruction it failed on, so a caller can point a user at the exact
// spot in the disassembly.
type Error struct {
	Kind    Kind
	Address uint32
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s @%08X", e.Kind, e.Address)
	}
	return fmt.Sprintf("%s @%08X: %s", e.Kind, e.Address, e.Message)
}

func fail(kind Kind, address uint32, format string, args ...any) *Error {
	return &Error{Kind: kind, Address: address, Message: fmt.Sprintf(format, args...)}
}
