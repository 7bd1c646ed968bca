// Package analyze implements the NWScript stack-effect analyzer: a static
// abstract interpreter over disassembled bytecode that reconstructs
// per-instruction stack state, infers variable types, discovers subroutine
// parameter/return signatures, identifies globals, and links reads to
// writes.
package analyze

import (
	"github.com/clone2727/xoreos-tools"
	"github.com/clone2727/xoreos-tools/game"
)

// Mode selects which of the analyzer's two entry points is running.
type Mode uint8

const (
	// ModeGlobal analyzes the _global initializer in isolation: JSR is
	// ignored, and the resulting stack layout becomes the global-variable
	// array.
	ModeGlobal Mode = iota
	// ModeSubRoutine analyzes whole-program control flow starting from a
	// given subroutine, recursing into every JSR target it reaches.
	ModeSubRoutine
)

func (m Mode) String() string {
	if m == ModeGlobal {
		return "Global"
	}
	return "SubRoutine"
}

// Context is the mutable state threaded through one analysis run. It is
// always passed by pointer to the driver and by value into a child branch's
// own copy, so that snapshot/restore falls out of ordinary Go assignment:
// callers that want an independent branch do `child := *ctx` and then
// change only the fields that branch owns.
type Context struct {
	Mode Mode

	Sub         *nwscript.SubRoutine
	Block       *nwscript.Block
	Instruction *nwscript.Instruction

	Variables *nwscript.VariableSpace

	Game      game.ID
	Functions game.FunctionTable

	// Stack is a pointer so that writing through it (installing a callee's
	// final stack effect back into its caller, or SAVEBP capturing the
	// current frame as the global layout) is visible to whoever holds the
	// same pointer, exactly as it would be with a shared stack reference.
	// Cloning to a fresh Stack and pointing Stack at the clone is how a
	// branch gets its own independent view.
	Stack *nwscript.Stack

	// Globals is the global-variable array, or nil outside a run that
	// attached one.
	Globals *nwscript.Stack

	// SubStack is the number of cells on Stack that belong to the current
	// subroutine's own frame, as opposed to a caller's frame above it.
	SubStack int

	// SubRETN is set the first time RETN executes for the current
	// subroutine and never cleared during that subroutine's analysis.
	SubRETN bool

	// ReturnStack is the subroutine's canonical exit stack, snapshotted at
	// its first RETN.
	ReturnStack nwscript.Stack

	Options Options
	Logger  Logger
}

func (ctx *Context) addVariable(t nwscript.VariableType, use nwscript.VariableUse) *nwscript.Variable {
	v := ctx.Variables.New(t, use)
	v.Creator = ctx.Instruction
	if ctx.Instruction != nil {
		ctx.Instruction.Touch(v)
	}
	return v
}

func (ctx *Context) readVariable(offset int) nwscript.VariableType {
	v := ctx.Stack.At(offset)
	v.AddReader(ctx.Instruction)
	if ctx.Instruction != nil {
		ctx.Instruction.Touch(v)
	}
	return v.Type
}

func (ctx *Context) writeVariable(offset int, t nwscript.VariableType) {
	if t != nwscript.TypeAny {
		ctx.Stack.At(offset).Type = t
	}
	ctx.markWritten(offset)
}

// markWritten records inst as a writer of the cell at offset without
// touching its type, mirroring the single-argument overload of the
// original's writeVariable.
func (ctx *Context) markWritten(offset int) {
	v := ctx.Stack.At(offset)
	v.AddWriter(ctx.Instruction)
	if ctx.Instruction != nil {
		ctx.Instruction.Touch(v)
	}
}

func (ctx *Context) pushVariable(t nwscript.VariableType, use nwscript.VariableUse) *nwscript.Variable {
	v := ctx.addVariable(t, use)
	ctx.pushExisting(v)
	return v
}

// pushExisting pushes an already-created Variable back onto the stack
// without allocating a new one, as DESTRUCT does when it restores the
// cells it was told to preserve.
func (ctx *Context) pushExisting(v *nwscript.Variable) {
	ctx.SubStack++
	ctx.Stack.Push(v)
}

// popVariable pops the top cell, optionally recording the instruction as a
// reader of the popped Variable first (a plain stack-cleanup pop doesn't
// count as a read of the value it discards).
func (ctx *Context) popVariable(reading bool) *nwscript.Variable {
	if reading {
		ctx.readVariable(0)
	}
	v := ctx.Stack.At(0)
	ctx.SubStack--
	ctx.Stack.Pop()
	return v
}

func (ctx *Context) duplicateVariable(offset int) {
	src := ctx.Stack.At(offset)
	src.AddReader(ctx.Instruction)
	if ctx.Instruction != nil {
		ctx.Instruction.Touch(src)
	}

	dup := ctx.addVariable(src.Type, nwscript.VariableUseUnknown)
	ctx.SubStack++
	ctx.Stack.Push(dup)

	src.LinkDuplicate(dup)
}

func (ctx *Context) checkVariableType(offset int, t nwscript.VariableType) bool {
	v := ctx.Stack.At(offset)
	return v.Type == nwscript.TypeAny || v.Type == t
}

func (ctx *Context) setVariableType(offset int, t nwscript.VariableType) {
	if t == nwscript.TypeAny {
		return
	}
	ctx.Stack.At(offset).Type = t
}

// sameVariableType refines two Variables toward a single shared type: if
// exactly one side is Any, both take the other's type.
func sameVariableType(v1, v2 *nwscript.Variable) {
	if v1 == nil || v2 == nil {
		return
	}
	t := v1.Type
	if t == nwscript.TypeAny {
		t = v2.Type
	}
	v1.Type = t
	v2.Type = t
}

func (ctx *Context) sameVariableTypeAt(offset1, offset2 int) {
	sameVariableType(ctx.Stack.At(offset1), ctx.Stack.At(offset2))
}
