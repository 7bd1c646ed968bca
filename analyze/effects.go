package analyze

import "github.com/clone2727/xoreos-tools"

// opPush handles RSADD and CONST: push one cell of the type the
// instruction's type tag names.
func opPush(ctx *Context) error {
	t := nwscript.InstructionTypeToVariableType(ctx.Instruction.Type)
	ctx.pushVariable(t, nwscript.VariableUseLocal)
	return nil
}

// opPop handles MOVSP. An underrun against the current subroutine's own
// frame isn't an error here — it's the signal that the subroutine is
// tearing down a caller-supplied argument, which is how parameters are
// discovered.
func opPop(ctx *Context) error {
	inst := ctx.Instruction
	arg := inst.Args[0]
	if arg > 0 || arg%4 != 0 {
		return fail(InvalidArgument, inst.Address, "invalid argument %d", arg)
	}

	size := int(arg / -4)
	for size > 0 {
		size--
		if ctx.SubStack == 0 {
			ctx.SubStack++
			ctx.Sub.Params = append(ctx.Sub.Params, ctx.Stack.At(0))
			if ctx.Logger != nil {
				ctx.Logger.Debugf("discovered parameter %d of subroutine @%08X", len(ctx.Sub.Params)-1, ctx.Sub.Address)
			}
		}
		ctx.popVariable(false)
	}
	return nil
}

// opJSR calls into a subroutine. In globals mode it's ignored; otherwise it
// recurses into the callee sharing the caller's stack, then adopts the
// callee's final SubStack accounting.
func opJSR(ctx *Context) error {
	if ctx.Mode == ModeGlobal {
		return nil
	}

	inst := ctx.Instruction
	if len(inst.Branches) == 0 || inst.Branches[0] == nil ||
		inst.Branches[0].Block == nil || inst.Branches[0].Block.SubRoutine == nil {
		return fail(InvalidArgument, inst.Address, "JSR target has no subroutine")
	}

	callee := *ctx
	callee.Sub = inst.Branches[0].Block.SubRoutine

	if err := analyzeSubRoutine(&callee); err != nil {
		return err
	}

	ctx.SubStack = callee.SubStack
	return nil
}

// opRETN marks the current subroutine's return. Only the first RETN in a
// subroutine's analysis has any effect: it strips the parameter-region
// cells that CPDOWNSP tentatively recorded as returns, and snapshots the
// stack as the subroutine's canonical exit state.
func opRETN(ctx *Context) error {
	if ctx.SubRETN {
		return nil
	}

	sub := ctx.Sub
	n := len(sub.Params)
	if len(sub.Returns) < n {
		n = len(sub.Returns)
	}
	sub.Returns = sub.Returns[n:]

	ctx.ReturnStack = ctx.Stack.Clone()
	ctx.SubRETN = true
	return nil
}

// opCPTOPSP handles CPTOPSP: duplicate cells from depth offset onto the
// top, linking each duplicated pair so TypeFixup can unify them later.
func opCPTOPSP(ctx *Context) error {
	inst := ctx.Instruction
	offset, size := inst.Args[0], inst.Args[1]

	if size < 0 || size%4 != 0 || offset > -4 || offset%4 != 0 {
		return fail(InvalidArgument, inst.Address, "invalid arguments %d, %d", offset, size)
	}

	off := nwscript.NormalizeOffset(offset)
	n := int(size / 4)

	if off >= ctx.Stack.Len() {
		return fail(StackUnderrun, inst.Address, "stack underrun")
	}

	for n > 0 {
		ctx.duplicateVariable(off)
		n--
	}
	return nil
}

// opCPDOWNSP handles CPDOWNSP: copy the top cells down into cells at
// offset, without changing stack depth. A destination outside the current
// frame, before any RETN, is recorded as a tentative return slot.
func opCPDOWNSP(ctx *Context) error {
	inst := ctx.Instruction
	offset, size := inst.Args[0], inst.Args[1]

	if size < 0 || size%4 != 0 || offset > -4 || offset%4 != 0 {
		return fail(InvalidArgument, inst.Address, "invalid arguments %d, %d", offset, size)
	}

	off := nwscript.NormalizeOffset(offset)
	n := int(size / 4)

	if n > ctx.Stack.Len() || off >= ctx.Stack.Len() {
		return fail(StackUnderrun, inst.Address, "stack underrun")
	}

	for n > 0 {
		pos := n - 1

		t := ctx.readVariable(pos)
		if t == nwscript.TypeAny {
			t = ctx.Stack.At(off).Type
			ctx.Stack.At(pos).Type = t
		}

		ctx.writeVariable(off, t)

		if !ctx.SubRETN && off >= ctx.SubStack {
			underrun := off - ctx.SubStack + 1
			if len(ctx.Sub.Returns) < underrun {
				grown := make([]*nwscript.Variable, underrun)
				copy(grown, ctx.Sub.Returns)
				ctx.Sub.Returns = grown
			}
			ctx.Sub.Returns[underrun-1] = ctx.Stack.At(off)
			if ctx.Logger != nil {
				ctx.Logger.Debugf("recorded tentative return slot %d of subroutine @%08X", underrun-1, ctx.Sub.Address)
			}
		}

		off--
		n--
	}
	return nil
}

// opCPTOPBP handles CPTOPBP: duplicate global cells onto the top of the
// stack, linking each pushed cell to its global the same way CPTOPSP links
// stack duplicates, so TypeFixup can unify them later.
func opCPTOPBP(ctx *Context) error {
	inst := ctx.Instruction
	offset, size := inst.Args[0], inst.Args[1]

	if size < 0 || size%4 != 0 || offset > -4 || offset%4 != 0 {
		return fail(InvalidArgument, inst.Address, "invalid arguments %d, %d", offset, size)
	}

	off := nwscript.NormalizeOffset(offset)
	n := int(size / 4)

	if ctx.Globals == nil {
		return fail(NoGlobals, inst.Address, "no context globals")
	}
	if off >= ctx.Globals.Len() || n > off+1 {
		return fail(GlobalsUnderrun, inst.Address, "globals underrun")
	}

	for n > 0 {
		g := ctx.Globals.At(off)
		g.AddReader(inst)
		inst.Touch(g)

		dup := ctx.pushVariable(g.Type, nwscript.VariableUseUnknown)
		g.LinkDuplicate(dup)

		off--
		n--
	}
	return nil
}

// opCPDOWNBP handles CPDOWNBP: write the top cells into the global array.
func opCPDOWNBP(ctx *Context) error {
	inst := ctx.Instruction
	offset, size := inst.Args[0], inst.Args[1]

	if size < 0 || size%4 != 0 || offset > -4 || offset%4 != 0 {
		return fail(InvalidArgument, inst.Address, "invalid arguments %d, %d", offset, size)
	}

	off := nwscript.NormalizeOffset(offset)
	n := int(size / 4)

	if ctx.Globals == nil {
		return fail(NoGlobals, inst.Address, "no context globals")
	}
	if off >= ctx.Globals.Len() || n > off+1 {
		return fail(GlobalsUnderrun, inst.Address, "globals underrun")
	}

	for n > 0 {
		pos := n - 1

		t := ctx.readVariable(pos)
		g := ctx.Globals.At(off)
		if t == nwscript.TypeAny {
			t = g.Type
			ctx.Stack.At(pos).Type = t
		}

		g.AddWriter(inst)
		inst.Touch(g)
		g.Type = t

		off--
		n--
	}
	return nil
}

// opACTION handles a call to a game engine function.
func opACTION(ctx *Context) error {
	inst := ctx.Instruction
	fn, nArgs := inst.Args[0], inst.Args[1]

	if fn < 0 || nArgs < 0 {
		return fail(InvalidArgument, inst.Address, "invalid arguments %d, %d", fn, nArgs)
	}

	declared, ok := ctx.Functions.ParameterCount(ctx.Game, fn)
	if !ok {
		return fail(InvalidArgument, inst.Address, "unknown engine function %d", fn)
	}
	if declared < int(nArgs) {
		if ctx.Options.StrictActionArity {
			return fail(InvalidArgument, inst.Address, "invalid number of parameters (%d < %d)", declared, nArgs)
		}
		if ctx.Logger != nil {
			ctx.Logger.Warnf("engine function %d called with %d args, only %d declared; widening extras to Any", fn, nArgs, declared)
		}
	}

	params, _ := ctx.Functions.Parameters(ctx.Game, fn)

	for i := 0; i < int(nArgs); i++ {
		pt := nwscript.TypeAny
		if i < len(params) {
			pt = params[i]
		}
		n := 1
		if pt == nwscript.TypeVector {
			pt = nwscript.TypeFloat
			n = 3
		}

		if pt == nwscript.TypeScriptState {
			continue
		}

		for n > 0 {
			if ctx.Stack.Len() == 0 {
				return fail(StackUnderrun, inst.Address, "stack underrun")
			}
			if pt != nwscript.TypeAny {
				if !ctx.checkVariableType(0, pt) {
					return fail(TypeMismatch, inst.Address, "parameter type mismatch")
				}
				ctx.setVariableType(0, pt)
			}
			ctx.popVariable(true)
			n--
		}
	}

	ret, _ := ctx.Functions.ReturnType(ctx.Game, fn)
	switch ret {
	case nwscript.TypeVoid:
		return nil
	case nwscript.TypeVector:
		ctx.pushVariable(nwscript.TypeFloat, nwscript.VariableUseLocal)
		ctx.pushVariable(nwscript.TypeFloat, nwscript.VariableUseLocal)
		ctx.pushVariable(nwscript.TypeFloat, nwscript.VariableUseLocal)
	default:
		ctx.pushVariable(ret, nwscript.VariableUseLocal)
	}
	return nil
}

// opBoolShift handles the boolean and shift group: both operands must
// unify to Int.
func opBoolShift(ctx *Context) error {
	inst := ctx.Instruction
	if ctx.Stack.Len() < 2 {
		return fail(StackUnderrun, inst.Address, "stack underrun")
	}
	if !ctx.checkVariableType(0, nwscript.TypeInt) || !ctx.checkVariableType(1, nwscript.TypeInt) {
		return fail(TypeMismatch, inst.Address, "invalid types")
	}
	ctx.setVariableType(0, nwscript.TypeInt)
	ctx.setVariableType(1, nwscript.TypeInt)

	ctx.popVariable(true)
	ctx.popVariable(true)

	ctx.pushVariable(nwscript.TypeInt, nwscript.VariableUseLocal)
	return nil
}

// opEq handles EQ, NEQ (with an optional size argument for structural
// comparison of a compound) and GEQ/GT/LT/LEQ.
func opEq(ctx *Context) error {
	inst := ctx.Instruction

	if inst.ArgCount == 1 && (inst.Args[0] < 0 || inst.Args[0]%4 != 0) {
		return fail(InvalidArgument, inst.Address, "invalid argument %d", inst.Args[0])
	}

	size := 1
	if inst.ArgCount == 1 {
		size = int(inst.Args[0] / 4)
	}
	if ctx.Stack.Len() < size {
		return fail(StackUnderrun, inst.Address, "stack underrun")
	}

	vars1 := make([]*nwscript.Variable, 0, size)
	vars2 := make([]*nwscript.Variable, 0, size)

	for i := 0; i < size; i++ {
		vars1 = append(vars1, ctx.popVariable(true))
	}
	for i := 0; i < size; i++ {
		vars2 = append(vars2, ctx.popVariable(true))
	}
	for i := 0; i < size; i++ {
		sameVariableType(vars1[i], vars2[i])
	}

	ctx.pushVariable(nwscript.TypeInt, nwscript.VariableUseLocal)
	return nil
}

// opUnArithm handles NEG, NOT and COMP.
func opUnArithm(ctx *Context) error {
	inst := ctx.Instruction
	if ctx.Stack.Len() < 1 {
		return fail(StackUnderrun, inst.Address, "stack underrun")
	}

	t := nwscript.InstructionTypeToVariableType(inst.Type)
	if t == nwscript.TypeVoid {
		return fail(InvalidInstructionType, inst.Address, "invalid instruction type %d", inst.Type)
	}

	if !ctx.checkVariableType(0, t) {
		return fail(TypeMismatch, inst.Address, "invalid types")
	}
	ctx.setVariableType(0, t)

	ctx.popVariable(true)
	ctx.pushVariable(t, nwscript.VariableUseLocal)
	return nil
}

// binArithmHomogeneousType maps a same-type-on-both-sides instruction tag
// to that scalar type, or reports it isn't one of those tags.
func binArithmHomogeneousType(t nwscript.InstructionType) (nwscript.VariableType, bool) {
	switch t {
	case nwscript.InstTypeIntInt:
		return nwscript.TypeInt, true
	case nwscript.InstTypeFloatFloat:
		return nwscript.TypeFloat, true
	case nwscript.InstTypeStringString:
		return nwscript.TypeString, true
	case nwscript.InstTypeEngineType0EngineType0:
		return nwscript.TypeEngineType0, true
	case nwscript.InstTypeEngineType1EngineType1:
		return nwscript.TypeEngineType1, true
	case nwscript.InstTypeEngineType2EngineType2:
		return nwscript.TypeEngineType2, true
	case nwscript.InstTypeEngineType3EngineType3:
		return nwscript.TypeEngineType3, true
	case nwscript.InstTypeEngineType4EngineType4:
		return nwscript.TypeEngineType4, true
	case nwscript.InstTypeEngineType5EngineType5:
		return nwscript.TypeEngineType5, true
	}
	return nwscript.TypeVoid, false
}

// opBinArithm handles ADD, SUB, MUL, DIV, MOD. The instruction's type tag
// encodes both operand types at once, so the shape of the pop/push differs
// by case rather than by opcode.
func opBinArithm(ctx *Context) error {
	inst := ctx.Instruction
	if ctx.Stack.Len() < 2 {
		return fail(StackUnderrun, inst.Address, "stack underrun")
	}

	if t, ok := binArithmHomogeneousType(inst.Type); ok {
		if !ctx.checkVariableType(0, t) || !ctx.checkVariableType(1, t) {
			return fail(TypeMismatch, inst.Address, "invalid types")
		}
		for i := 0; i < 2; i++ {
			ctx.setVariableType(0, t)
			ctx.popVariable(true)
		}
		ctx.pushVariable(t, nwscript.VariableUseLocal)
		return nil
	}

	switch inst.Type {
	case nwscript.InstTypeIntFloat:
		if !ctx.checkVariableType(0, nwscript.TypeFloat) || !ctx.checkVariableType(1, nwscript.TypeInt) {
			return fail(TypeMismatch, inst.Address, "invalid types")
		}
		ctx.setVariableType(0, nwscript.TypeFloat)
		ctx.setVariableType(1, nwscript.TypeInt)
		ctx.popVariable(true)
		ctx.popVariable(true)
		ctx.pushVariable(nwscript.TypeFloat, nwscript.VariableUseLocal)

	case nwscript.InstTypeFloatInt:
		if !ctx.checkVariableType(0, nwscript.TypeInt) || !ctx.checkVariableType(1, nwscript.TypeFloat) {
			return fail(TypeMismatch, inst.Address, "invalid types")
		}
		ctx.setVariableType(0, nwscript.TypeInt)
		ctx.setVariableType(1, nwscript.TypeFloat)
		ctx.popVariable(true)
		ctx.popVariable(true)
		ctx.pushVariable(nwscript.TypeFloat, nwscript.VariableUseLocal)

	case nwscript.InstTypeVectorVector:
		for i := 0; i < 6; i++ {
			if !ctx.checkVariableType(i, nwscript.TypeFloat) {
				return fail(TypeMismatch, inst.Address, "invalid types")
			}
		}
		for i := 0; i < 6; i++ {
			ctx.setVariableType(0, nwscript.TypeFloat)
			ctx.popVariable(true)
		}
		for i := 0; i < 3; i++ {
			ctx.pushVariable(nwscript.TypeFloat, nwscript.VariableUseLocal)
		}

	case nwscript.InstTypeVectorFloat, nwscript.InstTypeFloatVector:
		for i := 0; i < 4; i++ {
			if !ctx.checkVariableType(i, nwscript.TypeFloat) {
				return fail(TypeMismatch, inst.Address, "invalid types")
			}
		}
		for i := 0; i < 4; i++ {
			ctx.setVariableType(0, nwscript.TypeFloat)
			ctx.popVariable(true)
		}
		for i := 0; i < 3; i++ {
			ctx.pushVariable(nwscript.TypeFloat, nwscript.VariableUseLocal)
		}

	default:
		return fail(InvalidInstructionType, inst.Address, "invalid instruction type %d", inst.Type)
	}

	return nil
}

// opCond handles JZ and JNZ. The CFG has already encoded the branch; this
// only accounts for the popped condition value.
func opCond(ctx *Context) error {
	inst := ctx.Instruction
	if ctx.Stack.Len() < 1 {
		return fail(StackUnderrun, inst.Address, "stack underrun")
	}
	if !ctx.checkVariableType(0, nwscript.TypeInt) {
		return fail(TypeMismatch, inst.Address, "invalid types")
	}
	ctx.setVariableType(0, nwscript.TypeInt)
	ctx.popVariable(true)
	return nil
}

// opDestruct handles DESTRUCT: pop stackSize/4 cells (stackSize and the
// other two arguments are byte counts), but preserve the ones
// in [dontRemoveOffset, dontRemoveOffset+dontRemoveSize) and push those
// back in their original relative order.
func opDestruct(ctx *Context) error {
	inst := ctx.Instruction
	stackSize := inst.Args[0]
	dontRemoveOffset := inst.Args[1]
	dontRemoveSize := inst.Args[2]

	if stackSize%4 != 0 || dontRemoveOffset%4 != 0 || dontRemoveSize%4 != 0 ||
		stackSize < 0 || dontRemoveOffset < 0 || dontRemoveSize < 0 {
		return fail(InvalidArgument, inst.Address, "invalid arguments %d, %d, %d",
			stackSize, dontRemoveOffset, dontRemoveSize)
	}

	var preserved []*nwscript.Variable

	for stackSize > 0 {
		if stackSize <= dontRemoveOffset+dontRemoveSize && stackSize > dontRemoveOffset {
			preserved = append(preserved, ctx.Stack.At(0))
		}
		ctx.popVariable(false)
		stackSize -= 4
	}

	for i := len(preserved) - 1; i >= 0; i-- {
		ctx.pushExisting(preserved[i])
	}

	return nil
}

// opSAVEBP handles SAVEBP: the current stack frame becomes the global
// layout, once, in globals mode only.
func opSAVEBP(ctx *Context) error {
	inst := ctx.Instruction

	if ctx.Mode != ModeGlobal {
		return fail(SaveBPOutsideGlobals, inst.Address, "found SAVEBP outside of globals analysis")
	}
	if ctx.Globals == nil {
		return fail(NoGlobals, inst.Address, "no context globals")
	}
	if ctx.Globals.Len() != 0 {
		return fail(MultipleSaveBP, inst.Address, "encountered multiple SAVEBP calls")
	}

	*ctx.Globals = ctx.Stack.Clone()

	dummy := ctx.Options.DummyFrameSize
	if dummy <= 0 {
		dummy = DummyFrameSize
	}
	if dummy > ctx.Globals.Len() {
		dummy = ctx.Globals.Len()
	}
	*ctx.Globals = (*ctx.Globals)[:ctx.Globals.Len()-dummy]

	for _, cell := range *ctx.Globals {
		cell.Variable.Use = nwscript.VariableUseGlobal
	}

	ctx.pushVariable(nwscript.TypeInt, nwscript.VariableUseLocal)
	return nil
}

// opRESTOREBP handles RESTOREBP.
func opRESTOREBP(ctx *Context) error {
	inst := ctx.Instruction
	if ctx.Stack.Len() < 1 {
		return fail(StackUnderrun, inst.Address, "stack underrun")
	}
	ctx.popVariable(true)
	return nil
}

// opModifySP handles DECSP and INCSP: read and write one Int cell of the
// local frame in place, without changing stack depth.
func opModifySP(ctx *Context) error {
	inst := ctx.Instruction
	offset := inst.Args[0]

	if offset > -4 || offset%4 != 0 {
		return fail(InvalidArgument, inst.Address, "invalid argument %d", offset)
	}

	off := nwscript.NormalizeOffset(offset)
	if off >= ctx.Stack.Len() {
		return fail(StackUnderrun, inst.Address, "stack underrun")
	}

	if !ctx.checkVariableType(off, nwscript.TypeInt) {
		return fail(TypeMismatch, inst.Address, "invalid types")
	}
	ctx.setVariableType(off, nwscript.TypeInt)

	ctx.readVariable(off)
	ctx.markWritten(off)
	return nil
}

// opModifyBP handles DECBP and INCBP: the same as opModifySP, but against
// the global array.
func opModifyBP(ctx *Context) error {
	inst := ctx.Instruction

	if ctx.Globals == nil {
		return fail(NoGlobals, inst.Address, "no context globals")
	}

	offset := inst.Args[0]
	if offset > -4 || offset%4 != 0 {
		return fail(InvalidArgument, inst.Address, "invalid argument %d", offset)
	}

	off := nwscript.NormalizeOffset(offset)
	if off >= ctx.Globals.Len() {
		return fail(GlobalsUnderrun, inst.Address, "globals underrun")
	}

	g := ctx.Globals.At(off)
	if g.Type != nwscript.TypeAny && g.Type != nwscript.TypeInt {
		return fail(TypeMismatch, inst.Address, "invalid types")
	}
	g.Type = nwscript.TypeInt

	g.AddReader(inst)
	g.AddWriter(inst)
	inst.Touch(g)
	return nil
}
