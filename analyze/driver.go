package analyze

import "github.com/clone2727/xoreos-tools"

// analyzeSubRoutine implements the driver's per-subroutine step: reconcile
// against a previously-finished subroutine, reject re-entrant recursion, or
// walk the subroutine's entry block for the first time.
func analyzeSubRoutine(ctx *Context) error {
	sub := ctx.Sub

	switch sub.AnalyzeState {
	case nwscript.AnalyzeStateFinished:
		return reconcileSubRoutine(ctx)
	case nwscript.AnalyzeStateInProgress:
		if ctx.Logger != nil {
			ctx.Logger.Warnf("recursion detected: subroutine @%08X is already in progress", sub.Address)
		}
		return fail(Recursion, sub.Address, "subroutine already in progress")
	}

	sub.AnalyzeState = nwscript.AnalyzeStateInProgress

	if entry := sub.EntryBlock(); entry != nil {
		body := *ctx
		body.Block = entry
		body.SubStack = 0
		body.SubRETN = false
		body.ReturnStack = nil

		if err := analyzeBlock(&body); err != nil {
			return err
		}

		*ctx.Stack = body.ReturnStack
		ctx.SubStack -= len(sub.Params)
	}

	sub.AnalyzeState = nwscript.AnalyzeStateFinished

	fixupDuplicateTypes(ctx.Variables)

	return nil
}

// reconcileSubRoutine runs when a subroutine has already been fully
// analyzed once (JSR revisits it): it doesn't re-walk the CFG, it only
// unifies the caller's argument and result cells against the signature
// discovered the first time, and consumes those cells from the caller's
// stack exactly as the first pass did.
func reconcileSubRoutine(ctx *Context) error {
	sub := ctx.Sub

	for i := 0; i < len(sub.Params); i++ {
		sameVariableType(sub.Params[i], ctx.Stack.At(0))
		ctx.popVariable(false)
	}

	for i := 0; i < len(sub.Returns); i++ {
		sameVariableType(sub.Returns[i], ctx.Stack.At(len(sub.Returns)-1-i))
	}

	return nil
}

// analyzeBlock walks one basic block's instructions in order, then recurses
// into every child edge that isn't a call or a STORESTATE boundary, cloning
// the stack per child so sibling branches don't see each other's effects.
func analyzeBlock(ctx *Context) error {
	b := ctx.Block

	switch b.AnalyzeState {
	case nwscript.AnalyzeStateFinished:
		return nil
	case nwscript.AnalyzeStateInProgress:
		if ctx.Logger != nil {
			ctx.Logger.Warnf("recursion detected: block @%08X is already in progress", b.Address)
		}
		return fail(Recursion, b.Address, "block already in progress")
	}

	b.AnalyzeState = nwscript.AnalyzeStateInProgress

	if ctx.Logger != nil {
		ctx.Logger.Debugf("entering block @%08X", b.Address)
	}

	for _, inst := range b.Instructions {
		ctx.Instruction = inst
		if err := analyzeInstruction(ctx); err != nil {
			return err
		}
	}
	ctx.Instruction = nil

	b.AnalyzeState = nwscript.AnalyzeStateFinished

	if ctx.Logger != nil {
		ctx.Logger.Debugf("leaving block @%08X", b.Address)
	}

	if len(b.Children) != len(b.ChildrenTypes) {
		return fail(InvalidArgument, b.Address, "children/childrenTypes length mismatch")
	}

	for i, child := range b.Children {
		edge := b.ChildrenTypes[i]
		if edge == nwscript.BlockEdgeFunctionCall || edge == nwscript.BlockEdgeStoreState {
			continue
		}

		clone := ctx.Stack.Clone()
		branch := *ctx
		branch.Block = child
		branch.Stack = &clone

		if err := analyzeBlock(&branch); err != nil {
			return err
		}

		if branch.SubRETN {
			ctx.SubRETN = true
		}
		if len(branch.ReturnStack) > 0 {
			ctx.ReturnStack = branch.ReturnStack
		}
	}

	return nil
}

// analyzeInstruction snapshots the instruction's visible stack (truncated
// to the current subroutine's own frame) and dispatches to the opcode's
// stack-effect handler, if any.
func analyzeInstruction(ctx *Context) error {
	inst := ctx.Instruction
	inst.Stack = ctx.Stack.Truncate(ctx.SubStack)

	handler := dispatch[inst.Opcode]
	if handler == nil {
		return nil
	}

	if ctx.Logger != nil {
		ctx.Logger.Debugf("analyzing %s @%08X", inst.Opcode, inst.Address)
	}

	return handler(ctx)
}
