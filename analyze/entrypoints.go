package analyze

import (
	"github.com/clone2727/xoreos-tools"
	"github.com/clone2727/xoreos-tools/game"
)

func seedDummyFrame(ctx *Context) {
	n := ctx.Options.DummyFrameSize
	if n <= 0 {
		n = DummyFrameSize
	}
	for i := 0; i < n; i++ {
		ctx.pushVariable(nwscript.TypeAny, nwscript.VariableUseUnknown)
	}
}

func newContext(mode Mode, sub *nwscript.SubRoutine, variables *nwscript.VariableSpace,
	gameID game.ID, functions game.FunctionTable, globals *nwscript.Stack, opts Options) *Context {

	if opts.Logger == nil {
		opts.Logger = NewNoopLogger()
	}

	stack := nwscript.Stack{}

	return &Context{
		Mode:      mode,
		Sub:       sub,
		Variables: variables,
		Game:      gameID,
		Functions: functions,
		Stack:     &stack,
		Globals:   globals,
		Options:   opts,
		Logger:    opts.Logger,
	}
}

// AnalyzeGlobals analyzes the _global initializer in isolation: JSR is
// ignored, and after it returns globals holds the inferred global-variable
// layout (the dummy seed frame stripped out by SAVEBP).
func AnalyzeGlobals(sub *nwscript.SubRoutine, variables *nwscript.VariableSpace,
	gameID game.ID, functions game.FunctionTable, globals *nwscript.Stack, opts Options) error {

	ctx := newContext(ModeGlobal, sub, variables, gameID, functions, globals, opts)
	seedDummyFrame(ctx)

	return analyzeSubRoutine(ctx)
}

// AnalyzeSubRoutineStack analyzes whole-program control flow starting from
// sub, recursing into every JSR target it reaches. globals may be nil, or
// the result of a prior AnalyzeGlobals pass.
func AnalyzeSubRoutineStack(sub *nwscript.SubRoutine, variables *nwscript.VariableSpace,
	gameID game.ID, functions game.FunctionTable, globals *nwscript.Stack, opts Options) error {

	ctx := newContext(ModeSubRoutine, sub, variables, gameID, functions, globals, opts)
	seedDummyFrame(ctx)

	return analyzeSubRoutine(ctx)
}
