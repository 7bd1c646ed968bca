package analyze

import (
	"testing"

	"github.com/clone2727/xoreos-tools"
	"github.com/clone2727/xoreos-tools/game"
)

// newInstruction builds a fixture Instruction directly, bypassing any
// disassembler. Fixtures in this file assemble a CFG by hand rather than
// through a textual assembler.
func newInstruction(addr uint32, op nwscript.Opcode, typ nwscript.InstructionType, args ...int32) *nwscript.Instruction {
	inst := &nwscript.Instruction{Address: addr, Opcode: op, Type: typ, ArgCount: len(args)}
	for i, a := range args {
		inst.Args[i] = a
	}
	return inst
}

func newBlock(addr uint32, insts ...*nwscript.Instruction) *nwscript.Block {
	b := &nwscript.Block{Address: addr, Instructions: insts}
	for _, inst := range insts {
		inst.Block = b
	}
	return b
}

// S1: a subroutine that pushes one Int and immediately tears it down again
// has no parameters, no returns, and leaves behind exactly one Variable.
func TestMinimalPushAndPop(t *testing.T) {
	push := newInstruction(0x00, nwscript.OpcodeCONST, nwscript.InstTypeInt, 7)
	pop := newInstruction(0x08, nwscript.OpcodeMOVSP, nwscript.InstTypeNone, -4)
	retn := newInstruction(0x10, nwscript.OpcodeRETN, nwscript.InstTypeNone)

	block := newBlock(0x00, push, pop, retn)
	sub := &nwscript.SubRoutine{Address: 0x00, Blocks: []*nwscript.Block{block}}

	vars := nwscript.NewVariableSpace()
	if err := AnalyzeSubRoutineStack(sub, vars, game.IDUnknown, nil, nil, DefaultOptions()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sub.Params) != 0 {
		t.Errorf("Params = %v, want none", sub.Params)
	}
	if len(sub.Returns) != 0 {
		t.Errorf("Returns = %v, want none", sub.Returns)
	}

	var pushed *nwscript.Variable
	for _, v := range vars.All() {
		if v.Creator == push {
			pushed = v
		}
	}
	if pushed == nil {
		t.Fatal("expected a Variable created by the CONST instruction")
	}
	if pushed.Type != nwscript.TypeInt {
		t.Errorf("Type = %v, want Int", pushed.Type)
	}
	if pushed.Use != nwscript.VariableUseLocal {
		t.Errorf("Use = %v, want Local", pushed.Use)
	}
	if len(pushed.Writers) != 0 {
		t.Errorf("Writers = %v, want none (a plain MOVSP cleanup pop isn't a write)", pushed.Writers)
	}
}

// S2: a callee that copies its one caller-supplied argument down into its
// own return slot discovers exactly one parameter and one return, both Int.
func TestSingleParameterSingleReturn(t *testing.T) {
	fCopy := newInstruction(0x100, nwscript.OpcodeCPDOWNSP, nwscript.InstTypeNone, -8, 4)
	fPop := newInstruction(0x108, nwscript.OpcodeMOVSP, nwscript.InstTypeNone, -4)
	fRetn := newInstruction(0x10C, nwscript.OpcodeRETN, nwscript.InstTypeNone)
	fBlock := newBlock(0x100, fCopy, fPop, fRetn)

	f := &nwscript.SubRoutine{Address: 0x100, Blocks: []*nwscript.Block{fBlock}}
	fBlock.SubRoutine = f

	push := newInstruction(0x00, nwscript.OpcodeCONST, nwscript.InstTypeInt, 1)
	jsr := newInstruction(0x08, nwscript.OpcodeJSR, nwscript.InstTypeNone)
	jsr.Branches = []*nwscript.Instruction{fCopy}
	pop := newInstruction(0x0C, nwscript.OpcodeMOVSP, nwscript.InstTypeNone, -4)
	retn := newInstruction(0x10, nwscript.OpcodeRETN, nwscript.InstTypeNone)

	callerBlock := newBlock(0x00, push, jsr, pop, retn)
	caller := &nwscript.SubRoutine{Address: 0x00, Blocks: []*nwscript.Block{callerBlock}}
	callerBlock.SubRoutine = caller

	vars := nwscript.NewVariableSpace()
	if err := AnalyzeSubRoutineStack(caller, vars, game.IDUnknown, nil, nil, DefaultOptions()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.Params) != 1 {
		t.Fatalf("f.Params = %v, want 1 entry", f.Params)
	}
	if len(f.Returns) != 1 {
		t.Fatalf("f.Returns = %v, want 1 entry", f.Returns)
	}
	if f.Params[0].Type != nwscript.TypeInt {
		t.Errorf("f.Params[0].Type = %v, want Int", f.Params[0].Type)
	}
	if f.Returns[0].Type != nwscript.TypeInt {
		t.Errorf("f.Returns[0].Type = %v, want Int", f.Returns[0].Type)
	}
}

// S3: an engine-function call taking and returning a Vector consumes and
// produces three float cells without disturbing the caller's own frame
// accounting.
func TestVectorActionCall(t *testing.T) {
	const fn = int32(42)

	table := game.NewTable()
	table.Set(game.IDNWN, fn, game.Signature{
		Name:       "VectorIdentity",
		Parameters: []nwscript.VariableType{nwscript.TypeVector},
		Return:     nwscript.TypeVector,
	})

	x := newInstruction(0x00, nwscript.OpcodeCONST, nwscript.InstTypeFloat)
	y := newInstruction(0x08, nwscript.OpcodeCONST, nwscript.InstTypeFloat)
	z := newInstruction(0x10, nwscript.OpcodeCONST, nwscript.InstTypeFloat)
	action := newInstruction(0x18, nwscript.OpcodeACTION, nwscript.InstTypeNone, fn, 1)
	pop := newInstruction(0x20, nwscript.OpcodeMOVSP, nwscript.InstTypeNone, -12)
	retn := newInstruction(0x28, nwscript.OpcodeRETN, nwscript.InstTypeNone)

	block := newBlock(0x00, x, y, z, action, pop, retn)
	sub := &nwscript.SubRoutine{Address: 0x00, Blocks: []*nwscript.Block{block}}

	vars := nwscript.NewVariableSpace()
	if err := AnalyzeSubRoutineStack(sub, vars, game.IDNWN, table, nil, DefaultOptions()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sub.Params) != 0 || len(sub.Returns) != 0 {
		t.Fatalf("Params/Returns = %v/%v, want none", sub.Params, sub.Returns)
	}
}

// S4: CPTOPSP links its duplicate to the source cell. When the duplicate
// later gets pinned to a concrete type through an unrelated operation
// (here, comparison against a literal Int), TypeFixup propagates that type
// back to the original, Any-typed source.
func TestDuplicateUnificationThroughCPTOPSP(t *testing.T) {
	pushAny := newInstruction(0x00, nwscript.OpcodeCONST, nwscript.InstTypeDirect)
	dup := newInstruction(0x08, nwscript.OpcodeCPTOPSP, nwscript.InstTypeNone, -4, 4)
	pushOne := newInstruction(0x10, nwscript.OpcodeCONST, nwscript.InstTypeInt, 1)
	eq := newInstruction(0x18, nwscript.OpcodeEQ, nwscript.InstTypeNone)
	pop := newInstruction(0x20, nwscript.OpcodeMOVSP, nwscript.InstTypeNone, -8)
	retn := newInstruction(0x28, nwscript.OpcodeRETN, nwscript.InstTypeNone)

	block := newBlock(0x00, pushAny, dup, pushOne, eq, pop, retn)
	sub := &nwscript.SubRoutine{Address: 0x00, Blocks: []*nwscript.Block{block}}

	vars := nwscript.NewVariableSpace()
	if err := AnalyzeSubRoutineStack(sub, vars, game.IDUnknown, nil, nil, DefaultOptions()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var x *nwscript.Variable
	for _, v := range vars.All() {
		if v.Creator == pushAny {
			x = v
		}
	}
	if x == nil {
		t.Fatal("expected a Variable created by the initial CONST")
	}
	if x.Type != nwscript.TypeInt {
		t.Errorf("Type = %v, want Int (unified through its CPTOPSP duplicate)", x.Type)
	}
	if len(x.Duplicates) != 0 {
		t.Errorf("Duplicates = %v, want cleared once TypeFixup runs", x.Duplicates)
	}
}

// S5: a subroutine whose only block JSRs back into itself is rejected as
// recursive rather than looping forever.
func TestRecursionIsRejected(t *testing.T) {
	jsr := newInstruction(0x00, nwscript.OpcodeJSR, nwscript.InstTypeNone)
	block := newBlock(0x00, jsr)
	sub := &nwscript.SubRoutine{Address: 0x00, Blocks: []*nwscript.Block{block}}
	block.SubRoutine = sub
	jsr.Branches = []*nwscript.Instruction{jsr}

	vars := nwscript.NewVariableSpace()
	err := AnalyzeSubRoutineStack(sub, vars, game.IDUnknown, nil, nil, DefaultOptions())

	aerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("err = %v (%T), want *Error", err, err)
	}
	if aerr.Kind != Recursion {
		t.Errorf("Kind = %v, want Recursion", aerr.Kind)
	}
}

// S6: SAVEBP in globals mode captures whatever the initializer built above
// the dummy frame as the global-variable array, tagged VariableUseGlobal.
func TestGlobalsDiscovery(t *testing.T) {
	var insts []*nwscript.Instruction
	for i := 0; i < 5; i++ {
		insts = append(insts, newInstruction(uint32(i*8), nwscript.OpcodeCONST, nwscript.InstTypeInt, int32(i)))
	}
	save := newInstruction(0x100, nwscript.OpcodeSAVEBP, nwscript.InstTypeNone)
	retn := newInstruction(0x108, nwscript.OpcodeRETN, nwscript.InstTypeNone)
	insts = append(insts, save, retn)

	block := newBlock(0x00, insts...)
	sub := &nwscript.SubRoutine{Address: 0x00, Blocks: []*nwscript.Block{block}}

	vars := nwscript.NewVariableSpace()
	var globals nwscript.Stack

	if err := AnalyzeGlobals(sub, vars, game.IDUnknown, nil, &globals, DefaultOptions()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if globals.Len() != 5 {
		t.Fatalf("globals.Len() = %d, want 5", globals.Len())
	}
	for i := 0; i < 5; i++ {
		v := globals.At(i)
		if v.Type != nwscript.TypeInt {
			t.Errorf("globals[%d].Type = %v, want Int", i, v.Type)
		}
		if v.Use != nwscript.VariableUseGlobal {
			t.Errorf("globals[%d].Use = %v, want Global", i, v.Use)
		}
	}
}

// Property: Variable ids stay dense across an entire run, regardless of how
// many subroutines and branches contributed to the arena.
func TestVariableIDsAreDense(t *testing.T) {
	push := newInstruction(0x00, nwscript.OpcodeCONST, nwscript.InstTypeInt, 1)
	dup := newInstruction(0x08, nwscript.OpcodeCPTOPSP, nwscript.InstTypeNone, -4, 4)
	pop := newInstruction(0x10, nwscript.OpcodeMOVSP, nwscript.InstTypeNone, -8)
	retn := newInstruction(0x18, nwscript.OpcodeRETN, nwscript.InstTypeNone)

	block := newBlock(0x00, push, dup, pop, retn)
	sub := &nwscript.SubRoutine{Address: 0x00, Blocks: []*nwscript.Block{block}}

	vars := nwscript.NewVariableSpace()
	if err := AnalyzeSubRoutineStack(sub, vars, game.IDUnknown, nil, nil, DefaultOptions()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, v := range vars.All() {
		if v.ID != uint32(i) {
			t.Errorf("vars.All()[%d].ID = %d, want %d", i, v.ID, i)
		}
		if got := vars.At(v.ID); got != v {
			t.Errorf("vars.At(%d) = %p, want %p", v.ID, got, v)
		}
	}
}

// An ACTION call passing more arguments than the engine function declares is
// rejected by default (StrictActionArity), but succeeds with the extra
// arguments widened to Any when the option is turned off.
func TestActionArityStrictByDefault(t *testing.T) {
	const fn = int32(7)

	table := game.NewTable()
	table.Set(game.IDNWN, fn, game.Signature{
		Name:       "OneArg",
		Parameters: []nwscript.VariableType{nwscript.TypeInt},
		Return:     nwscript.TypeVoid,
	})

	pushA := newInstruction(0x00, nwscript.OpcodeCONST, nwscript.InstTypeInt, 1)
	pushB := newInstruction(0x08, nwscript.OpcodeCONST, nwscript.InstTypeInt, 2)
	action := newInstruction(0x10, nwscript.OpcodeACTION, nwscript.InstTypeNone, fn, 2)
	retn := newInstruction(0x18, nwscript.OpcodeRETN, nwscript.InstTypeNone)

	block := newBlock(0x00, pushA, pushB, action, retn)
	sub := &nwscript.SubRoutine{Address: 0x00, Blocks: []*nwscript.Block{block}}

	vars := nwscript.NewVariableSpace()
	err := AnalyzeSubRoutineStack(sub, vars, game.IDNWN, table, nil, DefaultOptions())

	aerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("err = %v (%T), want *Error", err, err)
	}
	if aerr.Kind != InvalidArgument {
		t.Errorf("Kind = %v, want InvalidArgument", aerr.Kind)
	}
}

func TestActionArityPermissiveWidensExtraArgs(t *testing.T) {
	const fn = int32(7)

	table := game.NewTable()
	table.Set(game.IDNWN, fn, game.Signature{
		Name:       "OneArg",
		Parameters: []nwscript.VariableType{nwscript.TypeInt},
		Return:     nwscript.TypeVoid,
	})

	pushA := newInstruction(0x00, nwscript.OpcodeCONST, nwscript.InstTypeInt, 1)
	pushB := newInstruction(0x08, nwscript.OpcodeCONST, nwscript.InstTypeInt, 2)
	action := newInstruction(0x10, nwscript.OpcodeACTION, nwscript.InstTypeNone, fn, 2)
	retn := newInstruction(0x18, nwscript.OpcodeRETN, nwscript.InstTypeNone)

	block := newBlock(0x00, pushA, pushB, action, retn)
	sub := &nwscript.SubRoutine{Address: 0x00, Blocks: []*nwscript.Block{block}}

	opts := DefaultOptions()
	opts.StrictActionArity = false

	vars := nwscript.NewVariableSpace()
	if err := AnalyzeSubRoutineStack(sub, vars, game.IDNWN, table, nil, opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Property: a comparison opcode records itself as a reader of both operands
// it consumes, even though popVariable removes the cell from the stack.
func TestComparisonRecordsReaders(t *testing.T) {
	pushA := newInstruction(0x00, nwscript.OpcodeCONST, nwscript.InstTypeInt, 1)
	pushB := newInstruction(0x08, nwscript.OpcodeCONST, nwscript.InstTypeInt, 2)
	eq := newInstruction(0x10, nwscript.OpcodeEQ, nwscript.InstTypeNone)
	pop := newInstruction(0x18, nwscript.OpcodeMOVSP, nwscript.InstTypeNone, -4)
	retn := newInstruction(0x20, nwscript.OpcodeRETN, nwscript.InstTypeNone)

	block := newBlock(0x00, pushA, pushB, eq, pop, retn)
	sub := &nwscript.SubRoutine{Address: 0x00, Blocks: []*nwscript.Block{block}}

	vars := nwscript.NewVariableSpace()
	if err := AnalyzeSubRoutineStack(sub, vars, game.IDUnknown, nil, nil, DefaultOptions()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var a, b *nwscript.Variable
	for _, v := range vars.All() {
		switch v.Creator {
		case pushA:
			a = v
		case pushB:
			b = v
		}
	}
	if a == nil || b == nil {
		t.Fatal("expected Variables created by both CONST instructions")
	}
	for _, v := range []*nwscript.Variable{a, b} {
		found := false
		for _, r := range v.Readers {
			if r == eq {
				found = true
			}
		}
		if !found {
			t.Errorf("Readers = %v, want to include the EQ instruction", v.Readers)
		}
	}
}
