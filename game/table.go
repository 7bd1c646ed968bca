package game

import "github.com/clone2727/xoreos-tools"

// FunctionTable is the analyzer's contract with the engine-function table:
// for a given game and engine-function index, look up the function's
// declared parameter types and return type. The disassembler/CLI supply a
// concrete implementation (Table, below, or a caller's own); the analyzer
// package only depends on this interface.
type FunctionTable interface {
	// ParameterCount returns how many parameters function fn declares for
	// game g, and whether fn is known at all.
	ParameterCount(g ID, fn int32) (int, bool)

	// Parameters returns, in order, the declared parameter types of
	// function fn for game g.
	Parameters(g ID, fn int32) ([]nwscript.VariableType, bool)

	// ReturnType returns the declared return type of function fn for game
	// g.
	ReturnType(g ID, fn int32) (nwscript.VariableType, bool)
}

// Signature is one engine function's declared calling convention.
type Signature struct {
	Name       string
	Parameters []nwscript.VariableType
	Return     nwscript.VariableType
}

// Table is an in-memory FunctionTable, keyed by game and function index.
// It is normally populated via Load from a YAML function-table document.
type Table struct {
	functions map[ID]map[int32]Signature
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{functions: make(map[ID]map[int32]Signature)}
}

// Set installs (or replaces) the signature for function fn under game g.
func (t *Table) Set(g ID, fn int32, sig Signature) {
	if t.functions[g] == nil {
		t.functions[g] = make(map[int32]Signature)
	}
	t.functions[g][fn] = sig
}

func (t *Table) lookup(g ID, fn int32) (Signature, bool) {
	byFn, ok := t.functions[g]
	if !ok {
		return Signature{}, false
	}
	sig, ok := byFn[fn]
	return sig, ok
}

func (t *Table) ParameterCount(g ID, fn int32) (int, bool) {
	sig, ok := t.lookup(g, fn)
	if !ok {
		return 0, false
	}
	return len(sig.Parameters), true
}

func (t *Table) Parameters(g ID, fn int32) ([]nwscript.VariableType, bool) {
	sig, ok := t.lookup(g, fn)
	if !ok {
		return nil, false
	}
	return sig.Parameters, true
}

func (t *Table) ReturnType(g ID, fn int32) (nwscript.VariableType, bool) {
	sig, ok := t.lookup(g, fn)
	if !ok {
		return nwscript.TypeVoid, false
	}
	return sig.Return, true
}
