// Command nwanalyze runs the stack-effect analyzer over a single YAML
// fixture and prints a disassembly-style listing annotated with the
// inferred stack state and subroutine signatures.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"

	"github.com/clone2727/xoreos-tools"
	"github.com/clone2727/xoreos-tools/analyze"
	"github.com/clone2727/xoreos-tools/fixture"
	"github.com/clone2727/xoreos-tools/game"
)

func main() {
	functionsPath := flag.String("functions", "", "path to a YAML engine-function table; required if the fixture contains ACTION instructions")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: nwanalyze [-functions <table.yaml>] <fixture.yaml>\n")
		os.Exit(2)
	}

	if err := run(args[0], *functionsPath); err != nil {
		fmt.Fprintf(os.Stderr, "nwanalyze: %v\n", err)
		os.Exit(1)
	}
}

func run(path, functionsPath string) error {
	doc, err := fixture.Load(path)
	if err != nil {
		return err
	}

	subs, gameID, err := fixture.Build(doc)
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		return fmt.Errorf("fixture has no subroutines")
	}

	functions, err := loadFunctionTable(functionsPath, subs)
	if err != nil {
		return err
	}

	variables := nwscript.NewVariableSpace()
	opts := analyze.DefaultOptions()

	// Every subroutine reachable only via JSR from another gets analyzed as
	// a side effect of that JSR; AnalyzeSubRoutineStack on an already-Finished
	// subroutine just reconciles, so calling AnalyzeSubRoutineStack on every
	// top-level entry in the fixture is always safe.
	for _, sub := range subs {
		if err := analyze.AnalyzeSubRoutineStack(sub, variables, gameID, functions, nil, opts); err != nil {
			return fmt.Errorf("analyzing subroutine %08X: %w", sub.Address, err)
		}
	}

	color := isatty.IsTerminal(os.Stdout.Fd())
	printListing(os.Stdout, subs, color)
	return nil
}

// loadFunctionTable loads the engine-function table named by path, if any.
// A fixture containing ACTION instructions with no table given is rejected
// outright, rather than letting the analyzer run with a nil FunctionTable
// and panic the first time opACTION dereferences it.
func loadFunctionTable(path string, subs []*nwscript.SubRoutine) (game.FunctionTable, error) {
	if path == "" {
		if fixtureHasAction(subs) {
			return nil, fmt.Errorf("fixture contains ACTION instructions; pass -functions <table.yaml>")
		}
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening function table: %w", err)
	}
	defer f.Close()

	table, err := game.Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading function table: %w", err)
	}
	return table, nil
}

func fixtureHasAction(subs []*nwscript.SubRoutine) bool {
	for _, sub := range subs {
		for _, block := range sub.Blocks {
			for _, inst := range block.Instructions {
				if inst.Opcode == nwscript.OpcodeACTION {
					return true
				}
			}
		}
	}
	return false
}

func printListing(w *os.File, subs []*nwscript.SubRoutine, color bool) {
	for _, sub := range subs {
		printSubRoutineHeader(w, sub, color)
		for _, block := range sub.Blocks {
			for _, inst := range block.Instructions {
				printInstruction(w, inst)
			}
		}
		fmt.Fprintln(w)
	}
}

func printSubRoutineHeader(w *os.File, sub *nwscript.SubRoutine, color bool) {
	header := fmt.Sprintf("sub_%08X(%d params) -> %d returns", sub.Address, len(sub.Params), len(sub.Returns))
	if color {
		fmt.Fprintf(w, "\x1b[1m%s\x1b[0m\n", header)
	} else {
		fmt.Fprintln(w, header)
	}
}

// printInstruction pads the mnemonic column to a fixed display width using
// go-runewidth, so the stack-depth column lines up. Constant payloads are
// not printed.
func printInstruction(w *os.File, inst *nwscript.Instruction) {
	mnemonic := inst.Opcode.String()
	pad := 14 - runewidth.StringWidth(mnemonic)
	if pad < 1 {
		pad = 1
	}
	fmt.Fprintf(w, "  %08X: %s%*s(depth %d)\n", inst.Address, mnemonic, pad, "", inst.Stack.Len())
}
