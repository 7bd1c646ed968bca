// Command nwbatch analyzes many bytecode fixtures concurrently and prints
// one YAML report per fixture, each headed by a comment naming its path.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/clone2727/xoreos-tools"
	"github.com/clone2727/xoreos-tools/analyze"
	"github.com/clone2727/xoreos-tools/fixture"
	"github.com/clone2727/xoreos-tools/game"
	"github.com/clone2727/xoreos-tools/report"
)

// scriptResult holds one fixture's analyzed subroutines, kept independent
// of every other fixture's VariableSpace since the analyzer's state isn't
// safe to share across concurrent runs.
type scriptResult struct {
	path string
	game game.ID
	subs []*nwscript.SubRoutine
}

func main() {
	functionsPath := flag.String("functions", "", "path to a YAML engine-function table, shared across every fixture; required if any fixture contains ACTION instructions")
	flag.Parse()

	paths := flag.Args()
	if len(paths) < 1 {
		fmt.Fprintf(os.Stderr, "usage: nwbatch [-functions <table.yaml>] <fixture.yaml>...\n")
		os.Exit(2)
	}

	functions, err := loadFunctionTable(*functionsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nwbatch: %v\n", err)
		os.Exit(1)
	}

	results, err := analyzeAll(paths, functions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nwbatch: %v\n", err)
		os.Exit(1)
	}

	for _, res := range results {
		doc := report.NewDocument(res.game, nil, res.subs)
		out, err := doc.Marshal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "nwbatch: rendering report for %s: %v\n", res.path, err)
			os.Exit(1)
		}
		fmt.Printf("# %s\n%s\n", res.path, out)
	}
}

// loadFunctionTable loads the engine-function table named by path, if any.
// A nil, unguarded FunctionTable would panic the first ACTION instruction
// any fixture happens to contain, so the guard against that lives in
// analyzeOne instead of here.
func loadFunctionTable(path string) (game.FunctionTable, error) {
	if path == "" {
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

// analyzeAll runs one goroutine per fixture, each with its own
// VariableSpace, and returns results ordered the same as paths.
func analyzeAll(paths []string, functions game.FunctionTable) ([]scriptResult, error) {
	results := make([]scriptResult, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			res, err := analyzeOne(path, functions)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func analyzeOne(path string, functions game.FunctionTable) (scriptResult, error) {
	doc, err := fixture.Load(path)
	if err != nil {
		return scriptResult{}, err
	}

	subs, gameID, err := fixture.Build(doc)
	if err != nil {
		return scriptResult{}, err
	}

	if functions == nil && fixtureHasAction(subs) {
		return scriptResult{}, fmt.Errorf("fixture contains ACTION instructions; pass -functions <table.yaml>")
	}

	variables := nwscript.NewVariableSpace()
	opts := analyze.DefaultOptions()
	for _, sub := range subs {
		if err := analyze.AnalyzeSubRoutineStack(sub, variables, gameID, functions, nil, opts); err != nil {
			return scriptResult{}, fmt.Errorf("subroutine %08X: %w", sub.Address, err)
		}
	}

	return scriptResult{path: path, game: gameID, subs: subs}, nil
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
