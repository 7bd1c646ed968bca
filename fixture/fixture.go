// Package fixture loads a hand-authored YAML description of a bytecode
// control-flow graph and builds the nwscript IR structures the analyzer
// operates on. It stands in for the real (out-of-scope) disassembler when
// driving the analyzer from the command line or from an editable test
// fixture instead of Go literals.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/clone2727/xoreos-tools"
	"github.com/clone2727/xoreos-tools/game"
)

// Document is the top-level shape of a fixture file.
type Document struct {
	Game        string             `yaml:"game"`
	SubRoutines []SubRoutineConfig `yaml:"subRoutines"`
}

// SubRoutineConfig describes one subroutine and its blocks.
type SubRoutineConfig struct {
	Address uint32        `yaml:"address"`
	Blocks  []BlockConfig `yaml:"blocks"`
}

// BlockConfig describes one basic block.
type BlockConfig struct {
	Address      uint32              `yaml:"address"`
	Instructions []InstructionConfig `yaml:"instructions"`
	// Children names the addresses of blocks this one branches to; Edges is
	// the parallel list of edge kinds, following nwscript.Block's own
	// Children/ChildrenTypes convention.
	Children []uint32 `yaml:"children"`
	Edges    []string `yaml:"edges"`
}

// InstructionConfig describes one instruction. Branches names instruction
// addresses (not block addresses) this instruction targets, resolved
// against every instruction address in the document — this is how JSR
// finds the callee's entry instruction.
type InstructionConfig struct {
	Address  uint32   `yaml:"address"`
	Opcode   string   `yaml:"opcode"`
	Type     string   `yaml:"type,omitempty"`
	Args     []int32  `yaml:"args,omitempty"`
	Branches []uint32 `yaml:"branches,omitempty"`
}

// Load reads and parses a fixture file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: reading %s: %w", path, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fixture: parsing %s: %w", path, err)
	}
	return &doc, nil
}

// Build resolves a Document into the nwscript IR: one *nwscript.SubRoutine
// per entry in doc.SubRoutines, cross-linked by address.
func Build(doc *Document) ([]*nwscript.SubRoutine, game.ID, error) {
	gameID, ok := gameByName[doc.Game]
	if !ok && doc.Game != "" {
		return nil, game.IDUnknown, fmt.Errorf("fixture: unknown game %q", doc.Game)
	}

	instByAddr := make(map[uint32]*nwscript.Instruction)
	subs := make([]*nwscript.SubRoutine, 0, len(doc.SubRoutines))
	blocksByAddr := make(map[uint32]*nwscript.Block)

	for _, sc := range doc.SubRoutines {
		sub := &nwscript.SubRoutine{Address: sc.Address}
		for _, bc := range sc.Blocks {
			block := &nwscript.Block{Address: bc.Address, SubRoutine: sub}
			for _, ic := range bc.Instructions {
				inst, err := buildInstruction(ic)
				if err != nil {
					return nil, game.IDUnknown, err
				}
				inst.Block = block
				block.Instructions = append(block.Instructions, inst)
				instByAddr[inst.Address] = inst
			}
			blocksByAddr[block.Address] = block
			sub.Blocks = append(sub.Blocks, block)
		}
		subs = append(subs, sub)
	}

	// A second pass resolves both block-to-block edges and
	// instruction-to-instruction branch targets, since a JSR can name an
	// instruction in a subroutine defined later in the file.
	for _, sc := range doc.SubRoutines {
		for _, bc := range sc.Blocks {
			block := blocksByAddr[bc.Address]
			if len(bc.Children) != len(bc.Edges) {
				return nil, game.IDUnknown, fmt.Errorf(
					"fixture: block %08X has %d children but %d edges", bc.Address, len(bc.Children), len(bc.Edges))
			}
			for i, childAddr := range bc.Children {
				child, ok := blocksByAddr[childAddr]
				if !ok {
					return nil, game.IDUnknown, fmt.Errorf("fixture: block %08X has no child at %08X", bc.Address, childAddr)
				}
				edge, ok := edgeByName[bc.Edges[i]]
				if !ok {
					return nil, game.IDUnknown, fmt.Errorf("fixture: unknown edge kind %q", bc.Edges[i])
				}
				block.Children = append(block.Children, child)
				block.ChildrenTypes = append(block.ChildrenTypes, edge)
			}
			for _, ic := range bc.Instructions {
				inst := instByAddr[ic.Address]
				for _, target := range ic.Branches {
					t, ok := instByAddr[target]
					if !ok {
						return nil, game.IDUnknown, fmt.Errorf("fixture: instruction %08X branches to unknown %08X", ic.Address, target)
					}
					inst.Branches = append(inst.Branches, t)
				}
			}
		}
	}

	return subs, gameID, nil
}

func buildInstruction(ic InstructionConfig) (*nwscript.Instruction, error) {
	op, ok := opcodeByName[ic.Opcode]
	if !ok {
		return nil, fmt.Errorf("fixture: unknown opcode %q", ic.Opcode)
	}

	inst := &nwscript.Instruction{
		Address:  ic.Address,
		Opcode:   op,
		ArgCount: len(ic.Args),
	}
	if ic.Type != "" {
		t, ok := instructionTypeByName[ic.Type]
		if !ok {
			return nil, fmt.Errorf("fixture: unknown instruction type %q", ic.Type)
		}
		inst.Type = t
	}
	for i, a := range ic.Args {
		if i >= nwscript.MaxOpcodeArguments {
			return nil, fmt.Errorf("fixture: instruction %08X has too many arguments", ic.Address)
		}
		inst.Args[i] = a
	}
	return inst, nil
}
