package fixture

import (
	"testing"

	"github.com/clone2727/xoreos-tools"
	"github.com/clone2727/xoreos-tools/game"
)

func TestBuildResolvesBranchesAcrossSubRoutines(t *testing.T) {
	doc := &Document{
		Game: "NWN",
		SubRoutines: []SubRoutineConfig{
			{
				Address: 0x100,
				Blocks: []BlockConfig{{
					Address: 0x100,
					Instructions: []InstructionConfig{
						{Address: 0x100, Opcode: "CPDOWNSP", Args: []int32{-8, 4}},
						{Address: 0x108, Opcode: "MOVSP", Args: []int32{-4}},
						{Address: 0x10C, Opcode: "RETN"},
					},
				}},
			},
			{
				Address: 0x00,
				Blocks: []BlockConfig{{
					Address: 0x00,
					Instructions: []InstructionConfig{
						{Address: 0x00, Opcode: "CONST", Type: "Int", Args: []int32{1}},
						{Address: 0x08, Opcode: "JSR", Branches: []uint32{0x100}},
						{Address: 0x0C, Opcode: "MOVSP", Args: []int32{-4}},
						{Address: 0x10, Opcode: "RETN"},
					},
				}},
			},
		},
	}

	subs, gameID, err := Build(doc)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if gameID != game.IDNWN {
		t.Errorf("gameID = %v, want NWN", gameID)
	}
	if len(subs) != 2 {
		t.Fatalf("len(subs) = %d, want 2", len(subs))
	}

	caller := subs[1]
	jsr := caller.Blocks[0].Instructions[1]
	if jsr.Opcode != nwscript.OpcodeJSR {
		t.Fatalf("expected the second instruction to be JSR")
	}
	if len(jsr.Branches) != 1 {
		t.Fatalf("Branches = %v, want 1 entry", jsr.Branches)
	}
	if jsr.Branches[0].Block.SubRoutine != subs[0] {
		t.Errorf("JSR target does not resolve back into the callee subroutine")
	}
}
