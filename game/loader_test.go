package game

import (
	"strings"
	"testing"

	"github.com/clone2727/xoreos-tools"
)

func TestLoadParsesFunctionsAndValidatesTypes(t *testing.T) {
	doc := `
game: NWN
functions:
  "0":
    name: Random
    return: Int
    parameters: [Int]
  "0x2A":
    name: GetIsObjectValid
    return: Int
    parameters: [Object]
`
	table, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	params, ok := table.Parameters(IDNWN, 0)
	if !ok {
		t.Fatalf("function 0 not found")
	}
	if len(params) != 1 || params[0] != nwscript.TypeInt {
		t.Errorf("params = %v, want [Int]", params)
	}

	ret, ok := table.ReturnType(IDNWN, 42)
	if !ok || ret != nwscript.TypeInt {
		t.Errorf("ReturnType(42) = %v, %v, want Int, true", ret, ok)
	}

	count, ok := table.ParameterCount(IDNWN, 42)
	if !ok || count != 1 {
		t.Errorf("ParameterCount(42) = %v, %v, want 1, true", count, ok)
	}
}

func TestLoadRejectsUnknownReturnType(t *testing.T) {
	doc := `
game: NWN
functions:
  "0":
    name: Bogus
    return: NotAType
`
	if _, err := Load(strings.NewReader(doc)); err == nil {
		t.Fatalf("expected an error for an unknown return type")
	}
}

func TestLoadRejectsMissingRequiredFields(t *testing.T) {
	doc := `
game: NWN
functions:
  "0":
    parameters: [Int]
`
	if _, err := Load(strings.NewReader(doc)); err == nil {
		t.Fatalf("expected schema validation to reject a function with no name or return")
	}
}

func TestLoadRejectsUnknownGame(t *testing.T) {
	doc := `
game: NotAGame
functions: {}
`
	if _, err := Load(strings.NewReader(doc)); err == nil {
		t.Fatalf("expected an error for an unrecognized game id")
	}
}

func TestLoadAcceptsHexFunctionIndex(t *testing.T) {
	doc := `
game: KOTOR
functions:
  "0x10":
    name: PrintString
    return: Void
    parameters: [String]
`
	table, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := table.ParameterCount(IDKOTOR, 16); !ok {
		t.Errorf("expected function at hex index 0x10 to be readable at decimal 16")
	}
}
