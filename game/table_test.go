package game

import (
	"testing"

	"github.com/clone2727/xoreos-tools"
)

func TestTableLookupIsPerGame(t *testing.T) {
	table := NewTable()
	table.Set(IDNWN, 42, Signature{Name: "f", Return: nwscript.TypeInt})

	if _, ok := table.ParameterCount(IDNWN2, 42); ok {
		t.Errorf("expected function 42 to be unknown under a different game id")
	}
	if _, ok := table.ParameterCount(IDNWN, 42); !ok {
		t.Errorf("expected function 42 to be known under NWN")
	}
}

func TestTableUnknownFunctionReturnsVoidFalse(t *testing.T) {
	table := NewTable()
	ret, ok := table.ReturnType(IDNWN, 999)
	if ok {
		t.Errorf("expected ok=false for an unregistered function")
	}
	if ret != nwscript.TypeVoid {
		t.Errorf("ReturnType for an unknown function = %v, want TypeVoid", ret)
	}
}

func TestTableSetReplacesExistingSignature(t *testing.T) {
	table := NewTable()
	table.Set(IDNWN, 1, Signature{Name: "old", Return: nwscript.TypeInt})
	table.Set(IDNWN, 1, Signature{Name: "new", Return: nwscript.TypeFloat})

	ret, _ := table.ReturnType(IDNWN, 1)
	if ret != nwscript.TypeFloat {
		t.Errorf("ReturnType after replace = %v, want Float", ret)
	}
}

func TestIDString(t *testing.T) {
	cases := map[ID]string{
		IDNWN:        "NWN",
		IDDragonAge2: "DragonAge2",
		ID(200):      "Unknown",
	}
	for id, want := range cases {
		if got := id.String(); got != want {
			t.Errorf("ID(%d).String() = %q, want %q", id, got, want)
		}
	}
}
