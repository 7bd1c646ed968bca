package report

import (
	"reflect"
	"strings"
	"testing"

	"github.com/speakeasy-api/openapi/jsonschema/oas3"

	"github.com/clone2727/xoreos-tools"
	"github.com/clone2727/xoreos-tools/game"
)

func TestVariableTypeSchemaVector(t *testing.T) {
	schema := VariableTypeSchema(nwscript.TypeVector)
	want := oas3.NewTypeFromString(oas3.SchemaTypeArray)
	if !reflect.DeepEqual(schema.Type, want) {
		t.Fatalf("Type = %v, want %v", schema.Type, want)
	}
	if schema.MinItems == nil || *schema.MinItems != 3 {
		t.Errorf("MinItems = %v, want 3", schema.MinItems)
	}
	if schema.MaxItems == nil || *schema.MaxItems != 3 {
		t.Errorf("MaxItems = %v, want 3", schema.MaxItems)
	}
}

func TestSignatureSchemaHasParametersAndReturns(t *testing.T) {
	sub := &nwscript.SubRoutine{
		Address: 0x100,
		Params:  []*nwscript.Variable{{Type: nwscript.TypeInt}},
		Returns: []*nwscript.Variable{{Type: nwscript.TypeFloat}},
	}

	schema := SignatureSchema(sub)
	if schema.Properties == nil {
		t.Fatal("expected Properties to be set")
	}
	if _, ok := schema.Properties.Get("parameters"); !ok {
		t.Error("expected a \"parameters\" property")
	}
	if _, ok := schema.Properties.Get("returns"); !ok {
		t.Error("expected a \"returns\" property")
	}
}

func TestDocumentMarshalIncludesGameAndAddress(t *testing.T) {
	globals := nwscript.Stack{
		{Variable: &nwscript.Variable{Type: nwscript.TypeInt, Use: nwscript.VariableUseGlobal}},
	}
	sub := &nwscript.SubRoutine{
		Address: 0x08,
		Params:  []*nwscript.Variable{{Type: nwscript.TypeObject}},
	}

	doc := NewDocument(game.IDNWN, &globals, []*nwscript.SubRoutine{sub})

	out, err := doc.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	text := string(out)
	if !strings.Contains(text, "game: NWN") {
		t.Errorf("output missing game field: %s", text)
	}
	if !strings.Contains(text, "address: 8") {
		t.Errorf("output missing subroutine address: %s", text)
	}
}
