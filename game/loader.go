package game

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	yaml "github.com/itchyny/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/clone2727/xoreos-tools"
)

// document is the shape a function-table YAML file decodes into, ahead of
// JSON Schema validation and conversion into a Table.
type document struct {
	Game      string               `yaml:"game"`
	Functions map[string]funcEntry `yaml:"functions"`
}

type funcEntry struct {
	Name       string   `yaml:"name"`
	Return     string   `yaml:"return"`
	Parameters []string `yaml:"parameters"`
}

var variableTypeByName = map[string]nwscript.VariableType{
	"Void":        nwscript.TypeVoid,
	"Int":         nwscript.TypeInt,
	"Float":       nwscript.TypeFloat,
	"String":      nwscript.TypeString,
	"Object":      nwscript.TypeObject,
	"Vector":      nwscript.TypeVector,
	"EngineType0": nwscript.TypeEngineType0,
	"EngineType1": nwscript.TypeEngineType1,
	"EngineType2": nwscript.TypeEngineType2,
	"EngineType3": nwscript.TypeEngineType3,
	"EngineType4": nwscript.TypeEngineType4,
	"EngineType5": nwscript.TypeEngineType5,
	"ScriptState": nwscript.TypeScriptState,
	"ResourceRef": nwscript.TypeResourceRef,
}

var gameIDByName = map[string]ID{
	"NWN":        IDNWN,
	"NWN2":       IDNWN2,
	"KOTOR":      IDKOTOR,
	"KOTOR2":     IDKOTOR2,
	"Jade":       IDJade,
	"Witcher":    IDWitcher,
	"DragonAge":  IDDragonAge,
	"DragonAge2": IDDragonAge2,
}

// Load reads a YAML function-table document, validates it against the
// embedded JSON Schema, and returns the Table it describes. Each key under
// "functions" is the engine-function index, formatted as a base-10 or
// "0x"-prefixed integer string.
func Load(r io.Reader) (*Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("game: reading function table: %w", err)
	}

	var generic any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("game: parsing function table: %w", err)
	}

	if err := validateAgainstSchema(generic); err != nil {
		return nil, fmt.Errorf("game: function table failed validation: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("game: decoding function table: %w", err)
	}

	g, ok := gameIDByName[doc.Game]
	if !ok {
		return nil, fmt.Errorf("game: unknown game id %q", doc.Game)
	}

	table := NewTable()
	for key, entry := range doc.Functions {
		fn, err := parseFunctionIndex(key)
		if err != nil {
			return nil, fmt.Errorf("game: function index %q: %w", key, err)
		}

		ret, ok := variableTypeByName[entry.Return]
		if !ok {
			return nil, fmt.Errorf("game: function %q: unknown return type %q", entry.Name, entry.Return)
		}

		params := make([]nwscript.VariableType, 0, len(entry.Parameters))
		for _, p := range entry.Parameters {
			pt, ok := variableTypeByName[p]
			if !ok {
				return nil, fmt.Errorf("game: function %q: unknown parameter type %q", entry.Name, p)
			}
			params = append(params, pt)
		}

		table.Set(g, fn, Signature{Name: entry.Name, Parameters: params, Return: ret})
	}

	return table, nil
}

func parseFunctionIndex(key string) (int32, error) {
	n, err := strconv.ParseInt(key, 0, 32)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}

func validateAgainstSchema(instance any) error {
	schemaDoc, err := jsonschema.UnmarshalJSON(strings.NewReader(functionTableSchema))
	if err != nil {
		return fmt.Errorf("compiling embedded schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("function-table.json", schemaDoc); err != nil {
		return fmt.Errorf("compiling embedded schema: %w", err)
	}
	schema, err := compiler.Compile("function-table.json")
	if err != nil {
		return fmt.Errorf("compiling embedded schema: %w", err)
	}
	return schema.Validate(instance)
}
