// Package report renders analyzer output for consumption outside the
// analyzer itself: an OpenAPI-flavored schema for a subroutine's signature,
// and a plain YAML document summarizing a whole analysis run.
package report

import (
	"github.com/speakeasy-api/openapi/jsonschema/oas3"
	"github.com/speakeasy-api/openapi/sequencedmap"

	"github.com/clone2727/xoreos-tools"
)

// VariableTypeSchema renders one inferred VariableType as the JSON Schema
// type that best describes the values it carries. EngineType, ScriptState
// and ResourceRef stay opaque (an engine-assigned handle, not a value
// NWScript itself can decompose), so they render as a bare integer/string
// rather than a made-up structured shape.
func VariableTypeSchema(t nwscript.VariableType) *oas3.Schema {
	switch t {
	case nwscript.TypeInt:
		return &oas3.Schema{Type: oas3.NewTypeFromString(oas3.SchemaTypeInteger)}
	case nwscript.TypeFloat:
		return &oas3.Schema{Type: oas3.NewTypeFromString(oas3.SchemaTypeNumber)}
	case nwscript.TypeString:
		return &oas3.Schema{Type: oas3.NewTypeFromString(oas3.SchemaTypeString)}
	case nwscript.TypeObject:
		return &oas3.Schema{Type: oas3.NewTypeFromString(oas3.SchemaTypeInteger)}
	case nwscript.TypeVector:
		schema := &oas3.Schema{Type: oas3.NewTypeFromString(oas3.SchemaTypeArray)}
		schema.Items = oas3.NewJSONSchemaFromSchema[oas3.Referenceable](
			&oas3.Schema{Type: oas3.NewTypeFromString(oas3.SchemaTypeNumber)},
		)
		schema.MinItems = intPtr(3)
		schema.MaxItems = intPtr(3)
		return schema
	case nwscript.TypeScriptState, nwscript.TypeResourceRef:
		return &oas3.Schema{Type: oas3.NewTypeFromString(oas3.SchemaTypeString)}
	case nwscript.TypeVoid:
		return nil
	case nwscript.TypeEngineType0, nwscript.TypeEngineType1, nwscript.TypeEngineType2,
		nwscript.TypeEngineType3, nwscript.TypeEngineType4, nwscript.TypeEngineType5:
		return &oas3.Schema{Type: oas3.NewTypeFromString(oas3.SchemaTypeInteger)}
	default:
		// TypeAny: unconstrained, matching every JSON value.
		return &oas3.Schema{}
	}
}

func intPtr(n int64) *int64 { return &n }

// SignatureSchema renders a subroutine's discovered parameter/return
// signature as an object schema with a "parameters" array and a "returns"
// array, positional in each — NWScript has no named parameters at the
// bytecode level, only stack position.
func SignatureSchema(sub *nwscript.SubRoutine) *oas3.Schema {
	params := make([]*oas3.JSONSchema[oas3.Referenceable], 0, len(sub.Params))
	for _, p := range sub.Params {
		params = append(params, oas3.NewJSONSchemaFromSchema[oas3.Referenceable](VariableTypeSchema(p.Type)))
	}

	returns := make([]*oas3.JSONSchema[oas3.Referenceable], 0, len(sub.Returns))
	for _, r := range sub.Returns {
		returns = append(returns, oas3.NewJSONSchemaFromSchema[oas3.Referenceable](VariableTypeSchema(r.Type)))
	}

	props := sequencedmap.New[string, *oas3.JSONSchema[oas3.Referenceable]]()
	props.Set("parameters", oas3.NewJSONSchemaFromSchema[oas3.Referenceable](&oas3.Schema{
		Type:        oas3.NewTypeFromString(oas3.SchemaTypeArray),
		PrefixItems: params,
	}))
	props.Set("returns", oas3.NewJSONSchemaFromSchema[oas3.Referenceable](&oas3.Schema{
		Type:        oas3.NewTypeFromString(oas3.SchemaTypeArray),
		PrefixItems: returns,
	}))

	return &oas3.Schema{
		Type:       oas3.NewTypeFromString(oas3.SchemaTypeObject),
		Properties: props,
		Required:   []string{"parameters", "returns"},
	}
}
