package game

// functionTableSchema is the JSON Schema a function-table document must
// validate against before Load will accept it. It catches a missing game,
// a function entry without a name or return type, and an unknown type
// name. It does not check parameter counts or detect duplicate indices.
const functionTableSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["game", "functions"],
  "properties": {
    "game": {"type": "string", "minLength": 1},
    "functions": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["name", "return"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "return": {"type": "string", "enum": ["Void", "Int", "Float", "String", "Object", "Vector", "EngineType0", "EngineType1", "EngineType2", "EngineType3", "EngineType4", "EngineType5", "ScriptState", "ResourceRef"]},
          "parameters": {
            "type": "array",
            "items": {"type": "string", "enum": ["Int", "Float", "String", "Object", "Vector", "EngineType0", "EngineType1", "EngineType2", "EngineType3", "EngineType4", "EngineType5", "ScriptState", "ResourceRef"]}
          }
        }
      }
    }
  }
}`
