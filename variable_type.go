package nwscript

// VariableType is the inferred type of a Variable, or of the value flowing
// through a StackCell at some point in the analysis. TypeAny is the top
// (unknown) element of the type lattice: it unifies with anything. TypeVoid
// signals "not a value" (used e.g. for a function with no return).
type VariableType uint8

const (
	TypeAny VariableType = iota
	TypeInt
	TypeFloat
	TypeString
	TypeObject
	TypeVector
	TypeEngineType0
	TypeEngineType1
	TypeEngineType2
	TypeEngineType3
	TypeEngineType4
	TypeEngineType5
	TypeScriptState
	TypeResourceRef
	TypeVoid
)

var variableTypeNames = [...]string{
	TypeAny:         "Any",
	TypeInt:         "Int",
	TypeFloat:       "Float",
	TypeString:      "String",
	TypeObject:      "Object",
	TypeVector:      "Vector",
	TypeEngineType0: "EngineType0",
	TypeEngineType1: "EngineType1",
	TypeEngineType2: "EngineType2",
	TypeEngineType3: "EngineType3",
	TypeEngineType4: "EngineType4",
	TypeEngineType5: "EngineType5",
	TypeScriptState: "ScriptState",
	TypeResourceRef: "ResourceRef",
	TypeVoid:        "Void",
}

func (t VariableType) String() string {
	if int(t) < len(variableTypeNames) && variableTypeNames[t] != "" {
		return variableTypeNames[t]
	}
	return "Unknown"
}

// VariableUse classifies why a Variable exists.
type VariableUse uint8

const (
	VariableUseUnknown VariableUse = iota
	VariableUseLocal
	VariableUseGlobal
	VariableUseParameter
	VariableUseReturn
)

var variableUseNames = [...]string{
	VariableUseUnknown:   "Unknown",
	VariableUseLocal:     "Local",
	VariableUseGlobal:    "Global",
	VariableUseParameter: "Parameter",
	VariableUseReturn:    "Return",
}

func (u VariableUse) String() string {
	if int(u) < len(variableUseNames) && variableUseNames[u] != "" {
		return variableUseNames[u]
	}
	return "Unknown"
}
