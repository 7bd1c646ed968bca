package nwscript

// InstructionType tags what an instruction operates on: which variable
// type(s) an arithmetic, push, or comparison opcode is specialized for.
type InstructionType uint8

const (
	InstTypeNone     InstructionType = 0
	InstTypeDirect   InstructionType = 1
	InstTypeInt      InstructionType = 3
	InstTypeFloat    InstructionType = 4
	InstTypeString   InstructionType = 5
	InstTypeObject   InstructionType = 6
	InstTypeResource InstructionType = 96

	InstTypeEngineType0 InstructionType = 16
	InstTypeEngineType1 InstructionType = 17
	InstTypeEngineType2 InstructionType = 18
	InstTypeEngineType3 InstructionType = 19
	InstTypeEngineType4 InstructionType = 20
	InstTypeEngineType5 InstructionType = 21

	InstTypeIntArray         InstructionType = 64
	InstTypeFloatArray       InstructionType = 65
	InstTypeStringArray      InstructionType = 66
	InstTypeObjectArray      InstructionType = 67
	InstTypeResourceArray    InstructionType = 68
	InstTypeEngineType0Array InstructionType = 80
	InstTypeEngineType1Array InstructionType = 81
	InstTypeEngineType2Array InstructionType = 82
	InstTypeEngineType3Array InstructionType = 83
	InstTypeEngineType4Array InstructionType = 84
	InstTypeEngineType5Array InstructionType = 85

	InstTypeIntInt                 InstructionType = 32
	InstTypeFloatFloat             InstructionType = 33
	InstTypeObjectObject           InstructionType = 34
	InstTypeStringString           InstructionType = 35
	InstTypeStructStruct           InstructionType = 36
	InstTypeIntFloat               InstructionType = 37
	InstTypeFloatInt               InstructionType = 38
	InstTypeEngineType0EngineType0 InstructionType = 48
	InstTypeEngineType1EngineType1 InstructionType = 49
	InstTypeEngineType2EngineType2 InstructionType = 50
	InstTypeEngineType3EngineType3 InstructionType = 51
	InstTypeEngineType4EngineType4 InstructionType = 52
	InstTypeEngineType5EngineType5 InstructionType = 53
	InstTypeVectorVector           InstructionType = 58
	InstTypeVectorFloat            InstructionType = 59
	InstTypeFloatVector            InstructionType = 60

	InstTypeMAX InstructionType = 97
)

// engineTypeVariable maps the six EngineTypeN instruction tags to their
// corresponding VariableType, used by both the unary push handlers and by
// InstructionTypeToVariableType below.
var engineTypeVariable = map[InstructionType]VariableType{
	InstTypeEngineType0: TypeEngineType0,
	InstTypeEngineType1: TypeEngineType1,
	InstTypeEngineType2: TypeEngineType2,
	InstTypeEngineType3: TypeEngineType3,
	InstTypeEngineType4: TypeEngineType4,
	InstTypeEngineType5: TypeEngineType5,
}

// InstructionTypeToVariableType derives the VariableType a push or unary
// arithmetic opcode produces from its InstructionType tag. It returns
// TypeVoid for tags that don't name a single scalar type (compound/array
// tags, or an unrecognized value) — callers that require a scalar (unary
// arithmetic) treat TypeVoid as InvalidInstructionType.
func InstructionTypeToVariableType(t InstructionType) VariableType {
	switch t {
	case InstTypeDirect:
		return TypeAny
	case InstTypeInt:
		return TypeInt
	case InstTypeFloat:
		return TypeFloat
	case InstTypeString:
		return TypeString
	case InstTypeObject:
		return TypeObject
	case InstTypeResource:
		return TypeResourceRef
	}
	if vt, ok := engineTypeVariable[t]; ok {
		return vt
	}
	return TypeVoid
}
