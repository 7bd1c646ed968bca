package fixture

import (
	"github.com/clone2727/xoreos-tools"
	"github.com/clone2727/xoreos-tools/game"
)

var opcodeByName = map[string]nwscript.Opcode{
	"CPDOWNSP":      nwscript.OpcodeCPDOWNSP,
	"RSADD":         nwscript.OpcodeRSADD,
	"CPTOPSP":       nwscript.OpcodeCPTOPSP,
	"CONST":         nwscript.OpcodeCONST,
	"ACTION":        nwscript.OpcodeACTION,
	"LOGAND":        nwscript.OpcodeLOGAND,
	"LOGOR":         nwscript.OpcodeLOGOR,
	"INCOR":         nwscript.OpcodeINCOR,
	"EXCOR":         nwscript.OpcodeEXCOR,
	"BOOLAND":       nwscript.OpcodeBOOLAND,
	"EQ":            nwscript.OpcodeEQ,
	"NEQ":           nwscript.OpcodeNEQ,
	"GEQ":           nwscript.OpcodeGEQ,
	"GT":            nwscript.OpcodeGT,
	"LT":            nwscript.OpcodeLT,
	"LEQ":           nwscript.OpcodeLEQ,
	"SHLEFT":        nwscript.OpcodeSHLEFT,
	"SHRIGHT":       nwscript.OpcodeSHRIGHT,
	"USHRIGHT":      nwscript.OpcodeUSHRIGHT,
	"ADD":           nwscript.OpcodeADD,
	"SUB":           nwscript.OpcodeSUB,
	"MUL":           nwscript.OpcodeMUL,
	"DIV":           nwscript.OpcodeDIV,
	"MOD":           nwscript.OpcodeMOD,
	"NEG":           nwscript.OpcodeNEG,
	"COMP":          nwscript.OpcodeCOMP,
	"MOVSP":         nwscript.OpcodeMOVSP,
	"STORESTATEALL": nwscript.OpcodeSTORESTATEALL,
	"JMP":           nwscript.OpcodeJMP,
	"JSR":           nwscript.OpcodeJSR,
	"JZ":            nwscript.OpcodeJZ,
	"RETN":          nwscript.OpcodeRETN,
	"DESTRUCT":      nwscript.OpcodeDESTRUCT,
	"NOT":           nwscript.OpcodeNOT,
	"DECSP":         nwscript.OpcodeDECSP,
	"INCSP":         nwscript.OpcodeINCSP,
	"JNZ":           nwscript.OpcodeJNZ,
	"CPDOWNBP":      nwscript.OpcodeCPDOWNBP,
	"CPTOPBP":       nwscript.OpcodeCPTOPBP,
	"DECBP":         nwscript.OpcodeDECBP,
	"INCBP":         nwscript.OpcodeINCBP,
	"SAVEBP":        nwscript.OpcodeSAVEBP,
	"RESTOREBP":     nwscript.OpcodeRESTOREBP,
	"STORESTATE":    nwscript.OpcodeSTORESTATE,
	"NOP":           nwscript.OpcodeNOP,
	"WRITEARRAY":    nwscript.OpcodeWRITEARRAY,
	"READARRAY":     nwscript.OpcodeREADARRAY,
	"GETREF":        nwscript.OpcodeGETREF,
	"GETREFARRAY":   nwscript.OpcodeGETREFARRAY,
	"SCRIPTSIZE":    nwscript.OpcodeSCRIPTSIZE,
}

var instructionTypeByName = map[string]nwscript.InstructionType{
	"None":               nwscript.InstTypeNone,
	"Direct":             nwscript.InstTypeDirect,
	"Int":                nwscript.InstTypeInt,
	"Float":              nwscript.InstTypeFloat,
	"String":             nwscript.InstTypeString,
	"Object":             nwscript.InstTypeObject,
	"Resource":           nwscript.InstTypeResource,
	"EngineType0":        nwscript.InstTypeEngineType0,
	"EngineType1":        nwscript.InstTypeEngineType1,
	"EngineType2":        nwscript.InstTypeEngineType2,
	"EngineType3":        nwscript.InstTypeEngineType3,
	"EngineType4":        nwscript.InstTypeEngineType4,
	"EngineType5":        nwscript.InstTypeEngineType5,
	"IntInt":             nwscript.InstTypeIntInt,
	"FloatFloat":         nwscript.InstTypeFloatFloat,
	"ObjectObject":       nwscript.InstTypeObjectObject,
	"StringString":       nwscript.InstTypeStringString,
	"StructStruct":       nwscript.InstTypeStructStruct,
	"IntFloat":           nwscript.InstTypeIntFloat,
	"FloatInt":           nwscript.InstTypeFloatInt,
	"EngineType0EngineType0": nwscript.InstTypeEngineType0EngineType0,
	"EngineType1EngineType1": nwscript.InstTypeEngineType1EngineType1,
	"EngineType2EngineType2": nwscript.InstTypeEngineType2EngineType2,
	"EngineType3EngineType3": nwscript.InstTypeEngineType3EngineType3,
	"EngineType4EngineType4": nwscript.InstTypeEngineType4EngineType4,
	"EngineType5EngineType5": nwscript.InstTypeEngineType5EngineType5,
	"VectorVector":       nwscript.InstTypeVectorVector,
	"VectorFloat":        nwscript.InstTypeVectorFloat,
	"FloatVector":        nwscript.InstTypeFloatVector,
	"IntArray":           nwscript.InstTypeIntArray,
	"FloatArray":         nwscript.InstTypeFloatArray,
	"StringArray":        nwscript.InstTypeStringArray,
	"ObjectArray":        nwscript.InstTypeObjectArray,
	"ResourceArray":      nwscript.InstTypeResourceArray,
	"EngineType0Array":   nwscript.InstTypeEngineType0Array,
	"EngineType1Array":   nwscript.InstTypeEngineType1Array,
	"EngineType2Array":   nwscript.InstTypeEngineType2Array,
	"EngineType3Array":   nwscript.InstTypeEngineType3Array,
	"EngineType4Array":   nwscript.InstTypeEngineType4Array,
	"EngineType5Array":   nwscript.InstTypeEngineType5Array,
}

var edgeByName = map[string]nwscript.BlockEdgeType{
	"Unconditional":     nwscript.BlockEdgeUnconditional,
	"ConditionalTrue":   nwscript.BlockEdgeConditionalTrue,
	"ConditionalFalse":  nwscript.BlockEdgeConditionalFalse,
	"FunctionCall":      nwscript.BlockEdgeFunctionCall,
	"StoreState":        nwscript.BlockEdgeStoreState,
	"SubRoutineTail":    nwscript.BlockEdgeSubRoutineTail,
	"Dead":              nwscript.BlockEdgeDead,
}

var gameByName = map[string]game.ID{
	"Unknown":    game.IDUnknown,
	"NWN":        game.IDNWN,
	"NWN2":       game.IDNWN2,
	"KOTOR":      game.IDKOTOR,
	"KOTOR2":     game.IDKOTOR2,
	"Jade":       game.IDJade,
	"Witcher":    game.IDWitcher,
	"DragonAge":  game.IDDragonAge,
	"DragonAge2": game.IDDragonAge2,
}
