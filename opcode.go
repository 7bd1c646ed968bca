package nwscript

// Opcode is an NWScript bytecode instruction opcode. The numbering and gaps
// mirror the original engine's byte encoding, not a dense Go iota range, so
// that a real disassembler can index kAnalyzeStackFunc-style tables directly
// from the byte it read off the wire.
type Opcode uint8

const (
	OpcodeCPDOWNSP      Opcode = 0x01
	OpcodeRSADD         Opcode = 0x02
	OpcodeCPTOPSP       Opcode = 0x03
	OpcodeCONST         Opcode = 0x04
	OpcodeACTION        Opcode = 0x05
	OpcodeLOGAND        Opcode = 0x06
	OpcodeLOGOR         Opcode = 0x07
	OpcodeINCOR         Opcode = 0x08
	OpcodeEXCOR         Opcode = 0x09
	OpcodeBOOLAND       Opcode = 0x0A
	OpcodeEQ            Opcode = 0x0B
	OpcodeNEQ           Opcode = 0x0C
	OpcodeGEQ           Opcode = 0x0D
	OpcodeGT            Opcode = 0x0E
	OpcodeLT            Opcode = 0x0F
	OpcodeLEQ           Opcode = 0x10
	OpcodeSHLEFT        Opcode = 0x11
	OpcodeSHRIGHT       Opcode = 0x12
	OpcodeUSHRIGHT      Opcode = 0x13
	OpcodeADD           Opcode = 0x14
	OpcodeSUB           Opcode = 0x15
	OpcodeMUL           Opcode = 0x16
	OpcodeDIV           Opcode = 0x17
	OpcodeMOD           Opcode = 0x18
	OpcodeNEG           Opcode = 0x19
	OpcodeCOMP          Opcode = 0x1A
	OpcodeMOVSP         Opcode = 0x1B
	OpcodeSTORESTATEALL Opcode = 0x1C
	OpcodeJMP           Opcode = 0x1D
	OpcodeJSR           Opcode = 0x1E
	OpcodeJZ            Opcode = 0x1F
	OpcodeRETN          Opcode = 0x20
	OpcodeDESTRUCT      Opcode = 0x21
	OpcodeNOT           Opcode = 0x22
	OpcodeDECSP         Opcode = 0x23
	OpcodeINCSP         Opcode = 0x24
	OpcodeJNZ           Opcode = 0x25
	OpcodeCPDOWNBP      Opcode = 0x26
	OpcodeCPTOPBP       Opcode = 0x27
	OpcodeDECBP         Opcode = 0x28
	OpcodeINCBP         Opcode = 0x29
	OpcodeSAVEBP        Opcode = 0x2A
	OpcodeRESTOREBP     Opcode = 0x2B
	OpcodeSTORESTATE    Opcode = 0x2C
	OpcodeNOP           Opcode = 0x2D
	OpcodeWRITEARRAY    Opcode = 0x30
	OpcodeREADARRAY     Opcode = 0x32
	OpcodeGETREF        Opcode = 0x37
	OpcodeGETREFARRAY   Opcode = 0x39
	OpcodeSCRIPTSIZE    Opcode = 0x42

	// OpcodeMAX is one past the highest opcode value in use, for sizing
	// dispatch tables. It is not itself a valid opcode.
	OpcodeMAX Opcode = 0x43
)

var opcodeNames = map[Opcode]string{
	OpcodeCPDOWNSP:      "CPDOWNSP",
	OpcodeRSADD:         "RSADD",
	OpcodeCPTOPSP:       "CPTOPSP",
	OpcodeCONST:         "CONST",
	OpcodeACTION:        "ACTION",
	OpcodeLOGAND:        "LOGAND",
	OpcodeLOGOR:         "LOGOR",
	OpcodeINCOR:         "INCOR",
	OpcodeEXCOR:         "EXCOR",
	OpcodeBOOLAND:       "BOOLAND",
	OpcodeEQ:            "EQ",
	OpcodeNEQ:           "NEQ",
	OpcodeGEQ:           "GEQ",
	OpcodeGT:            "GT",
	OpcodeLT:            "LT",
	OpcodeLEQ:           "LEQ",
	OpcodeSHLEFT:        "SHLEFT",
	OpcodeSHRIGHT:       "SHRIGHT",
	OpcodeUSHRIGHT:      "USHRIGHT",
	OpcodeADD:           "ADD",
	OpcodeSUB:           "SUB",
	OpcodeMUL:           "MUL",
	OpcodeDIV:           "DIV",
	OpcodeMOD:           "MOD",
	OpcodeNEG:           "NEG",
	OpcodeCOMP:          "COMP",
	OpcodeMOVSP:         "MOVSP",
	OpcodeSTORESTATEALL: "STORESTATEALL",
	OpcodeJMP:           "JMP",
	OpcodeJSR:           "JSR",
	OpcodeJZ:            "JZ",
	OpcodeRETN:          "RETN",
	OpcodeDESTRUCT:      "DESTRUCT",
	OpcodeNOT:           "NOT",
	OpcodeDECSP:         "DECSP",
	OpcodeINCSP:         "INCSP",
	OpcodeJNZ:           "JNZ",
	OpcodeCPDOWNBP:      "CPDOWNBP",
	OpcodeCPTOPBP:       "CPTOPBP",
	OpcodeDECBP:         "DECBP",
	OpcodeINCBP:         "INCBP",
	OpcodeSAVEBP:        "SAVEBP",
	OpcodeRESTOREBP:     "RESTOREBP",
	OpcodeSTORESTATE:    "STORESTATE",
	OpcodeNOP:           "NOP",
	OpcodeWRITEARRAY:    "WRITEARRAY",
	OpcodeREADARRAY:     "READARRAY",
	OpcodeGETREF:        "GETREF",
	OpcodeGETREFARRAY:   "GETREFARRAY",
	OpcodeSCRIPTSIZE:    "SCRIPTSIZE",
}

func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return "UNKNOWN"
}
