package analyze

import "github.com/clone2727/xoreos-tools"

// opFunc is one opcode's stack-effect handler.
type opFunc func(ctx *Context) error

// dispatch is a fixed-size table indexed directly by opcode value, holes
// left nil for opcodes that have no stack effect (or aren't stack
// instructions at all). This mirrors kAnalyzeStackFunc from the original
// analyzer: a dense array beats a switch here because the opcode space is
// already a small dense byte range.
var dispatch [nwscript.OpcodeMAX]opFunc

func init() {
	dispatch = buildDispatch()
}

func buildDispatch() [nwscript.OpcodeMAX]opFunc {
	var d [nwscript.OpcodeMAX]opFunc

	d[nwscript.OpcodeCPDOWNSP] = opCPDOWNSP
	d[nwscript.OpcodeRSADD] = opPush
	d[nwscript.OpcodeCPTOPSP] = opCPTOPSP
	d[nwscript.OpcodeCONST] = opPush
	d[nwscript.OpcodeACTION] = opACTION
	d[nwscript.OpcodeLOGAND] = opBoolShift
	d[nwscript.OpcodeLOGOR] = opBoolShift
	d[nwscript.OpcodeINCOR] = opBoolShift
	d[nwscript.OpcodeEXCOR] = opBoolShift
	d[nwscript.OpcodeBOOLAND] = opBoolShift
	d[nwscript.OpcodeEQ] = opEq
	d[nwscript.OpcodeNEQ] = opEq
	d[nwscript.OpcodeGEQ] = opEq
	d[nwscript.OpcodeGT] = opEq
	d[nwscript.OpcodeLT] = opEq
	d[nwscript.OpcodeLEQ] = opEq
	d[nwscript.OpcodeSHLEFT] = opBoolShift
	d[nwscript.OpcodeSHRIGHT] = opBoolShift
	d[nwscript.OpcodeUSHRIGHT] = opBoolShift
	d[nwscript.OpcodeADD] = opBinArithm
	d[nwscript.OpcodeSUB] = opBinArithm
	d[nwscript.OpcodeMUL] = opBinArithm
	d[nwscript.OpcodeDIV] = opBinArithm
	d[nwscript.OpcodeMOD] = opBinArithm
	d[nwscript.OpcodeNEG] = opUnArithm
	d[nwscript.OpcodeCOMP] = opUnArithm
	d[nwscript.OpcodeMOVSP] = opPop
	d[nwscript.OpcodeJSR] = opJSR
	d[nwscript.OpcodeJZ] = opCond
	d[nwscript.OpcodeRETN] = opRETN
	d[nwscript.OpcodeDESTRUCT] = opDestruct
	d[nwscript.OpcodeNOT] = opUnArithm
	d[nwscript.OpcodeDECSP] = opModifySP
	d[nwscript.OpcodeINCSP] = opModifySP
	d[nwscript.OpcodeJNZ] = opCond
	d[nwscript.OpcodeCPDOWNBP] = opCPDOWNBP
	d[nwscript.OpcodeCPTOPBP] = opCPTOPBP
	d[nwscript.OpcodeDECBP] = opModifyBP
	d[nwscript.OpcodeINCBP] = opModifyBP
	d[nwscript.OpcodeSAVEBP] = opSAVEBP
	d[nwscript.OpcodeRESTOREBP] = opRESTOREBP

	// STORESTATEALL, JMP, STORESTATE, NOP, WRITEARRAY, READARRAY, GETREF,
	// GETREFARRAY and SCRIPTSIZE have no stack effect for this analyzer and
	// are left as nil, dispatched as no-ops by analyzeInstruction.

	return d
}
