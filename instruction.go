package nwscript

// OpcodeArgument names the encoding of one direct instruction argument, as
// produced by the (external) disassembler.
type OpcodeArgument uint8

const (
	OpcodeArgNone OpcodeArgument = iota
	OpcodeArgUint8
	OpcodeArgUint16
	OpcodeArgSint16
	OpcodeArgSint32
	OpcodeArgUint32
	OpcodeArgVariable
)

// AddressType classifies why an instruction's address is notable to the
// disassembler's control-flow reconstruction. Nothing in this module reads
// it; neither the analyzer nor the report/CLI packages consume it.
type AddressType uint8

const (
	AddressTypeNone AddressType = iota
	AddressTypeTail
	AddressTypeJumpLabel
	AddressTypeStoreState
	AddressTypeSubRoutine
)

// MaxOpcodeArguments bounds the direct-argument arrays on Instruction.
const MaxOpcodeArguments = 3

// Instruction is one decoded NWScript bytecode instruction, as produced by
// the (external) disassembler. The analyzer reads Opcode, Type, Args,
// ArgCount, Address, Branches and Block, and writes Stack and Variables;
// every other field is disassembler-produced CFG/literal metadata that no
// package in this module reads.
type Instruction struct {
	Address uint32

	Opcode Opcode
	Type   InstructionType

	ArgCount int
	Args     [MaxOpcodeArguments]int32
	ArgTypes [MaxOpcodeArguments]OpcodeArgument

	// ConstValueInt/Float/Object/String hold the literal payload of a CONST
	// instruction, keyed by Type.
	ConstValueInt    int32
	ConstValueFloat  float32
	ConstValueObject uint32
	ConstValueString string

	AddressType AddressType

	// Follower is the instruction naturally following this one when control
	// flow doesn't branch. Nil for RETN and JMP.
	Follower *Instruction

	// Predecessors are the instructions that lead into this one, whether by
	// fallthrough or jump, within the same subroutine.
	Predecessors []*Instruction

	// Branches holds this instruction's jump targets: empty if it doesn't
	// branch, one entry for an unconditional branch (including JSR), two
	// for a conditional (true, then false).
	Branches []*Instruction

	Block *Block

	// Stack is the analyzer-written snapshot of the abstract stack as it
	// stood immediately before this instruction executed, truncated to the
	// current subroutine's own frame.
	Stack Stack

	// Variables lists, in the order they were touched, every Variable this
	// instruction created, read, or wrote.
	Variables []*Variable
}

// Touch records that this instruction created, read, or wrote v.
func (i *Instruction) Touch(v *Variable) {
	i.Variables = append(i.Variables, v)
}
