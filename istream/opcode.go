package istream

import "fmt"

// An Opcode identifies an istream instruction. Prefixed opcodes hold the prefix byte in bits 8-15.
type Opcode uint16

// Prefix bytes.
const (
	PrefixSaturating = 0xfc
	PrefixSimd       = 0xfd
	PrefixAtomic     = 0xfe
)

// Variable marks a stack effect that depends on the instruction's operands.
const Variable = -1

// Immediates describes the operand layout that follows an opcode.
type Immediates uint8

const (
	ImmNone Immediates = iota
	// u32 absolute istream offset
	ImmOffset
	// u32 target count, u32 absolute offset of the target table
	ImmBrTable
	// u32 table index, u32 signature index
	ImmCallIndirect
	// u32 function index
	ImmFunc
	ImmI32
	ImmI64
	ImmF32
	ImmF64
	ImmV128
	// u32 stack depth
	ImmDepth
	// u32 global index
	ImmGlobal
	// u32 memory index
	ImmMemory
	// u32 memory index, u32 static offset
	ImmMemoryOffset
	// u32 slot count
	ImmCount
	// u32 drop count, u8 keep count
	ImmDropKeep
	// u32 byte count followed by that many bytes
	ImmData
	// u8 lane index
	ImmLane
	// 16 lane indices
	ImmShuffle
)

// Size returns the fixed size in bytes of the immediates. For ImmData this excludes the payload.
func (i Immediates) Size() int {
	switch i {
	case ImmNone:
		return 0
	case ImmOffset, ImmFunc, ImmI32, ImmF32, ImmDepth, ImmGlobal, ImmMemory, ImmCount, ImmData:
		return 4
	case ImmBrTable, ImmCallIndirect, ImmI64, ImmF64, ImmMemoryOffset:
		return 8
	case ImmDropKeep:
		return 5
	case ImmLane:
		return 1
	case ImmV128, ImmShuffle:
		return 16
	default:
		panic(fmt.Sprintf("unknown immediates %d", int(i)))
	}
}

// BrTableEntrySize is the size of one entry in a br_table target table: u32 offset, u32 drop, u8 keep.
const BrTableEntrySize = 9

// Info describes an opcode.
type Info struct {
	Name       string
	Immediates Immediates
	// Pops and Pushes give the instruction's stack effect, or Variable.
	Pops, Pushes int
}

// Lookup returns the description of the given opcode.
func Lookup(op Opcode) (Info, bool) {
	info, ok := opcodeInfos[op]
	return info, ok
}

// Opcodes returns every defined opcode.
func Opcodes() []Opcode {
	ops := make([]Opcode, 0, len(opcodeInfos))
	for op := range opcodeInfos {
		ops = append(ops, op)
	}
	return ops
}

func (op Opcode) String() string {
	if info, ok := opcodeInfos[op]; ok {
		return info.Name
	}
	return fmt.Sprintf("<unknown opcode 0x%x>", uint16(op))
}

// IsPrefixed returns true if the opcode is encoded with a prefix byte.
func (op Opcode) IsPrefixed() bool {
	return op > 0xff
}

// Size returns the size of the opcode's encoding in bytes.
func (op Opcode) Size() int {
	if op.IsPrefixed() {
		return 2
	}
	return 1
}

// IsStructured returns true for the structured control opcodes, which never appear in an istream.
func (op Opcode) IsStructured() bool {
	switch op {
	case OpBlock, OpLoop, OpIf, OpElse, OpEnd:
		return true
	default:
		return false
	}
}

// ReadOpcode reads the opcode at pc. It returns the opcode and the pc of its first immediate.
func ReadOpcode(code []byte, pc uint32) (Opcode, uint32) {
	b := code[pc]
	switch b {
	case PrefixSaturating, PrefixSimd, PrefixAtomic:
		return Opcode(b)<<8 | Opcode(code[pc+1]), pc + 2
	default:
		return Opcode(b), pc + 1
	}
}

func appendOpcode(buf []byte, op Opcode) []byte {
	if op.IsPrefixed() {
		return append(buf, byte(op>>8), byte(op))
	}
	return append(buf, byte(op))
}
