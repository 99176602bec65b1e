package istream

import (
	"encoding/binary"
	"fmt"

	"github.com/pgavlin/wisp/exec"
)

// DecodeError describes an undecodable instruction.
type DecodeError struct {
	Offset uint32
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%d: %s", e.Offset, e.Reason)
}

// An Instruction is a decoded istream instruction.
type Instruction struct {
	Offset uint32
	Opcode Opcode
	Info   Info

	// Imm0 and Imm1 hold the 32-bit immediates in encoding order.
	Imm0, Imm1 uint32
	// Imm64 holds a 64-bit constant.
	Imm64 uint64
	// Imm8 holds a keep count or lane index.
	Imm8 uint8
	// V128 holds a v128 constant or shuffle lanes.
	V128 exec.V128
	// Data holds the payload of an InterpData block.
	Data []byte

	// Next is the offset of the following instruction.
	Next uint32
}

// Decode decodes the instruction at pc.
func Decode(code []byte, pc uint32) (Instruction, error) {
	if uint64(pc) >= uint64(len(code)) {
		return Instruction{}, &DecodeError{Offset: pc, Reason: "unexpected end of code"}
	}
	if b := code[pc]; (b == PrefixSaturating || b == PrefixSimd || b == PrefixAtomic) && uint64(pc)+1 >= uint64(len(code)) {
		return Instruction{}, &DecodeError{Offset: pc, Reason: "truncated opcode"}
	}

	op, at := ReadOpcode(code, pc)
	info, ok := Lookup(op)
	if !ok {
		return Instruction{}, &DecodeError{Offset: pc, Reason: fmt.Sprintf("unknown opcode 0x%x", uint16(op))}
	}
	if op.IsStructured() {
		return Instruction{}, &DecodeError{Offset: pc, Reason: fmt.Sprintf("unexpected structured opcode %v", op)}
	}

	size := uint64(info.Immediates.Size())
	if uint64(at)+size > uint64(len(code)) {
		return Instruction{}, &DecodeError{Offset: pc, Reason: fmt.Sprintf("truncated immediates for %v", op)}
	}

	ins := Instruction{Offset: pc, Opcode: op, Info: info}
	imm := code[at:]
	switch info.Immediates {
	case ImmOffset, ImmFunc, ImmI32, ImmF32, ImmDepth, ImmGlobal, ImmMemory, ImmCount:
		ins.Imm0 = binary.LittleEndian.Uint32(imm)
	case ImmBrTable, ImmCallIndirect, ImmMemoryOffset:
		ins.Imm0, ins.Imm1 = binary.LittleEndian.Uint32(imm), binary.LittleEndian.Uint32(imm[4:])
	case ImmI64, ImmF64:
		ins.Imm64 = binary.LittleEndian.Uint64(imm)
	case ImmV128, ImmShuffle:
		ins.V128 = exec.V128{Lo: binary.LittleEndian.Uint64(imm), Hi: binary.LittleEndian.Uint64(imm[8:])}
	case ImmDropKeep:
		ins.Imm0, ins.Imm8 = binary.LittleEndian.Uint32(imm), imm[4]
	case ImmLane:
		ins.Imm8 = imm[0]
	case ImmData:
		ins.Imm0 = binary.LittleEndian.Uint32(imm)
		if uint64(at)+size+uint64(ins.Imm0) > uint64(len(code)) {
			return Instruction{}, &DecodeError{Offset: pc, Reason: "truncated data"}
		}
		ins.Data = imm[4 : 4+ins.Imm0]
		size += uint64(ins.Imm0)
	}
	ins.Next = at + uint32(size)
	return ins, nil
}

// BrTableEntry is one decoded entry of a br_table target table.
type BrTableEntry struct {
	Offset uint32
	Drop   uint32
	Keep   uint8
}

// ReadBrTableEntry reads the br_table entry at the given absolute offset.
func ReadBrTableEntry(code []byte, at uint32) BrTableEntry {
	return BrTableEntry{
		Offset: binary.LittleEndian.Uint32(code[at:]),
		Drop:   binary.LittleEndian.Uint32(code[at+4:]),
		Keep:   code[at+8],
	}
}

// BrTableEntries returns every entry of a decoded br_table's target table, default last.
func BrTableEntries(code []byte, ins Instruction) ([]BrTableEntry, error) {
	count, table := uint64(ins.Imm0)+1, uint64(ins.Imm1)
	if table+count*BrTableEntrySize > uint64(len(code)) {
		return nil, &DecodeError{Offset: ins.Offset, Reason: "br_table target table out of range"}
	}
	entries := make([]BrTableEntry, count)
	for i := range entries {
		entries[i] = ReadBrTableEntry(code, uint32(table+uint64(i)*BrTableEntrySize))
	}
	return entries, nil
}
