package istream

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// FormatImmediates renders a decoded instruction's immediates.
func FormatImmediates(ins Instruction) string {
	switch ins.Info.Immediates {
	case ImmNone:
		return ""
	case ImmOffset:
		return fmt.Sprintf(" @%d", ins.Imm0)
	case ImmBrTable:
		return fmt.Sprintf(" %%[-1], $#%d, table:$%d", ins.Imm0, ins.Imm1)
	case ImmCallIndirect:
		return fmt.Sprintf(" $%d, sig:%d, %%[-1]", ins.Imm0, ins.Imm1)
	case ImmFunc, ImmDepth, ImmGlobal, ImmMemory, ImmCount:
		return fmt.Sprintf(" $%d", ins.Imm0)
	case ImmI32:
		return fmt.Sprintf(" %d", ins.Imm0)
	case ImmI64:
		return fmt.Sprintf(" %d", ins.Imm64)
	case ImmF32:
		return fmt.Sprintf(" %g", math.Float32frombits(ins.Imm0))
	case ImmF64:
		return fmt.Sprintf(" %g", math.Float64frombits(ins.Imm64))
	case ImmV128, ImmShuffle:
		l := ins.V128.Uint32Lanes()
		return fmt.Sprintf(" 0x%08x 0x%08x 0x%08x 0x%08x", l[0], l[1], l[2], l[3])
	case ImmMemoryOffset:
		return fmt.Sprintf(" $%d:%%[-1]+$%d", ins.Imm0, ins.Imm1)
	case ImmDropKeep:
		return fmt.Sprintf(" $%d $%d", ins.Imm0, ins.Imm8)
	case ImmData:
		return fmt.Sprintf(" $%d", ins.Imm0)
	case ImmLane:
		return fmt.Sprintf(" : lane %d", ins.Imm8)
	default:
		return ""
	}
}

// Disassemble writes a listing of the instructions in code[start:end] to w.
func Disassemble(w io.Writer, code []byte, start, end uint32) error {
	prev := OpNop
	for pc := start; pc < end; {
		ins, err := Decode(code, pc)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, "%4d| %s%s\n", pc, ins.Opcode, FormatImmediates(ins)); err != nil {
			return err
		}

		if ins.Opcode == OpInterpData && prev == OpBrTable {
			for i := uint32(0); i < uint32(len(ins.Data)); i += BrTableEntrySize {
				e := ReadBrTableEntry(code, pc+uint32(OpInterpData.Size())+4+i)
				if _, err := fmt.Fprintf(w, "%4d|   entry %d: offset: %d drop: %d keep: %d\n", pc, i/BrTableEntrySize, e.Offset, e.Drop, e.Keep); err != nil {
					return err
				}
			}
		}
		pc, prev = ins.Next, ins.Opcode
	}
	return nil
}

// DisassembleString is a convenience wrapper around Disassemble.
func DisassembleString(code []byte, start, end uint32) (string, error) {
	var sb strings.Builder
	err := Disassemble(&sb, code, start, end)
	return sb.String(), err
}
