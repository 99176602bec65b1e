package interpreter

import (
	"fmt"
	"io"
	"strings"

	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/istream"
)

// Trace writes a description of the instruction at the thread's program counter to w, including the values of the
// operands it will pop.
func (t *Thread) Trace(w io.Writer) error {
	ins, err := istream.Decode(t.env.istream, t.pc)
	if err != nil {
		return err
	}

	var operands strings.Builder
	if pops := ins.Info.Pops; pops > 0 && uint32(pops) <= t.valueTop {
		for depth := uint32(pops); depth > 0; depth-- {
			if operands.Len() != 0 {
				operands.WriteString(",")
			}
			operands.WriteString(" ")
			operands.WriteString(formatOperand(ins.Info.Name, *t.Pick(depth)))
		}
	}

	_, err = fmt.Fprintf(w, "#%d. %4d: V:%-3d| %s%s%s\n", t.callTop, t.pc, t.valueTop, ins.Opcode,
		istream.FormatImmediates(ins), operands.String())
	return err
}

// formatOperand renders a stack operand using the operand type implied by the instruction's mnemonic.
func formatOperand(mnemonic string, v exec.Value) string {
	switch {
	case strings.HasPrefix(mnemonic, "i64."):
		return fmt.Sprintf("%d", v.I64())
	case strings.HasPrefix(mnemonic, "f32."):
		return exec.TypedF32Bits(v.F32Bits()).String()
	case strings.HasPrefix(mnemonic, "f64."):
		return exec.TypedF64Bits(v.F64Bits()).String()
	case isSimdMnemonic(mnemonic):
		return exec.TypedV128(v.V128()).String()
	default:
		return fmt.Sprintf("%d", v.I32())
	}
}

func isSimdMnemonic(mnemonic string) bool {
	for _, prefix := range simdPrefixes {
		if strings.HasPrefix(mnemonic, prefix) {
			return true
		}
	}
	return false
}

var simdPrefixes = []string{"v128.", "v8x16.", "i8x16.", "i16x8.", "i32x4.", "i64x2.", "f32x4.", "f64x2."}
