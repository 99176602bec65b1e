package interpreter

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/istream"
)

// Run executes up to n instructions. It returns Ok if all n instructions executed, Returned if the outermost function
// returned, or the trap that stopped execution. On a trap the program counter is left at the trapping instruction.
func (t *Thread) Run(n int) exec.Result {
	code := t.env.istream
	pc := t.pc
	for i := 0; i < n; i++ {
		start := pc
		op, next := istream.ReadOpcode(code, pc)
		pc = next
		t.steps++

		if res := t.step(op, code, &pc); res != exec.Ok {
			if res != exec.Returned {
				pc = start
			}
			t.pc = pc
			return res
		}
	}
	t.pc = pc
	return exec.Ok
}

func (t *Thread) step(op istream.Opcode, code []byte, pc *uint32) exec.Result {
	switch op {
	case istream.OpUnreachable:
		return exec.TrapUnreachable
	case istream.OpNop:
		return exec.Ok

	case istream.OpBr:
		*pc = readU32(code, pc)
		return exec.Ok
	case istream.OpBrIf:
		target := readU32(code, pc)
		if t.popI32() != 0 {
			*pc = target
		}
		return exec.Ok
	case istream.OpInterpBrUnless:
		target := readU32(code, pc)
		if t.popI32() == 0 {
			*pc = target
		}
		return exec.Ok
	case istream.OpBrTable:
		numTargets := readU32(code, pc)
		tableOffset := readU32(code, pc)
		key := t.popI32()
		if key > numTargets {
			key = numTargets
		}
		entry := istream.ReadBrTableEntry(code, tableOffset+key*istream.BrTableEntrySize)
		t.DropKeep(entry.Drop, entry.Keep)
		*pc = entry.Offset
		return exec.Ok
	case istream.OpReturn:
		if t.callTop == 0 {
			return exec.Returned
		}
		*pc = t.popCall()
		return exec.Ok
	case istream.OpCall:
		target := readU32(code, pc)
		if res := t.pushCall(*pc); res != exec.Ok {
			return res
		}
		*pc = target
		return exec.Ok
	case istream.OpCallIndirect:
		return t.callIndirect(code, pc)
	case istream.OpInterpCallHost:
		return t.CallHost(t.env.Func(readU32(code, pc)).(*HostFunc))

	case istream.OpDrop:
		t.Pop()
		return exec.Ok
	case istream.OpSelect:
		cond := t.popI32()
		f := t.Pop()
		tr := t.Pop()
		if cond != 0 {
			return t.Push(tr)
		}
		return t.Push(f)
	case istream.OpInterpAlloca:
		count := readU32(code, pc)
		if uint64(t.valueTop)+uint64(count) > uint64(len(t.values)) {
			return exec.TrapValueStackExhausted
		}
		clear(t.values[t.valueTop : t.valueTop+count])
		t.valueTop += count
		return exec.Ok
	case istream.OpInterpDropKeep:
		drop := readU32(code, pc)
		keep := readU8(code, pc)
		t.DropKeep(drop, keep)
		return exec.Ok

	case istream.OpLocalGet:
		return t.Push(*t.Pick(readU32(code, pc)))
	case istream.OpLocalSet:
		v := t.Pop()
		*t.Pick(readU32(code, pc)) = v
		return exec.Ok
	case istream.OpLocalTee:
		*t.Pick(readU32(code, pc)) = t.Top()
		return exec.Ok
	case istream.OpGlobalGet:
		return t.Push(t.env.Global(readU32(code, pc)).Get())
	case istream.OpGlobalSet:
		t.env.Global(readU32(code, pc)).Set(t.Pop())
		return exec.Ok

	case istream.OpI32Load, istream.OpF32Load:
		return t.load(code, pc, 4, zeroExtend)
	case istream.OpI64Load, istream.OpF64Load:
		return t.load(code, pc, 8, zeroExtend)
	case istream.OpI32Load8S:
		return t.load(code, pc, 1, i32SignExtend8)
	case istream.OpI32Load8U, istream.OpI64Load8U:
		return t.load(code, pc, 1, zeroExtend)
	case istream.OpI32Load16S:
		return t.load(code, pc, 2, i32SignExtend16)
	case istream.OpI32Load16U, istream.OpI64Load16U:
		return t.load(code, pc, 2, zeroExtend)
	case istream.OpI64Load8S:
		return t.load(code, pc, 1, i64SignExtend8)
	case istream.OpI64Load16S:
		return t.load(code, pc, 2, i64SignExtend16)
	case istream.OpI64Load32S:
		return t.load(code, pc, 4, i64SignExtend32)
	case istream.OpI64Load32U:
		return t.load(code, pc, 4, zeroExtend)
	case istream.OpI32Store, istream.OpF32Store, istream.OpI64Store32:
		return t.store(code, pc, 4)
	case istream.OpI64Store, istream.OpF64Store:
		return t.store(code, pc, 8)
	case istream.OpI32Store8, istream.OpI64Store8:
		return t.store(code, pc, 1)
	case istream.OpI32Store16, istream.OpI64Store16:
		return t.store(code, pc, 2)
	case istream.OpMemorySize:
		return t.pushI32(t.env.Memory(readU32(code, pc)).Size())
	case istream.OpMemoryGrow:
		mem := t.env.Memory(readU32(code, pc))
		old, err := mem.Grow(t.popI32())
		if err != nil {
			return t.pushI32(math.MaxUint32)
		}
		return t.pushI32(old)

	case istream.OpI32Const, istream.OpF32Const:
		return t.pushI32(readU32(code, pc))
	case istream.OpI64Const, istream.OpF64Const:
		return t.pushI64(readU64(code, pc))

	case istream.OpI32Eqz:
		return t.pushI32(b2i(t.popI32() == 0))
	case istream.OpI32Eq:
		return t.i32Compare(func(a, b uint32) bool { return a == b })
	case istream.OpI32Ne:
		return t.i32Compare(func(a, b uint32) bool { return a != b })
	case istream.OpI32LtS:
		return t.i32Compare(func(a, b uint32) bool { return int32(a) < int32(b) })
	case istream.OpI32LtU:
		return t.i32Compare(func(a, b uint32) bool { return a < b })
	case istream.OpI32GtS:
		return t.i32Compare(func(a, b uint32) bool { return int32(a) > int32(b) })
	case istream.OpI32GtU:
		return t.i32Compare(func(a, b uint32) bool { return a > b })
	case istream.OpI32LeS:
		return t.i32Compare(func(a, b uint32) bool { return int32(a) <= int32(b) })
	case istream.OpI32LeU:
		return t.i32Compare(func(a, b uint32) bool { return a <= b })
	case istream.OpI32GeS:
		return t.i32Compare(func(a, b uint32) bool { return int32(a) >= int32(b) })
	case istream.OpI32GeU:
		return t.i32Compare(func(a, b uint32) bool { return a >= b })

	case istream.OpI64Eqz:
		return t.pushI32(b2i(t.popI64() == 0))
	case istream.OpI64Eq:
		return t.i64Compare(func(a, b uint64) bool { return a == b })
	case istream.OpI64Ne:
		return t.i64Compare(func(a, b uint64) bool { return a != b })
	case istream.OpI64LtS:
		return t.i64Compare(func(a, b uint64) bool { return int64(a) < int64(b) })
	case istream.OpI64LtU:
		return t.i64Compare(func(a, b uint64) bool { return a < b })
	case istream.OpI64GtS:
		return t.i64Compare(func(a, b uint64) bool { return int64(a) > int64(b) })
	case istream.OpI64GtU:
		return t.i64Compare(func(a, b uint64) bool { return a > b })
	case istream.OpI64LeS:
		return t.i64Compare(func(a, b uint64) bool { return int64(a) <= int64(b) })
	case istream.OpI64LeU:
		return t.i64Compare(func(a, b uint64) bool { return a <= b })
	case istream.OpI64GeS:
		return t.i64Compare(func(a, b uint64) bool { return int64(a) >= int64(b) })
	case istream.OpI64GeU:
		return t.i64Compare(func(a, b uint64) bool { return a >= b })

	case istream.OpF32Eq:
		return t.i32Binop(exec.F32Eq)
	case istream.OpF32Ne:
		return t.i32Binop(exec.F32Ne)
	case istream.OpF32Lt:
		return t.i32Binop(exec.F32Lt)
	case istream.OpF32Gt:
		return t.i32Binop(exec.F32Gt)
	case istream.OpF32Le:
		return t.i32Binop(exec.F32Le)
	case istream.OpF32Ge:
		return t.i32Binop(exec.F32Ge)
	case istream.OpF64Eq:
		return t.f64Compare(exec.F64Eq)
	case istream.OpF64Ne:
		return t.f64Compare(exec.F64Ne)
	case istream.OpF64Lt:
		return t.f64Compare(exec.F64Lt)
	case istream.OpF64Gt:
		return t.f64Compare(exec.F64Gt)
	case istream.OpF64Le:
		return t.f64Compare(exec.F64Le)
	case istream.OpF64Ge:
		return t.f64Compare(exec.F64Ge)

	case istream.OpI32Clz:
		return t.i32Unop(func(a uint32) uint32 { return uint32(bits.LeadingZeros32(a)) })
	case istream.OpI32Ctz:
		return t.i32Unop(func(a uint32) uint32 { return uint32(bits.TrailingZeros32(a)) })
	case istream.OpI32Popcnt:
		return t.i32Unop(func(a uint32) uint32 { return uint32(bits.OnesCount32(a)) })
	case istream.OpI32Add:
		return t.i32Binop(func(a, b uint32) uint32 { return a + b })
	case istream.OpI32Sub:
		return t.i32Binop(func(a, b uint32) uint32 { return a - b })
	case istream.OpI32Mul:
		return t.i32Binop(func(a, b uint32) uint32 { return a * b })
	case istream.OpI32DivS:
		return t.i32BinopTrap(exec.I32DivS)
	case istream.OpI32DivU:
		return t.i32BinopTrap(exec.I32DivU)
	case istream.OpI32RemS:
		return t.i32BinopTrap(exec.I32RemS)
	case istream.OpI32RemU:
		return t.i32BinopTrap(exec.I32RemU)
	case istream.OpI32And:
		return t.i32Binop(func(a, b uint32) uint32 { return a & b })
	case istream.OpI32Or:
		return t.i32Binop(func(a, b uint32) uint32 { return a | b })
	case istream.OpI32Xor:
		return t.i32Binop(func(a, b uint32) uint32 { return a ^ b })
	case istream.OpI32Shl:
		return t.i32Binop(exec.I32Shl)
	case istream.OpI32ShrS:
		return t.i32Binop(exec.I32ShrS)
	case istream.OpI32ShrU:
		return t.i32Binop(exec.I32ShrU)
	case istream.OpI32Rotl:
		return t.i32Binop(exec.I32Rotl)
	case istream.OpI32Rotr:
		return t.i32Binop(exec.I32Rotr)

	case istream.OpI64Clz:
		return t.i64Unop(func(a uint64) uint64 { return uint64(bits.LeadingZeros64(a)) })
	case istream.OpI64Ctz:
		return t.i64Unop(func(a uint64) uint64 { return uint64(bits.TrailingZeros64(a)) })
	case istream.OpI64Popcnt:
		return t.i64Unop(func(a uint64) uint64 { return uint64(bits.OnesCount64(a)) })
	case istream.OpI64Add:
		return t.i64Binop(func(a, b uint64) uint64 { return a + b })
	case istream.OpI64Sub:
		return t.i64Binop(func(a, b uint64) uint64 { return a - b })
	case istream.OpI64Mul:
		return t.i64Binop(func(a, b uint64) uint64 { return a * b })
	case istream.OpI64DivS:
		return t.i64BinopTrap(exec.I64DivS)
	case istream.OpI64DivU:
		return t.i64BinopTrap(exec.I64DivU)
	case istream.OpI64RemS:
		return t.i64BinopTrap(exec.I64RemS)
	case istream.OpI64RemU:
		return t.i64BinopTrap(exec.I64RemU)
	case istream.OpI64And:
		return t.i64Binop(func(a, b uint64) uint64 { return a & b })
	case istream.OpI64Or:
		return t.i64Binop(func(a, b uint64) uint64 { return a | b })
	case istream.OpI64Xor:
		return t.i64Binop(func(a, b uint64) uint64 { return a ^ b })
	case istream.OpI64Shl:
		return t.i64Binop(exec.I64Shl)
	case istream.OpI64ShrS:
		return t.i64Binop(exec.I64ShrS)
	case istream.OpI64ShrU:
		return t.i64Binop(exec.I64ShrU)
	case istream.OpI64Rotl:
		return t.i64Binop(exec.I64Rotl)
	case istream.OpI64Rotr:
		return t.i64Binop(exec.I64Rotr)

	case istream.OpF32Abs:
		return t.i32Unop(exec.F32Abs)
	case istream.OpF32Neg:
		return t.i32Unop(exec.F32Neg)
	case istream.OpF32Ceil:
		return t.i32Unop(exec.F32Ceil)
	case istream.OpF32Floor:
		return t.i32Unop(exec.F32Floor)
	case istream.OpF32Trunc:
		return t.i32Unop(exec.F32Trunc)
	case istream.OpF32Nearest:
		return t.i32Unop(exec.F32Nearest)
	case istream.OpF32Sqrt:
		return t.i32Unop(exec.F32Sqrt)
	case istream.OpF32Add:
		return t.i32Binop(exec.F32Add)
	case istream.OpF32Sub:
		return t.i32Binop(exec.F32Sub)
	case istream.OpF32Mul:
		return t.i32Binop(exec.F32Mul)
	case istream.OpF32Div:
		return t.i32Binop(exec.F32Div)
	case istream.OpF32Min:
		return t.i32Binop(exec.F32Min)
	case istream.OpF32Max:
		return t.i32Binop(exec.F32Max)
	case istream.OpF32Copysign:
		return t.i32Binop(exec.F32Copysign)

	case istream.OpF64Abs:
		return t.i64Unop(exec.F64Abs)
	case istream.OpF64Neg:
		return t.i64Unop(exec.F64Neg)
	case istream.OpF64Ceil:
		return t.i64Unop(exec.F64Ceil)
	case istream.OpF64Floor:
		return t.i64Unop(exec.F64Floor)
	case istream.OpF64Trunc:
		return t.i64Unop(exec.F64Trunc)
	case istream.OpF64Nearest:
		return t.i64Unop(exec.F64Nearest)
	case istream.OpF64Sqrt:
		return t.i64Unop(exec.F64Sqrt)
	case istream.OpF64Add:
		return t.i64Binop(exec.F64Add)
	case istream.OpF64Sub:
		return t.i64Binop(exec.F64Sub)
	case istream.OpF64Mul:
		return t.i64Binop(exec.F64Mul)
	case istream.OpF64Div:
		return t.i64Binop(exec.F64Div)
	case istream.OpF64Min:
		return t.i64Binop(exec.F64Min)
	case istream.OpF64Max:
		return t.i64Binop(exec.F64Max)
	case istream.OpF64Copysign:
		return t.i64Binop(exec.F64Copysign)

	case istream.OpI32WrapI64:
		return t.pushI32(uint32(t.popI64()))
	case istream.OpI32TruncF32S:
		return t.convertTrap32(exec.I32TruncF32S(t.popI32()))
	case istream.OpI32TruncF32U:
		return t.convertTrap32(exec.I32TruncF32U(t.popI32()))
	case istream.OpI32TruncF64S:
		return t.convertTrap32(exec.I32TruncF64S(t.popI64()))
	case istream.OpI32TruncF64U:
		return t.convertTrap32(exec.I32TruncF64U(t.popI64()))
	case istream.OpI64ExtendI32S:
		return t.pushI64(uint64(int64(int32(t.popI32()))))
	case istream.OpI64ExtendI32U:
		return t.pushI64(uint64(t.popI32()))
	case istream.OpI64TruncF32S:
		return t.convertTrap64(exec.I64TruncF32S(t.popI32()))
	case istream.OpI64TruncF32U:
		return t.convertTrap64(exec.I64TruncF32U(t.popI32()))
	case istream.OpI64TruncF64S:
		return t.convertTrap64(exec.I64TruncF64S(t.popI64()))
	case istream.OpI64TruncF64U:
		return t.convertTrap64(exec.I64TruncF64U(t.popI64()))
	case istream.OpF32ConvertI32S:
		return t.i32Unop(exec.F32ConvertI32S)
	case istream.OpF32ConvertI32U:
		return t.i32Unop(exec.F32ConvertI32U)
	case istream.OpF32ConvertI64S:
		return t.pushI32(exec.F32ConvertI64S(t.popI64()))
	case istream.OpF32ConvertI64U:
		return t.pushI32(exec.F32ConvertI64U(t.popI64()))
	case istream.OpF32DemoteF64:
		return t.pushI32(exec.F32DemoteF64(t.popI64()))
	case istream.OpF64ConvertI32S:
		return t.pushI64(exec.F64ConvertI32S(t.popI32()))
	case istream.OpF64ConvertI32U:
		return t.pushI64(exec.F64ConvertI32U(t.popI32()))
	case istream.OpF64ConvertI64S:
		return t.i64Unop(exec.F64ConvertI64S)
	case istream.OpF64ConvertI64U:
		return t.i64Unop(exec.F64ConvertI64U)
	case istream.OpF64PromoteF32:
		return t.pushI64(exec.F64PromoteF32(t.popI32()))
	case istream.OpI32ReinterpretF32, istream.OpF32ReinterpretI32:
		return t.pushI32(t.popI32())
	case istream.OpI64ReinterpretF64, istream.OpF64ReinterpretI64:
		return exec.Ok

	case istream.OpI32Extend8S:
		return t.i32Unop(exec.I32Extend8S)
	case istream.OpI32Extend16S:
		return t.i32Unop(exec.I32Extend16S)
	case istream.OpI64Extend8S:
		return t.i64Unop(exec.I64Extend8S)
	case istream.OpI64Extend16S:
		return t.i64Unop(exec.I64Extend16S)
	case istream.OpI64Extend32S:
		return t.i64Unop(exec.I64Extend32S)

	case istream.OpI32TruncSatF32S:
		return t.i32Unop(exec.I32TruncSatF32S)
	case istream.OpI32TruncSatF32U:
		return t.i32Unop(exec.I32TruncSatF32U)
	case istream.OpI32TruncSatF64S:
		return t.pushI32(exec.I32TruncSatF64S(t.popI64()))
	case istream.OpI32TruncSatF64U:
		return t.pushI32(exec.I32TruncSatF64U(t.popI64()))
	case istream.OpI64TruncSatF32S:
		return t.pushI64(exec.I64TruncSatF32S(t.popI32()))
	case istream.OpI64TruncSatF32U:
		return t.pushI64(exec.I64TruncSatF32U(t.popI32()))
	case istream.OpI64TruncSatF64S:
		return t.i64Unop(exec.I64TruncSatF64S)
	case istream.OpI64TruncSatF64U:
		return t.i64Unop(exec.I64TruncSatF64U)

	case istream.OpBlock, istream.OpLoop, istream.OpIf, istream.OpElse, istream.OpEnd, istream.OpInterpData:
		panic(fmt.Sprintf("unexpected opcode %v at %d", op, *pc-uint32(op.Size())))
	}

	switch op >> 8 {
	case istream.PrefixAtomic:
		return t.atomic(op, code, pc)
	case istream.PrefixSimd:
		return t.simd(op, code, pc)
	}
	panic(fmt.Sprintf("unknown opcode %v at %d", op, *pc-uint32(op.Size())))
}

func (t *Thread) callIndirect(code []byte, pc *uint32) exec.Result {
	table := t.env.Table(readU32(code, pc))
	sigIndex := readU32(code, pc)

	entry := t.popI32()
	if entry >= table.Size() {
		return exec.TrapUndefinedTableIndex
	}
	funcIndex := table.Entries()[entry]
	if funcIndex == exec.InvalidIndex {
		return exec.TrapUninitializedTableElement
	}

	callee := t.env.Func(funcIndex)
	if !t.env.FuncSignaturesAreEqual(callee.Signature(), sigIndex) {
		return exec.TrapIndirectCallSignatureMismatch
	}

	switch callee := callee.(type) {
	case *HostFunc:
		return t.CallHost(callee)
	case *DefinedFunc:
		if res := t.pushCall(*pc); res != exec.Ok {
			return res
		}
		*pc = callee.Offset
		return exec.Ok
	default:
		panic(fmt.Sprintf("unexpected function type %T", callee))
	}
}

func (t *Thread) i32Unop(f func(a uint32) uint32) exec.Result {
	return t.pushI32(f(t.popI32()))
}

func (t *Thread) i32Binop(f func(a, b uint32) uint32) exec.Result {
	b := t.popI32()
	a := t.popI32()
	return t.pushI32(f(a, b))
}

func (t *Thread) i32BinopTrap(f func(a, b uint32) (uint32, exec.Result)) exec.Result {
	b := t.popI32()
	a := t.popI32()
	v, res := f(a, b)
	if res != exec.Ok {
		return res
	}
	return t.pushI32(v)
}

func (t *Thread) i32Compare(f func(a, b uint32) bool) exec.Result {
	b := t.popI32()
	a := t.popI32()
	return t.pushI32(b2i(f(a, b)))
}

func (t *Thread) i64Unop(f func(a uint64) uint64) exec.Result {
	return t.pushI64(f(t.popI64()))
}

func (t *Thread) i64Binop(f func(a, b uint64) uint64) exec.Result {
	b := t.popI64()
	a := t.popI64()
	return t.pushI64(f(a, b))
}

func (t *Thread) i64BinopTrap(f func(a, b uint64) (uint64, exec.Result)) exec.Result {
	b := t.popI64()
	a := t.popI64()
	v, res := f(a, b)
	if res != exec.Ok {
		return res
	}
	return t.pushI64(v)
}

func (t *Thread) i64Compare(f func(a, b uint64) bool) exec.Result {
	b := t.popI64()
	a := t.popI64()
	return t.pushI32(b2i(f(a, b)))
}

func (t *Thread) f64Compare(f func(a, b uint64) uint32) exec.Result {
	b := t.popI64()
	a := t.popI64()
	return t.pushI32(f(a, b))
}

func (t *Thread) convertTrap32(v uint32, res exec.Result) exec.Result {
	if res != exec.Ok {
		return res
	}
	return t.pushI32(v)
}

func (t *Thread) convertTrap64(v uint64, res exec.Result) exec.Result {
	if res != exec.Ok {
		return res
	}
	return t.pushI64(v)
}
