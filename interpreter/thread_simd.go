package interpreter

import (
	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/istream"
)

func (t *Thread) simdUnop(width uint, f func(x uint64) uint64) exec.Result {
	return t.pushV128(exec.SimdUnop(t.popV128(), width, f))
}

func (t *Thread) simdBinop(width uint, f func(x, y uint64) uint64) exec.Result {
	b := t.popV128()
	a := t.popV128()
	return t.pushV128(exec.SimdBinop(a, b, width, f))
}

// simdCompare sets each result lane to 1 where cmp holds for the corresponding input lanes and to 0 elsewhere.
func (t *Thread) simdCompare(width uint, signed bool, cmp func(x, y int64) bool) exec.Result {
	return t.simdBinop(width, func(x, y uint64) uint64 {
		if signed {
			return uint64(b2i(cmp(exec.SignExtendLane(x, width), exec.SignExtendLane(y, width))))
		}
		return uint64(b2i(cmp(int64(x), int64(y))))
	})
}

func (t *Thread) simdShift(width uint, f func(x uint64, n uint) uint64) exec.Result {
	count := t.popI32()
	return t.pushV128(exec.SimdShift(t.popV128(), width, count, f))
}

func (t *Thread) extractLane(code []byte, pc *uint32, width uint) uint64 {
	lane := uint(readU8(code, pc)) & (exec.Lanes(width) - 1)
	return t.popV128().Lane(width, lane)
}

func (t *Thread) replaceLane(code []byte, pc *uint32, width uint) exec.Result {
	lane := uint(readU8(code, pc)) & (exec.Lanes(width) - 1)
	x := t.Pop().Lo
	return t.pushV128(t.popV128().WithLane(width, lane, x))
}

func eq(x, y int64) bool { return x == y }
func ne(x, y int64) bool { return x != y }
func lt(x, y int64) bool { return x < y }
func le(x, y int64) bool { return x <= y }
func gt(x, y int64) bool { return x > y }
func ge(x, y int64) bool { return x >= y }

func laneAdd(x, y uint64) uint64 { return x + y }
func laneSub(x, y uint64) uint64 { return x - y }
func laneMul(x, y uint64) uint64 { return x * y }
func laneNeg(x uint64) uint64    { return -x }

func laneShl(x uint64, n uint) uint64  { return x << n }
func laneShrU(x uint64, n uint) uint64 { return x >> n }

func laneShrS(width uint) func(x uint64, n uint) uint64 {
	return func(x uint64, n uint) uint64 { return uint64(exec.SignExtendLane(x, width) >> n) }
}

func (t *Thread) simd(op istream.Opcode, code []byte, pc *uint32) exec.Result {
	switch op {
	case istream.OpV128Load:
		mem, addr, res := t.address(code, pc, 16, false)
		if res != exec.Ok {
			return res
		}
		return t.pushV128(mem.V128At(addr))
	case istream.OpV128Store:
		v := t.popV128()
		mem, addr, res := t.address(code, pc, 16, false)
		if res != exec.Ok {
			return res
		}
		mem.PutV128At(v, addr)
		return exec.Ok
	case istream.OpV128Const:
		return t.pushV128(readV128(code, pc))
	case istream.OpV8X16Shuffle:
		lanes := readV128(code, pc)
		b := t.popV128()
		a := t.popV128()
		return t.pushV128(exec.SimdShuffle(a, b, lanes))

	case istream.OpI8X16Splat:
		return t.pushV128(exec.Splat(uint64(t.popI32()), 8))
	case istream.OpI16X8Splat:
		return t.pushV128(exec.Splat(uint64(t.popI32()), 16))
	case istream.OpI32X4Splat, istream.OpF32X4Splat:
		return t.pushV128(exec.Splat(uint64(t.popI32()), 32))
	case istream.OpI64X2Splat, istream.OpF64X2Splat:
		return t.pushV128(exec.Splat(t.popI64(), 64))

	case istream.OpI8X16ExtractLaneS:
		return t.pushI32(uint32(exec.SignExtendLane(t.extractLane(code, pc, 8), 8)))
	case istream.OpI8X16ExtractLaneU:
		return t.pushI32(uint32(t.extractLane(code, pc, 8)))
	case istream.OpI16X8ExtractLaneS:
		return t.pushI32(uint32(exec.SignExtendLane(t.extractLane(code, pc, 16), 16)))
	case istream.OpI16X8ExtractLaneU:
		return t.pushI32(uint32(t.extractLane(code, pc, 16)))
	case istream.OpI32X4ExtractLane, istream.OpF32X4ExtractLane:
		return t.pushI32(uint32(t.extractLane(code, pc, 32)))
	case istream.OpI64X2ExtractLane, istream.OpF64X2ExtractLane:
		return t.pushI64(t.extractLane(code, pc, 64))

	case istream.OpI8X16ReplaceLane:
		return t.replaceLane(code, pc, 8)
	case istream.OpI16X8ReplaceLane:
		return t.replaceLane(code, pc, 16)
	case istream.OpI32X4ReplaceLane, istream.OpF32X4ReplaceLane:
		return t.replaceLane(code, pc, 32)
	case istream.OpI64X2ReplaceLane, istream.OpF64X2ReplaceLane:
		return t.replaceLane(code, pc, 64)

	case istream.OpI8X16Add:
		return t.simdBinop(8, laneAdd)
	case istream.OpI16X8Add:
		return t.simdBinop(16, laneAdd)
	case istream.OpI32X4Add:
		return t.simdBinop(32, laneAdd)
	case istream.OpI64X2Add:
		return t.simdBinop(64, laneAdd)
	case istream.OpI8X16Sub:
		return t.simdBinop(8, laneSub)
	case istream.OpI16X8Sub:
		return t.simdBinop(16, laneSub)
	case istream.OpI32X4Sub:
		return t.simdBinop(32, laneSub)
	case istream.OpI64X2Sub:
		return t.simdBinop(64, laneSub)
	case istream.OpI8X16Mul:
		return t.simdBinop(8, laneMul)
	case istream.OpI16X8Mul:
		return t.simdBinop(16, laneMul)
	case istream.OpI32X4Mul:
		return t.simdBinop(32, laneMul)
	case istream.OpI8X16Neg:
		return t.simdUnop(8, laneNeg)
	case istream.OpI16X8Neg:
		return t.simdUnop(16, laneNeg)
	case istream.OpI32X4Neg:
		return t.simdUnop(32, laneNeg)
	case istream.OpI64X2Neg:
		return t.simdUnop(64, laneNeg)

	case istream.OpI8X16AddSaturateS:
		return t.simdBinop(8, exec.AddSaturateS(8))
	case istream.OpI8X16AddSaturateU:
		return t.simdBinop(8, exec.AddSaturateU(8))
	case istream.OpI16X8AddSaturateS:
		return t.simdBinop(16, exec.AddSaturateS(16))
	case istream.OpI16X8AddSaturateU:
		return t.simdBinop(16, exec.AddSaturateU(16))
	case istream.OpI8X16SubSaturateS:
		return t.simdBinop(8, exec.SubSaturateS(8))
	case istream.OpI8X16SubSaturateU:
		return t.simdBinop(8, exec.SubSaturateU(8))
	case istream.OpI16X8SubSaturateS:
		return t.simdBinop(16, exec.SubSaturateS(16))
	case istream.OpI16X8SubSaturateU:
		return t.simdBinop(16, exec.SubSaturateU(16))

	case istream.OpI8X16Shl:
		return t.simdShift(8, laneShl)
	case istream.OpI16X8Shl:
		return t.simdShift(16, laneShl)
	case istream.OpI32X4Shl:
		return t.simdShift(32, laneShl)
	case istream.OpI64X2Shl:
		return t.simdShift(64, laneShl)
	case istream.OpI8X16ShrS:
		return t.simdShift(8, laneShrS(8))
	case istream.OpI8X16ShrU:
		return t.simdShift(8, laneShrU)
	case istream.OpI16X8ShrS:
		return t.simdShift(16, laneShrS(16))
	case istream.OpI16X8ShrU:
		return t.simdShift(16, laneShrU)
	case istream.OpI32X4ShrS:
		return t.simdShift(32, laneShrS(32))
	case istream.OpI32X4ShrU:
		return t.simdShift(32, laneShrU)
	case istream.OpI64X2ShrS:
		return t.simdShift(64, laneShrS(64))
	case istream.OpI64X2ShrU:
		return t.simdShift(64, laneShrU)

	case istream.OpV128And:
		b := t.popV128()
		return t.pushV128(exec.V128And(t.popV128(), b))
	case istream.OpV128Or:
		b := t.popV128()
		return t.pushV128(exec.V128Or(t.popV128(), b))
	case istream.OpV128Xor:
		b := t.popV128()
		return t.pushV128(exec.V128Xor(t.popV128(), b))
	case istream.OpV128Not:
		return t.pushV128(exec.V128Not(t.popV128()))
	case istream.OpV128BitSelect:
		c := t.popV128()
		b := t.popV128()
		return t.pushV128(exec.V128BitSelect(t.popV128(), b, c))

	case istream.OpI8X16AnyTrue:
		return t.pushI32(exec.SimdAnyTrue(t.popV128(), 8))
	case istream.OpI16X8AnyTrue:
		return t.pushI32(exec.SimdAnyTrue(t.popV128(), 16))
	case istream.OpI32X4AnyTrue:
		return t.pushI32(exec.SimdAnyTrue(t.popV128(), 32))
	case istream.OpI64X2AnyTrue:
		return t.pushI32(exec.SimdAnyTrue(t.popV128(), 64))
	case istream.OpI8X16AllTrue:
		return t.pushI32(exec.SimdAllTrue(t.popV128(), 8))
	case istream.OpI16X8AllTrue:
		return t.pushI32(exec.SimdAllTrue(t.popV128(), 16))
	case istream.OpI32X4AllTrue:
		return t.pushI32(exec.SimdAllTrue(t.popV128(), 32))
	case istream.OpI64X2AllTrue:
		return t.pushI32(exec.SimdAllTrue(t.popV128(), 64))

	case istream.OpI8X16Eq:
		return t.simdCompare(8, false, eq)
	case istream.OpI16X8Eq:
		return t.simdCompare(16, false, eq)
	case istream.OpI32X4Eq:
		return t.simdCompare(32, false, eq)
	case istream.OpI8X16Ne:
		return t.simdCompare(8, false, ne)
	case istream.OpI16X8Ne:
		return t.simdCompare(16, false, ne)
	case istream.OpI32X4Ne:
		return t.simdCompare(32, false, ne)
	case istream.OpI8X16LtS:
		return t.simdCompare(8, true, lt)
	case istream.OpI8X16LtU:
		return t.simdCompare(8, false, lt)
	case istream.OpI16X8LtS:
		return t.simdCompare(16, true, lt)
	case istream.OpI16X8LtU:
		return t.simdCompare(16, false, lt)
	case istream.OpI32X4LtS:
		return t.simdCompare(32, true, lt)
	case istream.OpI32X4LtU:
		return t.simdCompare(32, false, lt)
	case istream.OpI8X16LeS:
		return t.simdCompare(8, true, le)
	case istream.OpI8X16LeU:
		return t.simdCompare(8, false, le)
	case istream.OpI16X8LeS:
		return t.simdCompare(16, true, le)
	case istream.OpI16X8LeU:
		return t.simdCompare(16, false, le)
	case istream.OpI32X4LeS:
		return t.simdCompare(32, true, le)
	case istream.OpI32X4LeU:
		return t.simdCompare(32, false, le)
	case istream.OpI8X16GtS:
		return t.simdCompare(8, true, gt)
	case istream.OpI8X16GtU:
		return t.simdCompare(8, false, gt)
	case istream.OpI16X8GtS:
		return t.simdCompare(16, true, gt)
	case istream.OpI16X8GtU:
		return t.simdCompare(16, false, gt)
	case istream.OpI32X4GtS:
		return t.simdCompare(32, true, gt)
	case istream.OpI32X4GtU:
		return t.simdCompare(32, false, gt)
	case istream.OpI8X16GeS:
		return t.simdCompare(8, true, ge)
	case istream.OpI8X16GeU:
		return t.simdCompare(8, false, ge)
	case istream.OpI16X8GeS:
		return t.simdCompare(16, true, ge)
	case istream.OpI16X8GeU:
		return t.simdCompare(16, false, ge)
	case istream.OpI32X4GeS:
		return t.simdCompare(32, true, ge)
	case istream.OpI32X4GeU:
		return t.simdCompare(32, false, ge)

	case istream.OpF32X4Eq:
		return t.simdBinop(32, exec.F32Lane(exec.F32Eq))
	case istream.OpF32X4Ne:
		return t.simdBinop(32, exec.F32Lane(exec.F32Ne))
	case istream.OpF32X4Lt:
		return t.simdBinop(32, exec.F32Lane(exec.F32Lt))
	case istream.OpF32X4Le:
		return t.simdBinop(32, exec.F32Lane(exec.F32Le))
	case istream.OpF32X4Gt:
		return t.simdBinop(32, exec.F32Lane(exec.F32Gt))
	case istream.OpF32X4Ge:
		return t.simdBinop(32, exec.F32Lane(exec.F32Ge))
	case istream.OpF64X2Eq:
		return t.simdBinop(64, exec.F64LaneCompare(exec.F64Eq))
	case istream.OpF64X2Ne:
		return t.simdBinop(64, exec.F64LaneCompare(exec.F64Ne))
	case istream.OpF64X2Lt:
		return t.simdBinop(64, exec.F64LaneCompare(exec.F64Lt))
	case istream.OpF64X2Le:
		return t.simdBinop(64, exec.F64LaneCompare(exec.F64Le))
	case istream.OpF64X2Gt:
		return t.simdBinop(64, exec.F64LaneCompare(exec.F64Gt))
	case istream.OpF64X2Ge:
		return t.simdBinop(64, exec.F64LaneCompare(exec.F64Ge))

	case istream.OpF32X4Neg:
		return t.simdUnop(32, exec.F32LaneUnop(exec.F32Neg))
	case istream.OpF32X4Abs:
		return t.simdUnop(32, exec.F32LaneUnop(exec.F32Abs))
	case istream.OpF32X4Sqrt:
		return t.simdUnop(32, exec.F32LaneUnop(exec.F32Sqrt))
	case istream.OpF32X4Min:
		return t.simdBinop(32, exec.F32Lane(exec.F32Min))
	case istream.OpF32X4Max:
		return t.simdBinop(32, exec.F32Lane(exec.F32Max))
	case istream.OpF32X4Add:
		return t.simdBinop(32, exec.F32Lane(exec.F32Add))
	case istream.OpF32X4Sub:
		return t.simdBinop(32, exec.F32Lane(exec.F32Sub))
	case istream.OpF32X4Mul:
		return t.simdBinop(32, exec.F32Lane(exec.F32Mul))
	case istream.OpF32X4Div:
		return t.simdBinop(32, exec.F32Lane(exec.F32Div))
	case istream.OpF64X2Neg:
		return t.simdUnop(64, exec.F64Neg)
	case istream.OpF64X2Abs:
		return t.simdUnop(64, exec.F64Abs)
	case istream.OpF64X2Sqrt:
		return t.simdUnop(64, exec.F64Sqrt)
	case istream.OpF64X2Min:
		return t.simdBinop(64, exec.F64Min)
	case istream.OpF64X2Max:
		return t.simdBinop(64, exec.F64Max)
	case istream.OpF64X2Add:
		return t.simdBinop(64, exec.F64Add)
	case istream.OpF64X2Sub:
		return t.simdBinop(64, exec.F64Sub)
	case istream.OpF64X2Mul:
		return t.simdBinop(64, exec.F64Mul)
	case istream.OpF64X2Div:
		return t.simdBinop(64, exec.F64Div)

	case istream.OpF32X4ConvertI32X4S:
		return t.simdUnop(32, exec.F32X4ConvertI32X4S)
	case istream.OpF32X4ConvertI32X4U:
		return t.simdUnop(32, exec.F32X4ConvertI32X4U)
	case istream.OpF64X2ConvertI64X2S:
		return t.simdUnop(64, exec.F64X2ConvertI64X2S)
	case istream.OpF64X2ConvertI64X2U:
		return t.simdUnop(64, exec.F64X2ConvertI64X2U)
	case istream.OpI32X4TruncSatF32X4S:
		return t.simdUnop(32, exec.I32X4TruncSatF32X4S)
	case istream.OpI32X4TruncSatF32X4U:
		return t.simdUnop(32, exec.I32X4TruncSatF32X4U)
	case istream.OpI64X2TruncSatF64X2S:
		return t.simdUnop(64, exec.I64X2TruncSatF64X2S)
	case istream.OpI64X2TruncSatF64X2U:
		return t.simdUnop(64, exec.I64X2TruncSatF64X2U)
	}
	panic("unknown simd opcode " + op.String())
}
