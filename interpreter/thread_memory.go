package interpreter

import (
	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/istream"
)

var (
	zeroExtend      = func(x uint64) uint64 { return x }
	i32SignExtend8  = func(x uint64) uint64 { return uint64(uint32(int8(x))) }
	i32SignExtend16 = func(x uint64) uint64 { return uint64(uint32(int16(x))) }
	i64SignExtend8  = func(x uint64) uint64 { return uint64(int8(x)) }
	i64SignExtend16 = func(x uint64) uint64 { return uint64(int16(x)) }
	i64SignExtend32 = func(x uint64) uint64 { return uint64(int32(x)) }
)

// address pops a base address, adds the instruction's static offset, and checks that size bytes at the result lie
// within the memory. Atomic accesses must also be naturally aligned.
func (t *Thread) address(code []byte, pc *uint32, size uint64, atomic bool) (*exec.Memory, uint64, exec.Result) {
	mem := t.env.Memory(readU32(code, pc))
	addr := uint64(t.popI32()) + uint64(readU32(code, pc))
	if !mem.InBounds(addr, size) {
		return nil, 0, exec.TrapMemoryAccessOutOfBounds
	}
	if atomic && addr&(size-1) != 0 {
		return nil, 0, exec.TrapAtomicMemoryAccessUnaligned
	}
	return mem, addr, exec.Ok
}

func readMemory(mem *exec.Memory, addr, size uint64) uint64 {
	switch size {
	case 1:
		return uint64(mem.Uint8At(addr))
	case 2:
		return uint64(mem.Uint16At(addr))
	case 4:
		return uint64(mem.Uint32At(addr))
	default:
		return mem.Uint64At(addr)
	}
}

func writeMemory(mem *exec.Memory, addr, size, v uint64) {
	switch size {
	case 1:
		mem.PutUint8At(uint8(v), addr)
	case 2:
		mem.PutUint16At(uint16(v), addr)
	case 4:
		mem.PutUint32At(uint32(v), addr)
	default:
		mem.PutUint64At(v, addr)
	}
}

func sizeMask(size uint64) uint64 {
	if size == 8 {
		return ^uint64(0)
	}
	return 1<<(size*8) - 1
}

func (t *Thread) load(code []byte, pc *uint32, size uint64, extend func(x uint64) uint64) exec.Result {
	mem, addr, res := t.address(code, pc, size, false)
	if res != exec.Ok {
		return res
	}
	return t.Push(exec.Value{Lo: extend(readMemory(mem, addr, size))})
}

func (t *Thread) store(code []byte, pc *uint32, size uint64) exec.Result {
	v := t.Pop().Lo
	mem, addr, res := t.address(code, pc, size, false)
	if res != exec.Ok {
		return res
	}
	writeMemory(mem, addr, size, v)
	return exec.Ok
}

func (t *Thread) atomicLoad(code []byte, pc *uint32, size uint64) exec.Result {
	mem, addr, res := t.address(code, pc, size, true)
	if res != exec.Ok {
		return res
	}
	return t.Push(exec.Value{Lo: readMemory(mem, addr, size)})
}

func (t *Thread) atomicStore(code []byte, pc *uint32, size uint64) exec.Result {
	v := t.Pop().Lo
	mem, addr, res := t.address(code, pc, size, true)
	if res != exec.Ok {
		return res
	}
	writeMemory(mem, addr, size, v)
	return exec.Ok
}

// atomicRmw stores f(old, operand) and pushes the zero-extended old value.
func (t *Thread) atomicRmw(code []byte, pc *uint32, size uint64, f func(old, operand uint64) uint64) exec.Result {
	operand := t.Pop().Lo & sizeMask(size)
	mem, addr, res := t.address(code, pc, size, true)
	if res != exec.Ok {
		return res
	}
	old := readMemory(mem, addr, size)
	writeMemory(mem, addr, size, f(old, operand))
	return t.Push(exec.Value{Lo: old})
}

func (t *Thread) atomicCmpxchg(code []byte, pc *uint32, size uint64) exec.Result {
	replacement := t.Pop().Lo & sizeMask(size)
	expected := t.Pop().Lo & sizeMask(size)
	mem, addr, res := t.address(code, pc, size, true)
	if res != exec.Ok {
		return res
	}
	old := readMemory(mem, addr, size)
	if old == expected {
		writeMemory(mem, addr, size, replacement)
	}
	return t.Push(exec.Value{Lo: old})
}

func rmwAdd(a, b uint64) uint64  { return a + b }
func rmwSub(a, b uint64) uint64  { return a - b }
func rmwAnd(a, b uint64) uint64  { return a & b }
func rmwOr(a, b uint64) uint64   { return a | b }
func rmwXor(a, b uint64) uint64  { return a ^ b }
func rmwXchg(_, b uint64) uint64 { return b }

// atomicSizes holds the access width in bytes of each member of an atomic opcode group. Each group is ordered i32, i64,
// i32 8u, i32 16u, i64 8u, i64 16u, i64 32u.
var atomicSizes = [7]uint64{4, 8, 1, 2, 1, 2, 4}

func (t *Thread) atomic(op istream.Opcode, code []byte, pc *uint32) exec.Result {
	switch op {
	case istream.OpAtomicNotify, istream.OpI32AtomicWait, istream.OpI64AtomicWait:
		return exec.TrapUnreachable
	}

	switch {
	case op >= istream.OpI32AtomicLoad && op <= istream.OpI64AtomicLoad32U:
		return t.atomicLoad(code, pc, atomicSizes[op-istream.OpI32AtomicLoad])
	case op >= istream.OpI32AtomicStore && op <= istream.OpI64AtomicStore32:
		return t.atomicStore(code, pc, atomicSizes[op-istream.OpI32AtomicStore])
	case op >= istream.OpI32AtomicRmwAdd && op <= istream.OpI64AtomicRmw32AddU:
		return t.atomicRmw(code, pc, atomicSizes[op-istream.OpI32AtomicRmwAdd], rmwAdd)
	case op >= istream.OpI32AtomicRmwSub && op <= istream.OpI64AtomicRmw32SubU:
		return t.atomicRmw(code, pc, atomicSizes[op-istream.OpI32AtomicRmwSub], rmwSub)
	case op >= istream.OpI32AtomicRmwAnd && op <= istream.OpI64AtomicRmw32AndU:
		return t.atomicRmw(code, pc, atomicSizes[op-istream.OpI32AtomicRmwAnd], rmwAnd)
	case op >= istream.OpI32AtomicRmwOr && op <= istream.OpI64AtomicRmw32OrU:
		return t.atomicRmw(code, pc, atomicSizes[op-istream.OpI32AtomicRmwOr], rmwOr)
	case op >= istream.OpI32AtomicRmwXor && op <= istream.OpI64AtomicRmw32XorU:
		return t.atomicRmw(code, pc, atomicSizes[op-istream.OpI32AtomicRmwXor], rmwXor)
	case op >= istream.OpI32AtomicRmwXchg && op <= istream.OpI64AtomicRmw32XchgU:
		return t.atomicRmw(code, pc, atomicSizes[op-istream.OpI32AtomicRmwXchg], rmwXchg)
	case op >= istream.OpI32AtomicRmwCmpxchg && op <= istream.OpI64AtomicRmw32CmpxchgU:
		return t.atomicCmpxchg(code, pc, atomicSizes[op-istream.OpI32AtomicRmwCmpxchg])
	}
	panic("unknown atomic opcode " + op.String())
}
