package samples

import (
	"encoding/binary"

	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/istream"
	"github.com/pgavlin/wisp/load"
	"github.com/pgavlin/wisp/wasm"
)

var (
	i32  = wasm.ValueTypeI32
	i64  = wasm.ValueTypeI64
	v128 = wasm.ValueTypeV128
)

func types(ts ...wasm.ValueType) []wasm.ValueType {
	return ts
}

func export(name string, index uint32) load.Export {
	return load.Export{Name: name, Kind: wasm.ExternalFunction, Index: index}
}

func init() {
	register(&Sample{
		Name:        "fib",
		Description: "recursive Fibonacci numbers",
		Entry:       "fib",
		Args:        []exec.TypedValue{exec.TypedI32(20)},
		build:       fib,
	})
	register(&Sample{
		Name:        "fac",
		Description: "iterative 64-bit factorial",
		Entry:       "fac",
		Args:        []exec.TypedValue{exec.TypedI64(20)},
		build:       fac,
	})
	register(&Sample{
		Name:        "add",
		Description: "calls a host function",
		Entry:       "run",
		Args:        []exec.TypedValue{exec.TypedI32(2), exec.TypedI32(3)},
		Hosts:       []string{"env"},
		build:       add,
	})
	register(&Sample{
		Name:        "divzero",
		Description: "traps on integer division by zero",
		Entry:       "run",
		Args:        []exec.TypedValue{exec.TypedI32(1), exec.TypedI32(0)},
		build:       divzero,
	})
	register(&Sample{
		Name:        "memsum",
		Description: "sums the first n words of a data segment",
		Entry:       "sum",
		Args:        []exec.TypedValue{exec.TypedI32(10)},
		build:       memsum,
	})
	register(&Sample{
		Name:        "dispatch",
		Description: "calls through a function table",
		Entry:       "run",
		Args:        []exec.TypedValue{exec.TypedI32(1), exec.TypedI32(7)},
		build:       dispatch,
	})
	register(&Sample{
		Name:        "simd",
		Description: "i32x4 lane arithmetic",
		Entry:       "run",
		Args:        []exec.TypedValue{exec.TypedI32(1), exec.TypedI32(2)},
		build:       simd,
	})
	register(&Sample{
		Name:        "atomic",
		Description: "increments a counter with atomic read-modify-write",
		Entry:       "run",
		Args:        []exec.TypedValue{exec.TypedI32(10)},
		build:       atomic,
	})
}

func fib() *load.Module {
	return &load.Module{
		Functions: []load.Function{{
			Name: "fib",
			Sig:  wasm.Sig(types(i32), types(i32)),
			Body: func(b *load.FunctionBuilder) {
				b.LocalGet(0)
				b.I32Const(2)
				b.Op(istream.OpI32LtU)
				b.If(i32)
				b.LocalGet(0)
				b.Else()
				b.LocalGet(0)
				b.I32Const(1)
				b.Op(istream.OpI32Sub)
				b.Call(0)
				b.LocalGet(0)
				b.I32Const(2)
				b.Op(istream.OpI32Sub)
				b.Call(0)
				b.Op(istream.OpI32Add)
				b.End()
			},
		}},
		Exports: []load.Export{export("fib", 0)},
	}
}

func fac() *load.Module {
	return &load.Module{
		Functions: []load.Function{{
			Name:   "fac",
			Sig:    wasm.Sig(types(i64), types(i64)),
			Locals: types(i64),
			Body: func(b *load.FunctionBuilder) {
				b.I64Const(1)
				b.LocalSet(1)
				b.Block()
				b.Loop()
				b.LocalGet(0)
				b.I64Const(1)
				b.Op(istream.OpI64LeU)
				b.BrIf(1)
				b.LocalGet(1)
				b.LocalGet(0)
				b.Op(istream.OpI64Mul)
				b.LocalSet(1)
				b.LocalGet(0)
				b.I64Const(1)
				b.Op(istream.OpI64Sub)
				b.LocalSet(0)
				b.Br(0)
				b.End()
				b.End()
				b.LocalGet(1)
			},
		}},
		Exports: []load.Export{export("fac", 0)},
	}
}

func add() *load.Module {
	sig := wasm.Sig(types(i32, i32), types(i32))
	return &load.Module{
		Imports: []load.Import{load.ImportFunc("env", "add", sig)},
		Functions: []load.Function{{
			Name: "run",
			Sig:  sig,
			Body: func(b *load.FunctionBuilder) {
				b.LocalGet(0)
				b.LocalGet(1)
				b.Call(0)
			},
		}},
		Exports: []load.Export{export("run", 1)},
	}
}

func divzero() *load.Module {
	return &load.Module{
		Functions: []load.Function{{
			Name: "run",
			Sig:  wasm.Sig(types(i32, i32), types(i32)),
			Body: func(b *load.FunctionBuilder) {
				b.LocalGet(0)
				b.LocalGet(1)
				b.Op(istream.OpI32DivS)
			},
		}},
		Exports: []load.Export{export("run", 0)},
	}
}

func memsum() *load.Module {
	data := make([]byte, 0, 64)
	for i := uint32(1); i <= 16; i++ {
		data = binary.LittleEndian.AppendUint32(data, i)
	}

	memory := wasm.LimitsWithMax(1, 1)
	return &load.Module{
		Memory: &memory,
		Data:   []load.DataSegment{{Offset: load.ConstI32(0), Data: data}},
		Functions: []load.Function{{
			Name:   "sum",
			Sig:    wasm.Sig(types(i32), types(i32)),
			Locals: types(i32, i32),
			Body: func(b *load.FunctionBuilder) {
				b.Block()
				b.Loop()
				b.LocalGet(1)
				b.LocalGet(0)
				b.Op(istream.OpI32GeU)
				b.BrIf(1)
				b.LocalGet(2)
				b.LocalGet(1)
				b.I32Const(4)
				b.Op(istream.OpI32Mul)
				b.Memory(istream.OpI32Load, 0)
				b.Op(istream.OpI32Add)
				b.LocalSet(2)
				b.LocalGet(1)
				b.I32Const(1)
				b.Op(istream.OpI32Add)
				b.LocalSet(1)
				b.Br(0)
				b.End()
				b.End()
				b.LocalGet(2)
			},
		}},
		Exports: []load.Export{
			export("sum", 0),
			{Name: "memory", Kind: wasm.ExternalMemory, Index: 0},
		},
	}
}

func dispatch() *load.Module {
	unary := wasm.Sig(types(i32), types(i32))
	table := wasm.LimitsWithMax(4, 4)
	return &load.Module{
		Table: &table,
		Functions: []load.Function{
			{
				Name: "double",
				Sig:  unary,
				Body: func(b *load.FunctionBuilder) {
					b.LocalGet(0)
					b.I32Const(1)
					b.Op(istream.OpI32Shl)
				},
			},
			{
				Name: "square",
				Sig:  unary,
				Body: func(b *load.FunctionBuilder) {
					b.LocalGet(0)
					b.LocalGet(0)
					b.Op(istream.OpI32Mul)
				},
			},
			{
				Name: "negate",
				Sig:  unary,
				Body: func(b *load.FunctionBuilder) {
					b.I32Const(0)
					b.LocalGet(0)
					b.Op(istream.OpI32Sub)
				},
			},
			{
				Name: "run",
				Sig:  wasm.Sig(types(i32, i32), types(i32)),
				Body: func(b *load.FunctionBuilder) {
					b.LocalGet(1)
					b.LocalGet(0)
					b.CallIndirect(unary)
				},
			},
		},
		Elements: []load.ElementSegment{{Offset: load.ConstI32(0), Functions: []uint32{0, 1, 2}}},
		Exports:  []load.Export{export("run", 3)},
	}
}

func simd() *load.Module {
	return &load.Module{
		Functions: []load.Function{{
			Name:   "run",
			Sig:    wasm.Sig(types(i32, i32), types(i32)),
			Locals: types(v128),
			Body: func(b *load.FunctionBuilder) {
				// (splat(a) + [1 2 3 4]) * splat(b), then sum the lanes
				b.LocalGet(0)
				b.Op(istream.OpI32X4Splat)
				b.V128Const(exec.V128{Lo: 1 | 2<<32, Hi: 3 | 4<<32})
				b.Op(istream.OpI32X4Add)
				b.LocalGet(1)
				b.Op(istream.OpI32X4Splat)
				b.Op(istream.OpI32X4Mul)
				b.LocalTee(2)
				b.Lane(istream.OpI32X4ExtractLane, 0)
				for lane := uint8(1); lane < 4; lane++ {
					b.LocalGet(2)
					b.Lane(istream.OpI32X4ExtractLane, lane)
					b.Op(istream.OpI32Add)
				}
			},
		}},
		Exports: []load.Export{export("run", 0)},
	}
}

func atomic() *load.Module {
	memory := wasm.LimitsWithMax(1, 1)
	return &load.Module{
		Memory: &memory,
		Functions: []load.Function{{
			Name:   "run",
			Sig:    wasm.Sig(types(i32), types(i32)),
			Locals: types(i32),
			Body: func(b *load.FunctionBuilder) {
				b.Block()
				b.Loop()
				b.LocalGet(1)
				b.LocalGet(0)
				b.Op(istream.OpI32GeU)
				b.BrIf(1)
				b.I32Const(0)
				b.I32Const(1)
				b.Memory(istream.OpI32AtomicRmwAdd, 0)
				b.Op(istream.OpDrop)
				b.LocalGet(1)
				b.I32Const(1)
				b.Op(istream.OpI32Add)
				b.LocalSet(1)
				b.Br(0)
				b.End()
				b.End()
				b.I32Const(0)
				b.Memory(istream.OpI32AtomicLoad, 0)
			},
		}},
		Exports: []load.Export{export("run", 0)},
	}
}
