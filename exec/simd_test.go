package exec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanes(t *testing.T) {
	v := V128{Lo: 0x0706050403020100, Hi: 0x0f0e0d0c0b0a0908}

	assert.Equal(t, uint64(0x00), v.Lane(8, 0))
	assert.Equal(t, uint64(0x09), v.Lane(8, 9))
	assert.Equal(t, uint64(0x0706), v.Lane(16, 3))
	assert.Equal(t, uint64(0x0b0a0908), v.Lane(32, 2))
	assert.Equal(t, uint64(0x0f0e0d0c0b0a0908), v.Lane(64, 1))

	w := v.WithLane(8, 15, 0x1ff)
	assert.Equal(t, uint64(0xff), w.Lane(8, 15))
	assert.Equal(t, v.Lo, w.Lo)

	w = v.WithLane(32, 1, 0xdeadbeef)
	assert.Equal(t, uint64(0xdeadbeef03020100), w.Lo)
	assert.Equal(t, v.Hi, w.Hi)

	w = v.WithLane(64, 0, 42)
	assert.Equal(t, V128{Lo: 42, Hi: v.Hi}, w)

	assert.Equal(t, uint(16), Lanes(8))
	assert.Equal(t, uint(2), Lanes(64))
	assert.Equal(t, int64(-1), SignExtendLane(0xff, 8))
	assert.Equal(t, int64(0x7fff), SignExtendLane(0x7fff, 16))
}

func TestSplat(t *testing.T) {
	assert.Equal(t, V128{Lo: 0xabababababababab, Hi: 0xabababababababab}, Splat(0xab, 8))
	assert.Equal(t, V128{Lo: 0x0000000100000001, Hi: 0x0000000100000001}, Splat(1, 32))
	assert.Equal(t, V128{Lo: 0x1234, Hi: 0x1234}, Splat(0x1234, 64))
}

func TestSimdArithmetic(t *testing.T) {
	a, b := Splat(0x7f, 8), Splat(0x02, 8)

	assert.Equal(t, Splat(0x81, 8), SimdBinop(a, b, 8, func(x, y uint64) uint64 { return x + y }))
	assert.Equal(t, Splat(0x7f, 8), SimdBinop(a, b, 8, AddSaturateS(8)))
	assert.Equal(t, Splat(0x81, 8), SimdBinop(a, b, 8, AddSaturateU(8)))
	assert.Equal(t, Splat(0x80, 8), SimdBinop(Splat(0x81, 8), b, 8, SubSaturateS(8)))
	assert.Equal(t, Splat(0, 8), SimdBinop(b, a, 8, SubSaturateU(8)))
	assert.Equal(t, Splat(0xffff, 16), SimdBinop(Splat(0xfffe, 16), Splat(2, 16), 16, AddSaturateU(16)))

	neg := SimdUnop(Splat(1, 16), 16, func(x uint64) uint64 { return -x })
	assert.Equal(t, Splat(0xffff, 16), neg)

	shl := SimdShift(Splat(1, 32), 32, 33, func(x uint64, n uint) uint64 { return x << n })
	assert.Equal(t, Splat(2, 32), shl)
}

func TestSimdBooleans(t *testing.T) {
	var zero V128
	one := zero.WithLane(16, 5, 1)

	assert.Equal(t, uint32(0), SimdAnyTrue(zero, 8))
	assert.Equal(t, uint32(1), SimdAnyTrue(one, 8))
	assert.Equal(t, uint32(0), SimdAllTrue(one, 16))
	assert.Equal(t, uint32(1), SimdAllTrue(Splat(0x100, 16), 16))
	assert.Equal(t, uint32(0), SimdAllTrue(Splat(0x100, 16), 8))
	assert.Equal(t, uint(1), SimdLaneTrueCount(one, 64))

	v := V128{Lo: 0xf0f0f0f0f0f0f0f0, Hi: 0}
	assert.Equal(t, V128{Lo: 0x0f0f0f0f0f0f0f0f, Hi: ^uint64(0)}, V128Not(v))
	assert.Equal(t, V128{Lo: 0xf0f0f0f0f0f0f0f0}, V128And(v, V128Not(zero)))
	assert.Equal(t, V128{Lo: ^uint64(0)}, V128Or(v, V128{Lo: 0x0f0f0f0f0f0f0f0f}))
	assert.Equal(t, zero, V128Xor(v, v))

	sel := V128BitSelect(Splat(0xaa, 8), Splat(0x55, 8), V128{Lo: ^uint64(0)})
	assert.Equal(t, V128{Lo: 0xaaaaaaaaaaaaaaaa, Hi: 0x5555555555555555}, sel)
}

func TestSimdShuffle(t *testing.T) {
	a := V128{Lo: 0x0706050403020100, Hi: 0x0f0e0d0c0b0a0908}
	b := V128{Lo: 0x1716151413121110, Hi: 0x1f1e1d1c1b1a1918}

	identity := SimdShuffle(a, b, a)
	assert.Equal(t, a, identity)

	fromB := SimdShuffle(a, b, b)
	assert.Equal(t, b, fromB)

	reversed := V128{Lo: 0x08090a0b0c0d0e0f, Hi: 0x0001020304050607}
	assert.Equal(t, reversed, SimdShuffle(a, b, reversed))

	interleaved := V128{Lo: 0x1303120211011000, Hi: 0x1707160615051404}
	assert.Equal(t, interleaved, SimdShuffle(a, b, interleaved))
}

func TestSimdConversions(t *testing.T) {
	v := SimdUnop(Splat(uint64(F32ConvertI32S(0xfffffffe)), 32), 32, I32X4TruncSatF32X4S)
	assert.Equal(t, Splat(0xfffffffe, 32), v)

	v = SimdUnop(Splat(f32Inf, 32), 32, I32X4TruncSatF32X4U)
	assert.Equal(t, Splat(0xffffffff, 32), v)

	v = SimdUnop(Splat(3, 64), 64, F64X2ConvertI64X2U)
	assert.Equal(t, Splat(F64ConvertI64U(3), 64), v)

	lt := SimdBinop(Splat(F64ConvertI32S(1), 64), Splat(F64ConvertI32S(2), 64), 64, F64LaneCompare(F64Lt))
	assert.Equal(t, Splat(1, 64), lt)

	sum := SimdBinop(Splat(uint64(F32ConvertI32S(1)), 32), Splat(uint64(F32ConvertI32S(2)), 32), 32, F32Lane(F32Add))
	assert.Equal(t, Splat(uint64(F32ConvertI32S(3)), 32), sum)
}
