package exec

// Lane returns lane i of v viewed as lanes of the given bit width (8, 16, 32 or 64). The lane is zero-extended.
func (v V128) Lane(width uint, i uint) uint64 {
	pos := i * width
	word := v.Lo
	if pos >= 64 {
		word, pos = v.Hi, pos-64
	}
	if width == 64 {
		return word
	}
	return (word >> pos) & (1<<width - 1)
}

// WithLane returns a copy of v with lane i replaced by the low width bits of x.
func (v V128) WithLane(width uint, i uint, x uint64) V128 {
	pos := i * width
	word := &v.Lo
	if pos >= 64 {
		word, pos = &v.Hi, pos-64
	}
	if width == 64 {
		*word = x
		return v
	}
	mask := uint64(1<<width-1) << pos
	*word = (*word &^ mask) | ((x << pos) & mask)
	return v
}

// Lanes returns the number of lanes of the given width.
func Lanes(width uint) uint {
	return 128 / width
}

// SignExtendLane sign-extends the low width bits of x.
func SignExtendLane(x uint64, width uint) int64 {
	shift := 64 - width
	return int64(x<<shift) >> shift
}

func Splat(x uint64, width uint) V128 {
	var v V128
	for i := uint(0); i < Lanes(width); i++ {
		v = v.WithLane(width, i, x)
	}
	return v
}

func SimdUnop(v V128, width uint, f func(x uint64) uint64) V128 {
	var r V128
	for i := uint(0); i < Lanes(width); i++ {
		r = r.WithLane(width, i, f(v.Lane(width, i)))
	}
	return r
}

func SimdBinop(a, b V128, width uint, f func(x, y uint64) uint64) V128 {
	var r V128
	for i := uint(0); i < Lanes(width); i++ {
		r = r.WithLane(width, i, f(a.Lane(width, i), b.Lane(width, i)))
	}
	return r
}

// SimdShift applies f to each lane and the shift count reduced modulo the lane width.
func SimdShift(v V128, width uint, count uint32, f func(x uint64, n uint) uint64) V128 {
	n := uint(count) % width
	return SimdUnop(v, width, func(x uint64) uint64 { return f(x, n) })
}

// SimdLaneTrueCount returns the number of non-zero lanes.
func SimdLaneTrueCount(v V128, width uint) uint {
	count := uint(0)
	for i := uint(0); i < Lanes(width); i++ {
		if v.Lane(width, i) != 0 {
			count++
		}
	}
	return count
}

func SimdAnyTrue(v V128, width uint) uint32 {
	return b2i(SimdLaneTrueCount(v, width) >= 1)
}

func SimdAllTrue(v V128, width uint) uint32 {
	return b2i(SimdLaneTrueCount(v, width) == Lanes(width))
}

// SimdShuffle selects each output byte from the 32-byte concatenation of a and b.
func SimdShuffle(a, b V128, lanes V128) V128 {
	var r V128
	for i := uint(0); i < 16; i++ {
		idx := uint(lanes.Lane(8, i))
		var x uint64
		if idx < 16 {
			x = a.Lane(8, idx)
		} else {
			x = b.Lane(8, (idx-16)&15)
		}
		r = r.WithLane(8, i, x)
	}
	return r
}

func V128And(a, b V128) V128 { return V128{Lo: a.Lo & b.Lo, Hi: a.Hi & b.Hi} }
func V128Or(a, b V128) V128  { return V128{Lo: a.Lo | b.Lo, Hi: a.Hi | b.Hi} }
func V128Xor(a, b V128) V128 { return V128{Lo: a.Lo ^ b.Lo, Hi: a.Hi ^ b.Hi} }
func V128Not(a V128) V128    { return V128{Lo: ^a.Lo, Hi: ^a.Hi} }

func V128BitSelect(a, b, c V128) V128 {
	return V128{Lo: (a.Lo & c.Lo) | (b.Lo &^ c.Lo), Hi: (a.Hi & c.Hi) | (b.Hi &^ c.Hi)}
}

// AddSaturateS adds two signed lanes of the given width, clamping to the lane's range.
func AddSaturateS(width uint) func(x, y uint64) uint64 {
	return func(x, y uint64) uint64 {
		return uint64(clampS(SignExtendLane(x, width)+SignExtendLane(y, width), width))
	}
}

func SubSaturateS(width uint) func(x, y uint64) uint64 {
	return func(x, y uint64) uint64 {
		return uint64(clampS(SignExtendLane(x, width)-SignExtendLane(y, width), width))
	}
}

func AddSaturateU(width uint) func(x, y uint64) uint64 {
	return func(x, y uint64) uint64 {
		return uint64(clampU(int64(x)+int64(y), width))
	}
}

func SubSaturateU(width uint) func(x, y uint64) uint64 {
	return func(x, y uint64) uint64 {
		return uint64(clampU(int64(x)-int64(y), width))
	}
}

func clampS(x int64, width uint) int64 {
	max := int64(1)<<(width-1) - 1
	min := -max - 1
	switch {
	case x > max:
		return max
	case x < min:
		return min
	default:
		return x
	}
}

func clampU(x int64, width uint) int64 {
	max := int64(1)<<width - 1
	switch {
	case x > max:
		return max
	case x < 0:
		return 0
	default:
		return x
	}
}

// Float lane wrappers over the scalar bit-pattern operations.

func F32Lane(f func(a, b uint32) uint32) func(x, y uint64) uint64 {
	return func(x, y uint64) uint64 { return uint64(f(uint32(x), uint32(y))) }
}

func F32LaneUnop(f func(a uint32) uint32) func(x uint64) uint64 {
	return func(x uint64) uint64 { return uint64(f(uint32(x))) }
}

func F64LaneCompare(f func(a, b uint64) uint32) func(x, y uint64) uint64 {
	return func(x, y uint64) uint64 { return uint64(f(x, y)) }
}

func F32X4ConvertI32X4S(x uint64) uint64 { return uint64(F32ConvertI32S(uint32(x))) }
func F32X4ConvertI32X4U(x uint64) uint64 { return uint64(F32ConvertI32U(uint32(x))) }
func F64X2ConvertI64X2S(x uint64) uint64 { return F64ConvertI64S(x) }
func F64X2ConvertI64X2U(x uint64) uint64 { return F64ConvertI64U(x) }

func I32X4TruncSatF32X4S(x uint64) uint64 { return uint64(I32TruncSatF32S(uint32(x))) }
func I32X4TruncSatF32X4U(x uint64) uint64 { return uint64(I32TruncSatF32U(uint32(x))) }
func I64X2TruncSatF64X2S(x uint64) uint64 { return I64TruncSatF64S(x) }
func I64X2TruncSatF64X2U(x uint64) uint64 { return I64TruncSatF64U(x) }
