package bitgen

// An Adapter derives every supported word width from a single Source.
//
// Widening concatenates consecutive primitive draws most-significant
// chunk first; narrowing truncates one draw to its low bits. No width is
// ever re-derived from the underlying state directly, so one call
// consumes exactly as many state advances as primitive units it needs:
// a 64-bit read from a 16-bit source advances the state four times.
type Adapter struct {
	src Source
	w   Width
}

// NewAdapter returns an Adapter deriving all widths from src.
func NewAdapter(src Source) *Adapter {
	return &Adapter{src: src, w: src.Width()}
}

// Source returns the wrapped source.
func (a *Adapter) Source() Source { return a.src }

// block produces exactly w uniformly distributed bits.
func (a *Adapter) block(w Width) uint64 {
	if w <= a.w {
		return a.src.Next() & w.Mask()
	}
	var v uint64
	for n := int(w / a.w); n > 0; n-- {
		v = v<<uint(a.w) | a.src.Next()&a.w.Mask()
	}
	return v
}

// Bool returns one uniformly random bit.
func (a *Adapter) Bool() bool { return a.block(Width1) == 1 }

// Uint8 returns 8 uniformly random bits.
func (a *Adapter) Uint8() uint8 { return uint8(a.block(Width8)) }

// Uint16 returns 16 uniformly random bits.
func (a *Adapter) Uint16() uint16 { return uint16(a.block(Width16)) }

// Uint32 returns 32 uniformly random bits.
func (a *Adapter) Uint32() uint32 { return uint32(a.block(Width32)) }

// Uint64 returns 64 uniformly random bits.
func (a *Adapter) Uint64() uint64 { return a.block(Width64) }

// Uint64Bits returns n uniformly random bits in the low bits of a
// uint64. It consumes ⌈n/Width()⌉ primitive draws and truncates the
// excess. n outside [0, 64] is an ArgumentError.
func (a *Adapter) Uint64Bits(n int) (uint64, error) {
	if n < 0 || n > 64 {
		return 0, ArgumentError("bitgen: bit count outside [0, 64]")
	}
	if n == 0 {
		return 0, nil
	}
	var v uint64
	for draws := (n + int(a.w) - 1) / int(a.w); draws > 0; draws-- {
		v = v<<uint(a.w) | a.src.Next()&a.w.Mask()
	}
	return v & (^uint64(0) >> uint(64-n)), nil
}

// Uint32Bits returns n uniformly random bits in the low bits of a
// uint32. n outside [0, 32] is an ArgumentError.
func (a *Adapter) Uint32Bits(n int) (uint32, error) {
	if n < 0 || n > 32 {
		return 0, ArgumentError("bitgen: bit count outside [0, 32]")
	}
	v, err := a.Uint64Bits(n)
	return uint32(v), err
}

// Float64 returns a uniformly distributed float64 in [0, 1) with the
// full 53 bits of mantissa precision.
func (a *Adapter) Float64() float64 {
	v, _ := a.Uint64Bits(53)
	return float64(v) / (1 << 53)
}

// Float32 returns a uniformly distributed float32 in [0, 1) with the
// full 24 bits of mantissa precision.
func (a *Adapter) Float32() float32 {
	v, _ := a.Uint64Bits(24)
	return float32(v) / (1 << 24)
}

// Read fills p with uniformly random bytes. It never fails; the error
// return exists to satisfy io.Reader.
func (a *Adapter) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = a.Uint8()
	}
	return len(p), nil
}
