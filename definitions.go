package prbs

import "errors"

// PRBS15 polynomial x^15 + x^14 + 1: taps at bits 14 and 13 of the register.
const (
	// Order is the register width in bits.
	Order = 15
	// Period is the sequence length in bits for any nonzero seed. The
	// polynomial is primitive, so the register walks all 2^15-1 nonzero
	// states before repeating.
	Period = 1<<Order - 1

	stateMask = 1<<Order - 1
	msb       = Order - 1
)

// Errors returned by generator and checker setup. Per-cycle operations are
// total and never fail.
var (
	// ErrSeedRange indicates a seed wider than 15 bits.
	ErrSeedRange = errors.New("prbs: seed exceeds 15 bits")
)

// Advance15 performs a single shift of the x^15 + x^14 + 1 LFSR: the XOR of
// bits 14 and 13 enters at bit 0 and the register shifts left, truncated to
// 15 bits. Advance15(0) == 0, the absorbing state.
func Advance15(lfsr uint16) uint16 {
	fb := (lfsr>>14 ^ lfsr>>13) & 1
	return lfsr<<1&stateMask | fb
}
