// Package prbs implements a PRBS15 pseudo-random binary sequence generator
// and checker built on the x^15 + x^14 + 1 linear-feedback shift register.
// The generator produces one byte per clock cycle and is seed-reproducible,
// so a receiver given the same seed (or none at all, see Checker15) can
// regenerate the stream and compare it bit for bit. Typical uses are link
// testing, BIST stimulus and protocol conformance streams.
//
// This is not a cryptographically secure generator; the sequence is linear
// and fully determined by 15 bits of state.
package prbs

// Generator15 is a PRBS15 byte generator. It models a clocked device: each
// call to [Generator15.Tick] is one clock cycle and either resets, loads a
// seed, emits a fresh byte or holds the previous output. The zero value is
// the reset state.
//
// A single Generator15 must not be ticked from multiple goroutines
// concurrently. Distinct generators are fully independent.
type Generator15 struct {
	// lfsr holds the 15-bit shift register state. Always masked to 15 bits.
	lfsr uint16
	// out holds the byte emitted on the last advancing cycle.
	out byte
	// prevLoad is the load control sampled on the previous cycle,
	// used to detect a 0->1 load edge rather than a level.
	prevLoad bool
}

// Tick performs one clock cycle and returns the output byte valid at the end
// of the cycle. Exactly one of the following happens, in strict priority order:
//
//  1. reset asserted: state, output and load history are cleared. Returns 0.
//  2. load edge (load high, was low last cycle): seed is copied into the
//     shift register, masked to 15 bits. Output is unchanged.
//  3. enable asserted with zero state: output is driven to 0. The all-zero
//     state is absorbing; the feedback rule can never leave it.
//  4. enable asserted: the register shifts 8 times, each shift emitting its
//     top bit, MSB of the output byte first.
//  5. otherwise: state and output hold.
//
// Tick is total: every input combination has a defined result.
func (g *Generator15) Tick(reset, enable, load bool, seed uint16) byte {
	if reset {
		*g = Generator15{}
		return 0
	}
	loadEdge := load && !g.prevLoad
	g.prevLoad = load
	switch {
	case loadEdge:
		g.lfsr = seed & stateMask
	case !enable:
		// Hold.
	case g.lfsr == 0:
		g.out = 0
	default:
		lfsr := g.lfsr
		var b byte
		for i := 0; i < 8; i++ {
			b = b<<1 | byte(lfsr>>msb&1)
			lfsr = Advance15(lfsr)
		}
		g.lfsr = lfsr
		g.out = b
	}
	return g.out
}

// Reset clears the generator and loads seed, performing a reset cycle, a load
// cycle and a load-release cycle. After Reset the next enabled Tick emits the
// first byte of the sequence for seed.
//
// Unlike Tick, which masks wide seeds, Reset returns [ErrSeedRange] for seeds
// exceeding 15 bits so that host wiring bugs surface early. A zero seed is
// accepted and yields the degenerate all-zero stream.
func (g *Generator15) Reset(seed uint16) error {
	if seed > stateMask {
		return ErrSeedRange
	}
	g.Tick(true, false, false, 0)
	g.Tick(false, false, true, seed)
	g.Tick(false, false, false, 0)
	return nil
}

// State returns the current 15-bit shift register value.
func (g *Generator15) State() uint16 { return g.lfsr }

// Output returns the byte emitted on the most recent advancing cycle.
func (g *Generator15) Output() byte { return g.out }

// Read fills p with sequence bytes, performing one enabled Tick per byte.
// It implements [io.Reader] and never returns an error. A generator in the
// zero state fills p with zeros, see the absorbing-state note on Tick.
func (g *Generator15) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = g.Tick(false, true, false, 0)
	}
	return len(p), nil
}
