package prbs

import (
	"context"
	"log/slog"
)

// Checker15 verifies an incoming PRBS15 bit stream and counts bit errors.
// It is self-synchronizing: for the x^15 + x^14 + 1 polynomial the last 15
// line bits, read MSB first, are the transmitter's register state as it was
// 15 shifts ago, so the checker can recover the sequence from the line
// without knowing the seed. Once locked it predicts every further bit and
// tallies mismatches, standard BER-tester semantics.
//
// The zero value is an unsynchronized checker ready for use. Not safe for
// concurrent use.
type Checker15 struct {
	// lfsr is the predicted line state, valid while synced.
	lfsr uint16
	// window is the sliding 15-bit gather of the most recent line bits.
	window uint16
	// ngather saturates at Order once enough bits have been seen to lock.
	ngather uint8
	synced  bool
	bits    uint64
	errs    uint64
	log     *slog.Logger
}

// Write consumes line bytes, MSB first within each byte, feeding the
// synchronizer or the comparator as appropriate. Implements [io.Writer] and
// never returns an error.
func (c *Checker15) Write(p []byte) (int, error) {
	for _, b := range p {
		for i := 7; i >= 0; i-- {
			c.feed(b >> uint(i) & 1)
		}
	}
	return len(p), nil
}

func (c *Checker15) feed(bit byte) {
	if !c.synced {
		c.window = c.window<<1&stateMask | uint16(bit)
		if c.ngather < Order {
			c.ngather++
		}
		// An all-zero window is the degenerate line; it cannot be a
		// state of the maximal sequence, so keep searching.
		if c.ngather < Order || c.window == 0 {
			return
		}
		lfsr := c.window
		for i := 0; i < Order; i++ {
			lfsr = Advance15(lfsr)
		}
		c.lfsr = lfsr
		c.synced = true
		c.debug("prbs:checker-locked", slog.Uint64("state", uint64(c.window)))
		return
	}
	if bit != byte(c.lfsr>>msb&1) {
		c.errs++
	}
	c.lfsr = Advance15(c.lfsr)
	c.bits++
}

// Synced reports whether the checker has locked onto the line.
func (c *Checker15) Synced() bool { return c.synced }

// BitsCompared returns the number of line bits checked since lock,
// excluding the bits consumed acquiring lock.
func (c *Checker15) BitsCompared() uint64 { return c.bits }

// BitErrors returns the number of mismatched bits since lock.
func (c *Checker15) BitErrors() uint64 { return c.errs }

// Resync drops lock and restarts synchronization while keeping the error
// counters. Call when the line is known to have been disturbed, such as after
// the far end reloads its seed.
func (c *Checker15) Resync() {
	c.synced = false
	c.ngather = 0
	c.window = 0
	c.lfsr = 0
	c.debug("prbs:checker-resync")
}

// ResetCount clears the bit and error counters without touching lock state.
func (c *Checker15) ResetCount() {
	c.bits = 0
	c.errs = 0
}

// SetLogger sets the logger for checker lock events. Nil disables logging.
func (c *Checker15) SetLogger(l *slog.Logger) { c.log = l }

func (c *Checker15) debug(msg string, attrs ...slog.Attr) {
	if c.log != nil {
		c.log.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
	}
}
