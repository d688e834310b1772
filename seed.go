package prbs

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// DeriveSeed15 derives a 15-bit seed from an arbitrary label, such as a test
// or link identifier. Equal labels yield equal seeds, so both ends of a link
// can derive the seed independently from shared test parameters. The result
// is never zero; a label hashing to zero maps to 0x7fff so derived seeds
// cannot hit the absorbing state.
func DeriveSeed15(label []byte) uint16 {
	sum := blake2b.Sum256(label)
	seed := binary.LittleEndian.Uint16(sum[:2]) & stateMask
	if seed == 0 {
		seed = stateMask
	}
	return seed
}
