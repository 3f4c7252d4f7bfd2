package cpu

import (
	"encoding/binary"
)

// Word reads a little-endian 16-bit value from the first two bytes of b.
func Word(b []byte) uint16 {
	return binary.LittleEndian.Uint16(b)
}
