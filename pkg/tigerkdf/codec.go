// Package tigerkdf implements the memory-hard mixing engine at the core of
// TigerKDF: the block hasher, the resistant/unpredictable addressing
// phases, the slice scheduler, the garlic loop, and the finalizer.
package tigerkdf

import (
	"encoding/binary"
	"fmt"
)

// toWords unpacks a big-endian byte string into 32-bit words. len(b) must
// be a multiple of 4.
func toWords(b []byte) ([]uint32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("tigerkdf: byte length %d is not a multiple of 4", len(b))
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(b[i*4:])
	}
	return words, nil
}

// toBytes packs 32-bit words into a big-endian byte string, the inverse of
// toWords.
func toBytes(words []uint32) []byte {
	b := make([]byte, len(words)*4)
	for i, w := range words {
		binary.BigEndian.PutUint32(b[i*4:], w)
	}
	return b
}
