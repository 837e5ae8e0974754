package tigerkdf

import (
	"encoding/binary"

	"github.com/waywardgeek/twocats/pkg/tigerseal"
)

// stateWords is a thread's (or the shared seed's) 256-bit running state:
// eight 32-bit words, mutated in place by saltState and by hashBlock.
type stateWords [8]uint32

// saltState re-seals an 8-word state with a 32-bit salt: serialize state
// to 32 bytes, BLAKE2s-key it with the 4-byte big-endian encoding of salt,
// and unpack the 32-byte result back into state in place.
func saltState(state *stateWords, salt uint32) error {
	serialized := toBytes(state[:])
	var key [4]byte
	binary.BigEndian.PutUint32(key[:], salt)
	sealed, err := tigerseal.Seal(len(state)*4, serialized, key[:])
	if err != nil {
		return err
	}
	words, err := toWords(sealed)
	if err != nil {
		return err
	}
	copy(state[:], words)
	return nil
}
