// Package tigerseal implements TigerKDF's cryptographic seal: a
// fixed-output keyed BLAKE2s call and a one-iteration PBKDF2 wrapper over
// BLAKE2s, used for variable-length seeding, associated-data binding, and
// inter-level whitening.
//
// Both are kept behind this package's two functions rather than inlined at
// call sites, so the mixing engine in pkg/tigerkdf never reaches for
// golang.org/x/crypto/blake2s directly.
package tigerseal

import (
	"hash"

	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/pbkdf2"
)

// MaxSealSize is BLAKE2s's hard digest-size ceiling: 32 bytes.
const MaxSealSize = blake2s.Size

// Seal computes a single keyed BLAKE2s digest of data with the requested
// output length. key may be nil or empty for an unkeyed hash; outLen must
// be in [1, MaxSealSize].
func Seal(outLen int, data, key []byte) ([]byte, error) {
	h, err := blake2s.New(outLen, key)
	if err != nil {
		return nil, err
	}
	if _, err := h.Write(data); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

// Stretch runs PBKDF2 with exactly one iteration and BLAKE2s-256 as the
// PRF, producing outLen bytes. outLen may exceed BLAKE2s's 32-byte digest
// size - PBKDF2 drives the PRF over as many 32-byte blocks as needed, per
// the standard PBKDF2 construction.
func Stretch(outLen int, password, salt []byte) []byte {
	return pbkdf2.Key(password, salt, 1, outLen, newBlake2s256)
}

func newBlake2s256() hash.Hash {
	h, err := blake2s.New256(nil)
	if err != nil {
		// blake2s.New256(nil) can only fail for a too-long key, and we
		// never pass one - unreachable in practice.
		panic(err)
	}
	return h
}
