package tigerkdf

import (
	"github.com/waywardgeek/twocats/internal/tkdfconfig"
	"github.com/waywardgeek/twocats/pkg/tigerseal"
)

// Params is re-exported so callers only need to import this package.
type Params = tkdfconfig.Params

// HashPassword is TigerKDF's primary entry point. It derives a
// pseudorandom key of p.HashSize bytes from password, salt, and optional
// associated data, spending p.Parallelism threads of both RAM bandwidth
// (the garlic ladder from p.StartMemCost to p.StopMemCost) and ALU work
// (p.TimeCost) along the way.
func HashPassword(p Params, password, salt, data []byte) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	hash, err := seedHash(p.HashSize, password, salt, data)
	if err != nil {
		return nil, err
	}

	mem := make([]uint32, arenaWordsNeeded(&p))
	return runGarlic(&p, mem, hash)
}

// UpdatePasswordHash re-hashes an existing, already-derived hash at higher
// memory cost without ever seeing the original password, for rehashing
// stored credentials after a cost-policy change. oldGarlic/newGarlic
// become p.StartMemCost/p.StopMemCost; p.UpdateMemCostMode is forced true.
func UpdatePasswordHash(p Params, hash []byte, oldGarlic, newGarlic int) ([]byte, error) {
	p.StartMemCost = oldGarlic
	p.StopMemCost = newGarlic
	p.UpdateMemCostMode = true
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(hash) != p.HashSize {
		return nil, &tkdfconfig.ParameterError{Msg: "hash length does not match p.HashSize"}
	}

	mem := make([]uint32, arenaWordsNeeded(&p))
	return runGarlic(&p, mem, hash)
}

// ServerRelieve completes the server side of the server-relief split: the
// client runs HashPassword with p.SkipLastHash=true through p.StopMemCost;
// the server applies exactly one more PBKDF2(BLAKE2s, iters=1) pass over
// clientOutput to reproduce the hash that a non-relieved call to
// HashPassword would have produced.
func ServerRelieve(hashSize int, clientOutput []byte) []byte {
	return tigerseal.Stretch(hashSize, clientOutput, nil)
}

// seedHash computes the initial, password-derived hash: PBKDF2(BLAKE2s,
// iters=1) over password and salt, or, when data is supplied, binds it via
// a derived salt first.
func seedHash(hashSize int, password, salt, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return tigerseal.Stretch(hashSize, password, salt), nil
	}
	derivedSalt := tigerseal.Stretch(hashSize, data, salt)
	return tigerseal.Stretch(hashSize, password, derivedSalt), nil
}
