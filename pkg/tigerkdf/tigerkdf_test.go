package tigerkdf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func smallParams(hashSize, stopMemCost int) Params {
	return Params{
		HashSize:     hashSize,
		BlockSize:    32,
		SubBlockSize: 32,
		Parallelism:  1,
		StartMemCost: 0,
		StopMemCost:  stopMemCost,
		TimeCost:     0,
	}
}

// TestHashPasswordDeterministic verifies that the same (params, password,
// salt, data) always derives the same hash, and that a different password
// derives a different one.
func TestHashPasswordDeterministic(t *testing.T) {
	p := smallParams(16, 4)
	h1, err := HashPassword(p, []byte("correct horse"), []byte("battery staple"), nil)
	require.NoError(t, err)
	h2, err := HashPassword(p, []byte("correct horse"), []byte("battery staple"), nil)
	require.NoError(t, err)
	require.Equal(t, h1, h2)

	h3, err := HashPassword(p, []byte("wrong horse"), []byte("battery staple"), nil)
	require.NoError(t, err)
	require.NotEqual(t, h1, h3)
}

// TestHashPasswordOutputLength verifies that the output is always exactly
// p.HashSize bytes, for several hash sizes.
func TestHashPasswordOutputLength(t *testing.T) {
	for _, size := range []int{4, 16, 32, 64} {
		p := smallParams(size, 4)
		h, err := HashPassword(p, []byte("pw"), []byte("salt"), nil)
		require.NoError(t, err)
		require.Len(t, h, size)
	}
}

// TestHashPasswordBindsAssociatedData verifies that supplying data changes
// the derived hash relative to the no-data call.
func TestHashPasswordBindsAssociatedData(t *testing.T) {
	p := smallParams(16, 4)
	withoutData, err := HashPassword(p, []byte("pw"), []byte("salt"), nil)
	require.NoError(t, err)
	withData, err := HashPassword(p, []byte("pw"), []byte("salt"), []byte("context"))
	require.NoError(t, err)
	require.NotEqual(t, withoutData, withData)
}

// TestUpdatePasswordHashCommutativity verifies that an UpdatePasswordHash
// call resuming from a stored hash reproduces exactly what a single direct
// HashPassword call to the same final level would have produced.
//
// The garlic loop treats oldGarlic/newGarlic as the first/last level to
// execute, inclusive. A direct call stopping at level j returns the hash
// *after* level j has run, so continuing to level k requires oldGarlic =
// j+1: the level whose input is exactly the hash the caller is holding.
func TestUpdatePasswordHashCommutativity(t *testing.T) {
	const j, k = 4, 5

	pDirect := smallParams(16, j)
	hJ, err := HashPassword(pDirect, []byte("pw"), []byte("salt"), nil)
	require.NoError(t, err)

	pDirectK := smallParams(16, k)
	hKDirect, err := HashPassword(pDirectK, []byte("pw"), []byte("salt"), nil)
	require.NoError(t, err)

	pUpdate := smallParams(16, k)
	hKUpdate, err := UpdatePasswordHash(pUpdate, hJ, j+1, k)
	require.NoError(t, err)

	require.Equal(t, hKDirect, hKUpdate)
}

// TestUpdatePasswordHashRejectsWrongLength verifies that UpdatePasswordHash
// validates the supplied hash against p.HashSize before allocating an arena.
func TestUpdatePasswordHashRejectsWrongLength(t *testing.T) {
	p := smallParams(16, 5)
	_, err := UpdatePasswordHash(p, make([]byte, 8), 4, 5)
	require.Error(t, err)
}

// TestServerRelieveEquivalence verifies that a client run with
// SkipLastHash=true, followed by the server's single ServerRelieve pass,
// equals a direct, non-relieved HashPassword call.
func TestServerRelieveEquivalence(t *testing.T) {
	p := smallParams(16, 4)

	direct, err := HashPassword(p, []byte("pw"), []byte("salt"), nil)
	require.NoError(t, err)

	relieved := p
	relieved.SkipLastHash = true
	clientOutput, err := HashPassword(relieved, []byte("pw"), []byte("salt"), nil)
	require.NoError(t, err)

	serverFinal := ServerRelieve(p.HashSize, clientOutput)
	require.Equal(t, direct, serverFinal)
	require.NotEqual(t, direct, clientOutput)
}

// TestHashPasswordRejectsInvalidParams verifies Validate is actually
// consulted at the entry point, not just available to call separately.
func TestHashPasswordRejectsInvalidParams(t *testing.T) {
	p := smallParams(16, 4)
	p.Parallelism = 0
	_, err := HashPassword(p, []byte("pw"), []byte("salt"), nil)
	require.Error(t, err)
}

// TestHashPasswordWithEarlyDiscardLevels exercises the StartMemCost > 0,
// non-update path: levels below StartMemCost-6 are still run to scrub
// memory, but their output is discarded rather than fed forward. This
// only checks that the discard branch runs to completion and still
// produces a deterministic, correctly-sized hash - not any particular
// value.
func TestHashPasswordWithEarlyDiscardLevels(t *testing.T) {
	// StartMemCost=11 makes level 4 satisfy "level < StartMemCost-6" (the
	// discard condition) while still having blocksPerThreadAt(4, 1) == 16,
	// large enough to actually run rather than being skipped outright.
	p := smallParams(16, 11)
	p.StartMemCost = 11

	h1, err := HashPassword(p, []byte("pw"), []byte("salt"), nil)
	require.NoError(t, err)
	require.Len(t, h1, 16)

	h2, err := HashPassword(p, []byte("pw"), []byte("salt"), nil)
	require.NoError(t, err)
	require.Equal(t, h1, h2)
}
