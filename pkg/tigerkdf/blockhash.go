package tigerkdf

import "math/bits"

// hashBlock is TigerKDF's block hashing primitive: it hashes one
// destination block from a previous block, a remote block, and the
// running state, with a configurable repetition count and an optional
// serial multiplication chain applied before the memory-hashing lanes.
//
// Precondition (enforced by the caller, not re-checked here - this is a
// hot inner loop): [toAddr, toAddr+blocklen) lies in the current thread's
// region, prevAddr == toAddr-blocklen, and [fromAddr, fromAddr+blocklen)
// is a fully-written block.
//
// It is invoked once per destination block from the phase loops in
// phase.go, combining eight SIMD-friendly add/xor/rotate lanes with an
// optional serial multiply chain that forces sequential ALU dependency
// between repetitions.
func hashBlock(state *stateWords, mem []uint32, blocklen, subBlocklen, fromAddr, prevAddr, toAddr, multiplies, repetitions int) error {
	var oddState [8]uint32
	for k := 0; k < 8; k++ {
		oddState[k] = state[k] | 1
	}

	v := uint32(1)
	numSubBlocks := blocklen / subBlocklen
	numChunks := subBlocklen / 8

	for r := 0; r < repetitions; r++ {
		curFrom, curPrev, curTo := fromAddr, prevAddr, toAddr

		for i := 0; i < numSubBlocks; i++ {
			randVal := mem[curFrom]
			p := curPrev + subBlocklen*(int(randVal)%numSubBlocks)

			for c := 0; c < numChunks; c++ {
				for k := 0; k < multiplies; k++ {
					v = v * oddState[k]
					v ^= randVal
					// v is already masked to 32 bits by Go's uint32
					// arithmetic, so v>>32 is always zero; this addition
					// is a deliberate no-op kept for byte-exact
					// compatibility with existing deployments that keep
					// v at 32 bits rather than widening it to 64.
					randVal += v >> 32
				}
				for k := 0; k < 8; k++ {
					state[k] = (state[k] + mem[p]) ^ mem[curFrom]
					state[k] = bits.RotateLeft32(state[k], 8)
					mem[curTo] = state[k]
					p++
					curFrom++
					curTo++
				}
			}
		}
	}

	return saltState(state, v)
}
