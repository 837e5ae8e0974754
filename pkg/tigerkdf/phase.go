package tigerkdf

import "math/bits"

// bitReverse reverses the low nbits bits of value, the building block of a
// sliding power-of-two window address schedule.
func bitReverse(value uint32, nbits int) uint32 {
	var result uint32
	for n := 0; n < nbits; n++ {
		result = (result << 1) | (value & 1)
		value >>= 1
	}
	return result
}

// reversePos computes the sliding power-of-two bit-reversal position for
// block index i: reverse the low numBits-1 bits of i (numBits being the bit
// length of i), then add 2^(numBits-1) to the result if the sum is still
// strictly below i. It is factored out of resistantPhase so both
// resistantFromAddr and the address-schedule tests can call it without
// running the full block-hashing machinery.
func reversePos(i int) uint32 {
	numBits := bits.Len(uint(i))
	pos := bitReverse(uint32(i), numBits-1)
	half := uint32(1) << uint(numBits-1)
	if pos+half < uint32(i) {
		pos += half
	}
	return pos
}

// resistantFromAddr computes the resistant phase's source address for
// block index i. It depends only on (parallelism, blocksPerThread,
// blocklen, threadIdx, completedBlocks, i) - never on password-derived
// state - so that an attacker's memory-access pattern cannot be steered
// toward any particular password.
func resistantFromAddr(threadIdx, parallelism, blocklen, blocksPerThread, completedBlocks, i int) int {
	start := blocklen * blocksPerThread * threadIdx
	fromAddr := blocklen * int(reversePos(i))
	if fromAddr < completedBlocks*blocklen {
		// Source lies in a prior, globally-barriered region: read the
		// same offset from another thread's region, round-robin.
		fromAddr += blocklen * blocksPerThread * (i % parallelism)
	} else {
		fromAddr += start
	}
	return fromAddr
}

// resistantPhase runs one slice of the data-independent addressing phase
// for one thread. completedBlocks is the global progress marker (slice
// index * blocksPerThread/Slices); blockCount is the number of blocks this
// slice covers.
func resistantPhase(state *stateWords, mem []uint32, threadIdx, parallelism, blocklen, subBlocklen, blocksPerThread, completedBlocks, blockCount, multiplies, repetitions int) error {
	start := blocklen * blocksPerThread * threadIdx

	firstBlock := completedBlocks
	if completedBlocks == 0 {
		for i := 0; i < blocklen/8; i++ {
			if err := saltState(state, uint32(i)); err != nil {
				return err
			}
			copy(mem[start+8*i:start+8*i+8], state[:])
		}
		firstBlock = 1
	}

	limit := completedBlocks + blockCount
	for i := firstBlock; i < limit; i++ {
		fromAddr := resistantFromAddr(threadIdx, parallelism, blocklen, blocksPerThread, completedBlocks, i)
		toAddr := start + i*blocklen
		prevAddr := toAddr - blocklen
		if err := hashBlock(state, mem, blocklen, subBlocklen, fromAddr, prevAddr, toAddr, multiplies, repetitions); err != nil {
			return err
		}
	}
	return nil
}

// unpredictablePhase runs one slice of the data-dependent addressing phase
// for one thread: each block's source address is steered by the running
// state, so the access pattern depends on the password being hashed.
func unpredictablePhase(state *stateWords, mem []uint32, threadIdx, parallelism, blocklen, subBlocklen, blocksPerThread, completedBlocks, blockCount, multiplies, repetitions int) error {
	start := blocklen * blocksPerThread * threadIdx

	limit := completedBlocks + blockCount
	for i := completedBlocks; i < limit; i++ {
		v := uint64(state[0])
		v2 := (v * v) >> 32
		v3 := (v * v2) >> 32
		distance := (uint64(i-1) * v3) >> 32 // in [0, i-1]

		fromAddr := (i - 1 - int(distance)) * blocklen
		if fromAddr < completedBlocks*blocklen {
			// A password-dependent foreign thread.
			fromAddr += blocklen * blocksPerThread * int(state[1]%uint32(parallelism))
		} else {
			fromAddr += start
		}

		toAddr := start + i*blocklen
		prevAddr := toAddr - blocklen
		if err := hashBlock(state, mem, blocklen, subBlocklen, fromAddr, prevAddr, toAddr, multiplies, repetitions); err != nil {
			return err
		}
	}
	return nil
}
