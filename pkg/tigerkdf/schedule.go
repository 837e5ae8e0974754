package tigerkdf

import "sync"

// Slices is the fixed number of equal subdivisions of each thread's
// region. It is part of the output encoding and must not be changed
// without a version bump.
const Slices = 16

// runLevel dispatches Parallelism threads over Slices slices of one garlic
// level: each thread seeds its state from seed256, then all threads run
// the resistant phase in lockstep across the first half of the slices and
// the unpredictable phase across the second half, synchronizing on one
// barrier per slice so that every thread finishes reading the previous
// slice's blocks before any thread starts writing the next.
func runLevel(seed256 stateWords, mem []uint32, parallelism, blocklen, subBlocklen, blocksPerThread, multiplies, repetitions int) (stateWords, error) {
	states := make([]stateWords, parallelism)
	for p := 0; p < parallelism; p++ {
		states[p] = seed256
		if err := saltState(&states[p], uint32(p)); err != nil {
			return stateWords{}, err
		}
	}

	blockCount := blocksPerThread / Slices
	half := Slices / 2

	runSlice := func(slice int, fn func(state *stateWords, threadIdx, completedBlocks, blockCount int) error) error {
		completedBlocks := slice * blockCount
		errs := make([]error, parallelism)
		var wg sync.WaitGroup
		wg.Add(parallelism)
		for p := 0; p < parallelism; p++ {
			go func(p int) {
				defer wg.Done()
				errs[p] = fn(&states[p], p, completedBlocks, blockCount)
			}(p)
		}
		wg.Wait()
		for _, err := range errs {
			if err != nil {
				return err
			}
		}
		return nil
	}

	for slice := 0; slice < half; slice++ {
		err := runSlice(slice, func(state *stateWords, threadIdx, completedBlocks, blockCount int) error {
			return resistantPhase(state, mem, threadIdx, parallelism, blocklen, subBlocklen, blocksPerThread, completedBlocks, blockCount, multiplies, repetitions)
		})
		if err != nil {
			return stateWords{}, err
		}
	}

	for slice := half; slice < Slices; slice++ {
		err := runSlice(slice, func(state *stateWords, threadIdx, completedBlocks, blockCount int) error {
			return unpredictablePhase(state, mem, threadIdx, parallelism, blocklen, subBlocklen, blocksPerThread, completedBlocks, blockCount, multiplies, repetitions)
		})
		if err != nil {
			return stateWords{}, err
		}
	}

	return foldTails(mem, parallelism, blocklen, blocksPerThread), nil
}

// foldTails implements the per-thread fold half of the finalizer: for each
// thread, add (mod 2^32, word-wise) the last eight words of its region into
// a running 256-bit accumulator.
func foldTails(mem []uint32, parallelism, blocklen, blocksPerThread int) stateWords {
	var hash256 stateWords
	for p := 0; p < parallelism; p++ {
		tailStart := (p+1)*blocklen*blocksPerThread - 8
		for k := 0; k < 8; k++ {
			hash256[k] += mem[tailStart+k]
		}
	}
	return hash256
}
