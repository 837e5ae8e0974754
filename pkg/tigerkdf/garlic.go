package tigerkdf

import (
	"time"

	"github.com/waywardgeek/twocats/internal/tkdfconfig"
	"github.com/waywardgeek/twocats/pkg/tigerseal"
	"github.com/waywardgeek/twocats/pkg/tkdflog"
)

// blocksPerThreadAt returns S * floor(2^level / (S*parallelism)), the
// number of blocks in each thread's region at the given garlic level.
func blocksPerThreadAt(level, parallelism int) int {
	total := uint64(1) << uint(level)
	denom := uint64(Slices) * uint64(parallelism)
	return int(uint64(Slices) * (total / denom))
}

// arenaWordsNeeded returns the number of uint32 words the arena must hold
// to run every level up to and including stopMemCost.
func arenaWordsNeeded(p *tkdfconfig.Params) int {
	blocksPerThread := blocksPerThreadAt(p.StopMemCost, p.Parallelism)
	return p.Parallelism * blocksPerThread * p.Blocklen()
}

// runGarlic is the garlic loop: it repeatedly doubles memory cost,
// re-hashing between levels, and supports both "update" (restart from an
// existing hash, no early-discard burn-in) and "server-relief" (skip the
// final level's whitening) modes.
//
// mem must already be sized for arenaWordsNeeded(p) or larger; runGarlic
// never reallocates it, only sub-slices it per level - the arena is reused
// across levels within a single call the same way pool.go reuses one
// across repeated calls.
func runGarlic(p *tkdfconfig.Params, mem []uint32, initialHash []byte) ([]byte, error) {
	hash := initialHash
	blocklen := p.Blocklen()
	subBlocklen := p.SubBlocklen()
	multiplies := p.Multiplies()
	repetitions := p.Repetitions()

	for level := 0; level <= p.StopMemCost; level++ {
		performLevel := level >= p.StartMemCost
		isDiscard := false
		if !performLevel && !p.UpdateMemCostMode && level < p.StartMemCost-6 {
			performLevel = true
			isDiscard = true
		}
		if !performLevel {
			continue
		}

		blocksPerThread := blocksPerThreadAt(level, p.Parallelism)
		if blocksPerThread < Slices {
			continue
		}

		started := time.Now()
		tkdflog.LevelStart(level, blocksPerThread)

		seedBytes, err := tigerseal.Seal(tigerseal.MaxSealSize, hash, nil)
		if err != nil {
			return nil, err
		}
		seedWords, err := toWords(seedBytes)
		if err != nil {
			return nil, err
		}
		var seed256 stateWords
		copy(seed256[:], seedWords)

		levelWords := p.Parallelism * blocksPerThread * blocklen
		hash256, err := runLevel(seed256, mem[:levelWords], p.Parallelism, blocklen, subBlocklen, blocksPerThread, multiplies, repetitions)
		if err != nil {
			return nil, err
		}

		tkdflog.LevelDone(level, time.Since(started))

		if isDiscard {
			// Early-discard level: the purpose was only to scrub memory
			// that would otherwise reveal an intermediate-cost hash.
			// hash is left untouched.
			continue
		}

		if level == p.StopMemCost && p.SkipLastHash {
			hash = toBytes(hash256[:])
		} else {
			hash = whiten(len(hash), hash256)
		}
	}

	return hash, nil
}
