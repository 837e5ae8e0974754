package tigerkdf

import "sync"

// NewReusableHasher returns a closure that hashes passwords at a fixed set
// of cost parameters, reusing a pool of arenas across calls instead of
// allocating a fresh one every time. It exists for server workloads that
// verify many credentials back to back at the same cost parameters (e.g. a
// login service), where per-call allocation of a large arena would
// otherwise dominate GC pressure.
//
// The returned closure clears its arena before returning it to the pool,
// so the next caller never observes a previous password's intermediate
// state. NewReusableHasher panics immediately on invalid parameters, since
// that happens once at construction time rather than per call.
func NewReusableHasher(p Params) func(password, salt, data []byte) ([]byte, error) {
	if err := p.Validate(); err != nil {
		panic(err)
	}

	words := arenaWordsNeeded(&p)
	pool := sync.Pool{
		New: func() interface{} {
			mem := make([]uint32, words)
			return &mem
		},
	}

	return func(password, salt, data []byte) ([]byte, error) {
		mem := pool.Get().(*[]uint32)
		defer func() {
			clearArena(*mem)
			pool.Put(mem)
		}()

		hash, err := seedHash(p.HashSize, password, salt, data)
		if err != nil {
			return nil, err
		}
		return runGarlic(&p, *mem, hash)
	}
}

func clearArena(mem []uint32) {
	for i := range mem {
		mem[i] = 0
	}
}
