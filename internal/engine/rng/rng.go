// Package rng provides the deterministic random source that drives every
// random decision inside an encounter. One WorldRNG instance is threaded
// through the fate deck and the encounter engine; nothing in the engine
// packages reads math/rand, crypto/rand, or the clock, so a seed plus the
// sequence of calls fully determines every outcome.
package rng

// defaultSeed replaces a zero seed. The xorshift step maps zero to zero, so
// a zero state would emit zeros forever.
const defaultSeed uint64 = 0x9E3779B97F4A7C15

// WorldRNG is a xorshift64 generator with a checkpointable state. It is not
// safe for concurrent use; each encounter owns exactly one instance.
type WorldRNG struct {
	state uint64
}

// New returns a generator seeded with seed. A zero seed is replaced with a
// fixed nonzero constant.
func New(seed uint64) *WorldRNG {
	if seed == 0 {
		seed = defaultSeed
	}
	return &WorldRNG{state: seed}
}

// Uint64 advances the generator one xorshift64 step and returns the new
// state.
func (r *WorldRNG) Uint64() uint64 {
	s := r.state
	s ^= s << 13
	s ^= s >> 7
	s ^= s << 17
	r.state = s
	return s
}

// Intn returns a value in [0, n). It panics if n <= 0, matching math/rand.
// Reduction is by modulo so replays stay stable across releases.
func (r *WorldRNG) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn bound must be positive")
	}
	return int(r.Uint64() % uint64(n))
}

// IntBetween returns a value in the closed range [lo, hi]. Reversed bounds
// are swapped rather than rejected.
func (r *WorldRNG) IntBetween(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Float64 returns a value in [0, 1) built from the top 53 bits of one step.
func (r *WorldRNG) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Bool consumes one step and returns its low bit.
func (r *WorldRNG) Bool() bool {
	return r.Uint64()&1 == 1
}

// Shuffle performs a Fisher-Yates shuffle over n elements, calling swap for
// each exchange. The signature mirrors math/rand so callers can shuffle any
// indexed collection.
func (r *WorldRNG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}

// State returns the current internal state for checkpointing.
func (r *WorldRNG) State() uint64 {
	return r.state
}

// Restore rewinds or fast-forwards the generator to a previously captured
// state. Restoring a zero state is normalized the same way New treats a
// zero seed.
func (r *WorldRNG) Restore(state uint64) {
	if state == 0 {
		state = defaultSeed
	}
	r.state = state
}
