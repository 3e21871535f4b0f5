// Package rng provides the deterministic pseudo-random source shared by the
// renderers and the sonifier. One Source is created per generation run from
// the user-supplied seed; every stochastic decision draws from that single
// stream in a fixed order, so identical (history, seed, style) inputs always
// reproduce identical output. Wall-clock or crypto seeding is never used here.
package rng

// #region source

// Source is a Mulberry32 pseudo-random number generator.
type Source struct {
	state uint32
	seed  uint32
}

// New creates a Source from a run seed. The 64-bit seed is folded into the
// 32-bit generator state so the full input range affects the stream.
func New(seed int64) *Source {
	folded := uint32(uint64(seed)) ^ uint32(uint64(seed)>>32)
	return &Source{state: folded, seed: folded}
}

// Reset rewinds the stream to its initial state.
func (s *Source) Reset() {
	s.state = s.seed
}

// #endregion source

// #region draws

// Float returns the next value in [0,1) using the Mulberry32 step.
func (s *Source) Float() float64 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Range returns the next value in [min, max).
func (s *Source) Range(min, max float64) float64 {
	return s.Float()*(max-min) + min
}

// #endregion draws

// #region derive

// DeriveSeed hashes a per-index seed out of the base seed. Implementations
// that parallelize per-style rendering or per-note synthesis must derive one
// Source per index this way instead of sharing a mutable generator.
func DeriveSeed(base int64, index int) int64 {
	h := uint64(base) ^ (uint64(index) * 0x9E3779B97F4A7C15)
	h = (h ^ (h >> 30)) * 0xBF58476D1CE4E5B9
	h = (h ^ (h >> 27)) * 0x94D049BB133111EB
	return int64(h ^ (h >> 31))
}

// #endregion derive
