package avatargen

import "strings"

// A PRNG is a tiny xorshift32 generator. We don't use math/rand because the
// avatar for a given email has to come out the same on every machine, forever:
// the shift triple below is pinned down bit-for-bit, and won't move out from
// under us the way a stdlib generator might between Go versions.
type PRNG struct {
	state uint32
}

func NewPRNG(seed uint32) *PRNG {
	// xorshift never leaves an all-zero state, so it can't start in one either
	if seed == 0 {
		seed = 1
	}
	return &PRNG{state: seed}
}

// Next returns the next 32-bit value in the sequence.
func (p *PRNG) Next() uint32 {
	p.state ^= p.state << 13
	p.state ^= p.state >> 17
	p.state ^= p.state << 5
	return p.state
}

// Int returns a value in [0, max). max must be positive.
func (p *PRNG) Int(max int) int {
	return int(p.Next() % uint32(max))
}

// Chance returns true with probability prob. Chance(0) is never true, and
// Chance(1) always is, because Next()/2^32 lands in [0, 1).
func (p *PRNG) Chance(prob float64) bool {
	return float64(p.Next())/4294967296.0 < prob
}

// pick returns a PRNG-chosen element of options. options must be non-empty.
func pick[T any](p *PRNG, options []T) T {
	return options[p.Int(len(options))]
}

// EmailToSeed hashes an email address (plus an optional salt) down to a PRNG
// seed. The email is trimmed and lowercased first so that "Max@Example.com "
// and "max@example.com" get the same avatar; the salt is appended as-is.
//
// This is the old `h = h*31 + c` rolling hash, done in 32-bit signed
// arithmetic that wraps at every step. It's order-sensitive and fast, and
// that's all we ask of it: collisions just mean two people share an avatar.
func EmailToSeed(email string, salt string) uint32 {
	s := strings.ToLower(strings.TrimSpace(email)) + salt
	var h int32
	for _, c := range s {
		h = (h << 5) - h + c
	}
	if h < 0 {
		// Widen before negating: -MinInt32 doesn't fit in an int32.
		return uint32(-int64(h))
	}
	return uint32(h)
}
