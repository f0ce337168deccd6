// SPDX-License-Identifier: MIT
//
// File: mt19937.go
// Role: MT19937 Source whose Float64 stream equals numpy.random.RandomState.
// Determinism:
//   - NewMT19937(s) followed by k Float64 calls yields exactly the first k
//     values of RandomState(s).random_sample(k), on every platform.
//   - Each Float64 consumes two 32-bit outputs.
// Concurrency:
//   - None. One generator per chain.

package montecarlo

const (
	mtStateWords = 624
	mtShift      = 397
	mtTwistXor   = 0x9908b0df
	mtUpperBit   = 0x80000000
	mtLowerBits  = 0x7fffffff
	mtInitMul    = 1812433253
	mtTemperB    = 0x9d2c5680
	mtTemperC    = 0xefc60000
	mtFloatScale = 1.0 / (1 << 53)
)

// MT19937 is the 32-bit Mersenne Twister. It satisfies Source.
type MT19937 struct {
	state [mtStateWords]uint32
	pos   int // next word to temper; mtStateWords forces a twist
}

// NewMT19937 returns a generator seeded as numpy.random.RandomState(seed).
func NewMT19937(seed uint32) *MT19937 {
	mt := &MT19937{}
	mt.Seed(seed)

	return mt
}

// Seed resets the generator to the state RandomState(seed) starts from.
func (mt *MT19937) Seed(seed uint32) {
	mt.state[0] = seed
	for i := 1; i < mtStateWords; i++ {
		prev := mt.state[i-1]
		mt.state[i] = mtInitMul*(prev^(prev>>30)) + uint32(i)
	}
	mt.pos = mtStateWords
}

// twist regenerates all state words in place. Words past the wrap point read
// already regenerated words, as the reference recurrence requires.
func (mt *MT19937) twist() {
	for i := 0; i < mtStateWords; i++ {
		y := mt.state[i]&mtUpperBit | mt.state[(i+1)%mtStateWords]&mtLowerBits
		next := mt.state[(i+mtShift)%mtStateWords] ^ y>>1
		if y&1 == 1 {
			next ^= mtTwistXor
		}
		mt.state[i] = next
	}
	mt.pos = 0
}

// Uint32 returns the next tempered output.
func (mt *MT19937) Uint32() uint32 {
	if mt.pos >= mtStateWords {
		mt.twist()
	}
	y := mt.state[mt.pos]
	mt.pos++

	y ^= y >> 11
	y ^= y << 7 & mtTemperB
	y ^= y << 15 & mtTemperC
	y ^= y >> 18

	return y
}

// Float64 returns a uniform in [0, 1) with 53 random bits: the top 27 bits of
// one output followed by the top 26 bits of the next.
func (mt *MT19937) Float64() float64 {
	hi := uint64(mt.Uint32() >> 5)
	lo := uint64(mt.Uint32() >> 6)

	return float64(hi<<26|lo) * mtFloatScale
}
