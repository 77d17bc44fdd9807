// Package rng provides the seeded Mulberry32 stream used for reproducible particle layouts.
package rng

// Stream is a Mulberry32 generator: one 32-bit state advanced by a fixed mixing function
// Zero value is a valid stream seeded with 0
type Stream struct {
	state uint32
}

// New returns a stream for seed, truncated to 32 bits
func New(seed int64) *Stream {
	return &Stream{state: uint32(seed)}
}

// Reset rewinds the stream to seed without allocating
func (s *Stream) Reset(seed int64) {
	s.state = uint32(seed)
}

// Uint32 advances the state and returns the mixed 32-bit output
func (s *Stream) Uint32() uint32 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return t ^ t>>14
}

// Next returns a float in [0,1)
func (s *Stream) Next() float64 {
	return float64(s.Uint32()) / 4294967296.0
}

// Range returns a float in [min, max); min > max yields (max, min]
func Range(s *Stream, min, max float64) float64 {
	return min + s.Next()*(max-min)
}

// IntRange returns an integer in [min, max], inclusive
func IntRange(s *Stream, min, max int) int {
	v := Range(s, float64(min), float64(max+1))
	i := int(v)
	if float64(i) > v {
		i--
	}
	return i
}

// Pick returns a uniformly chosen element; empty input yields the zero value without drawing
func Pick[T any](s *Stream, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[int(s.Next()*float64(len(items)))]
}
