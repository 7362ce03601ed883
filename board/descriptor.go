package board

import "math/rand/v2"

// Randomizer is the source of randomness for piece generation.
// *rand.Rand from math/rand/v2 satisfies it.
type Randomizer interface {
	IntN(n int) int
}

// NewRandomizer returns a PCG-backed generator. A zero seed draws one from
// the runtime's entropy source.
func NewRandomizer(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Descriptor is the blueprint of a piece: a color and a template.
type Descriptor struct {
	Color Color
	Shape ShapeKind
}

// NewDescriptor draws a color and a shape independently and uniformly.
func NewDescriptor(r Randomizer) Descriptor {
	color := Color(r.IntN(ColorCount) + 1)
	shape := ShapeKind(r.IntN(ShapeCount))
	return Descriptor{Color: color, Shape: shape}
}
