package bench

import (
	"fmt"
	"math/rand/v2"
)

// Position is a distribution of insertion positions.
type Position interface {
	// Name identifies the distribution.
	Name() string
	// Picker returns a fresh picker. A picker, given the current length n of a
	// sequence, returns an insertion position in 0…n. Pickers of the same
	// Position return the same series of positions.
	Picker() func(n int) int
}

type fixedPosition struct {
	name string
	pick func(n int) int
}

func (p fixedPosition) Name() string            { return p.name }
func (p fixedPosition) Picker() func(n int) int { return p.pick }

// Front inserts every value at position 0.
var Front Position = fixedPosition{"front", func(int) int { return 0 }}

// Middle inserts every value at the middle of the sequence.
var Middle Position = fixedPosition{"middle", func(n int) int { return n / 2 }}

// Back appends every value.
var Back Position = fixedPosition{"back", func(n int) int { return n }}

type uniform struct {
	seed uint64
}

// Uniform draws insertion positions uniformly from 0…n, seeded for
// reproducibility.
func Uniform(seed uint64) Position {
	return uniform{seed: seed}
}

func (u uniform) Name() string { return fmt.Sprintf("uniform(%d)", u.seed) }

func (u uniform) Picker() func(n int) int {
	rnd := rand.New(rand.NewPCG(u.seed, u.seed^0x9e3779b97f4a7c15))
	return func(n int) int {
		return rnd.IntN(n + 1)
	}
}

// PositionByName returns one of the predefined distributions. "uniform" uses
// seed 1.
func PositionByName(name string) (Position, error) {
	switch name {
	case "front":
		return Front, nil
	case "middle":
		return Middle, nil
	case "back":
		return Back, nil
	case "uniform":
		return Uniform(1), nil
	}
	return nil, fmt.Errorf("%w: unknown position distribution %q", ErrIllegalConfig, name)
}
