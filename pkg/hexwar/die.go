package hexwar

import (
	"math/rand/v2"
	"time"
)

// Die produces six-sided die rolls in [1, 6].
type Die interface {
	Roll() int
}

// RandDie is a pseudo-random die. It is not safe for concurrent use.
type RandDie struct {
	rng *rand.Rand
}

// NewRandDie returns a die seeded with seed. A zero seed uses the clock.
func NewRandDie(seed uint64) *RandDie {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandDie{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (d *RandDie) Roll() int { return d.rng.IntN(6) + 1 }

// FixedDie always rolls the same face.
type FixedDie int

func (d FixedDie) Roll() int { return int(d) }

// SequenceDie replays the given faces in order, then repeats the last one.
type SequenceDie struct {
	Faces []int
	next  int
}

func (d *SequenceDie) Roll() int {
	if len(d.Faces) == 0 {
		return 1
	}
	i := min(d.next, len(d.Faces)-1)
	d.next++
	return d.Faces[i]
}
