// Package mood tracks the anger score the list builds up as it is edited.
package mood

import "github.com/sandeepkv93/angrytodo/internal/model"

const (
	MinScore = 0
	MaxScore = 100

	MinCompleteDelta = 5
	MaxCompleteDelta = 15
)

type Deltas struct {
	Add      int
	Delete   int
	Complete int
}

func DefaultDeltas() Deltas {
	return Deltas{Add: 10, Delete: -5, Complete: 15}
}

// WithCompleteDelta returns d with the completion delta clamped to the
// supported +5..+15 range.
func (d Deltas) WithCompleteDelta(v int) Deltas {
	d.Complete = clamp(v, MinCompleteDelta, MaxCompleteDelta)
	return d
}

func (d Deltas) For(kind model.MutationKind) int {
	switch kind {
	case model.MutationAdd:
		return d.Add
	case model.MutationDelete:
		return d.Delete
	case model.MutationComplete:
		return d.Complete
	default:
		return 0
	}
}

// Apply is the pure score transition for a single mutation.
func Apply(score int, kind model.MutationKind, d Deltas) int {
	return clamp(score+d.For(kind), MinScore, MaxScore)
}

type Tracker struct {
	score  int
	deltas Deltas
}

func NewTracker(d Deltas) *Tracker {
	return &Tracker{deltas: d}
}

func (t *Tracker) Score() int {
	return t.score
}

func (t *Tracker) Apply(kind model.MutationKind) int {
	t.score = Apply(t.score, kind, t.deltas)
	return t.score
}

func (t *Tracker) Reset() {
	t.score = MinScore
}

// Label buckets the score for display.
func Label(score int) string {
	switch {
	case score >= 80:
		return "furious"
	case score >= 50:
		return "angry"
	case score >= 20:
		return "annoyed"
	default:
		return "calm"
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
