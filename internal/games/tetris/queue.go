package tetris

import "math/rand"

// Queue deals pieces with one piece of lookahead. Each draw is an
// independent uniform pick over the seven kinds, so repeats are possible.
type Queue struct {
	next Kind
	draw func() Kind
}

// NewQueue creates a queue drawing from rng and picks the first lookahead.
func NewQueue(rng *rand.Rand) *Queue {
	return newQueue(func() Kind {
		return Kind(rng.Intn(KindCount)) + KindI
	})
}

func newQueue(draw func() Kind) *Queue {
	q := &Queue{draw: draw}
	q.next = q.draw()
	return q
}

// Peek returns the kind that the next Advance will deal.
func (q *Queue) Peek() Kind {
	return q.next
}

// PeekShape returns the lookahead's shape for preview display.
func (q *Queue) PeekShape() Shape {
	return ShapeOf(q.next)
}

// Advance deals the current lookahead, draws a new one and returns the
// dealt piece's shape.
func (q *Queue) Advance() Shape {
	current := q.next
	q.next = q.draw()
	return ShapeOf(current)
}
