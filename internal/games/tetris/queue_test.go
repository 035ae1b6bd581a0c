package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// scripted returns a draw function cycling through kinds.
func scripted(kinds ...Kind) func() Kind {
	i := 0
	return func() Kind {
		k := kinds[i%len(kinds)]
		i++
		return k
	}
}

func TestQueueLookahead(t *testing.T) {
	q := newQueue(scripted(KindT, KindO, KindS))

	assert.Equal(t, KindT, q.Peek())
	assert.True(t, q.PeekShape().Equal(ShapeOf(KindT)))

	assert.True(t, q.Advance().Equal(ShapeOf(KindT)))
	assert.Equal(t, KindO, q.Peek())

	assert.True(t, q.Advance().Equal(ShapeOf(KindO)))
	assert.Equal(t, KindS, q.Peek())
}

func TestQueueDrawsEveryKind(t *testing.T) {
	q := NewQueue(rand.New(rand.NewSource(1)))
	seen := make(map[Kind]int)

	for range 2000 {
		k := q.Advance().Kind()
		assert.True(t, k.Valid())
		seen[k]++
	}
	assert.Len(t, seen, KindCount)
}

func TestQueueDeterministic(t *testing.T) {
	a := NewQueue(rand.New(rand.NewSource(42)))
	b := NewQueue(rand.New(rand.NewSource(42)))

	for range 100 {
		assert.Equal(t, a.Peek(), b.Peek())
		assert.Equal(t, a.Advance().Kind(), b.Advance().Kind())
	}
}
