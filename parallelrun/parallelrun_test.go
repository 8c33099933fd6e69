package parallelrun

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundsPartitionsWithRemainderToLastWorker(t *testing.T) {
	// 10 items over 3 workers: 3,3,4.
	s0, e0 := bounds(10, 3, 0)
	s1, e1 := bounds(10, 3, 1)
	s2, e2 := bounds(10, 3, 2)

	assert.Equal(t, [2]int{0, 3}, [2]int{s0, e0})
	assert.Equal(t, [2]int{3, 6}, [2]int{s1, e1})
	assert.Equal(t, [2]int{6, 10}, [2]int{s2, e2})
}

func TestTransformPreservesOrder(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	out := Transform(in, 3, func(x int) int { return x * x })
	assert.Equal(t, []int{1, 4, 9, 16, 25, 36, 49, 64, 81, 100}, out)
}

func TestTransformFilterKeepsOnlyPassingAndConcatenatesInJobOrder(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6}
	out := TransformFilter(in, 3, func(x int) (int, bool) {
		return x, x%2 == 0
	})
	assert.Equal(t, []int{2, 4, 6}, out)
}

func TestReduceCombinesInWorkerOrder(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	sum := Reduce(in, 4, 0, func(acc, x int) int { return acc + x }, func(a, b int) int { return a + b })
	assert.Equal(t, 55, sum)
}

func TestForEachOnEmptyInputIsNoop(t *testing.T) {
	called := false
	err := ForEach(0, 4, func(i int) error { called = true; return nil })
	assert.NoError(t, err)
	assert.False(t, called)
}
