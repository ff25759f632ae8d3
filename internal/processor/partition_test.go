package processor

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition_Sizes(t *testing.T) {
	rng := NewRand(1)

	tests := []struct {
		n, train     int
		wantTrain    int
		wantTestSize int
	}{
		{10, 70, 7, 3},
		{10, 1, 0, 10},
		{10, 99, 9, 1},
		{3, 50, 1, 2},
		{400, 80, 320, 80},
		{1, 99, 0, 1},
		{0, 70, 0, 0},
	}

	for _, tt := range tests {
		split := Partition(tt.n, tt.train, rng)
		assert.Len(t, split.Train, tt.wantTrain, "n=%d train=%d", tt.n, tt.train)
		assert.Len(t, split.Test, tt.wantTestSize, "n=%d train=%d", tt.n, tt.train)
		assert.Equal(t, tt.n, len(split.Train)+len(split.Test))
		assert.Equal(t, tt.n*tt.train/100, len(split.Train))
	}
}

func TestPartition_DisjointAndComplete(t *testing.T) {
	rng := NewRand(42)

	for n := 0; n < 50; n++ {
		split := Partition(n, 65, rng)

		seen := make(map[int]bool, n)
		for _, idx := range append(append([]int{}, split.Train...), split.Test...) {
			require.False(t, seen[idx], "index %d appears twice", idx)
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, n)
			seen[idx] = true
		}
		assert.Len(t, seen, n)
	}
}

func TestPartition_SeedIsReproducible(t *testing.T) {
	a := Partition(100, 70, NewRand(7))
	b := Partition(100, 70, NewRand(7))

	assert.Equal(t, a, b)
}

func TestPartition_IsShuffled(t *testing.T) {
	split := Partition(100, 50, NewRand(3))

	train := append([]int{}, split.Train...)
	sort.Ints(train)

	identity := make([]int, 50)
	for i := range identity {
		identity[i] = i
	}
	assert.NotEqual(t, identity, train)
}
