package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueKeepsFirstOccurrence(t *testing.T) {
	assert.Equal(t, []int{12, 0, 3}, Unique([]int{12, 0, 12, 3, 0}))
	assert.Empty(t, Unique([]string(nil)))
}

func TestFilterNegative(t *testing.T) {
	assert.Equal(t, []int{4, 0}, FilterNegative([]int{-1, 4, -1, 0}))
}

func TestSmallHelpers(t *testing.T) {
	assert := assert.New(t)
	assert.True(Contains([]string{"C", "E"}, "E"))
	assert.False(Contains([]string{"C", "E"}, "G"))
	assert.Equal(2, Min(2, 5))
	assert.Equal(uint64(6), Sum([]uint8{1, 2, 3}))
}
