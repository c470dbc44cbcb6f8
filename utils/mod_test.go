package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]int{4, 5, 5}, 5))
	require.Equal(t, -1, FindIndex([]int{4, 5}, 6))
	require.Equal(t, -1, FindIndex(nil, 6))
}

func TestRemove(t *testing.T) {
	t.Run("removes first occurrence in order", func(t *testing.T) {
		require.Equal(t, []int{1, 3, 2}, Remove([]int{1, 2, 3, 2}, 2))
	})

	t.Run("missing item leaves slice untouched", func(t *testing.T) {
		require.Equal(t, []int{1, 2}, Remove([]int{1, 2}, 7))
	})
}
