package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceRobotsNoOverlap(t *testing.T) {
	robots, err := placeRobots(8, spawnHalfExtent)
	require.NoError(t, err)
	require.Len(t, robots, 8)

	for i := 0; i < len(robots); i++ {
		assert.True(t, robots[i].Direction.Valid())
		assert.Equal(t, cubeEdge/2, robots[i].Position.Y)
		assert.LessOrEqual(t, robots[i].Position.X, spawnHalfExtent)
		assert.GreaterOrEqual(t, robots[i].Position.X, -spawnHalfExtent)
		for j := i + 1; j < len(robots); j++ {
			assert.False(t, boxesOverlap(&robots[i].Box, &robots[j].Box),
				"robots %d and %d overlap", i, j)
		}
	}
}

func TestPlaceRobotsBudgetExhausted(t *testing.T) {
	// At most four unit cubes fit with centers in a +-1 square, so this must
	// fail instead of looping forever.
	_, err := placeRobots(50, 1.0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot place 50 robots")
}

func TestPlaceRobotsCountFloor(t *testing.T) {
	robots, err := placeRobots(0, spawnHalfExtent)
	require.NoError(t, err)
	assert.Len(t, robots, 1)
}

func TestDirectionOpposite(t *testing.T) {
	tests := []struct{ in, want Direction }{
		{DirAway, DirCloser},
		{DirCloser, DirAway},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.Opposite())
		assert.Equal(t, tt.in, tt.in.Opposite().Opposite())
	}
}

func TestRandomDirectionDomain(t *testing.T) {
	for i := 0; i < 200; i++ {
		d := randomDirection()
		require.True(t, d.Valid(), "got %d", int(d))
	}
}
