package services

import (
	"fmt"
	"math/rand"
	"mazegen-backend/models"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMaze(t *testing.T, cfg MazeConfig) (*Maze, *MemoryScene) {
	t.Helper()
	scene := NewMemoryScene()
	maze, err := NewMaze(scene, rand.New(rand.NewSource(42)), cfg)
	require.NoError(t, err)
	return maze, scene
}

// customWallID extracts the wall id from a name like "custom_wall_7_1234".
func customWallID(t *testing.T, name string) int {
	t.Helper()
	parts := strings.Split(name, "_")
	require.GreaterOrEqual(t, len(parts), 4)
	id, err := strconv.Atoi(parts[2])
	require.NoError(t, err)
	return id
}

func TestNewMazeDefaults(t *testing.T) {
	maze, scene := newTestMaze(t, MazeConfig{})

	assert.Equal(t, 16, maze.Size)
	assert.InDelta(t, 1.0/3.0, maze.Scale, 1e-9)
	assert.Equal(t, 1.0, maze.WallHeight)
	assert.Equal(t, 1.0, maze.WallLength)
	assert.Equal(t, 16.0, maze.MazeSize)
	assert.Equal(t, []float64{0, 0}, maze.CenterPosition)

	// 바닥 1개 + 둘레 벽 4*(16+2)개
	assert.Len(t, maze.Obstacles, 1+4*(16+2))
	assert.Equal(t, len(maze.Obstacles), scene.EntityCount())
	assert.Empty(t, maze.CustomWalls)
}

func TestPerimeterCount(t *testing.T) {
	for _, size := range []int{1, 4, 16} {
		t.Run(fmt.Sprintf("size %d", size), func(t *testing.T) {
			maze, _ := newTestMaze(t, MazeConfig{Size: size})

			perimeter := 0
			for _, obs := range maze.Obstacles {
				if strings.HasPrefix(obs.Name, "top_wall_") ||
					strings.HasPrefix(obs.Name, "bottom_wall_") ||
					strings.HasPrefix(obs.Name, "left_wall_") ||
					strings.HasPrefix(obs.Name, "right_wall_") {
					perimeter++
				}
			}
			assert.Equal(t, 4*(size+2), perimeter)
			assert.Len(t, maze.Obstacles, 1+4*(size+2))
		})
	}
}

func TestFloorCoversMaze(t *testing.T) {
	maze, _ := newTestMaze(t, MazeConfig{Size: 4})

	floor := maze.Obstacles[0]
	assert.True(t, strings.HasPrefix(floor.Name, "floor_"))
	assert.Equal(t, models.ShapeSSBox, floor.Shape)
	assert.Equal(t, []float64{4, 4, 0.1, 0.1}, floor.Size)
	assert.Equal(t, []float64{0.8, 0.8, 0.8}, floor.Color)
	assert.Equal(t, []float64{0, 0, -0.05}, floor.Position)
}

func TestAddCustomWall(t *testing.T) {
	t.Run("horizontal run steps along x", func(t *testing.T) {
		maze, _ := newTestMaze(t, MazeConfig{Size: 4})
		before := len(maze.Obstacles)

		require.NoError(t, maze.AddCustomWall([]float64{0, 0}, models.DirectionHorizontal, 3))

		segments := maze.Obstacles[before:]
		require.Len(t, segments, 3)
		for i, seg := range segments {
			assert.True(t, strings.HasPrefix(seg.Name, "custom_wall_"))
			assert.Equal(t, []float64{float64(i), 0, 0.5}, seg.Position)
			assert.Equal(t, []float64{1, 1, 1, 0.1}, seg.Size)
			assert.Equal(t, []float64{0.25, 0.25, 0.25}, seg.Color)
		}
	})

	t.Run("vertical run steps along y", func(t *testing.T) {
		maze, _ := newTestMaze(t, MazeConfig{Size: 4})
		before := len(maze.Obstacles)

		require.NoError(t, maze.AddCustomWall([]float64{-1, -1}, models.DirectionVertical, 2))

		segments := maze.Obstacles[before:]
		require.Len(t, segments, 2)
		assert.Equal(t, []float64{-1, -1, 0.5}, segments[0].Position)
		assert.Equal(t, []float64{-1, 0, 0.5}, segments[1].Position)
	})

	t.Run("unknown direction is rejected", func(t *testing.T) {
		maze, _ := newTestMaze(t, MazeConfig{Size: 4})
		assert.Error(t, maze.AddCustomWall([]float64{0, 0}, "diagonal", 1))
	})

	t.Run("counter stays ahead of every name suffix", func(t *testing.T) {
		maze, _ := newTestMaze(t, MazeConfig{Size: 4})
		require.NoError(t, maze.AddCustomWall([]float64{0, 0}, models.DirectionHorizontal, 3))
		require.NoError(t, maze.AddCustomWall([]float64{-1, -1}, models.DirectionVertical, 2))

		for _, obs := range maze.Obstacles {
			if strings.HasPrefix(obs.Name, "custom_wall_") {
				assert.Greater(t, maze.WallIDCounter, customWallID(t, obs.Name))
			}
		}
	})
}

func TestGoalAndFinalMarkers(t *testing.T) {
	maze, _ := newTestMaze(t, MazeConfig{Size: 4})

	require.NoError(t, maze.AddGoalObject([]float64{0, 0}))
	require.NoError(t, maze.AddFinalObject([]float64{1, 1}))

	require.NotNil(t, maze.GoalObject)
	assert.Equal(t, []float64{0, 0, 0.2}, maze.GoalObject.Position)
	assert.Equal(t, []float64{0.3, 0.3, 0.3, 0.1}, maze.GoalObject.Size)
	assert.Equal(t, []float64{0, 0, 1}, maze.GoalObject.Color)

	require.NotNil(t, maze.FinalObject)
	assert.Equal(t, []float64{1, 1, 0.3}, maze.FinalObject.Position)
	assert.Equal(t, []float64{0.4, 0.4, 0.4, 0.1}, maze.FinalObject.Size)
	assert.Equal(t, []float64{1, 1, 0}, maze.FinalObject.Color)
}

func TestSecondGoalKeepsStaleMarkerInScene(t *testing.T) {
	maze, _ := newTestMaze(t, MazeConfig{Size: 4})

	require.NoError(t, maze.AddGoalObject([]float64{0, 0}))
	first := maze.GoalObject
	require.NoError(t, maze.AddGoalObject([]float64{2, 2}))

	// 참조만 새 마커로 이동하고, 이전 마커는 장애물 목록에 남는다
	assert.NotEqual(t, first, maze.GoalObject)
	assert.Contains(t, maze.Obstacles, first)
	assert.Contains(t, maze.Obstacles, maze.GoalObject)
}
