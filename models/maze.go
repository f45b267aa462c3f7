package models

import (
	"errors"
	"fmt"
)

// ShapeType identifies an obstacle shape primitive in the simulation engine.
// The set is closed: loading a file with an unlisted shape string fails.
type ShapeType string

const (
	// ShapeSSBox is a box primitive with rounded corners
	ShapeSSBox ShapeType = "ssBox"
)

var (
	// ErrUnknownShapeType - stored shape string is not a known primitive
	ErrUnknownShapeType = errors.New("unknown shape type")
	// ErrMalformedMazeFile - maze file is missing a required key or has a wrong value type
	ErrMalformedMazeFile = errors.New("malformed maze file")
)

// ParseShapeType maps a stored shape string back to its shape primitive.
func ParseShapeType(s string) (ShapeType, error) {
	switch s {
	case string(ShapeSSBox):
		return ShapeSSBox, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownShapeType, s)
	}
}

// Wall directions for custom wall runs
const (
	DirectionHorizontal = "horizontal"
	DirectionVertical   = "vertical"
)

// Obstacle represents one placed object in the maze scene
// (floor, perimeter wall, custom wall or goal marker).
type Obstacle struct {
	Name     string    `json:"name"`
	Shape    ShapeType `json:"shape_type"`
	Size     []float64 `json:"size"`     // [width, depth, height, corner radius]
	Color    []float64 `json:"color"`    // RGB, 0~1
	Position []float64 `json:"position"` // [x, y, z]
}

// MazeFile is the on-disk maze document, one file per maze.
// The robot fields are present only when a robot was saved with the maze.
type MazeFile struct {
	Size            int         `json:"size"`
	Scale           float64     `json:"scale"`
	WallHeight      float64     `json:"wall_height"`
	WallLength      float64     `json:"wall_length"`
	MazeSize        float64     `json:"maze_size"`
	CenterPosition  []float64   `json:"center_position"`
	WallIDCounter   int         `json:"wall_id_counter"`
	Obstacles       []*Obstacle `json:"obstacles"`
	CustomWalls     []*Obstacle `json:"custom_walls"`
	RobotPosition   []float64   `json:"robot_position,omitempty"`
	RobotModel      string      `json:"robot_model,omitempty"`
	RobotQuaternion []float64   `json:"robot_quaternion,omitempty"`
}
