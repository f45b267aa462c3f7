package services

import (
	"fmt"
	"math/rand"
	"mazegen-backend/models"
	"time"

	"github.com/google/uuid"
)

// 기본 미로 파라미터
const (
	defaultMazeGridSize = 16
	defaultScale        = 1.0 / 3.0
	defaultWallHeight   = 1.0
	defaultWallLength   = 1.0
)

// MazeConfig holds construction parameters; zero values fall back to defaults.
type MazeConfig struct {
	Size           int       // 한 변의 셀 개수
	Scale          float64   // 선형 셀 스케일
	WallHeight     float64   // 벽 높이
	WallLength     float64   // 벽 세그먼트 길이
	CenterPosition []float64 // 미로 중심 [x, y]
}

// Maze represents the maze structure: floor, perimeter walls, custom walls
// and goal markers. It exclusively owns every obstacle it creates and pushes
// their geometry into the injected SceneContext.
type Maze struct {
	ID string

	scene SceneContext
	rng   *rand.Rand

	Size           int
	Scale          float64
	WallHeight     float64
	WallLength     float64
	MazeSize       float64
	CenterPosition []float64
	WallIDCounter  int

	Obstacles []*models.Obstacle

	// CustomWalls is keyed by obstacle name; it is filled during reload
	// reconstruction. customWallOrder keeps the reconstruction order so a
	// save after load writes the walls back in the same sequence.
	CustomWalls     map[string]*models.Obstacle
	customWallOrder []string

	GoalObject  *models.Obstacle
	FinalObject *models.Obstacle
}

// NewMaze creates a maze with the floor and perimeter already in place.
// A nil rng falls back to a time-seeded stream.
func NewMaze(scene SceneContext, rng *rand.Rand, cfg MazeConfig) (*Maze, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Size == 0 {
		cfg.Size = defaultMazeGridSize
	}
	if cfg.Scale == 0 {
		cfg.Scale = defaultScale
	}
	if cfg.WallHeight == 0 {
		cfg.WallHeight = defaultWallHeight
	}
	if cfg.WallLength == 0 {
		cfg.WallLength = defaultWallLength
	}
	if cfg.CenterPosition == nil {
		cfg.CenterPosition = []float64{0, 0}
	}

	m := &Maze{
		ID:             uuid.New().String(),
		scene:          scene,
		rng:            rng,
		Size:           cfg.Size,
		Scale:          cfg.Scale,
		WallHeight:     cfg.WallHeight,
		WallLength:     cfg.WallLength,
		MazeSize:       float64(cfg.Size) * cfg.WallLength,
		CenterPosition: cfg.CenterPosition,
		WallIDCounter:  1,
		Obstacles:      make([]*models.Obstacle, 0),
		CustomWalls:    make(map[string]*models.Obstacle),
	}

	if err := m.createFloor(); err != nil {
		return nil, err
	}
	if err := m.createPerimeter(); err != nil {
		return nil, err
	}
	return m, nil
}

// newObstacle creates an obstacle, makes its name unique with a random
// 4-digit suffix, and pushes it into the scene.
func (m *Maze) newObstacle(name string, shape models.ShapeType, size, color, position []float64) (*models.Obstacle, error) {
	uniqueID := 1000 + m.rng.Intn(9000)
	obs := &models.Obstacle{
		Name:     fmt.Sprintf("%s_%d", name, uniqueID),
		Shape:    shape,
		Size:     size,
		Color:    color,
		Position: position,
	}
	if err := m.scene.AddEntity(obs.Name, obs.Shape, obs.Size, obs.Color, obs.Position); err != nil {
		return nil, fmt.Errorf("adding %s to scene: %w", obs.Name, err)
	}
	return obs, nil
}

// createFloor places one flat slab covering the whole maze footprint.
func (m *Maze) createFloor() error {
	floorColor := []float64{0.8, 0.8, 0.8}
	floorThickness := 0.1
	floorSize := []float64{m.MazeSize, m.MazeSize, floorThickness, 0.1}
	cx, cy := m.CenterPosition[0], m.CenterPosition[1]

	floor, err := m.newObstacle("floor", models.ShapeSSBox, floorSize, floorColor, []float64{cx, cy, -floorThickness / 2})
	if err != nil {
		return err
	}
	m.Obstacles = append(m.Obstacles, floor)
	return nil
}

// createPerimeter lays size+2 unit wall segments along each of the four
// sides, with a half-cell margin beyond the floor edge. The corners end up
// double-covered, which keeps the enclosure gap-free.
func (m *Maze) createPerimeter() error {
	wallColor := []float64{0.35, 0.16, 0.14}
	cubeSize := []float64{m.WallLength, m.WallLength, m.WallHeight, 0.1}
	offsetX := -m.MazeSize / 2
	offsetY := -m.MazeSize / 2

	for i := 0; i < m.Size+2; i++ {
		x := offsetX + float64(i)*m.WallLength - m.WallLength/2
		if err := m.AddWall(fmt.Sprintf("top_wall_%d", i), []float64{x, offsetY - m.WallLength/2, m.WallHeight / 2}, cubeSize, wallColor); err != nil {
			return err
		}
		if err := m.AddWall(fmt.Sprintf("bottom_wall_%d", i), []float64{x, offsetY + m.MazeSize + m.WallLength/2, m.WallHeight / 2}, cubeSize, wallColor); err != nil {
			return err
		}
	}

	for i := 0; i < m.Size+2; i++ {
		y := offsetY + float64(i)*m.WallLength - m.WallLength/2
		if err := m.AddWall(fmt.Sprintf("left_wall_%d", i), []float64{offsetX - m.WallLength/2, y, m.WallHeight / 2}, cubeSize, wallColor); err != nil {
			return err
		}
		if err := m.AddWall(fmt.Sprintf("right_wall_%d", i), []float64{offsetX + m.MazeSize + m.WallLength/2, y, m.WallHeight / 2}, cubeSize, wallColor); err != nil {
			return err
		}
	}
	return nil
}

// AddWall appends one wall obstacle to the maze. Every higher-level wall
// operation funnels through here; the wall id counter advances on each call
// and is never reused.
func (m *Maze) AddWall(name string, position, size, color []float64) error {
	wall, err := m.newObstacle(name, models.ShapeSSBox, size, color, position)
	if err != nil {
		return err
	}
	m.Obstacles = append(m.Obstacles, wall)
	m.WallIDCounter++
	return nil
}

// AddCustomWall places length contiguous unit wall segments starting at
// start, stepping along X (horizontal) or Y (vertical) by one wall length
// per segment. Each segment is named after the current wall id counter; the
// counter also advances inside AddWall, so ids stay strictly ahead of every
// name suffix.
func (m *Maze) AddCustomWall(start []float64, direction string, length int) error {
	wallColor := []float64{0.25, 0.25, 0.25}
	cubeSize := []float64{m.WallLength, m.WallLength, m.WallHeight, 0.1}
	x, y := start[0], start[1]

	for i := 0; i < length; i++ {
		name := fmt.Sprintf("custom_wall_%d", m.WallIDCounter)

		var position []float64
		switch direction {
		case models.DirectionHorizontal:
			position = []float64{x + float64(i)*m.WallLength, y, m.WallHeight / 2}
		case models.DirectionVertical:
			position = []float64{x, y + float64(i)*m.WallLength, m.WallHeight / 2}
		default:
			return fmt.Errorf("unknown wall direction %q", direction)
		}

		if err := m.AddWall(name, position, cubeSize, wallColor); err != nil {
			return err
		}
		m.WallIDCounter++
	}
	return nil
}

// AddGoalObject places the blue start/intermediate marker at the given (x, y).
// A previous marker stays in the obstacle list and scene; only the maze's
// reference moves to the new one.
func (m *Maze) AddGoalObject(coord []float64) error {
	position := []float64{coord[0], coord[1], 0.2}
	goal, err := m.newObstacle("goal_object", models.ShapeSSBox, []float64{0.3, 0.3, 0.3, 0.1}, []float64{0, 0, 1}, position)
	if err != nil {
		return err
	}
	m.GoalObject = goal
	m.Obstacles = append(m.Obstacles, goal)
	return nil
}

// AddFinalObject places the yellow end marker at the given (x, y).
// Same replacement semantics as AddGoalObject.
func (m *Maze) AddFinalObject(coord []float64) error {
	position := []float64{coord[0], coord[1], 0.3}
	final, err := m.newObstacle("final_object", models.ShapeSSBox, []float64{0.4, 0.4, 0.4, 0.1}, []float64{1, 1, 0}, position)
	if err != nil {
		return err
	}
	m.FinalObject = final
	m.Obstacles = append(m.Obstacles, final)
	return nil
}
