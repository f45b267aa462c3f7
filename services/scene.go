package services

import (
	"mazegen-backend/models"
	"sync"
)

// SceneContext is the capability surface the maze core needs from a
// simulation/scene engine. The core only pushes geometry into it; it never
// owns the engine itself.
type SceneContext interface {
	// AddEntity creates a named entity with a shape, size, color and 3D position.
	AddEntity(name string, shape models.ShapeType, size, color, position []float64) error
	// AddRobot loads an embodiment model and places it with an orientation quaternion.
	AddRobot(model string, position, quaternion []float64) error
	// Clear removes every entity from the scene.
	Clear()
}

// SceneEntity - MemoryScene에 기록된 엔티티
type SceneEntity struct {
	Name     string           `json:"name"`
	Shape    models.ShapeType `json:"shape_type"`
	Size     []float64        `json:"size"`
	Color    []float64        `json:"color"`
	Position []float64        `json:"position"`
}

// MemoryScene records scene state without an engine attached. It backs
// generation runs, tests, and the websocket scene broadcast; a real engine
// adapter implements the same SceneContext out of tree.
type MemoryScene struct {
	mu       sync.RWMutex
	entities []SceneEntity
	robot    *models.RobotPlacement
}

// NewMemoryScene creates an empty in-memory scene.
func NewMemoryScene() *MemoryScene {
	return &MemoryScene{
		entities: make([]SceneEntity, 0),
	}
}

func (s *MemoryScene) AddEntity(name string, shape models.ShapeType, size, color, position []float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities = append(s.entities, SceneEntity{
		Name:     name,
		Shape:    shape,
		Size:     size,
		Color:    color,
		Position: position,
	})
	return nil
}

func (s *MemoryScene) AddRobot(model string, position, quaternion []float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.robot = &models.RobotPlacement{
		Position:   position,
		Model:      model,
		Quaternion: quaternion,
	}
	return nil
}

func (s *MemoryScene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities = s.entities[:0]
	s.robot = nil
}

// Entities returns a snapshot of the recorded entities.
func (s *MemoryScene) Entities() []SceneEntity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]SceneEntity, len(s.entities))
	copy(snapshot, s.entities)
	return snapshot
}

// EntityCount returns the number of entities currently in the scene.
func (s *MemoryScene) EntityCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Robot returns the placed robot, or nil if none was placed.
func (s *MemoryScene) Robot() *models.RobotPlacement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.robot
}
