package services

import (
	"encoding/json"
	"fmt"
	"mazegen-backend/models"
	"os"
)

// 로드 시 반드시 존재해야 하는 키
var requiredMazeKeys = []string{
	"size",
	"scale",
	"wall_height",
	"wall_length",
	"maze_size",
	"center_position",
	"wall_id_counter",
	"obstacles",
	"custom_walls",
}

// Save serializes the full maze description to a single JSON document,
// written in one shot. A robot placement is included only when supplied.
func (m *Maze) Save(filePath string, robot *models.RobotPlacement) error {
	customWalls := make([]*models.Obstacle, 0, len(m.CustomWalls))
	for _, name := range m.customWallOrder {
		if wall, ok := m.CustomWalls[name]; ok {
			customWalls = append(customWalls, wall)
		}
	}

	file := &models.MazeFile{
		Size:           m.Size,
		Scale:          m.Scale,
		WallHeight:     m.WallHeight,
		WallLength:     m.WallLength,
		MazeSize:       m.MazeSize,
		CenterPosition: m.CenterPosition,
		WallIDCounter:  m.WallIDCounter,
		Obstacles:      m.Obstacles,
		CustomWalls:    customWalls,
	}
	if robot != nil {
		file.RobotPosition = robot.Position
		file.RobotModel = robot.Model
		file.RobotQuaternion = robot.Quaternion
	}

	data, err := json.MarshalIndent(file, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding maze: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return fmt.Errorf("writing maze file: %w", err)
	}
	return nil
}

// Load parses a maze document, restores all scalar fields, clears the scene
// and reconstructs every obstacle in it under its stored name. Obstacles
// recreated before a failing record stay in the scene.
func (m *Maze) Load(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading maze file: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", models.ErrMalformedMazeFile, err)
	}
	for _, key := range requiredMazeKeys {
		if _, ok := raw[key]; !ok {
			return fmt.Errorf("%w: missing key %q", models.ErrMalformedMazeFile, key)
		}
	}

	var file models.MazeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("%w: %v", models.ErrMalformedMazeFile, err)
	}

	m.Size = file.Size
	m.Scale = file.Scale
	m.WallHeight = file.WallHeight
	m.WallLength = file.WallLength
	m.MazeSize = file.MazeSize
	m.CenterPosition = file.CenterPosition
	m.WallIDCounter = file.WallIDCounter

	m.scene.Clear()
	m.GoalObject = nil
	m.FinalObject = nil

	m.Obstacles = make([]*models.Obstacle, 0, len(file.Obstacles))
	for _, record := range file.Obstacles {
		obs, err := m.restoreObstacle(record)
		if err != nil {
			return err
		}
		m.Obstacles = append(m.Obstacles, obs)
	}

	m.CustomWalls = make(map[string]*models.Obstacle, len(file.CustomWalls))
	m.customWallOrder = m.customWallOrder[:0]
	for _, record := range file.CustomWalls {
		wall, err := m.restoreObstacle(record)
		if err != nil {
			return err
		}
		m.CustomWalls[wall.Name] = wall
		m.customWallOrder = append(m.customWallOrder, wall.Name)
	}
	return nil
}

// restoreObstacle recreates a stored obstacle in the scene. The stored name
// is kept verbatim so a save/load cycle reproduces identical obstacle lists.
func (m *Maze) restoreObstacle(record *models.Obstacle) (*models.Obstacle, error) {
	shape, err := models.ParseShapeType(string(record.Shape))
	if err != nil {
		return nil, err
	}
	obs := &models.Obstacle{
		Name:     record.Name,
		Shape:    shape,
		Size:     record.Size,
		Color:    record.Color,
		Position: record.Position,
	}
	if err := m.scene.AddEntity(obs.Name, obs.Shape, obs.Size, obs.Color, obs.Position); err != nil {
		return nil, fmt.Errorf("adding %s to scene: %w", obs.Name, err)
	}
	return obs, nil
}
