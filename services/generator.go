package services

import (
	"fmt"
	"math/rand"
	"mazegen-backend/models"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MazeGenerator handles batch maze generation and reload. All mazes of a
// batch draw from the same rng stream; the stream is never re-seeded
// mid-batch.
type MazeGenerator struct {
	mu           sync.RWMutex
	activeMaze   *Maze
	activeScene  *MemoryScene
	generationMu sync.Mutex
	rng          *rand.Rand

	// broadcastFunc is wired once at startup, before the generator serves
	// requests.
	broadcastFunc func(models.WebSocketMessage)
}

// NewMazeGenerator creates a generator; a nil rng falls back to a
// time-seeded stream.
func NewMazeGenerator(rng *rand.Rand) *MazeGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MazeGenerator{rng: rng}
}

// SetBroadcastFunc wires the websocket broadcast used for progress and
// scene updates.
func (g *MazeGenerator) SetBroadcastFunc(f func(models.WebSocketMessage)) {
	g.broadcastFunc = f
}

func (g *MazeGenerator) broadcast(msgType string, data interface{}) {
	if g.broadcastFunc == nil {
		return
	}
	g.broadcastFunc(models.WebSocketMessage{
		Type:      msgType,
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	})
}

// GeneratedMaze summarizes one maze written during a batch run.
type GeneratedMaze struct {
	MazeID         string `json:"maze_id"`
	File           string `json:"file"`
	WallsRequested int    `json:"walls_requested"`
	WallsPlaced    int    `json:"walls_placed"`
	ObstacleCount  int    `json:"obstacle_count"`
}

// GenerateBatch creates numMazes independent random mazes with numWalls
// requested interior walls each and writes one JSON file per maze into
// folderPath (created if absent). Each maze also gets one random goal and
// one random final marker. A file failure aborts the remaining batch;
// already written mazes stay on disk.
func (g *MazeGenerator) GenerateBatch(numMazes, numWalls int, folderPath string) ([]GeneratedMaze, error) {
	g.generationMu.Lock()
	defer g.generationMu.Unlock()

	if err := os.MkdirAll(folderPath, 0o755); err != nil {
		return nil, fmt.Errorf("creating maze folder: %w", err)
	}

	batchID := uuid.New().String()
	results := make([]GeneratedMaze, 0, numMazes)

	for i := 1; i <= numMazes; i++ {
		scene := NewMemoryScene()
		maze, err := NewMaze(scene, g.rng, MazeConfig{})
		if err != nil {
			return results, err
		}

		footprints, err := GenerateRandomWalls(maze, numWalls, g.rng)
		if err != nil {
			return results, err
		}
		placed := len(footprints)

		if err := maze.AddGoalObject(g.randomCoord(maze)); err != nil {
			return results, err
		}
		if err := maze.AddFinalObject(g.randomCoord(maze)); err != nil {
			return results, err
		}

		fileName := fmt.Sprintf("maze_%d.json", i)
		if err := maze.Save(filepath.Join(folderPath, fileName), nil); err != nil {
			return results, err
		}

		results = append(results, GeneratedMaze{
			MazeID:         maze.ID,
			File:           fileName,
			WallsRequested: numWalls,
			WallsPlaced:    placed,
			ObstacleCount:  len(maze.Obstacles),
		})

		LogMazeGenerated(batchID, maze.ID, fileName, numWalls, placed, len(maze.Obstacles))
		g.broadcast(models.MessageTypeGenerationProgress, models.GenerationProgressData{
			BatchID:        batchID,
			MazeIndex:      i,
			TotalMazes:     numMazes,
			WallsRequested: numWalls,
			WallsPlaced:    placed,
			File:           fileName,
		})
	}

	return results, nil
}

// randomCoord samples a marker coordinate within the same inset bounds used
// for wall starts.
func (g *MazeGenerator) randomCoord(m *Maze) []float64 {
	lo := -m.MazeSize/2 + m.WallLength
	hi := m.MazeSize/2 - m.WallLength
	return []float64{
		lo + g.rng.Float64()*(hi-lo),
		lo + g.rng.Float64()*(hi-lo),
	}
}

// LoadMazeFile loads a maze document into a fresh scene and makes it the
// active maze.
func (g *MazeGenerator) LoadMazeFile(filePath string) (*Maze, error) {
	scene := NewMemoryScene()
	maze, err := NewMaze(scene, g.rng, MazeConfig{})
	if err != nil {
		return nil, err
	}
	if err := maze.Load(filePath); err != nil {
		return nil, err
	}

	g.mu.Lock()
	g.activeMaze = maze
	g.activeScene = scene
	g.mu.Unlock()

	fileName := filepath.Base(filePath)
	LogMazeLoaded(maze.ID, fileName, len(maze.Obstacles))
	g.broadcast(models.MessageTypeMazeUpdate, models.MazeUpdateData{
		MazeID:        maze.ID,
		File:          fileName,
		Size:          maze.Size,
		MazeSize:      maze.MazeSize,
		ObstacleCount: len(maze.Obstacles),
		Obstacles:     maze.Obstacles,
	})
	return maze, nil
}

// ActiveMaze returns the currently loaded maze, if any.
func (g *MazeGenerator) ActiveMaze() *Maze {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.activeMaze
}

// PlaceRobot puts a robot of the given embodiment model at the center of
// the active maze, at ground level with an identity quaternion.
func (g *MazeGenerator) PlaceRobot(model string) (*models.RobotPlacement, error) {
	g.mu.Lock()
	maze, scene := g.activeMaze, g.activeScene
	g.mu.Unlock()

	if maze == nil {
		return nil, fmt.Errorf("no active maze")
	}

	cx, cy := maze.CenterPosition[0], maze.CenterPosition[1]
	robot := &models.RobotPlacement{
		Position:   []float64{cx, cy, 0},
		Model:      model,
		Quaternion: []float64{1, 0, 0, 0},
	}
	if err := scene.AddRobot(robot.Model, robot.Position, robot.Quaternion); err != nil {
		return nil, err
	}

	LogRobotPlaced(maze.ID, model, cx, cy)
	g.broadcast(models.MessageTypeRobotUpdate, models.MazeUpdateData{
		MazeID:        maze.ID,
		Size:          maze.Size,
		MazeSize:      maze.MazeSize,
		ObstacleCount: len(maze.Obstacles),
		Obstacles:     maze.Obstacles,
		Robot:         robot,
	})
	return robot, nil
}

// ListMazeFiles returns the maze JSON files inside folderPath, sorted by
// name. A missing folder is treated as an empty one.
func ListMazeFiles(folderPath string) ([]string, error) {
	entries, err := os.ReadDir(folderPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("reading maze folder: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}
