package handlers

import (
	"errors"
	"log"
	"math/rand"
	"mazegen-backend/models"
	"mazegen-backend/services"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Generator - 전역 미로 생성기 (main에서 초기화)
var Generator *services.MazeGenerator

// InitMazeGenerator - 미로 생성기 초기화
func InitMazeGenerator() {
	Generator = services.NewMazeGenerator(nil)
	Generator.SetBroadcastFunc(Manager.BroadcastMessage)
	log.Println("✅ 미로 생성기 초기화 완료")
}

// mazeFolder - 미로 출력 폴더 (환경 변수로 변경 가능)
func mazeFolder() string {
	if folder := os.Getenv("MAZE_OUTPUT_DIR"); folder != "" {
		return folder
	}
	return "random_mazes"
}

type GenerateMazesRequest struct {
	NumMazes int    `json:"num_mazes"`
	NumWalls int    `json:"num_walls"`
	Folder   string `json:"folder"`
	Seed     *int64 `json:"seed"` // 옵션: 재현 가능한 배치를 위한 시드
}

// HandleGenerateMazes - 랜덤 미로 배치 생성
func HandleGenerateMazes(c *fiber.Ctx) error {
	var req GenerateMazesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "잘못된 요청 형식입니다",
		})
	}
	if req.NumMazes <= 0 {
		req.NumMazes = 30
	}
	if req.NumWalls <= 0 {
		req.NumWalls = 10
	}
	if req.Folder == "" {
		req.Folder = mazeFolder()
	}

	generator := Generator
	if req.Seed != nil {
		// 시드 고정 배치 (같은 시드는 같은 미로를 생성)
		generator = services.NewMazeGenerator(rand.New(rand.NewSource(*req.Seed)))
		generator.SetBroadcastFunc(Manager.BroadcastMessage)
	}

	start := time.Now()
	results, err := generator.GenerateBatch(req.NumMazes, req.NumWalls, req.Folder)
	if err != nil {
		log.Printf("❌ 미로 생성 실패: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":     "Failed to generate mazes",
			"generated": len(results),
		})
	}

	log.Printf("✅ 미로 %d개 생성 완료 (%.2fs)", len(results), time.Since(start).Seconds())

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(results),
		"folder":  req.Folder,
		"mazes":   results,
	})
}

// HandleListMazes - 저장된 미로 파일 목록
func HandleListMazes(c *fiber.Ctx) error {
	folder := c.Query("folder", mazeFolder())

	files, err := services.ListMazeFiles(folder)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list maze files",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(files),
		"folder":  folder,
		"files":   files,
	})
}

// HandleLoadMaze - 미로 파일 로드 (+ 옵션: 로봇 배치)
func HandleLoadMaze(c *fiber.Ctx) error {
	name := c.Params("name")
	if strings.Contains(name, "..") || strings.ContainsRune(name, os.PathSeparator) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "잘못된 파일 이름입니다",
		})
	}
	folder := c.Query("folder", mazeFolder())

	maze, err := Generator.LoadMazeFile(filepath.Join(folder, name))
	if err != nil {
		switch {
		case errors.Is(err, os.ErrNotExist):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Maze file not found",
			})
		case errors.Is(err, models.ErrUnknownShapeType), errors.Is(err, models.ErrMalformedMazeFile):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		default:
			log.Printf("❌ 미로 로드 실패: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to load maze",
			})
		}
	}

	// 옵션: 미로 중앙에 로봇 배치
	var robot *models.RobotPlacement
	if model := c.Query("robot"); model != "" {
		robot, err = Generator.PlaceRobot(model)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to place robot",
			})
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"maze": fiber.Map{
			"maze_id":         maze.ID,
			"file":            name,
			"size":            maze.Size,
			"maze_size":       maze.MazeSize,
			"wall_id_counter": maze.WallIDCounter,
			"obstacle_count":  len(maze.Obstacles),
			"custom_walls":    len(maze.CustomWalls),
		},
		"robot": robot,
	})
}
