package main

import (
	"log"
	"mazegen-backend/handlers"
	"mazegen-backend/services"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"
)

func main() {
	// .env 파일 로드
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env 파일을 찾을 수 없습니다.")
	}

	// MySQL 연결
	if err := services.InitDatabase(); err != nil {
		log.Fatalf("❌ DB 초기화 실패: %v", err)
	}

	// 로깅 시스템 초기화
	// flushSize: 50 (로그 50개마다 일괄 저장)
	// flushInterval: 10초 (매 10초마다 자동 저장)
	services.InitLogging(50, 10*time.Second)
	defer services.StopLogging() // 종료 시 남은 로그 저장

	// 미로 생성기 초기화
	handlers.InitMazeGenerator()

	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:5173, http://localhost:3000",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	go handlers.Manager.Start()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("미로 생성 서버가 실행 중입니다.")
	})

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "OK",
			"clients": handlers.Manager.GetClientCount(),
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	// 미로 생성/조회 엔드포인트
	api.Post("/mazes/generate", handlers.HandleGenerateMazes)
	api.Get("/mazes", handlers.HandleListMazes)
	api.Get("/mazes/:name", handlers.HandleLoadMaze)

	// 로그 조회 API
	logsAPI := api.Group("/logs")
	logsAPI.Get("/recent", handlers.HandleGetRecentLogs)     // 최근 로그
	logsAPI.Get("/range", handlers.HandleGetLogsByTimeRange) // 시간 범위
	logsAPI.Get("/type", handlers.HandleGetLogsByEventType)  // 이벤트 타입별
	logsAPI.Get("/stats", handlers.HandleGetLogStats)        // 통계

	// WebSocket
	app.Use("/websocket", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/websocket/engine", websocket.New(handlers.HandleEngineWebSocket))
	app.Get("/websocket/web", websocket.New(handlers.HandleWebClientWebSocket))

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Println("🚀 서버 시작: http://localhost:" + port)
	log.Println("📡 WebSocket: ws://localhost:" + port + "/websocket/web")
	log.Println("🧩 미로 생성: POST http://localhost:" + port + "/api/mazes/generate")
	log.Println("💾 로그 API: GET http://localhost:" + port + "/api/logs/*")
	log.Fatal(app.Listen(":" + port))
}
