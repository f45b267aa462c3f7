package models

import (
	"time"
)

// 이벤트 타입 상수
const (
	EventMazeGenerated      = "maze_generated"      // 미로 생성 완료
	EventPlacementExhausted = "placement_exhausted" // 벽 배치 시도 횟수 초과
	EventMazeLoaded         = "maze_loaded"         // 미로 파일 로드
	EventRobotPlaced        = "robot_placed"        // 로봇 배치
)

// MazeLog - 미로 생성/로드 이벤트 로그
type MazeLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	EventType string    `json:"event_type"` // "maze_generated", "placement_exhausted", ...

	// 대상 식별자
	BatchID  string `json:"batch_id"`  // 배치 실행 ID
	MazeID   string `json:"maze_id"`   // 미로 ID
	MazeFile string `json:"maze_file"` // 저장/로드된 파일 이름

	// 생성 정보
	WallsRequested int `json:"walls_requested"` // 요청된 랜덤 벽 개수
	WallsPlaced    int `json:"walls_placed"`    // 실제 배치된 벽 개수
	Attempts       int `json:"attempts"`        // 배치 시도 횟수
	ObstacleCount  int `json:"obstacle_count"`  // 전체 장애물 개수

	// 로봇 정보
	RobotModel string  `json:"robot_model"`
	PositionX  float64 `json:"position_x"`
	PositionY  float64 `json:"position_y"`

	// 메타데이터
	DataJSON string `json:"data_json"` // 원본 데이터 JSON
}
