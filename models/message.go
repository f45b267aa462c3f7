package models

import "time"

// ========================================
// 메시지 타입 상수
// ========================================
const (
	// Server → Engine + Web
	MessageTypeMazeUpdate  = "maze_update"  // 미로(씬) 업데이트
	MessageTypeRobotUpdate = "robot_update" // 로봇 배치 업데이트

	// Server → Web
	MessageTypeGenerationProgress = "generation_progress" // 배치 생성 진행 상황
	MessageTypeSystemInfo         = "system_info"         // 시스템 정보
)

// ========================================
// 공통 WebSocket 메시지 형식
// ========================================
type WebSocketMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp int64       `json:"timestamp"` // Unix timestamp (ms)
}

// ========================================
// 미로 업데이트 데이터
// ========================================
type MazeUpdateData struct {
	MazeID        string          `json:"maze_id"`
	File          string          `json:"file,omitempty"`
	Size          int             `json:"size"`
	MazeSize      float64         `json:"maze_size"`
	ObstacleCount int             `json:"obstacle_count"`
	Obstacles     []*Obstacle     `json:"obstacles"`
	Robot         *RobotPlacement `json:"robot,omitempty"`
}

// ========================================
// 배치 생성 진행 데이터
// ========================================
type GenerationProgressData struct {
	BatchID        string `json:"batch_id"`
	MazeIndex      int    `json:"maze_index"`
	TotalMazes     int    `json:"total_mazes"`
	WallsRequested int    `json:"walls_requested"`
	WallsPlaced    int    `json:"walls_placed"`
	File           string `json:"file"`
}

// ========================================
// 시스템 정보
// ========================================
type SystemInfo struct {
	ConnectedClients int       `json:"connected_clients"` // 연결된 클라이언트 수
	ServerTime       time.Time `json:"server_time"`       // 서버 시각
}
