package models

// ========================================
// 로봇(에이전트) 배치 정보
// ========================================

// RobotPlacement - 로드된 미로에 배치되는 로봇 정보
// 미로 자체와는 독립적이며, 저장 시 명시적으로 넘겨줄 때만 파일에 포함된다.
type RobotPlacement struct {
	Position   []float64 `json:"position"`   // [x, y, z]
	Model      string    `json:"model"`      // 임베디먼트 모델 이름 (예: "panda")
	Quaternion []float64 `json:"quaternion"` // [w, x, y, z]
}
