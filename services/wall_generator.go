package services

import (
	"log"
	"math/rand"
	"mazegen-backend/algorithms"
	"mazegen-backend/models"
)

// 벽 하나당 최대 배치 시도 횟수
const maxPlacementAttempts = 100

// GenerateRandomWalls fills the maze interior with up to numWalls
// non-overlapping wall segments and returns the accepted footprints.
// A wall that cannot find a collision-free footprint within the attempt cap
// is reported and skipped; generation itself never aborts, so the number of
// placed walls may be smaller than requested.
func GenerateRandomWalls(m *Maze, numWalls int, rng *rand.Rand) ([]algorithms.Rect, error) {
	existing := make([]algorithms.Rect, 0, numWalls)

	// 시작 좌표 샘플링 범위 (벽 길이만큼 안쪽으로)
	lo := -m.MazeSize/2 + m.WallLength
	hi := m.MazeSize/2 - m.WallLength

	for n := 0; n < numWalls; n++ {
		attempts := 0

		for attempts < maxPlacementAttempts {
			if lo > hi {
				// 미로가 너무 작아서 시작 좌표를 잡을 공간이 없음
				attempts++
				continue
			}

			x := lo + rng.Float64()*(hi-lo)
			y := lo + rng.Float64()*(hi-lo)

			direction := models.DirectionHorizontal
			if rng.Intn(2) == 1 {
				direction = models.DirectionVertical
			}
			length := 1 + rng.Intn(3) // 1~3 셀

			// horizontal footprints use the wall height as their thickness
			var footprint algorithms.Rect
			if direction == models.DirectionHorizontal {
				footprint = algorithms.Rect{X1: x, Y1: y, X2: x + float64(length)*m.WallLength, Y2: y + m.WallHeight}
			} else {
				footprint = algorithms.Rect{X1: x, Y1: y, X2: x + m.WallLength, Y2: y + float64(length)*m.WallLength}
			}

			if !algorithms.OverlapsAny(footprint, existing) {
				if err := m.AddCustomWall([]float64{x, y}, direction, length); err != nil {
					return existing, err
				}
				existing = append(existing, footprint)
				break
			}
			attempts++
		}

		if attempts == maxPlacementAttempts {
			log.Printf("⚠️ %d회 시도 후에도 벽을 배치하지 못했습니다", maxPlacementAttempts)
			LogPlacementExhausted(m.ID, maxPlacementAttempts)
		}
	}

	return existing, nil
}
