package algorithms

// Rect - 축 정렬 사각형 footprint: (X1,Y1) 좌하단 ~ (X2,Y2) 우상단
type Rect struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Overlaps reports whether the interiors of two rectangles intersect.
// Strict AABB test: rectangles that only share an edge do not collide.
func Overlaps(a, b Rect) bool {
	return a.X1 < b.X2 && a.X2 > b.X1 && a.Y1 < b.Y2 && a.Y2 > b.Y1
}

// OverlapsAny reports whether r collides with any rectangle in existing.
func OverlapsAny(r Rect, existing []Rect) bool {
	for _, w := range existing {
		if Overlaps(r, w) {
			return true
		}
	}
	return false
}
