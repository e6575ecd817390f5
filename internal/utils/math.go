package utils

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Point is a position in screen space.
type Point struct{ X, Y float64 }

// SegmentPoints returns points along the segment from (x0,y0) to (x1,y1),
// excluding the start and including the end, no more than step apart.
// A non-positive step or a zero-length segment yields just the end point.
func SegmentPoints(x0, y0, x1, y1, step float64) []Point {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if step <= 0 || length <= step {
		return []Point{{x1, y1}}
	}
	n := int(math.Ceil(length / step))
	points := make([]Point, 0, n)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		points = append(points, Point{x0 + dx*t, y0 + dy*t})
	}
	return points
}
