package eval

import "math"

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segments splits sampled points into contiguous runs of finite values
// inside the [minY, maxY] window. A NaN, infinite, or out-of-window sample
// ends the current run, so a plotting consumer draws a visible break instead
// of a vertical jump across a discontinuity.
func Segments(xs, ys []float64, minY, maxY float64) [][]Point {
	var segments [][]Point
	var segment []Point
	for i := range xs {
		if i >= len(ys) {
			break
		}
		y := ys[i]
		if math.IsNaN(y) || math.IsInf(y, 0) || y < minY || y > maxY {
			if len(segment) > 0 {
				segments = append(segments, segment)
				segment = nil
			}
			continue
		}
		segment = append(segment, Point{X: xs[i], Y: y})
	}
	if len(segment) > 0 {
		segments = append(segments, segment)
	}
	return segments
}

// Linspace returns n evenly spaced samples across [min, max].
func Linspace(min, max float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{min}
	}
	step := (max - min) / float64(n-1)
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = min + float64(i)*step
	}
	return xs
}
