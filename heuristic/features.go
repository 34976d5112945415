// Package heuristic computes scalar features of a board position and
// combines them into a single utility score with a configured weight
// vector.
package heuristic

// All features are pure functions of the position; none of them
// mutate anything.

import "github.com/jwlothian/tetron/board"

// HoleCount is the number of empty cells strictly below each column's
// top, excluding the row directly under the top.
func HoleCount(pos *board.Position) int {
	holes := 0
	for c := 0; c < pos.Cols(); c++ {
		for r := 0; r < pos.Top(c)-1; r++ {
			if pos.Cell(r, c) == 0 {
				holes++
			}
		}
	}
	return holes
}

// MaxHeight is the tallest column's top.
func MaxHeight(pos *board.Position) int {
	max := 0
	for c := 0; c < pos.Cols(); c++ {
		if t := pos.Top(c); t > max {
			max = t
		}
	}
	return max
}

// HeightVariation sums the absolute height differences of adjacent
// column pairs.
func HeightVariation(pos *board.Position) int {
	sum := 0
	for c := 0; c < pos.Cols()-1; c++ {
		d := pos.Top(c) - pos.Top(c+1)
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}

// PitDepth sums the depths of pits: columns at least 3 rows lower
// than their neighbors. The first column is measured against its
// right neighbor only and the last against its left neighbor only,
// while interior columns take the minimum of both differences. The
// boundary treatment is deliberately asymmetric; trained weight
// vectors depend on this exact formula, so do not "fix" it.
func PitDepth(pos *board.Position) int {
	cols := pos.Cols()
	sum := 0

	if d := pos.Top(1) - pos.Top(0); d > 2 {
		sum += d
	}
	for c := 0; c < cols-2; c++ {
		left := pos.Top(c) - pos.Top(c+1)
		right := pos.Top(c+2) - pos.Top(c+1)
		if d := min(left, right); d > 2 {
			sum += d
		}
	}
	if d := pos.Top(cols-2) - pos.Top(cols-1); d > 2 {
		sum += d
	}
	return sum
}

// MeanHeightDiff is the mean absolute deviation of the column tops
// from their arithmetic mean.
func MeanHeightDiff(pos *board.Position) float64 {
	cols := pos.Cols()
	sum := 0
	for c := 0; c < cols; c++ {
		sum += pos.Top(c)
	}
	mean := float64(sum) / float64(cols)

	diff := 0.0
	for c := 0; c < cols; c++ {
		d := mean - float64(pos.Top(c))
		if d < 0 {
			d = -d
		}
		diff += d
	}
	return diff / float64(cols)
}
