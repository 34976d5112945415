// Package tetromino holds the static rule data for the seven piece
// kinds: orientation counts, per-orientation dimensions, the
// per-column bottom and top profiles that the board simulator drops
// pieces against, and the enumerated placement table derived from
// them. All of it is immutable and shared; nothing in here depends on
// board occupancy.
package tetromino

import "fmt"

// Kind is one of the seven piece shapes.
type Kind int

const (
	Square Kind = iota
	Bar         // the 1x4 "I" piece
	LeftL
	RightL
	Tee
	LeftS
	RightS
)

// NumKinds is the number of piece kinds.
const NumKinds = 7

func (k Kind) String() string {
	switch k {
	case Square:
		return "O"
	case Bar:
		return "I"
	case LeftL:
		return "L"
	case RightL:
		return "J"
	case Tee:
		return "T"
	case LeftS:
		return "S"
	case RightS:
		return "Z"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// The reference piece vocabulary. Indexed by [kind][orientation] and,
// for the profiles, [kind][orientation][piece column]. These numbers
// define the legality rules of the game and must not be edited.
var (
	orientCounts = [NumKinds]int{1, 2, 4, 4, 4, 2, 2}

	widths = [NumKinds][]int{
		{2},
		{1, 4},
		{2, 3, 2, 3},
		{2, 3, 2, 3},
		{2, 3, 2, 3},
		{3, 2},
		{3, 2},
	}

	heights = [NumKinds][]int{
		{2},
		{4, 1},
		{3, 2, 3, 2},
		{3, 2, 3, 2},
		{3, 2, 3, 2},
		{2, 3},
		{2, 3},
	}

	// bottoms[k][o][c] is the offset of the lowest filled cell of
	// piece column c above the landing row.
	bottoms = [NumKinds][][]int{
		{{0, 0}},
		{{0}, {0, 0, 0, 0}},
		{{0, 0}, {0, 1, 1}, {2, 0}, {0, 0, 0}},
		{{0, 0}, {0, 0, 0}, {0, 2}, {1, 1, 0}},
		{{0, 1}, {1, 0, 1}, {1, 0}, {0, 0, 0}},
		{{0, 0, 1}, {1, 0}},
		{{1, 0, 0}, {0, 1}},
	}

	// tops[k][o][c] is the offset one above the highest filled cell of
	// piece column c.
	tops = [NumKinds][][]int{
		{{2, 2}},
		{{4}, {1, 1, 1, 1}},
		{{3, 1}, {2, 2, 2}, {3, 3}, {1, 1, 2}},
		{{1, 3}, {2, 1, 1}, {3, 3}, {2, 2, 2}},
		{{3, 2}, {2, 2, 2}, {2, 3}, {1, 2, 1}},
		{{1, 2, 2}, {3, 2}},
		{{2, 2, 1}, {2, 3}},
	}
)

// OrientationCount returns the number of distinct rotations of k.
func OrientationCount(k Kind) int {
	return orientCounts[k]
}

// Width returns the number of board columns k spans in the given
// orientation.
func Width(k Kind, orientation int) int {
	return widths[k][orientation]
}

// Height returns the number of board rows k spans in the given
// orientation.
func Height(k Kind, orientation int) int {
	return heights[k][orientation]
}

// BottomProfile returns the per-column bottom offsets of (k,
// orientation). The returned slice is shared read-only data.
func BottomProfile(k Kind, orientation int) []int {
	return bottoms[k][orientation]
}

// TopProfile returns the per-column top offsets of (k, orientation).
// The returned slice is shared read-only data.
func TopProfile(k Kind, orientation int) []int {
	return tops[k][orientation]
}
