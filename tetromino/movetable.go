package tetromino

import "fmt"

// Placement is a single legal move for a piece kind: a rotation and
// the leftmost board column the piece occupies.
type Placement struct {
	Orientation int
	Slot        int
}

func (p Placement) String() string {
	return fmt.Sprintf("o%d@%d", p.Orientation, p.Slot)
}

// MoveTable is the full placement enumeration for a board width:
// for every kind, every (orientation, slot) with slot ranging over
// 0 .. cols-width inclusive, in orientation-major order. The table is
// independent of board occupancy, so a kind always has the same move
// list no matter how full the board is; placements that would
// overflow simply come back from the simulator as lost states.
//
// Build it once at startup and share it; it is read-only afterwards.
type MoveTable struct {
	cols  int
	moves [NumKinds][]Placement
}

// NewMoveTable enumerates the placement lists for a board with the
// given number of columns.
func NewMoveTable(cols int) (*MoveTable, error) {
	if cols < 4 {
		// The horizontal bar needs four columns.
		return nil, fmt.Errorf("board width %d is too narrow for the piece set", cols)
	}
	t := &MoveTable{cols: cols}
	for k := Kind(0); k < NumKinds; k++ {
		n := 0
		for o := 0; o < OrientationCount(k); o++ {
			n += cols + 1 - Width(k, o)
		}
		list := make([]Placement, 0, n)
		for o := 0; o < OrientationCount(k); o++ {
			for slot := 0; slot <= cols-Width(k, o); slot++ {
				list = append(list, Placement{Orientation: o, Slot: slot})
			}
		}
		t.moves[k] = list
	}
	return t, nil
}

// Cols returns the board width the table was built for.
func (t *MoveTable) Cols() int {
	return t.cols
}

// LegalMoves returns the placement list for k. The slice is shared;
// callers must not modify it.
func (t *MoveTable) LegalMoves(k Kind) []Placement {
	return t.moves[k]
}
