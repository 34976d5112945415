package game

import (
	"fmt"

	"github.com/jwlothian/tetron/tetromino"
)

// Reference board dimensions. The engine never assumes these beyond
// the defaults here; everything takes its dimensions from a Rules
// value.
const (
	DefaultRows = 21
	DefaultCols = 10
)

// Rules encapsulates the board dimensions and the piece vocabulary
// shared by a game and every simulation branched from it, including
// the one-time legal-move enumeration.
type Rules struct {
	rows  int
	cols  int
	table *tetromino.MoveTable
}

// NewBasicRules returns the reference 21x10 rule set.
func NewBasicRules() *Rules {
	r, err := NewRules(DefaultRows, DefaultCols)
	if err != nil {
		// The reference dimensions always validate.
		panic(err)
	}
	return r
}

// NewRules builds a rule set for a custom board size.
func NewRules(rows, cols int) (*Rules, error) {
	if rows < 4 {
		return nil, fmt.Errorf("board height %d is too short for the piece set", rows)
	}
	table, err := tetromino.NewMoveTable(cols)
	if err != nil {
		return nil, err
	}
	return &Rules{rows: rows, cols: cols, table: table}, nil
}

func (r *Rules) Rows() int { return r.rows }
func (r *Rules) Cols() int { return r.cols }

func (r *Rules) NumPieceKinds() int { return tetromino.NumKinds }

// MoveTable returns the shared legal-move enumeration.
func (r *Rules) MoveTable() *tetromino.MoveTable { return r.table }
