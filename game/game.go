// Package game holds the authoritative game loop collaborator: the
// real position, the uniform random piece feed, and move application.
// The search engine only ever sees clones of the position here.
package game

import (
	"encoding/binary"
	"fmt"

	"lukechampine.com/frand"

	"github.com/jwlothian/tetron/board"
	"github.com/jwlothian/tetron/tetromino"
)

// Game is one authoritative game in progress.
type Game struct {
	rules *Rules
	pos   *board.Position
	rng   *frand.RNG
	next  tetromino.Kind
}

// NewGame starts a game with an unpredictable piece sequence.
func NewGame(rules *Rules) *Game {
	g := &Game{
		rules: rules,
		pos:   board.NewPosition(rules.Rows(), rules.Cols()),
		rng:   frand.New(),
	}
	g.next = g.draw()
	return g
}

// NewSeededGame starts a game whose piece sequence is fully
// determined by seed, for reproducible runs.
func NewSeededGame(rules *Rules, seed uint64) *Game {
	var sb [32]byte
	binary.LittleEndian.PutUint64(sb[:], seed)
	g := &Game{
		rules: rules,
		pos:   board.NewPosition(rules.Rows(), rules.Cols()),
		rng:   frand.NewCustom(sb[:], 1024, 12),
	}
	g.next = g.draw()
	return g
}

func (g *Game) draw() tetromino.Kind {
	return tetromino.Kind(g.rng.Intn(tetromino.NumKinds))
}

func (g *Game) Rules() *Rules { return g.rules }

// Position returns the authoritative position. Callers that simulate
// must clone it first.
func (g *Game) Position() *board.Position { return g.pos }

// NextPiece is the currently falling piece.
func (g *Game) NextPiece() tetromino.Kind { return g.next }

// LegalMoves returns the ordered placement list for the falling
// piece. The slice is shared immutable table data.
func (g *Game) LegalMoves() []tetromino.Placement {
	return g.rules.MoveTable().LegalMoves(g.next)
}

// Playing reports whether the game is still going.
func (g *Game) Playing() bool { return !g.pos.Lost() }

// RowsCleared is the cumulative number of cleared rows.
func (g *Game) RowsCleared() int { return g.pos.RowsCleared() }

// Turn is the number of pieces placed so far.
func (g *Game) Turn() int { return g.pos.Turn() }

// MakeMove applies the idx-th legal move of the falling piece to the
// authoritative position and, if the game survives, draws the next
// piece.
func (g *Game) MakeMove(idx int) error {
	moves := g.LegalMoves()
	if idx < 0 || idx >= len(moves) {
		return fmt.Errorf("move index %d out of range (%d legal moves for %s)",
			idx, len(moves), g.next)
	}
	mv := moves[idx]
	if g.pos.Place(g.next, mv.Orientation, mv.Slot) {
		g.next = g.draw()
	}
	return nil
}
