// Package player exposes the playing agent: a fixed weight vector
// bound at construction, move selection for the falling piece, and
// the run-to-completion entry point that weight tuners use as their
// fitness function.
package player

import (
	"io"

	"github.com/rs/zerolog/log"

	"github.com/jwlothian/tetron/board"
	"github.com/jwlothian/tetron/game"
	"github.com/jwlothian/tetron/heuristic"
	"github.com/jwlothian/tetron/search"
	"github.com/jwlothian/tetron/tetromino"
)

// Agent selects moves with a two-ply search over a fixed heuristic.
// The weights are immutable after construction; nothing here is
// shared mutable state, so one agent may be reused for any number of
// sequential games.
type Agent struct {
	weights heuristic.Weights
	engine  *search.Engine
}

// NewAgent binds a weight vector to a rule set.
func NewAgent(w heuristic.Weights, rules *game.Rules) *Agent {
	calc := heuristic.NewLinearCalculator(w)
	return &Agent{
		weights: w,
		engine:  search.NewEngine(calc, rules.MoveTable()),
	}
}

func (a *Agent) Weights() heuristic.Weights { return a.weights }

// SetThreads spreads each decision's outer ply over n workers.
func (a *Agent) SetThreads(n int) { a.engine.SetThreads(n) }

// SetLogStream directs per-decision records to w.
func (a *Agent) SetLogStream(w io.Writer) { a.engine.SetLogStream(w) }

// PickMove returns an index into moves for the given falling piece.
func (a *Agent) PickMove(pos *board.Position, piece tetromino.Kind, moves []tetromino.Placement) (int, error) {
	return a.engine.PickMove(pos, piece, moves)
}

// Play selects and applies one move on g.
func (a *Agent) Play(g *game.Game) error {
	idx, err := a.engine.PickMove(g.Position(), g.NextPiece(), g.LegalMoves())
	if err != nil {
		return err
	}
	return g.MakeMove(idx)
}

// Run plays g to completion and returns the cumulative rows cleared,
// the fitness value a weight tuner scores this agent's weights by.
func (a *Agent) Run(g *game.Game) (int, error) {
	for g.Playing() {
		if err := a.Play(g); err != nil {
			return 0, err
		}
	}
	log.Debug().Int("turns", g.Turn()).Int("rows", g.RowsCleared()).Msg("game-over")
	return g.RowsCleared(), nil
}
