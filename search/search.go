// Package search implements the two-ply lookahead that ranks the
// candidate placements of the falling piece. For each candidate it
// clones the authoritative position and applies the move; survivors
// are expanded one more ply over all seven piece kinds, assuming best
// single-ply play for each, averaged uniformly.
package search

import (
	"errors"
	"io"
	"math"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/jwlothian/tetron/board"
	"github.com/jwlothian/tetron/heuristic"
	"github.com/jwlothian/tetron/tetromino"
)

// ErrNoMoves is returned when a decision is requested with an empty
// legal-move list. That is a caller contract violation, never a
// normal game outcome; overflowing placements are modeled as lost
// positions instead.
var ErrNoMoves = errors.New("search: empty legal move list")

// LogDecision is one decision record for the optional log stream.
type LogDecision struct {
	Turn        int       `json:"turn" yaml:"turn"`
	Piece       string    `json:"piece" yaml:"piece"`
	Fingerprint uint64    `json:"fingerprint" yaml:"fingerprint"`
	Values      []float64 `json:"values" yaml:"values,flow"`
	Chosen      int       `json:"chosen" yaml:"chosen"`
}

// Engine ranks placements. It is safe for repeated use; one decision
// completes before the next begins. The calculator and move table are
// immutable, so branches share them without locks; every mutable
// position is branch-local.
type Engine struct {
	calc      heuristic.Calculator
	table     *tetromino.MoveTable
	threads   int
	logStream io.Writer

	scratch sync.Pool
}

// NewEngine returns a single-threaded engine. Use SetThreads to
// spread the outer ply over workers; picks are identical either way.
func NewEngine(calc heuristic.Calculator, table *tetromino.MoveTable) *Engine {
	return &Engine{calc: calc, table: table, threads: 1}
}

// SetThreads sets the number of workers for the outer ply.
func (e *Engine) SetThreads(n int) {
	if n < 1 {
		n = 1
	}
	e.threads = n
}

// SetLogStream directs per-decision yaml records to w.
func (e *Engine) SetLogStream(w io.Writer) {
	e.logStream = w
}

// PickMove returns the index of the best placement in moves for the
// falling piece, judged two plies deep from pos. The position itself
// is never mutated. Ties keep the earliest-examined candidate, and
// the first candidate is the initial default regardless of its value.
func (e *Engine) PickMove(pos *board.Position, piece tetromino.Kind, moves []tetromino.Placement) (int, error) {
	if len(moves) == 0 {
		return 0, ErrNoMoves
	}

	values := make([]float64, len(moves))
	if e.threads == 1 || len(moves) == 1 {
		for i, mv := range moves {
			values[i] = e.valueOf(pos, piece, mv)
		}
	} else {
		// Candidates are independent: each works on its own clone, so
		// the only coordination needed is the join. Values are written
		// by index and reduced sequentially below to keep tie-breaking
		// identical to the serial path.
		var g errgroup.Group
		for t := 0; t < e.threads; t++ {
			start := t
			g.Go(func() error {
				for i := start; i < len(moves); i += e.threads {
					values[i] = e.valueOf(pos, piece, moves[i])
				}
				return nil
			})
		}
		g.Wait()
	}

	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}

	if e.logStream != nil {
		e.logDecision(pos, piece, values, best)
	}
	return best, nil
}

// valueOf scores one candidate placement. A lost child is scored
// directly; a surviving child is worth the expected best reply over a
// uniform next-piece distribution.
func (e *Engine) valueOf(parent *board.Position, piece tetromino.Kind, mv tetromino.Placement) float64 {
	child := e.getScratch(parent)
	defer e.putScratch(child)

	child.Place(piece, mv.Orientation, mv.Slot)
	if child.Lost() {
		return e.calc.Utility(child)
	}
	return e.expectedBestReply(child)
}

// expectedBestReply expands one ply: for each piece kind, the maximum
// utility over that kind's full placement list, averaged across the
// kinds. The move table is occupancy-independent, so every kind has
// at least one placement to try even on a nearly full board; the ones
// that overflow score as lost states and carry the loss penalty.
func (e *Engine) expectedBestReply(pos *board.Position) float64 {
	grand := e.getScratch(pos)
	defer e.putScratch(grand)

	total := 0.0
	for k := tetromino.Kind(0); k < tetromino.NumKinds; k++ {
		best := math.Inf(-1)
		for _, mv := range e.table.LegalMoves(k) {
			grand.CopyFrom(pos)
			grand.Place(k, mv.Orientation, mv.Slot)
			if u := e.calc.Utility(grand); u > best {
				best = u
			}
		}
		total += best
	}
	return total / tetromino.NumKinds
}

func (e *Engine) getScratch(src *board.Position) *board.Position {
	if v := e.scratch.Get(); v != nil {
		p := v.(*board.Position)
		p.CopyFrom(src)
		return p
	}
	return src.Copy()
}

func (e *Engine) putScratch(p *board.Position) {
	e.scratch.Put(p)
}

func (e *Engine) logDecision(pos *board.Position, piece tetromino.Kind, values []float64, best int) {
	rec := LogDecision{
		Turn:        pos.Turn(),
		Piece:       piece.String(),
		Fingerprint: pos.Fingerprint(),
		Values:      values,
		Chosen:      best,
	}
	out, err := yaml.Marshal([]LogDecision{rec})
	if err != nil {
		log.Err(err).Msg("marshalling-decision-log")
		return
	}
	e.logStream.Write(out)
}
