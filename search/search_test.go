package search

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/jwlothian/tetron/board"
	"github.com/jwlothian/tetron/heuristic"
	"github.com/jwlothian/tetron/tetromino"
)

func testTable(t *testing.T) *tetromino.MoveTable {
	t.Helper()
	table, err := tetromino.NewMoveTable(10)
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func TestEmptyMoveListIsRejected(t *testing.T) {
	is := is.New(t)
	engine := NewEngine(heuristic.NewLinearCalculator(heuristic.DefaultWeights), testTable(t))
	pos := board.NewPosition(21, 10)

	_, err := engine.PickMove(pos, tetromino.Square, nil)
	is.Equal(err, ErrNoMoves)
}

func TestTiesKeepEarliestCandidate(t *testing.T) {
	is := is.New(t)
	// All-zero weights value every outcome identically; only the
	// tie-break can decide, and it must keep candidate 0.
	engine := NewEngine(heuristic.NewLinearCalculator(heuristic.Weights{}), testTable(t))
	pos := board.NewPosition(21, 10)

	for k := tetromino.Kind(0); k < tetromino.NumKinds; k++ {
		idx, err := engine.PickMove(pos, k, testTable(t).LegalMoves(k))
		is.NoErr(err)
		is.Equal(idx, 0)
	}
}

func TestPrefersClearingMove(t *testing.T) {
	is := is.New(t)
	// Only line clears score. Row 0 lacks just column 9; the vertical
	// bar at slot 9 is the unique immediately clearing placement.
	engine := NewEngine(heuristic.NewLinearCalculator(heuristic.Weights{Lines: 1}), testTable(t))
	table := testTable(t)

	pos := board.NewPosition(21, 10)
	for c := 0; c < 9; c++ {
		pos.SetCell(0, c, 1)
	}

	idx, err := engine.PickMove(pos, tetromino.Bar, table.LegalMoves(tetromino.Bar))
	is.NoErr(err)
	is.Equal(table.LegalMoves(tetromino.Bar)[idx],
		tetromino.Placement{Orientation: 0, Slot: 9})
}

func TestPickMoveDoesNotMutateInput(t *testing.T) {
	is := is.New(t)
	engine := NewEngine(heuristic.NewLinearCalculator(heuristic.DefaultWeights), testTable(t))

	pos := board.NewPosition(21, 10)
	pos.Place(tetromino.LeftL, 1, 2)
	pos.Place(tetromino.RightS, 0, 5)
	before := pos.Fingerprint()

	_, err := engine.PickMove(pos, tetromino.Tee, testTable(t).LegalMoves(tetromino.Tee))
	is.NoErr(err)
	is.Equal(pos.Fingerprint(), before)
}

func TestParallelMatchesSerial(t *testing.T) {
	is := is.New(t)
	table := testTable(t)
	calc := heuristic.NewLinearCalculator(heuristic.DefaultWeights)

	pos := board.NewPosition(21, 10)
	pos.Place(tetromino.Bar, 1, 0)
	pos.Place(tetromino.Square, 0, 7)
	pos.Place(tetromino.Tee, 2, 4)

	serial := NewEngine(calc, table)
	parallel := NewEngine(calc, table)
	parallel.SetThreads(4)

	for k := tetromino.Kind(0); k < tetromino.NumKinds; k++ {
		moves := table.LegalMoves(k)
		want, err := serial.PickMove(pos, k, moves)
		is.NoErr(err)
		for trial := 0; trial < 3; trial++ {
			got, err := parallel.PickMove(pos, k, moves)
			is.NoErr(err)
			is.Equal(got, want)
		}
	}
}

func TestDeterminism(t *testing.T) {
	is := is.New(t)
	table := testTable(t)
	engine := NewEngine(heuristic.NewLinearCalculator(heuristic.DefaultWeights), table)

	pos := board.NewPosition(21, 10)
	pos.Place(tetromino.LeftS, 0, 3)
	moves := table.LegalMoves(tetromino.RightL)

	first, err := engine.PickMove(pos, tetromino.RightL, moves)
	is.NoErr(err)
	for i := 0; i < 5; i++ {
		again, err := engine.PickMove(pos, tetromino.RightL, moves)
		is.NoErr(err)
		is.Equal(again, first)
	}
}

func TestDecisionLogStream(t *testing.T) {
	is := is.New(t)
	table := testTable(t)
	engine := NewEngine(heuristic.NewLinearCalculator(heuristic.DefaultWeights), table)

	var buf bytes.Buffer
	engine.SetLogStream(&buf)

	pos := board.NewPosition(21, 10)
	_, err := engine.PickMove(pos, tetromino.Square, table.LegalMoves(tetromino.Square))
	is.NoErr(err)

	out := buf.String()
	is.True(strings.Contains(out, "piece: O"))
	is.True(strings.Contains(out, "chosen:"))
}
