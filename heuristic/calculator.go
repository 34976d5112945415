package heuristic

import (
	"fmt"

	"github.com/jwlothian/tetron/board"
)

// NumWeights is the length of a weight vector.
const NumWeights = 7

// lostValue is the raw feature value of a lost position, scaled by
// the Lost weight at evaluation time.
const lostValue = -10

// Weights are the non-negative magnitudes of the seven feature terms.
// Sign conventions live in the utility formula, not here: a feature
// that is bad when large gets its minus sign at evaluation time.
type Weights struct {
	Holes           float64
	Lines           float64
	HeightVariation float64
	Lost            float64
	MaxHeight       float64
	PitDepth        float64
	MeanHeightDiff  float64
}

// DefaultWeights is a trained reference vector (the best chromosome
// of a genetic search over full-game fitness).
var DefaultWeights = Weights{
	Holes:           1.7851855342334024,
	Lines:           1.4138726176225629,
	HeightVariation: 0.3567297944529728,
	Lost:            0.6249287636118577,
	MaxHeight:       0.051962392158941606,
	PitDepth:        0.52385888919136,
	MeanHeightDiff:  0.12090744319379954,
}

// WeightsFromSlice builds Weights from the ordered 7-element form
// [holes, lines, heightVariation, lost, maxHeight, pitDepth,
// meanHeightDiff] used by configuration and by weight tuners.
func WeightsFromSlice(ws []float64) (Weights, error) {
	if len(ws) != NumWeights {
		return Weights{}, fmt.Errorf("weight vector has %d elements, want %d", len(ws), NumWeights)
	}
	return Weights{
		Holes:           ws[0],
		Lines:           ws[1],
		HeightVariation: ws[2],
		Lost:            ws[3],
		MaxHeight:       ws[4],
		PitDepth:        ws[5],
		MeanHeightDiff:  ws[6],
	}, nil
}

// Slice returns the ordered 7-element form of w.
func (w Weights) Slice() []float64 {
	return []float64{
		w.Holes, w.Lines, w.HeightVariation, w.Lost,
		w.MaxHeight, w.PitDepth, w.MeanHeightDiff,
	}
}

// Calculator is a calculator of position utility.
type Calculator interface {
	Utility(pos *board.Position) float64
}

// LinearCalculator scores a position as the weighted linear
// combination of its features. It is immutable after construction and
// safe to share across search branches.
type LinearCalculator struct {
	weights Weights
}

func NewLinearCalculator(w Weights) *LinearCalculator {
	return &LinearCalculator{weights: w}
}

func (lc *LinearCalculator) Weights() Weights {
	return lc.weights
}

// Utility applies the heuristic. The cumulative rows-cleared count is
// used as-is rather than as a delta: the ancestor's offset is common
// to every sibling in a search, so rankings are unaffected.
func (lc *LinearCalculator) Utility(pos *board.Position) float64 {
	lost := 0.0
	if pos.Lost() {
		lost = lostValue
	}
	return -float64(HoleCount(pos))*lc.weights.Holes +
		float64(pos.RowsCleared())*lc.weights.Lines -
		float64(HeightVariation(pos))*lc.weights.HeightVariation +
		lost*lc.weights.Lost -
		float64(MaxHeight(pos))*lc.weights.MaxHeight -
		float64(PitDepth(pos))*lc.weights.PitDepth -
		MeanHeightDiff(pos)*lc.weights.MeanHeightDiff
}
