package tetromino

import (
	"testing"

	"github.com/matryer/is"
)

func TestOrientationCounts(t *testing.T) {
	is := is.New(t)
	counts := []int{1, 2, 4, 4, 4, 2, 2}
	for k := Kind(0); k < NumKinds; k++ {
		is.Equal(OrientationCount(k), counts[k])
	}
}

func TestProfilesAreConsistent(t *testing.T) {
	is := is.New(t)
	for k := Kind(0); k < NumKinds; k++ {
		for o := 0; o < OrientationCount(k); o++ {
			bottom := BottomProfile(k, o)
			top := TopProfile(k, o)
			is.Equal(len(bottom), Width(k, o))
			is.Equal(len(top), Width(k, o))
			maxTop := 0
			for c := 0; c < Width(k, o); c++ {
				// Every piece column has at least one filled cell.
				is.True(top[c] > bottom[c])
				if top[c] > maxTop {
					maxTop = top[c]
				}
			}
			is.Equal(maxTop, Height(k, o))
		}
	}
}

func TestBarProfiles(t *testing.T) {
	is := is.New(t)
	is.Equal(Width(Bar, 0), 1)
	is.Equal(Height(Bar, 0), 4)
	is.Equal(BottomProfile(Bar, 0), []int{0})
	is.Equal(TopProfile(Bar, 0), []int{4})
	is.Equal(Width(Bar, 1), 4)
	is.Equal(Height(Bar, 1), 1)
	is.Equal(TopProfile(Bar, 1), []int{1, 1, 1, 1})
}

func TestMoveTableCounts(t *testing.T) {
	is := is.New(t)
	table, err := NewMoveTable(10)
	is.NoErr(err)

	counts := map[Kind]int{
		Square: 9,
		Bar:    17, // 10 vertical + 7 horizontal
		LeftL:  34,
		RightL: 34,
		Tee:    34,
		LeftS:  17,
		RightS: 17,
	}
	for k, want := range counts {
		is.Equal(len(table.LegalMoves(k)), want)
	}
}

func TestMoveTableOrder(t *testing.T) {
	is := is.New(t)
	table, err := NewMoveTable(10)
	is.NoErr(err)

	// Orientation-major, then slot: the bar's vertical placements come
	// first, then the horizontal ones.
	moves := table.LegalMoves(Bar)
	is.Equal(moves[0], Placement{Orientation: 0, Slot: 0})
	is.Equal(moves[9], Placement{Orientation: 0, Slot: 9})
	is.Equal(moves[10], Placement{Orientation: 1, Slot: 0})
	is.Equal(moves[16], Placement{Orientation: 1, Slot: 6})

	for k := Kind(0); k < NumKinds; k++ {
		for _, mv := range table.LegalMoves(k) {
			is.True(mv.Slot >= 0)
			is.True(mv.Slot+Width(k, mv.Orientation) <= 10)
		}
	}
}

func TestMoveTableTooNarrow(t *testing.T) {
	is := is.New(t)
	_, err := NewMoveTable(3)
	is.True(err != nil)
}
