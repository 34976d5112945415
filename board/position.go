// Package board implements the simulated playfield: an occupancy
// grid plus the per-column top profile, with move application and
// row-clear resolution. A Position is exclusively owned by one search
// branch; the search clones it freely and siblings never alias.
package board

import (
	"encoding/binary"
	"strings"

	"github.com/cespare/xxhash"

	"github.com/jwlothian/tetron/tetromino"
)

// Position is one simulated board state. The grid is stored flat,
// row-major, with row 0 at the bottom. A zero cell is empty; an
// occupied cell holds the (non-zero) turn number that placed it. The
// tag is opaque to gameplay logic, it only distinguishes filled from
// empty.
type Position struct {
	rows int
	cols int
	grid []int
	// tops[c] is the row index one above the highest occupied cell of
	// column c: the cell at tops[c]-1 is occupied (when tops[c] > 0)
	// and the cell at tops[c] is empty.
	tops        []int
	turn        int
	rowsCleared int
	lost        bool
}

// NewPosition returns an empty rows x cols position.
func NewPosition(rows, cols int) *Position {
	return &Position{
		rows: rows,
		cols: cols,
		grid: make([]int, rows*cols),
		tops: make([]int, cols),
	}
}

// Copy returns a deep copy with fully independent storage.
func (p *Position) Copy() *Position {
	c := &Position{
		rows:        p.rows,
		cols:        p.cols,
		grid:        make([]int, len(p.grid)),
		tops:        make([]int, len(p.tops)),
		turn:        p.turn,
		rowsCleared: p.rowsCleared,
		lost:        p.lost,
	}
	copy(c.grid, p.grid)
	copy(c.tops, p.tops)
	return c
}

// CopyFrom makes p an exact copy of o, reusing p's storage when the
// dimensions match. Used by the search to recycle scratch positions.
func (p *Position) CopyFrom(o *Position) {
	if p.rows != o.rows || p.cols != o.cols {
		p.grid = make([]int, len(o.grid))
		p.tops = make([]int, len(o.tops))
	}
	p.rows = o.rows
	p.cols = o.cols
	copy(p.grid, o.grid)
	copy(p.tops, o.tops)
	p.turn = o.turn
	p.rowsCleared = o.rowsCleared
	p.lost = o.lost
}

func (p *Position) Rows() int        { return p.rows }
func (p *Position) Cols() int        { return p.cols }
func (p *Position) Turn() int        { return p.turn }
func (p *Position) RowsCleared() int { return p.rowsCleared }
func (p *Position) Lost() bool       { return p.lost }

// Cell returns the fill tag at (row, col); zero means empty.
func (p *Position) Cell(row, col int) int {
	return p.grid[row*p.cols+col]
}

// Top returns the top profile entry for col.
func (p *Position) Top(col int) int {
	return p.tops[col]
}

// SetCell writes a fill tag directly, raising the column top if the
// cell extends it. Intended for setting up positions in tests and
// tools; normal play goes through Place.
func (p *Position) SetCell(row, col, tag int) {
	p.grid[row*p.cols+col] = tag
	if tag != 0 && row+1 > p.tops[col] {
		p.tops[col] = row + 1
	}
}

// Place drops piece k in the given orientation with its left edge at
// slot. It returns false if the piece would overflow the board, in
// which case the position is marked lost and occupancy and tops stay
// untouched. Otherwise it fills the piece cells, updates the top
// profile, and resolves any completed rows.
func (p *Position) Place(k tetromino.Kind, orientation, slot int) bool {
	bottom := tetromino.BottomProfile(k, orientation)
	top := tetromino.TopProfile(k, orientation)
	width := tetromino.Width(k, orientation)
	height := tetromino.Height(k, orientation)

	p.turn++

	// Landing height: the first column to make contact decides.
	landing := p.tops[slot] - bottom[0]
	for c := 1; c < width; c++ {
		if h := p.tops[slot+c] - bottom[c]; h > landing {
			landing = h
		}
	}

	if landing+height >= p.rows {
		p.lost = true
		return false
	}

	for c := 0; c < width; c++ {
		for h := landing + bottom[c]; h < landing+top[c]; h++ {
			p.grid[h*p.cols+slot+c] = p.turn
		}
	}
	for c := 0; c < width; c++ {
		p.tops[slot+c] = landing + top[c]
	}

	// Row-clear scan, top of the piece downward. Clears never touch
	// rows below the landing height, so the range is fixed to the
	// piece's original vertical extent.
	for r := landing + height - 1; r >= landing; r-- {
		full := true
		for c := 0; c < p.cols; c++ {
			if p.grid[r*p.cols+c] == 0 {
				full = false
				break
			}
		}
		if !full {
			continue
		}
		p.rowsCleared++
		for c := 0; c < p.cols; c++ {
			// Slide everything above r down one. The top must be read
			// live here: earlier clears in this same placement have
			// already lowered it.
			for i := r; i < p.tops[c]; i++ {
				p.grid[i*p.cols+c] = p.grid[(i+1)*p.cols+c]
			}
			p.tops[c]--
			// Compact the newly exposed top region. Mid-column holes
			// stay where they are.
			for p.tops[c] >= 1 && p.grid[(p.tops[c]-1)*p.cols+c] == 0 {
				p.tops[c]--
			}
		}
	}
	return true
}

// Fingerprint hashes the occupancy pattern, top profile and counters.
// Two positions that play identically hash identically; used by the
// decision log and by tests checking clone independence.
func (p *Position) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [8]byte
	for _, cell := range p.grid {
		occupied := uint64(0)
		if cell != 0 {
			occupied = 1
		}
		binary.LittleEndian.PutUint64(buf[:], occupied)
		h.Write(buf[:])
	}
	for _, t := range p.tops {
		binary.LittleEndian.PutUint64(buf[:], uint64(t))
		h.Write(buf[:])
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(p.rowsCleared))
	h.Write(buf[:])
	if p.lost {
		h.Write([]byte{1})
	}
	return h.Sum64()
}

// String renders the grid top row first, X for occupied cells.
func (p *Position) String() string {
	var sb strings.Builder
	for r := p.rows - 1; r >= 0; r-- {
		for c := 0; c < p.cols; c++ {
			if p.grid[r*p.cols+c] != 0 {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
