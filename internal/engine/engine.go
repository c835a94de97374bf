// Package engine implements the per-showtime seat-availability buffer: a
// value-like object over an externally-owned byte slice plus grid
// dimensions. It owns no memory, never resizes, and is not safe for
// concurrent mutation — callers serialize access via the persistence
// layer's transaction and version token.
package engine

import (
	"errors"

	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
)

// ErrOutOfRange is returned when a coordinate falls outside the grid.
var ErrOutOfRange = errors.New("seat coordinate out of range")

// ErrInvalidTransition is returned when a cell is not in the state a
// transition requires.
var ErrInvalidTransition = errors.New("invalid seat state transition")

// ErrCorruptState is returned when a cell byte decodes to a value outside
// SeatAvailable/SeatReserved/SeatSold.
var ErrCorruptState = errors.New("seat buffer contains corrupt state")

// Engine operates over a showtime's seat-availability buffer.
type Engine struct {
	buffer     []byte
	maxRows    int
	maxColumns int
}

// New constructs an engine over buf. buf must already have length
// maxRows*maxColumns; New does not resize or copy it.
func New(buf []byte, maxRows, maxColumns int) *Engine {
	return &Engine{buffer: buf, maxRows: maxRows, maxColumns: maxColumns}
}

func (e *Engine) index(row, col int) (int, bool) {
	if row < 0 || row >= e.maxRows || col < 0 || col >= e.maxColumns {
		return 0, false
	}
	return row*e.maxColumns + col, true
}

// GetStatus returns the decoded seat value at (row, col).
func (e *Engine) GetStatus(row, col int) (entity.SeatStatus, error) {
	idx, ok := e.index(row, col)
	if !ok {
		return 0, ErrOutOfRange
	}
	status := entity.SeatStatus(e.buffer[idx])
	if status != entity.SeatAvailable && status != entity.SeatReserved && status != entity.SeatSold {
		return 0, ErrCorruptState
	}
	return status, nil
}

// TryReserve flips (row, col) from Available to Reserved. It returns
// false, leaving the cell untouched, if the cell is not Available.
func (e *Engine) TryReserve(row, col int) (bool, error) {
	idx, ok := e.index(row, col)
	if !ok {
		return false, ErrOutOfRange
	}
	if entity.SeatStatus(e.buffer[idx]) != entity.SeatAvailable {
		return false, nil
	}
	e.buffer[idx] = byte(entity.SeatReserved)
	return true, nil
}

// TryReserveBatch is a two-phase atomic in-memory reservation over coords.
//
// Phase 1 (verify) scans every coordinate; an out-of-range coordinate
// fails immediately with ErrOutOfRange and no writes performed. If any
// cell is not Available, it returns false with no writes. Duplicate
// coordinates are permitted and idempotent. An empty or nil input
// returns false.
//
// Phase 2 (commit) only runs once every coordinate in phase 1 verified
// Available; it sets each cell to Reserved.
func (e *Engine) TryReserveBatch(coords []entity.Coord) (bool, error) {
	if len(coords) == 0 {
		return false, nil
	}

	indices := make([]int, 0, len(coords))
	for _, c := range coords {
		idx, ok := e.index(c.Row, c.Col)
		if !ok {
			return false, ErrOutOfRange
		}
		if entity.SeatStatus(e.buffer[idx]) != entity.SeatAvailable {
			return false, nil
		}
		indices = append(indices, idx)
	}

	for _, idx := range indices {
		e.buffer[idx] = byte(entity.SeatReserved)
	}
	return true, nil
}

// MarkSold transitions (row, col) from Reserved to Sold.
func (e *Engine) MarkSold(row, col int) error {
	idx, ok := e.index(row, col)
	if !ok {
		return ErrOutOfRange
	}
	if entity.SeatStatus(e.buffer[idx]) != entity.SeatReserved {
		return ErrInvalidTransition
	}
	e.buffer[idx] = byte(entity.SeatSold)
	return nil
}

// Release transitions (row, col) from Reserved to Available.
func (e *Engine) Release(row, col int) error {
	idx, ok := e.index(row, col)
	if !ok {
		return ErrOutOfRange
	}
	if entity.SeatStatus(e.buffer[idx]) != entity.SeatReserved {
		return ErrInvalidTransition
	}
	e.buffer[idx] = byte(entity.SeatAvailable)
	return nil
}

// Buffer returns the underlying byte slice this engine mutates in place.
func (e *Engine) Buffer() []byte {
	return e.buffer
}

// Cells returns every cell in row-major order as {row, col, status}.
func (e *Engine) Cells() []CellState {
	cells := make([]CellState, 0, e.maxRows*e.maxColumns)
	for row := 0; row < e.maxRows; row++ {
		for col := 0; col < e.maxColumns; col++ {
			idx := row*e.maxColumns + col
			cells = append(cells, CellState{Row: row, Col: col, Status: entity.SeatStatus(e.buffer[idx])})
		}
	}
	return cells
}

// CellState is one cell's coordinate and decoded status.
type CellState struct {
	Row    int
	Col    int
	Status entity.SeatStatus
}

// NewBuffer allocates a fresh all-Available buffer of the given dimensions.
func NewBuffer(maxRows, maxColumns int) []byte {
	return make([]byte, maxRows*maxColumns)
}
