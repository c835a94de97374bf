package engine

import (
	"testing"

	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
)

func TestTryReserveBatchHappyPath(t *testing.T) {
	buf := NewBuffer(10, 10)
	e := New(buf, 10, 10)

	ok, err := e.TryReserveBatch([]entity.Coord{{Row: 0, Col: 0}, {Row: 5, Col: 5}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected batch reservation to succeed")
	}

	for _, c := range []entity.Coord{{Row: 0, Col: 0}, {Row: 5, Col: 5}} {
		status, err := e.GetStatus(c.Row, c.Col)
		if err != nil {
			t.Fatalf("unexpected error reading status: %v", err)
		}
		if status != entity.SeatReserved {
			t.Fatalf("expected %v to be Reserved, got %v", c, status)
		}
	}
	if len(buf) != 100 {
		t.Fatalf("expected buffer length 100, got %d", len(buf))
	}
}

func TestTryReserveBatchConflict(t *testing.T) {
	buf := NewBuffer(10, 10)
	buf[0] = byte(entity.SeatSold)
	e := New(buf, 10, 10)

	ok, err := e.TryReserveBatch([]entity.Coord{{Row: 0, Col: 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected conflict to fail the batch")
	}
	if entity.SeatStatus(buf[0]) != entity.SeatSold {
		t.Fatalf("expected cell to remain unchanged")
	}
}

func TestTryReserveBatchOutOfBoundsDoesNotMutate(t *testing.T) {
	buf := NewBuffer(10, 10)
	e := New(buf, 10, 10)

	ok, err := e.TryReserveBatch([]entity.Coord{{Row: 0, Col: 0}, {Row: 99, Col: 99}})
	if err != ErrOutOfRange {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if ok {
		t.Fatalf("expected failure on out-of-range coordinate")
	}
	if entity.SeatStatus(buf[0]) != entity.SeatAvailable {
		t.Fatalf("expected no partial writes before the out-of-range failure")
	}
}

func TestTryReserveBatchDuplicateCoordinatesAreIdempotent(t *testing.T) {
	bufA := NewBuffer(10, 10)
	bufB := NewBuffer(10, 10)
	eA := New(bufA, 10, 10)
	eB := New(bufB, 10, 10)

	okA, errA := eA.TryReserveBatch([]entity.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 1}})
	okB, errB := eB.TryReserveBatch([]entity.Coord{{Row: 1, Col: 1}})

	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v %v", errA, errB)
	}
	if okA != okB {
		t.Fatalf("expected duplicated and deduplicated input to agree on success")
	}
	for i := range bufA {
		if bufA[i] != bufB[i] {
			t.Fatalf("expected identical final buffer state at index %d", i)
		}
	}
}

func TestTryReserveBatchEmptyInput(t *testing.T) {
	buf := NewBuffer(5, 5)
	e := New(buf, 5, 5)

	ok, err := e.TryReserveBatch(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected empty input to return false")
	}
}

func TestMarkSoldRequiresReserved(t *testing.T) {
	buf := NewBuffer(5, 5)
	e := New(buf, 5, 5)

	if err := e.MarkSold(0, 0); err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition marking an Available seat sold, got %v", err)
	}

	if _, err := e.TryReserve(0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.MarkSold(0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	status, _ := e.GetStatus(0, 0)
	if status != entity.SeatSold {
		t.Fatalf("expected Sold, got %v", status)
	}
}

func TestReleaseRequiresReserved(t *testing.T) {
	buf := NewBuffer(5, 5)
	e := New(buf, 5, 5)

	if err := e.Release(0, 0); err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition releasing an Available seat, got %v", err)
	}

	if _, err := e.TryReserve(2, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.Release(2, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	status, _ := e.GetStatus(2, 2)
	if status != entity.SeatAvailable {
		t.Fatalf("expected Available after release, got %v", status)
	}
}

func TestCellsRowMajorOrder(t *testing.T) {
	buf := NewBuffer(2, 2)
	e := New(buf, 2, 2)
	cells := e.Cells()
	want := []entity.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}
	if len(cells) != len(want) {
		t.Fatalf("expected %d cells, got %d", len(want), len(cells))
	}
	for i, w := range want {
		if cells[i].Row != w.Row || cells[i].Col != w.Col {
			t.Fatalf("cell %d: expected %v, got {%d %d}", i, w, cells[i].Row, cells[i].Col)
		}
	}
}
