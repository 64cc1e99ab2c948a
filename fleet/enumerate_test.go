// Copyright 2026 The Battleship Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fleet

import (
	"errors"
	"testing"

	"github.com/rpendleton/battleship/board"
)

func TestSingleThreeShipTotal(t *testing.T) {
	table := board.NewPlacementTable()
	f := Fleet{ThreeCount: 1, FourCount: 0}

	var seen int
	total, err := Enumerate(table, f, 0, nil, func(b board.Bitboard) error {
		seen++
		if b.PopCount() != 3 {
			t.Fatalf("expected popcount 3 for a lone 3-ship board, got %d", b.PopCount())
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 7 horizontal starting columns x 9 rows, plus 7 vertical starting
	// rows x 9 columns: 63 + 63 = 126 legal single-ship placements.
	const want = 126
	if total != want {
		t.Fatalf("expected total %d, got %d", want, total)
	}
	if seen != want {
		t.Fatalf("expected callback invoked %d times, got %d", want, seen)
	}
}

func TestSingleFourShipTotal(t *testing.T) {
	table := board.NewPlacementTable()
	f := Fleet{ThreeCount: 0, FourCount: 1}

	total, err := Enumerate(table, f, 0, nil, func(b board.Bitboard) error {
		if b.PopCount() != 4 {
			t.Fatalf("expected popcount 4 for a lone 4-ship board, got %d", b.PopCount())
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 6 horizontal starting columns x 9 rows, plus 6 vertical starting
	// rows x 9 columns: 54 + 54 = 108 legal single-ship placements.
	const want = 108
	if total != want {
		t.Fatalf("expected total %d, got %d", want, total)
	}
}

func TestNoAdjacentShipsInPair(t *testing.T) {
	table := board.NewPlacementTable()
	f := Fleet{ThreeCount: 1, FourCount: 1}

	total, err := Enumerate(table, f, 0, nil, func(b board.Bitboard) error {
		if b.PopCount() != 7 {
			t.Fatalf("expected popcount 7 (3+4), got %d", b.PopCount())
		}
		assertNoIllegalAdjacency(t, table, b)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total == 0 {
		t.Fatalf("expected at least one legal two-ship board")
	}
}

func TestCallbackErrorAbortsEnumeration(t *testing.T) {
	table := board.NewPlacementTable()
	f := Fleet{ThreeCount: 1, FourCount: 0}

	wantErr := errors.New("sink closed")
	calls := 0
	_, err := Enumerate(table, f, 0, nil, func(b board.Bitboard) error {
		calls++
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected sentinel error to propagate, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected enumeration to stop after first callback error, got %d calls", calls)
	}
}

func TestProgressCallbackNeverDecreases(t *testing.T) {
	table := board.NewPlacementTable()
	f := Fleet{ThreeCount: 1, FourCount: 0}

	last := -1
	_, err := Enumerate(table, f, 126, func(percent int) {
		if percent <= last {
			t.Fatalf("progress percent did not increase: %d after %d", percent, last)
		}
		last = percent
	}, func(board.Bitboard) error { return nil })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// assertNoIllegalAdjacency checks that no two set bits in b are
// orthogonally or diagonally adjacent unless they belong to the same
// straight run of 3 or 4 cells (i.e. it re-derives adjacency from first
// principles instead of trusting the enumerator or the placement table).
func assertNoIllegalAdjacency(t *testing.T, table *board.PlacementTable, b board.Bitboard) {
	t.Helper()
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			p := board.Point{X: x, Y: y}
			if !b.Get(p) {
				continue
			}
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					q := board.Point{X: x + dx, Y: y + dy}
					if !q.InBounds() || !b.Get(q) {
						continue
					}
					if dx != 0 && dy != 0 {
						t.Fatalf("diagonal neighbors both set: %v and %v", p, q)
					}
				}
			}
			// Orthogonal neighbors are legal only inside one straight run
			// of 3 or 4 cells; measure each run from its first cell.
			for _, d := range []board.Direction{board.Horizontal, board.Vertical} {
				if prev := p.Step(d, -1); prev.InBounds() && b.Get(prev) {
					continue
				}
				n := 0
				for q := p; q.InBounds() && b.Get(q); q = q.Step(d, 1) {
					n++
				}
				if n > 1 && n != 3 && n != 4 {
					t.Fatalf("run of %d set cells starting at %v", n, p)
				}
			}
		}
	}
}
