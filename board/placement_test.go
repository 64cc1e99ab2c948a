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

package board

import "testing"

func TestHitMaskInBounds(t *testing.T) {
	table := NewPlacementTable()

	hit := table.HitMask(3, Point{X: 1, Y: 0}, Horizontal)
	for _, p := range []Point{{1, 0}, {2, 0}, {3, 0}} {
		if !hit.Get(p) {
			t.Fatalf("expected %v set in horizontal 3-length hit mask", p)
		}
	}
	if hit.PopCount() != 3 {
		t.Fatalf("expected popcount 3, got %d", hit.PopCount())
	}
}

func TestHitMaskOutOfBoundsIsFull(t *testing.T) {
	table := NewPlacementTable()

	// A length-4 ship anchored at x=7 horizontal would need x=7,8,9,10;
	// 9 and 10 fall off the board.
	hit := table.HitMask(4, Point{X: 7, Y: 0}, Horizontal)
	if hit != Full {
		t.Fatalf("expected Full sentinel for out-of-bounds placement")
	}
	outline := table.OutlineMask(4, Point{X: 7, Y: 0}, Horizontal)
	if outline != Full {
		t.Fatalf("expected Full outline sentinel when hit mask is Full")
	}
}

func TestOutlineExcludesFootprint(t *testing.T) {
	table := NewPlacementTable()

	start := Point{X: 4, Y: 4}
	hit := table.HitMask(3, start, Horizontal)
	outline := table.OutlineMask(3, start, Horizontal)

	if !hit.And(outline).IsZero() {
		t.Fatalf("outline mask must not overlap the ship's own footprint")
	}

	// (3,3) is diagonally adjacent to the footprint (4,4)-(6,4).
	if !outline.Get(Point{X: 3, Y: 3}) {
		t.Fatalf("expected diagonal neighbor (3,3) in outline mask")
	}
	// (4,4)..(6,4) must not be in the outline (they are the footprint).
	for x := 4; x <= 6; x++ {
		if outline.Get(Point{X: x, Y: 4}) {
			t.Fatalf("outline mask must not include footprint cell (%d,4)", x)
		}
	}
}

func TestOutlineCornerStaysInBounds(t *testing.T) {
	table := NewPlacementTable()

	// A ship anchored at the very corner (0,0): its neighborhood is clipped
	// to the board, leaving only (3,0) and (0,1)..(3,1).
	outline := table.OutlineMask(3, Point{X: 0, Y: 0}, Horizontal)
	want := Empty
	for _, p := range []Point{{3, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 1}} {
		want = want.Set(p, true)
	}
	if outline != want {
		t.Fatalf("corner outline = %+v, want only its in-bounds neighbors %+v", outline, want)
	}
}

func TestInvalidLengthPanics(t *testing.T) {
	table := NewPlacementTable()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for invalid ship length")
		}
	}()
	table.HitMask(5, Point{X: 0, Y: 0}, Horizontal)
}
