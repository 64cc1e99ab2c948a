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

// ----------------

package board

// ShipLengths are the two hull lengths the fleet is built from. Other
// lengths are a programmer error in PlacementTable lookups.
var ShipLengths = [2]int{3, 4}

func lengthIndex(length int) int {
	switch length {
	case 3:
		return 0
	case 4:
		return 1
	default:
		panic("board: invalid ship length")
	}
}

func dirIndex(d Direction) int {
	switch d {
	case Horizontal:
		return 0
	case Vertical:
		return 1
	default:
		panic("board: invalid direction")
	}
}

// PlacementTable holds, for every (length, direction, starting cell)
// combination, the precomputed hit mask and outline mask described in
// §4.A. It is built once by NewPlacementTable and is immutable
// thereafter, safe to share (read-only) across goroutines.
type PlacementTable struct {
	hit     [2][2][NumCells]Bitboard
	outline [2][2][NumCells]Bitboard
}

// NewPlacementTable precomputes all 324 (length x direction x start) mask
// pairs. 81 starting points x 2 lengths x 2 directions, two 16-byte masks
// each, ~10KB total.
func NewPlacementTable() *PlacementTable {
	t := &PlacementTable{}
	for _, length := range ShipLengths {
		li := lengthIndex(length)
		for _, dir := range []Direction{Horizontal, Vertical} {
			di := dirIndex(dir)
			for idx := 0; idx < NumCells; idx++ {
				start := pointOf(idx)
				hit := generateHitMask(length, start, dir)
				t.hit[li][di][idx] = hit
				t.outline[li][di][idx] = generateOutlineMask(hit, length, start, dir)
			}
		}
	}
	return t
}

// HitMask returns the precomputed footprint mask for a ship of the given
// length, anchored at start, laid out along dir. It equals Full if any
// cell of the footprint would fall outside the board.
func (t *PlacementTable) HitMask(length int, start Point, dir Direction) Bitboard {
	return t.hit[lengthIndex(length)][dirIndex(dir)][indexOf(start)]
}

// OutlineMask returns the precomputed 1-cell Chebyshev neighborhood of the
// ship's footprint, excluding the footprint itself. It equals Full
// whenever HitMask would.
func (t *PlacementTable) OutlineMask(length int, start Point, dir Direction) Bitboard {
	return t.outline[lengthIndex(length)][dirIndex(dir)][indexOf(start)]
}

// generateHitMask computes the length contiguous cells a ship anchored at
// start and running along dir would occupy, or Full if any of them falls
// outside the board.
func generateHitMask(length int, start Point, dir Direction) Bitboard {
	mask := Empty
	for n := 0; n < length; n++ {
		p := start.Step(dir, n)
		if !p.InBounds() {
			return Full
		}
		mask = mask.Set(p, true)
	}
	return mask
}

// generateOutlineMask computes the in-bounds cells within the 1-cell
// Chebyshev neighborhood of the ship's footprint, excluding the
// footprint itself. If hit is Full (out of bounds), the outline is Full
// too, per §4.A.
func generateOutlineMask(hit Bitboard, length int, start Point, dir Direction) Bitboard {
	if hit == Full {
		return Full
	}

	end := start.Step(dir, length-1)
	lo := Point{X: start.X - 1, Y: start.Y - 1}
	hi := Point{X: end.X + 1, Y: end.Y + 1}

	mask := Empty
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			p := Point{X: x, Y: y}
			if p.InBounds() {
				mask = mask.Set(p, true)
			}
		}
	}
	return mask.AndNot(hit)
}
