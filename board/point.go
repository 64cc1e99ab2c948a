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

// Package board provides the 9x9 bitboard primitives shared by the
// enumerator and the codec: bit-packed occupancy, point/direction algebra,
// precomputed ship-placement masks and dihedral canonicalization.
package board

// Size is the side length of the board. The fleet and its placement rules
// are specific to this size; see the package doc for the scope of the D4
// canonicalization.
const Size = 9

// NumCells is the number of cells on the board (Size * Size).
const NumCells = Size * Size

// Point is a signed (x, y) coordinate pair. It is in-bounds iff both
// coordinates lie in [0, Size).
type Point struct {
	X, Y int
}

// Direction is the axis a ship is laid out along.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// InBounds reports whether p lies within the board.
func (p Point) InBounds() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

// Add returns the pointwise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the pointwise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Step returns p advanced by n cells along d.
func (p Point) Step(d Direction, n int) Point {
	switch d {
	case Horizontal:
		return Point{p.X + n, p.Y}
	case Vertical:
		return Point{p.X, p.Y + n}
	default:
		panic("board: invalid direction")
	}
}

// indexOf converts an in-bounds point to a [0, NumCells) bit index. Out of
// bounds points are a programmer error: it panics rather than returning an
// error, matching the "invalid ship length or direction" class of
// programmer errors documented for this package.
func indexOf(p Point) int {
	if !p.InBounds() {
		panic("board: point out of bounds")
	}
	return p.Y*Size + p.X
}

// pointOf converts a [0, NumCells) bit index back to a Point.
func pointOf(index int) Point {
	if index < 0 || index >= NumCells {
		panic("board: index out of bounds")
	}
	return Point{X: index % Size, Y: index / Size}
}

// CellState is the observable state of a single cell.
type CellState int

const (
	Open CellState = iota
	Hit
	Miss
)

func (s CellState) String() string {
	switch s {
	case Hit:
		return "Hit"
	case Miss:
		return "Miss"
	default:
		return "Open"
	}
}
