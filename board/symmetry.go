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

// coordTransform remaps one cell's (x, y) coordinates to the coordinates
// it occupies under one of the 8 elements of the 9x9 square's dihedral
// group D4.
type coordTransform func(x, y int) (int, int)

// transforms lists the 8 elements of D4: identity, the two axis flips,
// the 180-degree rotation, the transpose, the 90-degree and 270-degree
// rotations, and the anti-transpose.
var transforms = [8]coordTransform{
	func(x, y int) (int, int) { return x, y },
	func(x, y int) (int, int) { return Size - 1 - x, y },
	func(x, y int) (int, int) { return x, Size - 1 - y },
	func(x, y int) (int, int) { return Size - 1 - x, Size - 1 - y },
	func(x, y int) (int, int) { return y, x },
	func(x, y int) (int, int) { return Size - 1 - y, x },
	func(x, y int) (int, int) { return y, Size - 1 - x },
	func(x, y int) (int, int) { return Size - 1 - y, Size - 1 - x },
}

// applyTransform returns b with every set bit remapped through f.
func applyTransform(b Bitboard, f coordTransform) Bitboard {
	out := Empty
	for idx := 0; idx < NumCells; idx++ {
		p := pointOf(idx)
		if b.Get(p) {
			nx, ny := f(p.X, p.Y)
			out = out.Set(Point{X: nx, Y: ny}, true)
		}
	}
	return out
}

// Orbit returns the 8 bitboards reachable from b under D4, in the fixed
// order used by transforms (identity first).
func Orbit(b Bitboard) [8]Bitboard {
	var out [8]Bitboard
	for i, f := range transforms {
		out[i] = applyTransform(b, f)
	}
	return out
}

// less reports whether a sorts before b when the two halves are compared
// as a 128-bit little-endian integer (high half first, since it holds
// the more significant bits).
func less(a, b Bitboard) bool {
	if a.hi != b.hi {
		return a.hi < b.hi
	}
	return a.lo < b.lo
}

// Canonical returns the lexicographically smallest member of b's 8-element
// dihedral orbit.
func Canonical(b Bitboard) Bitboard {
	orbit := Orbit(b)
	min := orbit[0]
	for _, cand := range orbit[1:] {
		if less(cand, min) {
			min = cand
		}
	}
	return min
}

// IsCanonical reports whether b already equals the minimum of its orbit.
// A bitboard fixed under some non-identity group element is still
// canonical as long as it is the numerical minimum; ties resolve to
// canonical because the minimum over the orbit is unique by
// construction.
func IsCanonical(b Bitboard) bool {
	return b == Canonical(b)
}
