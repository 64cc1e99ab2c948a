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

// Package fleet implements the backtracking enumerator: an exhaustive
// search over all legal placements of a fleet of ships on a board.Bitboard,
// visiting every complete layout exactly once. Keeping only the canonical
// representative of each D4 orbit is left to the caller.
package fleet

import "github.com/rpendleton/battleship/board"

// Fleet is the ship composition the enumerator searches over. Ship
// lengths are fixed at 3 and 4 (see board.ShipLengths); only the counts
// are configurable. Canonical is the standard Battleship fleet this
// package was built for.
type Fleet struct {
	ThreeCount int
	FourCount  int
}

// Canonical is the fixed fleet this specification is built around: five
// length-3 ships and three length-4 ships.
var Canonical = Fleet{ThreeCount: 5, FourCount: 3}

// State is the enumerator's board-internal state: which cells are known
// hits or misses, and how many ships of each length remain to be placed.
// The zero value is not a valid State; use New.
type State struct {
	HitMask         board.Bitboard
	MissMask        board.Bitboard
	ThreesRemaining int
	FoursRemaining  int
}

// New returns the initial state for f: no cells decided, every ship still
// to place.
func New(f Fleet) State {
	return State{
		HitMask:         board.Empty,
		MissMask:        board.Empty,
		ThreesRemaining: f.ThreeCount,
		FoursRemaining:  f.FourCount,
	}
}

// OpenMask is the set of cells not yet decided as hit or miss.
func (s State) OpenMask() board.Bitboard {
	return board.Full.AndNot(s.HitMask).AndNot(s.MissMask)
}

// Get returns the observable state of the cell at p.
func (s State) Get(p board.Point) board.CellState {
	if s.HitMask.Get(p) {
		return board.Hit
	}
	if s.MissMask.Get(p) {
		return board.Miss
	}
	return board.Open
}

// Complete reports whether every ship has been placed. It does not by
// itself mean every cell has been decided to Hit or Miss; combined with
// an empty OpenMask (§4.B) it means the board is a finished layout.
func (s State) Complete() bool {
	return s.ThreesRemaining == 0 && s.FoursRemaining == 0
}

// remainingFor returns a pointer to the counter for the given ship
// length, or nil for any other length. Centralizing the length ->
// counter mapping keeps PlacingShip and any future caller from
// duplicating the length switch.
func (s *State) remainingFor(length int) *int {
	switch length {
	case 3:
		return &s.ThreesRemaining
	case 4:
		return &s.FoursRemaining
	default:
		return nil
	}
}

// PlacingShip attempts to place a ship of the given length, anchored at
// start, laid out along dir. It returns the resulting state and true on
// success, or the zero State and false if the placement is illegal: the
// counter for that length is exhausted, the placement runs off the
// board, it overlaps an existing hit, or it is adjacent (orthogonally or
// diagonally) to an existing hit.
//
// On success, the outline cells become misses in the returned state,
// pre-excluding future adjacent placements, per §4.B.
func (s State) PlacingShip(table *board.PlacementTable, length int, start board.Point, dir board.Direction) (State, bool) {
	next := s
	remaining := next.remainingFor(length)
	if remaining == nil {
		panic("fleet: invalid ship length")
	}
	if *remaining == 0 {
		return State{}, false
	}
	*remaining--

	hit := table.HitMask(length, start, dir)
	if hit == board.Full {
		return State{}, false
	}
	outline := table.OutlineMask(length, start, dir)

	if !s.HitMask.And(hit).IsZero() {
		return State{}, false
	}
	if !s.HitMask.And(outline).IsZero() {
		return State{}, false
	}

	next.HitMask = s.HitMask.Or(hit)
	next.MissMask = s.MissMask.Or(outline)
	return next, true
}

// MarkMiss returns a copy of s with p marked as a miss.
func (s State) MarkMiss(p board.Point) State {
	next := s
	next.MissMask = s.MissMask.Set(p, true)
	return next
}
