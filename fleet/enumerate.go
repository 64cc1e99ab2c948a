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

package fleet

import "github.com/rpendleton/battleship/board"

// CanonicalBoardTotal is the number of complete boards the enumerator
// visits for the Canonical fleet on a 9x9 board: every distinct legal
// layout, counted once per layout (not deduplicated across the D4
// orbit). Canonicalization happens one layer up, at the caller's output
// sink (§4.B "Canonical-output filter").
const CanonicalBoardTotal = 213_723_152

// Progress is an optional callback invoked once per percentage point of
// an enumeration's expected total, for long-running enumerations such as
// Canonical's. It must not mutate any shared state; Enumerate calls it
// synchronously between recursive steps.
type Progress func(percent int)

// Enumerate visits every complete board reachable from the empty initial
// state for fleet f, invoking callback once per complete state in the
// enumerator's deterministic depth-first order (§4.B). It returns the
// total number of complete boards visited, which equals
// CanonicalBoardTotal for the Canonical fleet.
//
// callback is invoked for every complete board, canonical or not;
// filtering to canonical-only output is the caller's responsibility
// (board.IsCanonical), matching the "all complete boards are still
// counted even if not emitted" rule of §4.B. If callback returns an
// error, enumeration stops immediately and Enumerate returns that error.
//
// expectedTotal, if non-zero, is used only to compute the percentage
// passed to progress; it does not otherwise affect the search.
func Enumerate(table *board.PlacementTable, f Fleet, expectedTotal uint64, progress Progress, callback func(board.Bitboard) error) (uint64, error) {
	e := &enumerator{
		table:         table,
		callback:      callback,
		expectedTotal: expectedTotal,
		progress:      progress,
	}
	if err := e.visit(New(f)); err != nil {
		return e.total, err
	}
	return e.total, nil
}

type enumerator struct {
	table         *board.PlacementTable
	callback      func(board.Bitboard) error
	expectedTotal uint64
	progress      Progress
	total         uint64
	lastPercent   int
}

// visit implements the backtracking protocol of §4.B: find the
// lowest-indexed undecided cell P, then try (in this fixed order) a
// length-3 ship horizontal, a length-3 ship vertical, a length-4 ship
// horizontal, a length-4 ship vertical, and finally marking P a miss.
// Because P is always the smallest undecided cell and any ship covering
// P must anchor there (ships only extend right or down), no layout is
// reachable by two different move sequences.
func (e *enumerator) visit(s State) error {
	p, ok := s.OpenMask().FirstSetPosition()
	if !ok {
		return e.finish(s)
	}

	if next, placed := s.PlacingShip(e.table, 3, p, board.Horizontal); placed {
		if err := e.visit(next); err != nil {
			return err
		}
	}
	if next, placed := s.PlacingShip(e.table, 3, p, board.Vertical); placed {
		if err := e.visit(next); err != nil {
			return err
		}
	}
	if next, placed := s.PlacingShip(e.table, 4, p, board.Horizontal); placed {
		if err := e.visit(next); err != nil {
			return err
		}
	}
	if next, placed := s.PlacingShip(e.table, 4, p, board.Vertical); placed {
		if err := e.visit(next); err != nil {
			return err
		}
	}
	return e.visit(s.MarkMiss(p))
}

// finish handles a board with no open cells left: it's complete iff both
// ship counters are zero, otherwise it's a dead end that is silently
// dropped.
func (e *enumerator) finish(s State) error {
	if !s.Complete() {
		return nil
	}
	e.total++
	e.reportProgress()
	return e.callback(s.HitMask)
}

func (e *enumerator) reportProgress() {
	if e.progress == nil || e.expectedTotal == 0 {
		return
	}
	percent := int(e.total * 100 / e.expectedTotal)
	if percent > e.lastPercent {
		e.lastPercent = percent
		e.progress(percent)
	}
}
