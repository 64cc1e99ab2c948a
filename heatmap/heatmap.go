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

// Package heatmap implements the streaming filter-and-count aggregator:
// it reads a stream of board.Bitboard records, keeps only those matching
// a caller-supplied hit/miss mask pair, and accumulates per-cell counts.
package heatmap

import (
	"io"
	"math/bits"

	"github.com/rpendleton/battleship/board"
	"github.com/rpendleton/battleship/codec"
)

// Heatmap is the result of a filter-and-count pass: Counts[i] is the
// number of matched boards with cell i set, and Matched is the total
// number of matched boards.
type Heatmap struct {
	Counts  [board.NumCells]uint32
	Matched uint64
}

// accept reports whether b passes the hit/miss filter: every bit set in
// hit must also be set in b, and no bit set in miss may be set in b.
func accept(b, hit, miss board.Bitboard) bool {
	return b.And(hit) == hit && b.And(miss).IsZero()
}

// addCounts increments counts for every set bit of b, using a "pop
// lowest set bit" loop so the work is proportional to popcount(b), not
// to board.NumCells.
func addCounts(counts *[board.NumCells]uint32, b board.Bitboard) {
	lo, hi := b.Bits()
	for lo != 0 {
		i := bits.TrailingZeros64(lo)
		counts[i]++
		lo &= lo - 1
	}
	for hi != 0 {
		i := bits.TrailingZeros64(hi)
		counts[64+i]++
		hi &= hi - 1
	}
}

// FilterAndCount reads every record decodable from dec, keeping those
// matching (hit, miss), and returns the resulting Heatmap. io.EOF ends
// the pass normally. Any other error aborts immediately and returns the
// zero Heatmap alongside it: per §7, an I/O error never yields partial
// results.
func FilterAndCount(dec *codec.Decoder, hit, miss board.Bitboard) (Heatmap, error) {
	var h Heatmap
	for {
		b, err := dec.Next()
		if err != nil {
			if err == io.EOF {
				return h, nil
			}
			return Heatmap{}, err
		}
		if !accept(b, hit, miss) {
			continue
		}
		h.Matched++
		addCounts(&h.Counts, b)
	}
}
