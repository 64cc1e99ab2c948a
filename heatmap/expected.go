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

package heatmap

import "fmt"

// ExpectedAllBoardsCounts is the per-cell hit count across every
// complete board of the full enumeration, not only the canonical
// representatives (hit_mask=0, miss_mask=0, no filtering), indexed
// y*9+x. The table is therefore symmetric under D4. It is the fixed-point
// regression oracle for the aggregator run over such a stream.
var ExpectedAllBoardsCounts = [81]uint32{
	91828984, 81901859, 117097056, 93138304, 90403381, 93138304, 117097056, 81901859, 91828984,
	81901859, 29572998, 54989301, 27344104, 37308200, 27344104, 54989301, 29572998, 81901859,
	117097056, 54989301, 105220336, 70069997, 89165356, 70069997, 105220336, 54989301, 117097056,
	93138304, 27344104, 70069997, 32555654, 56735290, 32555654, 70069997, 27344104, 93138304,
	90403381, 37308200, 89165356, 56735290, 83039340, 56735290, 89165356, 37308200, 90403381,
	93138304, 27344104, 70069997, 32555654, 56735290, 32555654, 70069997, 27344104, 93138304,
	117097056, 54989301, 105220336, 70069997, 89165356, 70069997, 105220336, 54989301, 117097056,
	81901859, 29572998, 54989301, 27344104, 37308200, 27344104, 54989301, 29572998, 81901859,
	91828984, 81901859, 117097056, 93138304, 90403381, 93138304, 117097056, 81901859, 91828984,
}

// ValidateExpectedCounts reports whether actual matches
// ExpectedAllBoardsCounts exactly, returning a descriptive error
// naming the first mismatched cell (by row and column) if not.
func ValidateExpectedCounts(actual []uint32) error {
	if len(actual) != len(ExpectedAllBoardsCounts) {
		return fmt.Errorf("heatmap: expected %d counts, got %d", len(ExpectedAllBoardsCounts), len(actual))
	}
	for i, want := range ExpectedAllBoardsCounts {
		if actual[i] != want {
			return fmt.Errorf("heatmap: count mismatch at position %d (row %d, col %d): expected %d, got %d",
				i, i/9, i%9, want, actual[i])
		}
	}
	return nil
}
