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

import (
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rpendleton/battleship/board"
	"github.com/rpendleton/battleship/codec"
)

// DefaultBatchSize is the number of records per batch handed to a worker
// in FilterAndCountParallel, per §5's "batch size on the order of 10^6
// records is a reasonable default".
const DefaultBatchSize = 1_000_000

// FilterAndCountParallel is the optional parallel form of FilterAndCount
// (§5): reads stay serialized on the calling goroutine, since XOR-delta
// decoding is inherently sequential, but each batch of batchSize decoded
// boards is filtered and counted on a separate goroutine, and the
// per-batch Heatmaps are reduced in arrival order. The observed result is
// identical to the single-threaded FilterAndCount for the same input,
// because Heatmap reduction (elementwise Counts addition, Matched
// addition) is associative and commutative.
//
// batchSize <= 0 selects DefaultBatchSize.
func FilterAndCountParallel(dec *codec.Decoder, hit, miss board.Bitboard, batchSize int) (Heatmap, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	var total Heatmap
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	results := make(chan Heatmap)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for r := range results {
			total.Matched += r.Matched
			for i := range total.Counts {
				total.Counts[i] += r.Counts[i]
			}
		}
	}()

	var readErr error
readLoop:
	for {
		batch := make([]board.Bitboard, 0, batchSize)
		for len(batch) < batchSize {
			b, err := dec.Next()
			if err != nil {
				if err != io.EOF {
					readErr = err
				}
				break
			}
			batch = append(batch, b)
		}
		if len(batch) == 0 {
			break readLoop
		}

		g.Go(func() error {
			var h Heatmap
			for _, b := range batch {
				if !accept(b, hit, miss) {
					continue
				}
				h.Matched++
				addCounts(&h.Counts, b)
			}
			results <- h
			return nil
		})

		if readErr != nil {
			break readLoop
		}
	}

	// g.Wait blocks until every in-flight batch goroutine has sent its
	// Heatmap to results; only then is it safe to close the channel the
	// reducer goroutine is ranging over.
	_ = g.Wait()
	close(results)
	<-done

	if readErr != nil {
		return Heatmap{}, readErr
	}
	return total, nil
}
