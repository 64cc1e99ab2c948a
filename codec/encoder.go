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

package codec

import (
	"io"

	"github.com/rpendleton/battleship/board"
)

// Encoder writes a sequence of board.Bitboard records to an underlying
// io.Writer, XOR-delta transforming each one against the previously
// written record (§4.D). It does not add outer zstd framing itself; wrap
// the destination writer with NewZstdWriter first if that is wanted.
type Encoder struct {
	w   io.Writer
	acc board.Bitboard
	err error
}

// NewEncoder returns an Encoder writing records to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// WriteRecord writes b as the next record, encoded as the XOR of b and
// the previous record written (or the all-zero board for the first
// record, which makes it pass through unchanged).
func (e *Encoder) WriteRecord(b board.Bitboard) error {
	if e.err != nil {
		return e.err
	}
	delta := e.acc.Xor(b)
	buf := delta.Bytes()
	if _, err := e.w.Write(buf[:]); err != nil {
		e.err = err
		return err
	}
	e.acc = b
	return nil
}

// ChunkStats summarizes a run of records passed to EncodeChunk: how many
// there were, and the bitwise union and intersection of their raw
// (pre-delta) values.
type ChunkStats struct {
	Count        uint32
	Union        board.Bitboard
	Intersection board.Bitboard
}

// EncodeChunk reads up to maxRecords 16-byte raw records from raw,
// XOR-delta encodes each one to enc, and returns statistics over the raw
// values read. It stops early, without error, at a clean end-of-stream;
// a stream that ends mid-record returns ErrTruncatedRecord. The
// intersection of zero records is Full, matching the "start with all
// bits set" identity of an AND-reduction over an empty sequence.
func EncodeChunk(raw io.Reader, enc *Encoder, maxRecords int) (ChunkStats, error) {
	stats := ChunkStats{Intersection: board.Full}

	var buf [RecordSize]byte
	for i := 0; i < maxRecords; i++ {
		_, err := io.ReadFull(raw, buf[:])
		if err != nil {
			if err == io.EOF {
				break
			}
			if err == io.ErrUnexpectedEOF {
				return stats, ErrTruncatedRecord
			}
			return stats, err
		}

		rec := board.FromBytes(buf)
		stats.Count++
		stats.Union = stats.Union.Or(rec)
		stats.Intersection = stats.Intersection.And(rec)

		if err := enc.WriteRecord(rec); err != nil {
			return stats, err
		}
	}

	return stats, nil
}
