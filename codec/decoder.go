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

// Decoder reads a sequence of board.Bitboard records from an underlying
// io.Reader, automatically detecting and removing the outer zstd framing
// of §4.C and undoing the XOR-delta transform of §4.D unless raw mode
// was requested.
//
// Do not modify its exported field after calling Next.
type Decoder struct {
	// Raw selects raw mode: records are read verbatim, without undoing
	// the XOR-delta transform. Set it before the first call to Next.
	Raw bool

	r      io.Reader
	closer io.Closer
	acc    board.Bitboard
	err    error
}

// NewDecoder returns a Decoder reading from r, sniffing r for the outer
// zstd frame per §4.C. The caller should call Close when done to release
// any zstd decoder resources acquired along the way.
func NewDecoder(r io.Reader) (*Decoder, error) {
	inner, err := detectOuterFraming(r)
	if err != nil {
		return nil, err
	}
	d := &Decoder{r: inner}
	if c, ok := inner.(io.Closer); ok {
		d.closer = c
	}
	return d, nil
}

// Next returns the next decoded board.Bitboard. It returns io.EOF once the
// stream ends cleanly on a record boundary, or ErrTruncatedRecord if the
// stream ends mid-record.
func (d *Decoder) Next() (board.Bitboard, error) {
	if d.err != nil {
		return board.Empty, d.err
	}

	var buf [RecordSize]byte
	_, err := io.ReadFull(d.r, buf[:])
	if err != nil {
		switch err {
		case io.EOF:
			d.err = io.EOF
			return board.Empty, io.EOF
		case io.ErrUnexpectedEOF:
			d.err = ErrTruncatedRecord
			return board.Empty, ErrTruncatedRecord
		default:
			d.err = err
			return board.Empty, err
		}
	}

	rec := board.FromBytes(buf)
	if d.Raw {
		return rec, nil
	}

	// acc starts at board.Empty, so the first record's XOR against it is
	// the identity; no special case is needed for "first record stored
	// as-is" (§4.D).
	d.acc = d.acc.Xor(rec)
	return d.acc, nil
}

// Close releases any resources (such as a zstd decoder) acquired while
// sniffing the outer framing. It is safe to call even when the stream
// carried no outer framing.
func (d *Decoder) Close() error {
	if d.closer == nil {
		return nil
	}
	return d.closer.Close()
}
