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
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
)

// zstdMagic is the 4-byte magic that opens a zstd frame.
var zstdMagic = [4]byte{0x28, 0xB5, 0x2F, 0xFD}

// sniffedReader wraps the first four bytes read back in front of the
// underlying reader, so the magic-byte peek in detectOuterFraming is
// non-destructive, matching the Rust original's Cursor::chain trick.
func sniffedReader(peeked []byte, r io.Reader) io.Reader {
	if len(peeked) == 0 {
		return r
	}
	return io.MultiReader(bytes.NewReader(peeked), r)
}

// detectOuterFraming sniffs the first four bytes of r for the zstd magic
// number. If they match, the remainder is a zstd frame and the returned
// reader transparently decompresses it. Otherwise the returned reader
// yields the raw bytes unchanged, with the sniffed bytes transparently
// re-prepended. A stream shorter than four bytes is treated as empty,
// not an error (§4.C).
func detectOuterFraming(r io.Reader) (io.Reader, error) {
	var magic [4]byte
	_, err := io.ReadFull(r, magic[:])
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return bytes.NewReader(nil), nil
		}
		return nil, err
	}

	chained := sniffedReader(magic[:], r)
	if magic == zstdMagic {
		zr, err := zstd.NewReader(chained)
		if err != nil {
			return nil, err
		}
		return &zstdDecoderReader{zr}, nil
	}
	return chained, nil
}

// zstdDecoderReader adapts *zstd.Decoder's Read method to plain io.Reader
// while keeping the decoder reachable so callers who care can still type
// assert for Close.
type zstdDecoderReader struct {
	dec *zstd.Decoder
}

func (z *zstdDecoderReader) Read(p []byte) (int, error) {
	return z.dec.Read(p)
}

// Close releases the underlying zstd decoder's resources. It is safe to
// call even if the stream was never zstd-framed in the first place,
// since callers only reach this type when it was.
func (z *zstdDecoderReader) Close() error {
	z.dec.Close()
	return nil
}

// NewZstdWriter wraps w so that every byte written to the result is
// framed as a single zstd stream. The caller must Close the returned
// writer to flush the final frame.
func NewZstdWriter(w io.Writer) (*zstd.Encoder, error) {
	return zstd.NewWriter(w)
}
