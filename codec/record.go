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

// Package codec implements the bitmap file format of §4.C/§4.D: a
// header-less sequence of 16-byte little-endian board.Bitboard records,
// XOR-delta transformed, optionally framed in a single outer zstd frame.
package codec

import "errors"

// RecordSize is the byte size of one persisted bitboard record.
const RecordSize = 16

// ErrTruncatedRecord is returned when the input ends in the middle of a
// 16-byte record. A clean EOF at a record boundary is not an error; this
// one is, per §7.
var ErrTruncatedRecord = errors.New("codec: unexpected truncation: partial record at end of stream")
