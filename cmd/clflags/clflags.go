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

// Package clflags holds flag parsing and validation helpers shared by the
// battlegen, battlenc and battlecount command line tools.
package clflags

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rpendleton/battleship/board"
)

const (
	HitUsage  = `a hex mask (e.g. "0x1ff"), bit i set means cell i must be a hit`
	MissUsage = `a hex mask (e.g. "0x1ff"), bit i set means cell i must not be a hit`
	FileUsage = `path to the bitmap file, or "-" for standard input`
)

// ParseHexMask parses a hex string, optionally "0x"-prefixed, into a
// board.Bitboard. Only the low 81 bits are meaningful; the caller may pass
// a wider value and the extra high bits are silently discarded, matching
// §6's "up to 128 bits wide (only the low 81 bits are meaningful)".
func ParseHexMask(s string) (board.Bitboard, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return board.Empty, fmt.Errorf("clflags: empty hex mask")
	}
	for _, c := range s {
		if !isHexDigit(c) {
			return board.Empty, fmt.Errorf("clflags: invalid hex mask %q", s)
		}
	}

	// Split into at most 32 hex digits (128 bits): the low 16 feed lo, any
	// remainder feeds hi.
	if len(s) > 32 {
		return board.Empty, fmt.Errorf("clflags: hex mask %q is wider than 128 bits", s)
	}

	loStr, hiStr := s, ""
	if len(s) > 16 {
		hiStr, loStr = s[:len(s)-16], s[len(s)-16:]
	}

	lo := parseHex64(loStr)
	hi := parseHex64(hiStr)
	return board.FromBits(lo, hi), nil
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// parseHex64 parses a string of up to 16 validated hex digits. Callers
// must have already checked every rune with isHexDigit.
func parseHex64(s string) uint64 {
	var v uint64
	for _, c := range s {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= uint64(c - '0')
		case c >= 'a' && c <= 'f':
			v |= uint64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= uint64(c-'A') + 10
		}
	}
	return v
}

// OpenInput opens path for reading, treating "-" as standard input. The
// caller must Close the returned file unless usingStdin is true.
func OpenInput(path string) (r io.ReadCloser, usingStdin bool, err error) {
	if path == "-" || path == "" {
		return io.NopCloser(os.Stdin), true, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, false, err
	}
	return f, false, nil
}

// RenderGrid formats counts (indexed y*9+x, per §6) as a 9x9 grid of
// decimal counters: comma-separated within a row, newline-terminated
// rows, row 0 first.
func RenderGrid(counts []uint32) string {
	var b strings.Builder
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			if x > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, "%d", counts[y*board.Size+x])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
