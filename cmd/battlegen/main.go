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

/*
battlegen runs the backtracking fleet-placement enumerator and writes
every complete, canonical board it finds to an output file as the raw
(non-delta) bitmap file format.

Usage:

battlegen [flags]

Flags:

-out
    output file path (default "boards.bin")
-fleet
    fleet composition as "threes,fours" (default "5,3")
-zstd
    pipe the raw output through codec.Encoder and an outer zstd frame
-progress
    report percent-complete to stderr as the enumeration runs
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rpendleton/battleship/board"
	"github.com/rpendleton/battleship/codec"
	"github.com/rpendleton/battleship/fleet"
)

var (
	outFlag      = flag.String("out", "boards.bin", "output file path")
	fleetFlag    = flag.String("fleet", "5,3", `fleet composition as "threes,fours"`)
	zstdFlag     = flag.Bool("zstd", false, "pipe the raw output through an outer zstd frame")
	progressFlag = flag.Bool("progress", false, "report percent-complete to stderr")
)

func usage() {
	fmt.Fprintf(os.Stderr, `battlegen runs the backtracking fleet-placement enumerator and writes
every complete, canonical board it finds to an output file.

Usage:

battlegen [flags]

`)
	flag.PrintDefaults()
}

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 {
		return fmt.Errorf("battlegen: unexpected arguments: %v", flag.Args())
	}

	f, err := parseFleet(*fleetFlag)
	if err != nil {
		return err
	}

	out, err := os.Create(*outFlag)
	if err != nil {
		return err
	}
	defer out.Close()

	// Without -zstd, battlegen writes raw (non-delta) records: battlenc
	// handles the XOR-delta transform as a separate pass. With -zstd, the
	// raw records are XOR-delta encoded on the fly via codec.Encoder and
	// the result is framed in a single outer zstd stream (§6 "[ADDED]"),
	// collapsing what would otherwise be a battlegen | battlenc | zstd
	// pipeline into one process.
	var writeBoard func(board.Bitboard) error

	if *zstdFlag {
		zw, err := codec.NewZstdWriter(out)
		if err != nil {
			return err
		}
		defer zw.Close()
		enc := codec.NewEncoder(zw)
		writeBoard = enc.WriteRecord
	} else {
		writeBoard = func(b board.Bitboard) error {
			buf := b.Bytes()
			_, err := out.Write(buf[:])
			return err
		}
	}

	table := board.NewPlacementTable()

	var progress fleet.Progress
	if *progressFlag {
		progress = func(percent int) {
			fmt.Fprintf(os.Stderr, "battlegen: %d%%\n", percent)
		}
	}

	var written uint64
	_, err = fleet.Enumerate(table, f, fleet.CanonicalBoardTotal, progress, func(b board.Bitboard) error {
		if !board.IsCanonical(b) {
			return nil
		}
		if err := writeBoard(b); err != nil {
			return err
		}
		written++
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "battlegen: wrote %d canonical boards\n", written)
	return nil
}

// parseFleet parses a "threes,fours" string, e.g. "5,3" for the
// canonical fleet.
func parseFleet(s string) (fleet.Fleet, error) {
	var threes, fours int
	if _, err := fmt.Sscanf(s, "%d,%d", &threes, &fours); err != nil {
		return fleet.Fleet{}, fmt.Errorf("battlegen: invalid -fleet %q: %w", s, err)
	}
	if threes < 0 || fours < 0 {
		return fleet.Fleet{}, fmt.Errorf("battlegen: invalid -fleet %q: negative count", s)
	}
	return fleet.Fleet{ThreeCount: threes, FourCount: fours}, nil
}
