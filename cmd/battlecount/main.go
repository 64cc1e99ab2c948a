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
battlecount reads a bitmap stream (optionally zstd-framed, by default
delta-encoded), filters it by a hit/miss mask pair, and prints the
resulting 9x9 heatmap.

Usage:

battlecount -file PATH -hit HEX -miss HEX [flags]

Flags:

-file
    path to the bitmap file, or "-" for standard input
-hit
    a hex mask; bit i set means cell i must be a hit
-miss
    a hex mask; bit i set means cell i must not be a hit
-raw
    suppress delta-decoding; treat the stream as already logical
-parallel
    use the parallel batch-reduction aggregator
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rpendleton/battleship/cmd/clflags"
	"github.com/rpendleton/battleship/codec"
	"github.com/rpendleton/battleship/heatmap"
)

var (
	fileFlag     = flag.String("file", "", clflags.FileUsage)
	hitFlag      = flag.String("hit", "0", clflags.HitUsage)
	missFlag     = flag.String("miss", "0", clflags.MissUsage)
	rawFlag      = flag.Bool("raw", false, "suppress delta-decoding; treat the stream as already logical")
	parallelFlag = flag.Bool("parallel", false, "use the parallel batch-reduction aggregator")
)

func usage() {
	fmt.Fprintf(os.Stderr, `battlecount reads a bitmap stream, filters it by a hit/miss mask pair,
and prints the resulting 9x9 heatmap.

Usage:

battlecount -file PATH -hit HEX -miss HEX [flags]

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
		return fmt.Errorf("battlecount: unexpected arguments: %v", flag.Args())
	}
	if *fileFlag == "" {
		return fmt.Errorf("battlecount: -file is required")
	}

	hit, err := clflags.ParseHexMask(*hitFlag)
	if err != nil {
		return err
	}
	miss, err := clflags.ParseHexMask(*missFlag)
	if err != nil {
		return err
	}

	f, _, err := clflags.OpenInput(*fileFlag)
	if err != nil {
		return err
	}
	defer f.Close()

	dec, err := codec.NewDecoder(f)
	if err != nil {
		return err
	}
	defer dec.Close()
	dec.Raw = *rawFlag

	var h heatmap.Heatmap
	if *parallelFlag {
		h, err = heatmap.FilterAndCountParallel(dec, hit, miss, heatmap.DefaultBatchSize)
	} else {
		h, err = heatmap.FilterAndCount(dec, hit, miss)
	}
	if err != nil {
		return err
	}

	fmt.Fprint(os.Stdout, clflags.RenderGrid(h.Counts[:]))
	fmt.Fprintf(os.Stderr, "Matched boards: %d\n", h.Matched)
	return nil
}
