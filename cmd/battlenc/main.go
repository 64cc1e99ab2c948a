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
battlenc reads a raw (non-delta) bitmap stream from standard input, writes
the XOR-delta encoded stream to standard output, and reports per-chunk
statistics to standard error.

Usage:

battlenc [flags]

Flags:

-chunksize
    records per chunk statistics report (default 500000000)
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/rpendleton/battleship/codec"
)

var chunkSizeFlag = flag.Int("chunksize", 500_000_000, "records per chunk statistics report")

func usage() {
	fmt.Fprintf(os.Stderr, `battlenc reads a raw bitmap stream from standard input and writes the
XOR-delta encoded stream to standard output, reporting per-chunk
statistics to standard error.

Usage:

battlenc [flags]

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
		return fmt.Errorf("battlenc: unexpected arguments: %v", flag.Args())
	}
	if *chunkSizeFlag <= 0 {
		return fmt.Errorf("battlenc: invalid -chunksize %d", *chunkSizeFlag)
	}

	r := bufio.NewReader(os.Stdin)
	w := bufio.NewWriter(os.Stdout)
	enc := codec.NewEncoder(w)

	for {
		stats, err := codec.EncodeChunk(r, enc, *chunkSizeFlag)
		if err != nil {
			return err
		}
		if stats.Count == 0 {
			break
		}

		unionLo, unionHi := stats.Union.Bits()
		interLo, interHi := stats.Intersection.Bits()
		fmt.Fprintf(os.Stderr, "Processed %d records. Union: 0x%x%016x, Intersection: 0x%x%016x\n",
			stats.Count, unionHi, unionLo, interHi, interLo)

		if stats.Count < uint32(*chunkSizeFlag) {
			break
		}
	}

	return w.Flush()
}
