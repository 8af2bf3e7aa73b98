// Copyright 2026 The GSS Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command gssbench drives a synthetic grammar-shaped graph-structured
// stack through repeated push/split/merge/pop_count cycles and reports
// throughput, playing the same role the teacher's benchmark package
// plays for query execution: a small, dependency-light harness a
// developer runs by hand, not a test.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/glrparse/gss"
)

func main() {
	var (
		rounds    = flag.Int("rounds", 2000, "number of push/split/merge/pop cycles to run")
		forkWidth = flag.Int("fork-width", 4, "number of versions forked per round before merging")
		popEvery  = flag.Int("pop-every", 8, "run a pop_count every this many rounds, starting with round 0")
		popCount  = flag.Int("pop-count", 3, "n passed to pop_count")
		maxLinks  = flag.Int("max-links", 8, "Stack Config.MaxLinksPerNode")
	)
	flag.Parse()

	cfg := gss.DefaultConfig()
	cfg.MaxLinksPerNode = *maxLinks
	s, err := gss.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gssbench:", err)
		os.Exit(1)
	}
	defer s.Close()

	ctx := gss.Background()
	start := time.Now()
	var pushes, merges, pops int

	for round := 0; round < *rounds; round++ {
		versions := []int{0}
		for i := 1; i < *forkWidth; i++ {
			v, err := s.CopyVersion(0)
			if err != nil {
				fmt.Fprintln(os.Stderr, "gssbench: copy_version:", err)
				os.Exit(1)
			}
			versions = append(versions, v)
		}

		for i, v := range versions {
			tr := gss.NewLeafTree(gss.Length{Bytes: 2, Chars: 2, Columns: 2}, false)
			next := gss.StateID(round*10 + i + 1)
			if err := s.Push(ctx, v, tr, false, next); err != nil {
				fmt.Fprintln(os.Stderr, "gssbench: push:", err)
				os.Exit(1)
			}
			pushes++
		}

		// Converge every fork back onto a shared state so Merge has
		// something to collapse, the way a GLR driver would when
		// several actions predict the same reduction.
		converge := gss.StateID(round*10 + 100)
		for _, v := range versions {
			tr := gss.NewLeafTree(gss.Length{Bytes: 1, Chars: 1, Columns: 1}, false)
			if err := s.Push(ctx, v, tr, false, converge); err != nil {
				fmt.Fprintln(os.Stderr, "gssbench: push:", err)
				os.Exit(1)
			}
			pushes++
		}
		s.Merge(ctx)
		merges++

		if round%*popEvery == 0 {
			result, err := s.PopCount(ctx, 0, *popCount)
			if err != nil {
				fmt.Fprintln(os.Stderr, "gssbench: pop_count:", err)
				os.Exit(1)
			}
			result.Release()
			pops++

			// pop_count can reveal more than one ancestor version when
			// it walks past an old fork point; gssbench only tracks
			// version 0, so drop the rest immediately.
			for s.VersionCount() > 1 {
				if err := s.RemoveVersion(1); err != nil {
					fmt.Fprintln(os.Stderr, "gssbench: remove_version:", err)
					os.Exit(1)
				}
			}
		}
	}

	elapsed := time.Since(start)
	fmt.Printf("run %s: %d rounds, %d pushes, %d merges, %d pops in %s (%.0f pushes/s)\n",
		uuid.New(), *rounds, pushes, merges, pops, elapsed, float64(pushes)/elapsed.Seconds())
}
