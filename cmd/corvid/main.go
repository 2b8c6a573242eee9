// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/corvidchess/corvid/internal/buildinfo"
	"github.com/corvidchess/corvid/internal/display"
	"github.com/corvidchess/corvid/internal/engine"
	"github.com/corvidchess/corvid/internal/pgnlog"
	"github.com/corvidchess/corvid/pkg/fen"
	"github.com/corvidchess/corvid/pkg/option"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/search/tt"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newFlags builds the CLI flag schema (SPEC_FULL.md §3 "Configuration"):
// the implicit CECP options that have no protocol command of their own.
func newFlags() option.Schema {
	schema := option.NewSchema()

	schema.AddOption("hash", &option.Spin{
		Default: 64, Min: 1, Max: 65536,
		Storage: func(mb int) error {
			engine.HashSizeMB = mb
			return nil
		},
	})
	schema.AddOption("ponder", &option.Check{
		Default: true,
		Storage: func(on bool) error {
			engine.PonderEnabled = on
			return nil
		},
	})
	schema.AddOption("pgn-log", &option.String{
		Default: "",
		Storage: func(path string) error {
			engine.PGNLogPath = path
			return nil
		},
	})

	return schema
}

func run() error {
	flags := newFlags()
	if err := flags.SetDefaults(); err != nil {
		return err
	}

	args := os.Args[1:]
	var flagArgs, cmdArgs []string
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			flagArgs = append(flagArgs, a)
			continue
		}
		cmdArgs = args[i:]
		break
	}
	if err := flags.ParseArgs(flagArgs); err != nil {
		return err
	}

	fmt.Printf("%s %s by %s\n", buildinfo.Name, buildinfo.Version, buildinfo.Author)

	switch {
	case len(cmdArgs) > 0 && cmdArgs[0] == "bench":
		return runBench(cmdArgs[1:])

	case len(cmdArgs) > 0 && cmdArgs[0] == "report":
		return runReport(cmdArgs[1:])

	case len(cmdArgs) > 0 && cmdArgs[0] == "watch":
		return runWatch(cmdArgs[1:])
	}

	client := engine.NewClient()

	switch {
	case len(cmdArgs) == 0:
		// Interactive use: announce whether we're attached to a real
		// terminal or being driven by a GUI piping stdin/stdout.
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Println("# interactive terminal: type CECP commands, e.g. \"xboard\" then \"new\"")
		}
		return client.Start()

	default:
		// One-shot command-line invocation: run once, not in parallel.
		return client.RunWith(cmdArgs, false)
	}
}

// runBench runs Perft to the given depth (default 5) over every
// position in the PGN suite named by args[0], printing a progress bar
// as it goes (SPEC_FULL.md §4, schollz/progressbar).
func runBench(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("bench: expected a PGN suite path")
	}

	depth := 5
	if len(args) > 1 {
		if _, err := fmt.Sscanf(args[1], "%d", &depth); err != nil {
			return fmt.Errorf("bench: malformed depth %q: %w", args[1], err)
		}
	}

	positions, err := pgnlog.LoadSuite(args[0])
	if err != nil {
		return err
	}

	bar := progressbar.Default(int64(len(positions)), "perft")

	start := time.Now()
	var totalNodes int
	for _, pos := range positions {
		b, err := fen.Parse(pos.FEN)
		if err != nil {
			continue
		}
		totalNodes += b.Perft(depth)
		_ = bar.Add(1)
	}

	elapsed := time.Since(start)
	fmt.Printf("\n%d positions, %d nodes, %.0f nps\n",
		len(positions), totalNodes, float64(totalNodes)/elapsed.Seconds())
	return nil
}

// runReport reads a "post"-format thinking log (see pkg/search's
// iterativeDeepening) from args[0] and writes an HTML chart of its
// depth/score/node history to args[1] (SPEC_FULL.md §4, go-echarts/v2).
func runReport(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("report: expected a thinking log and an output path")
	}

	samples, err := readThinkingLog(args[0])
	if err != nil {
		return err
	}

	out, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer out.Close()

	return display.WriteReport(out, samples)
}

// runWatch searches a single position to the given depth (default 10)
// and shows the result on the live dashboard (SPEC_FULL.md §4,
// gizak/termui) until 'q' or Ctrl-C, a standalone entry point for
// internal/display.Dashboard since the CECP REPL's stdin is already
// spoken for by the protocol loop.
func runWatch(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("watch: expected a FEN (or \"startpos\")")
	}

	position := args[0]
	if position == "startpos" {
		position = fen.StartPos
	}
	b, err := fen.Parse(position)
	if err != nil {
		return err
	}

	depth := 10
	if len(args) > 1 {
		if _, err := fmt.Sscanf(args[1], "%d", &depth); err != nil {
			return fmt.Errorf("watch: malformed depth %q: %w", args[1], err)
		}
	}

	ctx := search.NewContext(b, tt.New(engine.HashSizeMB))
	result, err := ctx.Search(search.Limits{Depth: depth}, true, false)
	if err != nil {
		return err
	}

	dash, err := display.Open()
	if err != nil {
		return err
	}
	defer dash.Close()

	dash.Update(b, result)
	dash.Wait()
	return nil
}

func readThinkingLog(path string) ([]display.IterationSample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var samples []display.IterationSample
	for _, line := range strings.Split(string(data), "\n") {
		var s display.IterationSample
		var centis int
		var pv string
		if _, err := fmt.Sscanf(line, "%d %d %d %d %s", &s.Depth, &s.Score, &centis, &s.Nodes, &pv); err != nil {
			continue
		}
		samples = append(samples, s)
	}
	return samples, nil
}
