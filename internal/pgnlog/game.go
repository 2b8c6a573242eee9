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

// Package pgnlog writes finished games to PGN (using notnil/chess's
// encoder) and loads canned PGN test suites for benchmarking (using
// freeeve/pgn.v1), per SPEC_FULL.md §4's domain-stack table. Neither
// library appears in spec.md itself; both are carried over unused
// indirect dependencies of the teacher's go.mod that this module gives
// a concrete home.
package pgnlog

import (
	"fmt"
	"os"
	"time"

	"github.com/notnil/chess"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/san"
)

// Recorder accumulates the SAN text of a game in progress so it can be
// flushed to a PGN file once the game ends (§6 "computer"/"result").
type Recorder struct {
	event, site string
	white, black string
	start        time.Time

	moves []string
}

// NewRecorder starts recording a new game between white and black.
func NewRecorder(white, black string) *Recorder {
	return &Recorder{
		event: "Corvid CECP session",
		site:  "?",
		white: white,
		black: black,
		start: time.Now(),
	}
}

// Record appends m's SAN rendering, computed against b *before* m is
// played, to the move list.
func (r *Recorder) Record(b *board.Board, m move.Move) {
	r.moves = append(r.moves, san.Move(b, m))
}

// Save replays the recorded move list into a notnil/chess.Game (which
// owns PGN tag/move-text formatting) and writes it to path, tagging the
// game with result, e.g. "1-0", "0-1", "1/2-1/2", or "*" if unfinished.
func (r *Recorder) Save(path, result string) error {
	game := chess.NewGame()
	game.AddTagPair("Event", r.event)
	game.AddTagPair("Site", r.site)
	game.AddTagPair("Date", r.start.Format("2006.01.02"))
	game.AddTagPair("White", r.white)
	game.AddTagPair("Black", r.black)
	game.AddTagPair("Result", result)

	for _, s := range r.moves {
		if err := game.MoveStr(s); err != nil {
			return fmt.Errorf("pgnlog: replaying %q: %w", s, err)
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%s\n\n", game.String())
	return err
}
