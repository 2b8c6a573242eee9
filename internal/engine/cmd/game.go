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

package cmd

import (
	"fmt"
	"os"

	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/internal/pgnlog"
	"github.com/corvidchess/corvid/pkg/cecp/cmd"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/fen"
)

// NewNew handles "new": reset to the starting position and return to
// normal play mode (§4.7, §6).
func NewNew(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "new",
		Run: func(i cmd.Interaction) error {
			startBoard, err := fen.Parse(fen.StartPos)
			if err != nil {
				return err
			}

			engine.Controller.Reset(startBoard)
			engine.Mode = context.ModeNormal
			engine.GameOver = false
			engine.OpponentIsComputer = false
			if engine.PGNLogPath != "" {
				engine.Recorder = pgnlog.NewRecorder("Corvid", "Opponent")
			}
			return nil
		},
	}
}

// NewForce handles "force": stop thinking/pondering and accept moves for
// both sides without ever moving on its own.
func NewForce(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "force",
		Run: func(i cmd.Interaction) error {
			engine.Controller.StopPondering()
			engine.Mode = context.ModeForce
			return nil
		},
	}
}

// NewComputer handles "computer": the GUI is telling the engine its
// opponent is another chess program, not a human.
func NewComputer(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "computer",
		Run: func(i cmd.Interaction) error {
			engine.OpponentIsComputer = true
			return nil
		},
	}
}

// NewResult handles "result RESULT {COMMENT}", sent by the GUI once the
// game outcome is settled (by adjudication, resignation, or agreement).
// The engine has nothing further to compute; it just stops playing.
func NewResult(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "result",
		Run: func(i cmd.Interaction) error {
			engine.Controller.StopPondering()
			engine.GameOver = true

			tag := "*"
			if len(i.Args) > 0 {
				tag = i.Args[0]
			}
			saveGame(engine, tag)
			return nil
		},
	}
}

// saveGame appends the recorder's move list to engine.PGNLogPath,
// tagged with the given PGN result ("1-0", "0-1", "1/2-1/2", or "*"),
// and clears the recorder. A no-op when PGN logging is disabled.
func saveGame(engine *context.Engine, pgnResult string) {
	if engine.Recorder == nil {
		return
	}
	if err := engine.Recorder.Save(engine.PGNLogPath, pgnResult); err != nil {
		fmt.Fprintf(os.Stderr, "pgnlog: %v\n", err)
	}
	engine.Recorder = nil
}

// drawOfferMargin bounds how close to equal (in centipawns, from the
// side-to-move's perspective) the static evaluation must be before the
// engine will accept an opponent's draw offer.
const drawOfferMargin = 50

// NewDraw handles "draw": the opponent is offering a draw. The engine
// accepts (echoing "offer draw", which the GUI interprets as acceptance)
// only when the position looks roughly equal; otherwise it silently
// declines by playing on.
func NewDraw(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "draw",
		Run: func(i cmd.Interaction) error {
			if engine.GameOver {
				return nil
			}
			score := eval.Evaluate(engine.Controller.Board, 0)
			if score >= -drawOfferMargin && score <= drawOfferMargin {
				i.Reply("offer draw")
			}
			return nil
		},
	}
}
