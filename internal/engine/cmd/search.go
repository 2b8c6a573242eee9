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
	"errors"
	"strings"
	"time"

	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/cecp/cmd"
	"github.com/corvidchess/corvid/pkg/controller"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/search"
)

// NewGo handles "go": the engine takes control of whichever color is
// currently to move and starts thinking (§4.7).
func NewGo(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name:     "go",
		Parallel: true,
		Run: func(i cmd.Interaction) error {
			engine.Mode = context.ModeNormal
			return think(engine, i)
		},
	}
}

// NewPlayOther handles "playother": the opponent is about to move, so
// the engine starts pondering their replies immediately instead of
// waiting for its own "go" (§4.7 steps 1-2).
func NewPlayOther(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "playother",
		Run: func(i cmd.Interaction) error {
			engine.Mode = context.ModeNormal
			engine.Controller.StartPondering()
			return nil
		},
	}
}

// NewUserMove handles "usermove MOVE": the opponent's move. In force
// mode it is just applied to the board; in normal mode, it also
// triggers the engine's own reply, adopting a matching ponder search's
// result if one exists (§4.7 step 4).
func NewUserMove(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name:     "usermove",
		Parallel: true,
		Run: func(i cmd.Interaction) error {
			if len(i.Args) != 1 {
				return errors.New("usermove: expected 1 argument")
			}

			b := engine.Controller.Board
			m, err := parseUserMove(b, i.Args[0])
			if err != nil {
				i.Replyf("Illegal move (%s): %s", err, i.Args[0])
				return nil
			}

			start := time.Now()
			if engine.Recorder != nil {
				engine.Recorder.Record(b, m)
			}
			b.Play(m)
			engine.GameOver = false

			if engine.Mode == context.ModeForce {
				return nil
			}

			if result, ok := engine.Controller.OpponentMoved(m, time.Since(start)); ok {
				return replyMove(engine, i, result)
			}
			return think(engine, i)
		},
	}
}

// NewPing handles "ping N", replying "pong N" once every earlier
// command has been processed, per the xboard synchronization protocol.
func NewPing(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "ping",
		Run: func(i cmd.Interaction) error {
			n := "1"
			if len(i.Args) > 0 {
				n = i.Args[0]
			}
			i.Replyf("pong %s", n)
			return nil
		},
	}
}

// parseUserMove matches s (long algebraic, e.g. "e2e4" or "e7e8q")
// against the board's actual legal move set (§7 "destination-in-legal-
// move-set check"), rather than trusting the GUI's coordinates blindly.
func parseUserMove(b *board.Board, s string) (move.Move, error) {
	for _, m := range b.GenerateMoves() {
		if strings.EqualFold(m.String(), s) {
			return m, nil
		}
	}
	return move.Null, errors.New("not a legal move")
}

// think runs a direct search bounded by the current clock budget, plays
// the result, reports it, and (if the game continues) starts pondering
// the opponent's reply.
func think(engine *context.Engine, i cmd.Interaction) error {
	if engine.GameOver || engine.Mode == context.ModeForce {
		return nil
	}

	result, err := engine.Controller.Go()
	if err != nil {
		return err
	}
	return replyMove(engine, i, result)
}

// replyMove plays result's best move, announces it, reports the game
// result if the game just ended, and otherwise starts pondering the
// opponent's reply (§4.7 step 1).
func replyMove(engine *context.Engine, i cmd.Interaction, result search.Result) error {
	if len(result.PV) == 0 {
		engine.GameOver = true
		gameResult := controller.DetectResult(engine.Controller.Board)
		i.Reply(gameResult.String())
		saveGame(engine, gameResult.PGNTag())
		return nil
	}

	best := result.PV[0]
	if engine.Recorder != nil {
		engine.Recorder.Record(engine.Controller.Board, best)
	}
	engine.Controller.Board.Play(best)
	i.Replyf("move %s", best)

	if gameResult := controller.DetectResult(engine.Controller.Board); gameResult != controller.NoResult {
		engine.GameOver = true
		i.Reply(gameResult.String())
		saveGame(engine, gameResult.PGNTag())
		return nil
	}

	engine.Controller.StartPondering()
	return nil
}
