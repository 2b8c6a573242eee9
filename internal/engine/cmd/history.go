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

	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/pkg/cecp/cmd"
	"github.com/corvidchess/corvid/pkg/fen"
)

// NewSetBoard handles "setboard FEN", replacing the live position
// wholesale (§6). Only legal when not mid-game in normal mode, same as
// a real xboard engine: the GUI sends "force" first.
func NewSetBoard(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "setboard",
		Run: func(i cmd.Interaction) error {
			b, err := fen.Parse(strings.Join(i.Args, " "))
			if err != nil {
				return err
			}
			engine.Controller.Reset(b)
			engine.GameOver = false
			return nil
		},
	}
}

// NewUndo handles "undo": take back one half-move.
func NewUndo(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "undo",
		Run: func(i cmd.Interaction) error {
			b := engine.Controller.Board
			if len(b.History) == 0 {
				return errors.New("undo: no moves to take back")
			}
			b.UnmakeMove()
			engine.GameOver = false
			return nil
		},
	}
}

// NewRemove handles "remove": take back a full move (the engine's last
// move and the opponent's move before it).
func NewRemove(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "remove",
		Run: func(i cmd.Interaction) error {
			b := engine.Controller.Board
			if len(b.History) < 2 {
				return errors.New("remove: not enough moves to take back")
			}
			b.UnmakeMove()
			b.UnmakeMove()
			engine.GameOver = false
			return nil
		},
	}
}
