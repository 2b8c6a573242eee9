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
	"strconv"
	"strings"
	"time"

	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/pkg/cecp/cmd"
	"github.com/corvidchess/corvid/pkg/controller"
)

// NewLevel handles "level MPS BASE INC" (§4.7 "Clocks"): MPS moves per
// time control (0 means the whole game, i.e. incremental), BASE minutes
// (or "MM:SS"), INC seconds added per move.
func NewLevel(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "level",
		Run: func(i cmd.Interaction) error {
			if len(i.Args) != 3 {
				return errors.New("level: expected 3 arguments")
			}

			mps, err := strconv.Atoi(i.Args[0])
			if err != nil {
				return errors.New("level: malformed MPS")
			}

			base, err := parseBaseMinutes(i.Args[1])
			if err != nil {
				return err
			}

			incSeconds, err := strconv.Atoi(i.Args[2])
			if err != nil {
				return errors.New("level: malformed INC")
			}

			c := &engine.Controller.Clock
			c.Remaining = base
			c.Increment = time.Duration(incSeconds) * time.Second
			if mps > 0 {
				c.Kind = controller.Classical
				c.MovesUntilControl = mps
			} else {
				c.Kind = controller.Incremental
				c.MovesUntilControl = 0
			}
			return nil
		},
	}
}

// parseBaseMinutes parses level's BASE field: either plain minutes
// ("40") or "MM:SS".
func parseBaseMinutes(s string) (time.Duration, error) {
	if mins, secs, found := strings.Cut(s, ":"); found {
		m, err := strconv.Atoi(mins)
		if err != nil {
			return 0, errors.New("level: malformed BASE minutes")
		}
		sec, err := strconv.Atoi(secs)
		if err != nil {
			return 0, errors.New("level: malformed BASE seconds")
		}
		return time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
	}

	m, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("level: malformed BASE")
	}
	return time.Duration(m) * time.Minute, nil
}

// NewSt handles "st TIME": a fixed number of seconds per move, which
// overrides whatever "level" set.
func NewSt(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "st",
		Run: func(i cmd.Interaction) error {
			if len(i.Args) != 1 {
				return errors.New("st: expected 1 argument")
			}
			seconds, err := strconv.Atoi(i.Args[0])
			if err != nil {
				return errors.New("st: malformed TIME")
			}

			c := &engine.Controller.Clock
			c.Kind = controller.FixedMax
			c.MoveTime = time.Duration(seconds) * time.Second
			return nil
		},
	}
}

// NewTime handles "time N": our remaining time, in centiseconds.
func NewTime(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "time",
		Run: func(i cmd.Interaction) error {
			if len(i.Args) != 1 {
				return errors.New("time: expected 1 argument")
			}
			centis, err := strconv.Atoi(i.Args[0])
			if err != nil {
				return errors.New("time: malformed N")
			}
			engine.Controller.Clock.Remaining = time.Duration(centis) * 10 * time.Millisecond
			return nil
		},
	}
}

// NewOtim handles "otim N": the opponent's remaining time, in
// centiseconds. The engine has no direct use for it (our budgeting
// formulas, §4.7, depend only on our own clock and the observed
// opponent think-time average) but must accept the command without
// error, as real CECP GUIs always send it alongside "time".
func NewOtim(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "otim",
		Run: func(i cmd.Interaction) error {
			if len(i.Args) != 1 {
				return errors.New("otim: expected 1 argument")
			}
			if _, err := strconv.Atoi(i.Args[0]); err != nil {
				return errors.New("otim: malformed N")
			}
			return nil
		},
	}
}
