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

// Package cmd implements the engine's CECP commands (§6), one (or a
// handful of related) per file, in the teacher's internal/engine/cmd
// idiom.
package cmd

import (
	"strconv"

	"github.com/corvidchess/corvid/internal/buildinfo"
	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/pkg/cecp/cmd"
)

// NewXboard handles "xboard", which just confirms the GUI wants CECP
// mode; no reply is expected.
func NewXboard(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "xboard",
		Run: func(cmd.Interaction) error {
			return nil
		},
	}
}

// NewProtover handles "protover N". spec.md requires N >= 2 before the
// feature lines are sent; below that the engine stays silent rather
// than confuse an ancient GUI that never asked for features.
func NewProtover(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "protover",
		Run: func(i cmd.Interaction) error {
			n := 1
			if len(i.Args) > 0 {
				if v, err := strconv.Atoi(i.Args[0]); err == nil {
					n = v
				}
			}
			engine.Protover = n

			if n < 2 {
				return nil
			}

			i.Replyf("feature myname=%q", buildinfo.Name+" "+buildinfo.Version)
			i.Reply("feature ping=1 setboard=1 playother=1 usermove=1 draw=1 sigint=0 sigterm=0")
			i.Reply("feature analyze=0 colors=0 reuse=1 variants=\"normal\"")
			i.Reply("feature done=1")
			return nil
		},
	}
}
