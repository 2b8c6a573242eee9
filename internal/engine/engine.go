// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

// Package engine wires the CECP command set (§6) onto a
// controller.Controller, generalizing the teacher's UCI internal/engine
// to the xboard protocol.
package engine

import (
	"github.com/corvidchess/corvid/internal/engine/cmd"
	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/pkg/cecp"
	"github.com/corvidchess/corvid/pkg/controller"
	"github.com/corvidchess/corvid/pkg/fen"
)

// HashSizeMB is the default transposition table size; overridable by
// cmd/corvid's flags before NewClient is called, mirroring the teacher's
// Hash UCI option now surfaced as a CLI flag (SPEC_FULL.md §3
// "Configuration").
var HashSizeMB = 64

// PonderEnabled toggles speculative search during the opponent's turn
// (§4.7, §5); overridable by cmd/corvid's "--ponder" flag before
// NewClient is called.
var PonderEnabled = true

// PGNLogPath, if non-empty, is the file every finished game is appended
// to (§6 "computer"/"result" bookkeeping); set by cmd/corvid's
// "--pgn-log" flag before NewClient is called.
var PGNLogPath = ""

// NewClient builds a cecp.Client with the full command set named in
// spec.md §6 wired to a fresh Engine starting from the standard position.
func NewClient() cecp.Client {
	client := cecp.NewClient()

	startBoard, err := fen.Parse(fen.StartPos)
	if err != nil {
		panic("engine: invalid embedded start position: " + err.Error())
	}

	engine := context.NewEngine(controller.New(startBoard, HashSizeMB))
	engine.Client = client
	engine.Controller.PonderEnabled = PonderEnabled
	engine.PGNLogPath = PGNLogPath

	client.AddCommand(cmd.NewXboard(engine))
	client.AddCommand(cmd.NewProtover(engine))
	client.AddCommand(cmd.NewNew(engine))
	client.AddCommand(cmd.NewForce(engine))
	client.AddCommand(cmd.NewGo(engine))
	client.AddCommand(cmd.NewPlayOther(engine))
	client.AddCommand(cmd.NewUserMove(engine))
	client.AddCommand(cmd.NewPing(engine))
	client.AddCommand(cmd.NewDraw(engine))
	client.AddCommand(cmd.NewSetBoard(engine))
	client.AddCommand(cmd.NewUndo(engine))
	client.AddCommand(cmd.NewRemove(engine))
	client.AddCommand(cmd.NewLevel(engine))
	client.AddCommand(cmd.NewSt(engine))
	client.AddCommand(cmd.NewTime(engine))
	client.AddCommand(cmd.NewOtim(engine))
	client.AddCommand(cmd.NewResult(engine))
	client.AddCommand(cmd.NewComputer(engine))

	return client
}
