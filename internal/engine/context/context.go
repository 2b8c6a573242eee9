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

// Package context holds the state shared among the engine's CECP
// commands, generalizing the teacher's internal/engine/context (a
// search.Context plus UCI options) to the CECP mode/clock state machine
// named in spec.md §4.7.
package context

import (
	"github.com/corvidchess/corvid/internal/pgnlog"
	"github.com/corvidchess/corvid/pkg/cecp"
	"github.com/corvidchess/corvid/pkg/controller"
)

// Mode is one of the CECP play modes (§4.7).
type Mode int

const (
	// ModeNormal is regular play: after the engine receives an
	// opponent move it immediately starts thinking about its own reply.
	ModeNormal Mode = iota
	// ModeForce accepts moves for both sides without ever moving on its
	// own, until "go" switches back to ModeNormal.
	ModeForce
)

// Engine holds the state shared among the CECP commands: the running
// game, the clock, and the pondering controller.
type Engine struct {
	Client cecp.Client

	Controller *controller.Controller

	Mode Mode

	// Protover is the protocol version negotiated by "protover N";
	// feature lines are only sent once it is >= 2.
	Protover int

	// OpponentIsComputer records whether "computer" was received.
	OpponentIsComputer bool

	// GameOver is set once a result has been reported, suppressing
	// further searches until "new" resets it.
	GameOver bool

	// Recorder accumulates the current game's moves for PGN logging
	// (§6 "computer"/"result" bookkeeping); nil when PGNLogPath is unset.
	Recorder *pgnlog.Recorder

	// PGNLogPath, if non-empty, is the file every finished game is
	// appended to, set by cmd/corvid's "--pgn-log" flag before NewClient
	// builds the command set.
	PGNLogPath string
}

// NewEngine creates engine state bound to c, ready to play from c's
// current position.
func NewEngine(c *controller.Controller) *Engine {
	return &Engine{Controller: c, Protover: 1}
}
