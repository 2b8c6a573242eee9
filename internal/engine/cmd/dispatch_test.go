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

package cmd_test

import (
	"bytes"
	"strings"
	"testing"

	enginecmd "github.com/corvidchess/corvid/internal/engine/cmd"
	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/pkg/cecp/cmd"
	"github.com/corvidchess/corvid/pkg/controller"
	"github.com/corvidchess/corvid/pkg/fen"
)

// newTestEngine builds engine state bound to the standard starting
// position, pondering disabled so tests never race a background search.
func newTestEngine(t *testing.T) *context.Engine {
	t.Helper()
	b, err := fen.Parse(fen.StartPos)
	if err != nil {
		t.Fatalf("fen.Parse(StartPos): %v", err)
	}
	c := controller.New(b, 1)
	c.PonderEnabled = false
	return context.NewEngine(c)
}

func TestNewResetsToStartingPosition(t *testing.T) {
	engine := newTestEngine(t)
	engine.Controller.Board.Play(engine.Controller.Board.GenerateMoves()[0])
	engine.GameOver = true

	var buf bytes.Buffer
	if err := runCmd(t, &buf, enginecmd.NewNew(engine)); err != nil {
		t.Fatalf("new: %v", err)
	}

	if engine.GameOver {
		t.Error("new should clear GameOver")
	}
	if engine.Mode != context.ModeNormal {
		t.Error("new should reset to ModeNormal")
	}
	if len(engine.Controller.Board.GenerateMoves()) != 20 {
		t.Errorf("new should reset to the starting position, got %d legal moves, want 20",
			len(engine.Controller.Board.GenerateMoves()))
	}
}

func TestForceModeAppliesBothSidesWithoutReplying(t *testing.T) {
	engine := newTestEngine(t)

	var buf bytes.Buffer
	if err := runCmd(t, &buf, enginecmd.NewForce(engine)); err != nil {
		t.Fatalf("force: %v", err)
	}
	if engine.Mode != context.ModeForce {
		t.Fatal("force should switch to ModeForce")
	}

	if err := runCmd(t, &buf, enginecmd.NewUserMove(engine), "e2e4"); err != nil {
		t.Fatalf("usermove e2e4: %v", err)
	}
	if err := runCmd(t, &buf, enginecmd.NewUserMove(engine), "e7e5"); err != nil {
		t.Fatalf("usermove e7e5: %v", err)
	}

	if buf.Len() != 0 {
		t.Errorf("force mode should never reply on its own, got %q", buf.String())
	}
	if len(engine.Controller.Board.History) != 2 {
		t.Errorf("both moves should be applied in force mode, got %d plies", len(engine.Controller.Board.History))
	}
}

func TestUserMoveRejectsIllegalMove(t *testing.T) {
	engine := newTestEngine(t)
	engine.Mode = context.ModeForce

	var buf bytes.Buffer
	if err := runCmd(t, &buf, enginecmd.NewUserMove(engine), "e2e5"); err != nil {
		t.Fatalf("usermove e2e5: %v", err)
	}

	if !strings.Contains(buf.String(), "Illegal move") {
		t.Errorf("illegal move should be rejected with a reply, got %q", buf.String())
	}
	if len(engine.Controller.Board.History) != 0 {
		t.Error("an illegal move must not be applied to the board")
	}
}

func TestPingRepliesPong(t *testing.T) {
	engine := newTestEngine(t)

	var buf bytes.Buffer
	if err := runCmd(t, &buf, enginecmd.NewPing(engine), "7"); err != nil {
		t.Fatalf("ping 7: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "pong 7" {
		t.Errorf("ping 7 = %q, want %q", got, "pong 7")
	}
}

func TestSetBoardReplacesPosition(t *testing.T) {
	engine := newTestEngine(t)

	kiwipete := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	var buf bytes.Buffer
	if err := runCmd(t, &buf, enginecmd.NewSetBoard(engine), strings.Split(kiwipete, " ")...); err != nil {
		t.Fatalf("setboard: %v", err)
	}

	if got := len(engine.Controller.Board.GenerateMoves()); got != 48 {
		t.Errorf("setboard kiwipete: got %d legal moves, want 48", got)
	}
}

func TestUndoAndRemove(t *testing.T) {
	engine := newTestEngine(t)
	engine.Mode = context.ModeForce

	var buf bytes.Buffer
	mustRun(t, &buf, enginecmd.NewUserMove(engine), "e2e4")
	mustRun(t, &buf, enginecmd.NewUserMove(engine), "e7e5")

	if err := runCmd(t, &buf, enginecmd.NewUndo(engine)); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if len(engine.Controller.Board.History) != 1 {
		t.Errorf("undo should take back one ply, got %d", len(engine.Controller.Board.History))
	}

	mustRun(t, &buf, enginecmd.NewUserMove(engine), "e7e5")
	if err := runCmd(t, &buf, enginecmd.NewRemove(engine)); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(engine.Controller.Board.History) != 0 {
		t.Errorf("remove should take back a full move, got %d plies", len(engine.Controller.Board.History))
	}
}

func TestResultCommandEndsGame(t *testing.T) {
	engine := newTestEngine(t)

	var buf bytes.Buffer
	if err := runCmd(t, &buf, enginecmd.NewResult(engine), "1-0", "{White", "wins}"); err != nil {
		t.Fatalf("result: %v", err)
	}
	if !engine.GameOver {
		t.Error("result should mark the game over")
	}
}

// runCmd executes command against a fresh Interaction writing to buf,
// the same construction cmd.Command.RunWith performs internally.
func runCmd(t *testing.T, buf *bytes.Buffer, command cmd.Command, args ...string) error {
	t.Helper()
	schema := cmd.NewSchema(buf)
	schema.Add(command)
	got, found := schema.Get(command.Name)
	if !found {
		t.Fatalf("command %q not registered", command.Name)
	}
	return got.RunWith(args, false, schema)
}

// mustRun is runCmd for setup steps whose error would invalidate the
// rest of the test.
func mustRun(t *testing.T, buf *bytes.Buffer, command cmd.Command, args ...string) {
	t.Helper()
	if err := runCmd(t, buf, command, args...); err != nil {
		t.Fatalf("%s %v: %v", command.Name, args, err)
	}
}
