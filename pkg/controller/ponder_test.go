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

package controller_test

import (
	"testing"
	"time"

	"github.com/corvidchess/corvid/pkg/controller"
	"github.com/corvidchess/corvid/pkg/fen"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/search/tt"
)

func newGame(t *testing.T) *controller.Controller {
	t.Helper()
	b, err := fen.Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("parse startpos: %v", err)
	}
	return controller.New(b, 1)
}

func TestPondererStartStopDrainsActive(t *testing.T) {
	c := newGame(t)
	table := tt.New(1)

	moves := controller.Hypotheses(c.Board, table, 2)
	if len(moves) == 0 {
		t.Fatal("expected at least one hypothesis move from the startpos")
	}

	p := controller.NewPonderer(table)
	p.Start(c.Board, moves, search.Limits{Infinite: true})

	// give the workers a moment to actually start searching before we
	// cancel them, so StopAll exercises real in-flight cancellation.
	time.Sleep(20 * time.Millisecond)
	p.StopAll()
}

func TestPondererOpponentMovedNoMatch(t *testing.T) {
	c := newGame(t)
	table := tt.New(1)

	moves := controller.Hypotheses(c.Board, table, 1)
	if len(moves) == 0 {
		t.Fatal("expected at least one hypothesis move from the startpos")
	}

	p := controller.NewPonderer(table)
	p.Start(c.Board, moves, search.Limits{Infinite: true})
	defer p.StopAll()

	// a null move never matches any hypothesis.
	_, ok := p.OpponentMoved(move.Null)
	if ok {
		t.Error("OpponentMoved(move.Null) should never match a hypothesis")
	}
}
