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

package see_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/fen"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/see"
	"github.com/corvidchess/corvid/pkg/square"
)

func TestPawnTakesUndefendedQueenIsGood(t *testing.T) {
	b, err := fen.Parse("4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	m := move.Move{From: square.E4, To: square.D5, FromPiece: piece.WhitePawn, ToPiece: piece.WhitePawn, CapturedPiece: piece.BlackQueen}
	if got := see.Of(b, m); got <= 0 {
		t.Errorf("capturing an undefended queen with a pawn should be good, got %d", got)
	}
}

func TestQueenTakesDefendedPawnIsBad(t *testing.T) {
	b, err := fen.Parse("8/8/8/2k5/3p4/8/8/Q3K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	m := move.Move{From: square.A1, To: square.D4, FromPiece: piece.WhiteQueen, ToPiece: piece.WhiteQueen, CapturedPiece: piece.BlackPawn}
	if got := see.Of(b, m); got >= 0 {
		t.Errorf("trading a queen for a king-defended pawn should be bad, got %d", got)
	}
}
