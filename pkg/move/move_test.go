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

package move_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

func TestEnPassantCapturedSquare(t *testing.T) {
	m := move.Move{
		From: square.E5, To: square.D6,
		FromPiece:       piece.WhitePawn,
		EnPassantSquare: square.D6,
	}

	if !m.IsEnPassant() {
		t.Fatal("expected en-passant move")
	}
	if got := m.EnPassantCapturedSquare(); got != square.D5 {
		t.Errorf("captured square: got %s, want d5", got)
	}
}

func TestCastleClassification(t *testing.T) {
	m := move.Move{From: square.E1, To: square.G1, FromPiece: piece.WhiteKing}
	if !m.IsCastle() || !m.IsKingsideCastle() || m.IsQueensideCastle() {
		t.Error("e1g1 should classify as white kingside castle")
	}
}

func TestNullMove(t *testing.T) {
	if !move.Null.IsNull() {
		t.Error("Null should report IsNull")
	}
}
