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

package attacks_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/attacks"
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

func TestPawnDoublePushBlockedBySinglePush(t *testing.T) {
	friends := bitboard.Square(square.E2)
	enemies := bitboard.Square(square.E3)

	moves := attacks.Pawn(square.E2, square.None, piece.White, friends, enemies)
	if moves != bitboard.Empty {
		t.Errorf("expected no pawn moves with blocker directly ahead, got %s", moves)
	}
}

func TestPawnEnPassantTarget(t *testing.T) {
	friends := bitboard.Square(square.E5)
	enemies := bitboard.Square(square.D5)

	moves := attacks.Pawn(square.E5, square.D6, piece.White, friends, enemies)
	if !moves.IsSet(square.D6) {
		t.Error("expected pawn to be able to capture onto the en-passant target")
	}
}

func TestAttackersTo(t *testing.T) {
	var pieces [piece.TypeN]bitboard.Board
	pieces[piece.Rook] = bitboard.Square(square.A1)

	attackers := attacks.AttackersTo(square.A8, piece.White, bitboard.Square(square.A1), pieces)
	if !attackers.IsSet(square.A1) {
		t.Error("rook on a1 should attack a8 along an open file")
	}
}
