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

package bitboard_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/square"
)

func TestSetOps(t *testing.T) {
	var b bitboard.Board
	b.Set(square.E4)
	if !b.IsSet(square.E4) {
		t.Fatal("expected e4 set")
	}
	if b.Count() != 1 || !b.IsSingleton() {
		t.Fatal("expected singleton")
	}
	b.Unset(square.E4)
	if !b.IsEmpty() {
		t.Fatal("expected empty after unset")
	}
}

func TestShiftsStayOnBoard(t *testing.T) {
	a1 := bitboard.Square(square.A1)
	if a1.West() != bitboard.Empty {
		t.Error("west of a1 should wrap to empty")
	}
	if a1.South() != bitboard.Empty {
		t.Error("south of a1 (shift below board) should be empty")
	}

	h8 := bitboard.Square(square.H8)
	if h8.East() != bitboard.Empty {
		t.Error("east of h8 should wrap to empty")
	}
}

func TestRookSpanStopsAtBlocker(t *testing.T) {
	occ := bitboard.Square(square.E1) | bitboard.Square(square.E5)
	span := bitboard.RookSpan(bitboard.Square(square.E1), occ)

	if !span.IsSet(square.E5) {
		t.Error("rook span should include the first blocker")
	}
	if span.IsSet(square.E6) {
		t.Error("rook span should not extend past the first blocker")
	}
	if !span.IsSet(square.A1) || !span.IsSet(square.H1) {
		t.Error("rook span should cover the full open rank")
	}
}

func TestBishopSpanDiagonal(t *testing.T) {
	occ := bitboard.Square(square.D4)
	span := bitboard.BishopSpan(occ, occ)

	for _, s := range []square.Square{square.A1, square.C3, square.E5, square.H8, square.A7, square.G1} {
		if !span.IsSet(s) {
			t.Errorf("expected %s in bishop span from d4", s)
		}
	}
	if span.IsSet(square.D5) {
		t.Error("bishop span should not include non-diagonal squares")
	}
}

func TestBetween(t *testing.T) {
	b := bitboard.Between[square.A1][square.A8]
	for r := square.Rank(1); r < 7; r++ {
		s := square.New(square.FileA, r)
		if !b.IsSet(s) {
			t.Errorf("expected %s between a1 and a8", s)
		}
	}
	if b.IsSet(square.A1) || b.IsSet(square.A8) {
		t.Error("between should be an open interval")
	}

	if bitboard.Between[square.A1][square.B3] != bitboard.Empty {
		t.Error("a1/b3 share no line, between should be empty")
	}
}

func TestKnightAttacksCorner(t *testing.T) {
	attacks := bitboard.KnightAttacks[square.A1]
	if attacks.Count() != 2 {
		t.Errorf("knight on a1 should have 2 attacks, got %d", attacks.Count())
	}
	if !attacks.IsSet(square.B3) || !attacks.IsSet(square.C2) {
		t.Error("knight on a1 should attack b3 and c2")
	}
}

func TestPawnAttacks(t *testing.T) {
	white := bitboard.PawnAttacks[0][square.E4]
	if !white.IsSet(square.D5) || !white.IsSet(square.F5) || white.Count() != 2 {
		t.Error("white pawn on e4 should attack d5 and f5")
	}

	black := bitboard.PawnAttacks[1][square.E4]
	if !black.IsSet(square.D3) || !black.IsSet(square.F3) || black.Count() != 2 {
		t.Error("black pawn on e4 should attack d3 and f3")
	}
}

func TestReverseInvolution(t *testing.T) {
	b := bitboard.Square(square.A1) | bitboard.Square(square.D4)
	if b.Reverse().Reverse() != b {
		t.Error("Reverse should be an involution")
	}
}
