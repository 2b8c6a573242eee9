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

package board_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// newStartPos builds the standard starting position directly through
// the board package's low-level placement API, independent of the fen
// package, so board tests don't depend on fen parsing correctness.
func newStartPos() *board.Board {
	b := board.New()

	back := []piece.Type{piece.Rook, piece.Knight, piece.Bishop, piece.Queen, piece.King, piece.Bishop, piece.Knight, piece.Rook}
	for f := square.FileA; f <= square.FileH; f++ {
		b.FillSquare(square.New(f, square.Rank1), piece.New(back[f], piece.White))
		b.FillSquare(square.New(f, square.Rank2), piece.New(piece.Pawn, piece.White))
		b.FillSquare(square.New(f, square.Rank7), piece.New(piece.Pawn, piece.Black))
		b.FillSquare(square.New(f, square.Rank8), piece.New(back[f], piece.Black))
	}

	b.SideToMove = piece.White
	b.CastlingRights = castling.All
	return b
}

func TestStartingPositionMoveCount(t *testing.T) {
	b := newStartPos()
	moves := b.GenerateMoves()
	if len(moves) != 20 {
		t.Errorf("starting position: got %d legal moves, want 20", len(moves))
	}
}

func TestMakeUnmakeRestoresHash(t *testing.T) {
	b := newStartPos()
	before := b.Hash

	moves := b.GenerateMoves()
	b.MakeMove(moves[0])
	if b.Hash == before {
		t.Fatal("hash should change after a move")
	}

	b.UnmakeMove()
	if b.Hash != before {
		t.Error("hash should be restored after unmake")
	}
	if b.SideToMove != piece.White {
		t.Error("side to move should be restored after unmake")
	}
}

func TestPinnedRookCannotLeaveRay(t *testing.T) {
	// king on e1, white rook on e2 pinned by black rook on e8.
	b := board.New()
	b.FillSquare(square.E1, piece.WhiteKing)
	b.FillSquare(square.E2, piece.WhiteRook)
	b.FillSquare(square.E8, piece.BlackRook)
	b.FillSquare(square.A8, piece.BlackKing)
	b.SideToMove = piece.White

	moves := b.GenerateMoves()
	for _, m := range moves {
		if m.From == square.E2 && m.To.File() != square.FileE {
			t.Errorf("pinned rook should not be able to move off the e-file, got move to %s", m.To)
		}
	}
}

// TestEnPassantDiscoveredCheckIsIllegal covers the classic double-pawn-
// removal edge case (§4.3, §4.4 edge cases): capturing en passant takes
// both the moving pawn and the captured pawn off the same rank at once,
// which can expose the king to a rook/queen pin along that rank even
// though neither pawn was itself pinned beforehand.
func TestEnPassantDiscoveredCheckIsIllegal(t *testing.T) {
	b := board.New()
	b.FillSquare(square.A5, piece.WhiteKing)
	b.FillSquare(square.E5, piece.WhitePawn)
	b.FillSquare(square.D5, piece.BlackPawn)
	b.FillSquare(square.H5, piece.BlackRook)
	b.FillSquare(square.H8, piece.BlackKing)
	b.SideToMove = piece.White
	b.EnPassantTarget = square.D6

	for _, m := range b.GenerateMoves() {
		if m.From == square.E5 && m.To == square.D6 {
			t.Error("en passant capture should be illegal: it discovers check from the h5 rook")
		}
	}
}

// TestCastlingThroughCheckIsIllegal covers §4.4's castling edge case:
// the king may not pass through or land on an attacked square, even
// though the rook's own path is otherwise clear.
func TestCastlingThroughCheckIsIllegal(t *testing.T) {
	b := board.New()
	b.FillSquare(square.E1, piece.WhiteKing)
	b.FillSquare(square.H1, piece.WhiteRook)
	b.FillSquare(square.F8, piece.BlackRook) // attacks f1, the king's transit square
	b.FillSquare(square.A8, piece.BlackKing)
	b.SideToMove = piece.White
	b.CastlingRights = castling.All

	for _, m := range b.GenerateMoves() {
		if m.From == square.E1 && m.To == square.G1 {
			t.Error("kingside castling should be illegal: f1 is attacked by the f8 rook")
		}
	}
}

// TestDoubleDiagonalCheckOnlyAllowsKingMoves covers double check by two
// diagonal sliders: a bishop and a queen checking the king along
// different diagonals must raise CheckN to 2 and restrict move
// generation to the king.
func TestDoubleDiagonalCheckOnlyAllowsKingMoves(t *testing.T) {
	b := board.New()
	b.FillSquare(square.E1, piece.WhiteKing)
	b.FillSquare(square.A1, piece.WhiteRook)
	b.FillSquare(square.A5, piece.BlackBishop) // checks e1 along the a5-e1 diagonal
	b.FillSquare(square.H4, piece.BlackQueen)  // checks e1 along the h4-e1 diagonal
	b.FillSquare(square.H8, piece.BlackKing)
	b.SideToMove = piece.White

	for _, m := range b.GenerateMoves() {
		if m.From != square.E1 {
			t.Errorf("double check should only allow king moves, got a move from %s", m.From)
		}
	}
}

func TestPerftDoesNotPanic(t *testing.T) {
	b := newStartPos()
	var count func(depth int) int
	count = func(depth int) int {
		if depth == 0 {
			return 1
		}
		nodes := 0
		for _, m := range b.GenerateMoves() {
			b.MakeMove(m)
			nodes += count(depth - 1)
			b.UnmakeMove()
		}
		return nodes
	}

	if got := count(2); got != 400 {
		t.Errorf("perft(2) from start position: got %d, want 400", got)
	}
}
