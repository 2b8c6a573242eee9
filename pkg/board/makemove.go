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

package board

import (
	"fmt"

	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
	"github.com/corvidchess/corvid/pkg/zobrist"
)

// MakeMove plays m if it is a member of b.GenerateMoves() (matched by
// from, to and resulting piece), and returns an error without touching
// the board otherwise; this is the trust boundary (§4.2, §7). The
// search and perft-style internals, which only ever construct moves by
// generation, call Play instead to skip the redundant membership check.
func (b *Board) MakeMove(m move.Move) error {
	legal := false
	for _, candidate := range b.GenerateMoves() {
		if candidate.From == m.From && candidate.To == m.To && candidate.ToPiece == m.ToPiece {
			m = candidate
			legal = true
			break
		}
	}
	if !legal {
		return fmt.Errorf("board: illegal move %s", m)
	}

	b.makeMoveInternal(m)
	return nil
}

// Play applies m without the legality re-check MakeMove performs,
// for trusted callers (search, perft) that only ever construct moves
// by calling GenerateMoves on b's current position.
func (b *Board) Play(m move.Move) {
	b.makeMoveInternal(m)
}

// makeMoveInternal applies m without validating its legality; callers
// must guarantee m was produced by GenerateMoves on the current
// position.
func (b *Board) makeMoveInternal(m move.Move) {
	b.History = append(b.History, Undo{
		Move:            m,
		CastlingRights:  b.CastlingRights,
		CapturedPiece:   m.CapturedPiece,
		EnPassantTarget: b.EnPassantTarget,
		DrawClock:       b.DrawClock,
		Hash:            b.Hash,
	})

	us := b.SideToMove
	them := us.Other()

	prevEPFile := square.File(square.FileN)
	if b.EnPassantTarget != square.None {
		prevEPFile = b.EnPassantTarget.File()
	}

	switch {
	case m.IsEnPassant():
		b.ClearSquare(m.EnPassantCapturedSquare())
	case m.IsCapture():
		b.ClearSquare(m.To)
	}

	b.ClearSquare(m.From)
	b.FillSquare(m.To, m.ToPiece)

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(m.To)
		rook := b.Position[rookFrom]
		b.ClearSquare(rookFrom)
		b.FillSquare(rookTo, rook)
		b.CastlingRights = b.CastlingRights.MarkCastled(us)
	}

	prevRights := b.CastlingRights
	b.CastlingRights &^= m.CastlingRightUpdates()
	if prevRights.Side(us) != castling.None && b.CastlingRights.Side(us) == castling.None && !b.CastlingRights.HasCastled(us) {
		b.CastlingRights = b.CastlingRights.MarkRightsLost(us)
	}
	b.Hash ^= zobrist.Castling[prevRights&castling.All]
	b.Hash ^= zobrist.Castling[b.CastlingRights&castling.All]

	if m.IsDoublePawnPush() {
		b.EnPassantTarget = square.New(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
	} else {
		b.EnPassantTarget = square.None
	}
	if prevEPFile != square.FileN {
		b.Hash ^= zobrist.EnPassant[prevEPFile]
	}

	if m.IsReversible() {
		b.DrawClock++
	} else {
		b.DrawClock = 0
	}

	if us == piece.Black {
		b.FullMoves++
	}

	b.Plys++
	b.SideToMove = them
	b.Hash ^= zobrist.SideToMove
}

// UnmakeMove reverses the most recently played move, restoring the
// prior position exactly, including castling rights, en-passant
// target, draw clock, and Zobrist hash (§4.2). It panics if no move has
// been played, which indicates a caller bug (make/unmake calls must be
// balanced).
func (b *Board) UnmakeMove() {
	n := len(b.History)
	undo := b.History[n-1]
	b.History = b.History[:n-1]

	m := undo.Move
	them := b.SideToMove
	us := them.Other()

	b.Plys--
	if us == piece.Black {
		b.FullMoves--
	}

	b.ClearSquare(m.To)
	b.FillSquare(m.From, m.FromPiece)

	switch {
	case m.IsEnPassant():
		b.FillSquare(m.EnPassantCapturedSquare(), piece.New(piece.Pawn, them))
	case m.IsCapture():
		b.FillSquare(m.To, undo.CapturedPiece)
	}

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(m.To)
		rook := b.Position[rookTo]
		b.ClearSquare(rookTo)
		b.FillSquare(rookFrom, rook)
	}

	b.CastlingRights = undo.CastlingRights
	b.EnPassantTarget = undo.EnPassantTarget
	b.DrawClock = undo.DrawClock
	b.Hash = undo.Hash
	b.SideToMove = us
}

// castleRookSquares returns the rook's source and destination squares
// for a castling move whose king lands on kingTo.
func castleRookSquares(kingTo square.Square) (from, to square.Square) {
	switch kingTo {
	case square.G1:
		return square.H1, square.F1
	case square.C1:
		return square.A1, square.D1
	case square.G8:
		return square.H8, square.F8
	case square.C8:
		return square.A8, square.D8
	default:
		panic("board: castleRookSquares called on non-castling destination")
	}
}
