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
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
	"github.com/corvidchess/corvid/pkg/zobrist"
)

// PlayNull passes the side to move's turn without moving a piece, the
// "null move" null-move pruning searches after (§4.6 step 3). It is
// recorded on the history stack like any other move so UnmakeNull can
// restore the prior en-passant target and draw clock.
func (b *Board) PlayNull() {
	b.History = append(b.History, Undo{
		Move:            move.Null,
		CastlingRights:  b.CastlingRights,
		EnPassantTarget: b.EnPassantTarget,
		DrawClock:       b.DrawClock,
		Hash:            b.Hash,
	})

	if b.EnPassantTarget != square.None {
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
		b.EnPassantTarget = square.None
	}

	b.DrawClock++
	b.Plys++
	b.SideToMove = b.SideToMove.Other()
	b.Hash ^= zobrist.SideToMove
}

// UnmakeNull reverses the most recently played PlayNull.
func (b *Board) UnmakeNull() {
	n := len(b.History)
	undo := b.History[n-1]
	b.History = b.History[:n-1]

	b.Plys--
	b.SideToMove = b.SideToMove.Other()
	b.EnPassantTarget = undo.EnPassantTarget
	b.DrawClock = undo.DrawClock
	b.Hash = undo.Hash
}

// IsEndgame reports whether the position has at most maxPieces
// non-pawn, non-king pieces remaining, the condition null-move pruning
// uses to avoid the zugzwang positions bare endgames are prone to
// (§4.6 step 3).
func (b *Board) IsEndgame(maxPieces int) bool {
	minor := b.PieceBBs[piece.Knight].Count() + b.PieceBBs[piece.Bishop].Count()
	major := b.PieceBBs[piece.Rook].Count() + b.PieceBBs[piece.Queen].Count()
	return minor+major <= maxPieces
}

// PieceCounts returns the number of pieces of each color and type on
// the board, the fingerprint the transposition table uses to purge
// entries unreachable from a later position (§4.6 "TT purging").
func (b *Board) PieceCounts() [piece.NColor][piece.TypeN]int {
	var counts [piece.NColor][piece.TypeN]int
	for c := piece.Color(0); c < piece.NColor; c++ {
		for typ := piece.Pawn; typ < piece.TypeN; typ++ {
			counts[c][typ] = (b.PieceBBs[typ] & b.ColorBBs[c]).Count()
		}
	}
	return counts
}

// PawnBBs returns each color's pawn bitboard, the fingerprint the
// transposition table checks against the pawn-pyramid lookup to purge
// entries whose pawns could not have reached the live position's pawn
// squares (§4.6 "TT purging").
func (b *Board) PawnBBs() [piece.NColor]bitboard.Board {
	var pawns [piece.NColor]bitboard.Board
	for c := piece.Color(0); c < piece.NColor; c++ {
		pawns[c] = b.PieceBBs[piece.Pawn] & b.ColorBBs[c]
	}
	return pawns
}
