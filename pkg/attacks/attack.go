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

package attacks

import (
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// Of dispatches to the attack-set generator for piece type t standing
// on s, given the full occupancy of the board and the friendly-piece
// set to exclude from the result. Pawns are handled by PawnCaptures
// since their push is not an attack.
func Of(t piece.Type, s square.Square, c piece.Color, occupied, friends bitboard.Board) bitboard.Board {
	switch t {
	case piece.Pawn:
		return PawnCaptures(s, c, friends)
	case piece.Knight:
		return Knight(s, friends)
	case piece.Bishop:
		return Bishop(s, occupied, friends)
	case piece.Rook:
		return Rook(s, occupied, friends)
	case piece.Queen:
		return Queen(s, occupied, friends)
	case piece.King:
		return King(s, friends)
	default:
		return bitboard.Empty
	}
}

// AttackersTo returns the set of color-c pieces, given the piece
// bitboards in pieces (indexed by piece.Type, piece.Pawn..piece.King),
// that attack square s on a board with the given full occupancy. This
// is the "square attacked by color" primitive the check/pin analyzer
// (§4.3) and castling-through-check legality test are built from.
func AttackersTo(s square.Square, c piece.Color, occupied bitboard.Board, pieces [piece.TypeN]bitboard.Board) bitboard.Board {
	var attackers bitboard.Board

	attackers |= bitboard.PawnAttacks[c.Other()][s] & pieces[piece.Pawn]
	attackers |= bitboard.KnightAttacks[s] & pieces[piece.Knight]
	attackers |= bitboard.KingAttacks[s] & pieces[piece.King]

	diagonal := bitboard.BishopSpan(bitboard.Square(s), occupied)
	attackers |= diagonal & (pieces[piece.Bishop] | pieces[piece.Queen])

	straight := bitboard.RookSpan(bitboard.Square(s), occupied)
	attackers |= straight & (pieces[piece.Rook] | pieces[piece.Queen])

	return attackers
}
