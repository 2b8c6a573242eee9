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

// Package attacks implements attack-set generation for every piece
// type, built on the bitboard package's precomputed leaper tables and
// Kogge-Stone occluded fills for sliding pieces, per the data model's
// attack-generation primitive (§4.1).
package attacks

import (
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// King returns the king's attack set from s, excluding friendly
// squares. Castling is not modeled here: it is a pseudo-move, not an
// attack, and is generated directly by the board package.
func King(s square.Square, friends bitboard.Board) bitboard.Board {
	return bitboard.KingAttacks[s] &^ friends
}

// Knight returns the knight's attack set from s, excluding friendly
// squares.
func Knight(s square.Square, friends bitboard.Board) bitboard.Board {
	return bitboard.KnightAttacks[s] &^ friends
}

// PawnCaptures returns the squares a color-c pawn on s attacks
// diagonally (whether or not they are currently occupied), excluding
// friendly squares.
func PawnCaptures(s square.Square, c piece.Color, friends bitboard.Board) bitboard.Board {
	return bitboard.PawnAttacks[c][s] &^ friends
}
