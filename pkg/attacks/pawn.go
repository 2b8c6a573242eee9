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

// Pawn returns the full pseudo-legal move set of a color-c pawn on s:
// the single push, the double push from the home rank, and diagonal
// captures of enemy pieces or the en-passant target ep (square.None if
// none is available).
func Pawn(s square.Square, ep square.Square, c piece.Color, friends, enemies bitboard.Board) bitboard.Board {
	occupied := friends | enemies
	targets := enemies
	if ep != square.None {
		targets.Set(ep)
	}

	single := bitboard.Square(s).Up(c) &^ occupied

	var double bitboard.Board
	homeRank := bitboard.Rank2
	if c == piece.Black {
		homeRank = bitboard.Rank7
	}
	if single != bitboard.Empty && bitboard.Square(s)&homeRank != bitboard.Empty {
		double = single.Up(c) &^ occupied
	}

	return single | double | (bitboard.PawnAttacks[c][s] & targets)
}

// PawnPushes returns only the forward push squares (no captures) of a
// color-c pawn on s.
func PawnPushes(s square.Square, c piece.Color, occupied bitboard.Board) bitboard.Board {
	single := bitboard.Square(s).Up(c) &^ occupied
	if single == bitboard.Empty {
		return bitboard.Empty
	}

	homeRank := bitboard.Rank2
	if c == piece.Black {
		homeRank = bitboard.Rank7
	}
	if bitboard.Square(s)&homeRank == bitboard.Empty {
		return single
	}

	return single | (single.Up(c) &^ occupied)
}
