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
	"github.com/corvidchess/corvid/pkg/square"
)

// Bishop returns the bishop's attack set from s given the full board's
// occupancy, excluding friendly squares, computed via the diagonal
// Kogge-Stone occluded fill.
func Bishop(s square.Square, occupied, friends bitboard.Board) bitboard.Board {
	return bitboard.BishopSpan(bitboard.Square(s), occupied) &^ friends
}

// Rook returns the rook's attack set from s, excluding friendly
// squares, via the straight Kogge-Stone occluded fill.
func Rook(s square.Square, occupied, friends bitboard.Board) bitboard.Board {
	return bitboard.RookSpan(bitboard.Square(s), occupied) &^ friends
}

// Queen returns the union of Bishop and Rook's attack sets from s.
func Queen(s square.Square, occupied, friends bitboard.Board) bitboard.Board {
	return bitboard.QueenSpan(bitboard.Square(s), occupied) &^ friends
}
