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

// Package zobrist implements incremental Zobrist hashing of board
// positions (§3, §4.2): a position's hash is the xor of independent
// random keys for each occupied (piece, square) pair, the en-passant
// file if any, the side to move, and the FEN-visible castling rights.
package zobrist

import (
	"github.com/corvidchess/corvid/internal/util"
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// Key is a single Zobrist hash value.
type Key uint64

// PieceSquare[p][s] is the key for piece p standing on square s.
var PieceSquare [piece.N][square.N]Key

// EnPassant[f] is the key for an en-passant target on file f.
var EnPassant [square.FileN]Key

// Castling[r] is the key for the FEN-visible castling-rights value r
// (the low nibble of castling.Rights; auxiliary bits never enter the
// hash).
var Castling [castling.N]Key

// SideToMove is xored in whenever it is Black's turn to move.
var SideToMove Key

func init() {
	var rng util.PRNG
	rng.Seed(1070372) // seed used by Stockfish

	for p := 0; p < piece.N; p++ {
		for s := square.Square(0); s < square.N; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}

	for f := square.FileA; f <= square.FileH; f++ {
		EnPassant[f] = Key(rng.Uint64())
	}

	for r := 0; r < castling.N; r++ {
		Castling[r] = Key(rng.Uint64())
	}

	SideToMove = Key(rng.Uint64())
}

// State holds a running position hash over the (piece, square,
// color-to-move, en-passant file, castling rights) keys, for use by
// callers building up a position hash incrementally or from scratch.
type State struct {
	Hash Key
}

// Toggle xors the piece-square key for p on s into the running hash,
// used identically on placement and removal since xor is self-inverse.
func (s *State) Toggle(p piece.Piece, sq square.Square) {
	s.Hash ^= PieceSquare[p][sq]
}

// ToggleSideToMove flips the side-to-move key.
func (s *State) ToggleSideToMove() {
	s.Hash ^= SideToMove
}

// SetEnPassant xors in the keys needed to move the en-passant file from
// "from" (square.FileN if none) to "to".
func (s *State) SetEnPassant(from, to square.File) {
	if from != square.FileN {
		s.Hash ^= EnPassant[from]
	}
	if to != square.FileN {
		s.Hash ^= EnPassant[to]
	}
}

// SetCastling xors in the keys needed to move the FEN-visible castling
// rights from "from" to "to".
func (s *State) SetCastling(from, to castling.Rights) {
	s.Hash ^= Castling[from&castling.All]
	s.Hash ^= Castling[to&castling.All]
}
