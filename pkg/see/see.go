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

// Package see implements static exchange evaluation: the material
// result of a sequence of captures on a single square, played out to
// the smallest attacker each side has left. Used by move ordering
// (§4.6.7) to gate captures into "good" and "bad" buckets without
// having to actually search the exchange.
package see

import (
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// Values gives the material value of each piece type for exchange
// purposes, in the same centipawn scale the evaluator uses (§4.5).
var Values = [piece.TypeN]int{
	piece.None:   0,
	piece.Pawn:   100,
	piece.Knight: 320,
	piece.Bishop: 330,
	piece.Rook:   500,
	piece.Queen:  900,
	piece.King:   20000,
}

// pieceSets is a scratch copy of per-color, per-type piece bitboards,
// mutated as the simulated exchange removes attackers.
type pieceSets [piece.NColor][piece.TypeN]bitboard.Board

// Of evaluates the exchange started by playing m on b, returning the
// net material gain (in centipawns) for the side that plays m, assuming
// both sides recapture with their least valuable attacker until the
// square is no longer attacked or a side declines because the
// exchange has turned unfavorable.
func Of(b *board.Board, m move.Move) int {
	target := m.To
	occupied := b.AllOccupied() &^ bitboard.Square(m.From)

	pieces := extractPieceSets(b)
	pieces[m.FromPiece.Color()][m.FromPiece.Type()] &^= bitboard.Square(m.From)

	captured := m.CapturedPiece
	if m.IsEnPassant() {
		capSq := m.EnPassantCapturedSquare()
		occupied &^= bitboard.Square(capSq)
		pieces[m.FromPiece.Color().Other()][piece.Pawn] &^= bitboard.Square(capSq)
		captured = piece.New(piece.Pawn, m.FromPiece.Color().Other())
	}

	var gains [32]int
	depth := 0
	gains[0] = Values[captured.Type()]
	attackerValue := Values[m.FromPiece.Type()]

	side := m.FromPiece.Color().Other()

	for depth < len(gains)-1 {
		attackers := attacksTo(target, occupied, pieces) & colorOccupancy(pieces, side)
		if attackers == bitboard.Empty {
			break
		}

		from, capturedType := leastValuableAttacker(attackers, pieces, side)

		depth++
		gains[depth] = attackerValue - gains[depth-1]

		occupied &^= bitboard.Square(from)
		pieces[side][capturedType] &^= bitboard.Square(from)
		attackerValue = Values[capturedType]

		side = side.Other()
	}

	for depth > 0 {
		if -gains[depth] < gains[depth-1] {
			gains[depth-1] = -gains[depth]
		}
		depth--
	}

	return gains[0]
}

func extractPieceSets(b *board.Board) pieceSets {
	var sets pieceSets
	for c := piece.White; c <= piece.Black; c++ {
		sets[c][piece.Pawn] = b.Pawns(c)
		sets[c][piece.Knight] = b.Knights(c)
		sets[c][piece.Bishop] = b.Bishops(c)
		sets[c][piece.Rook] = b.Rooks(c)
		sets[c][piece.Queen] = b.Queens(c)
		sets[c][piece.King] = b.King(c)
	}
	return sets
}

func colorOccupancy(pieces pieceSets, c piece.Color) bitboard.Board {
	var occ bitboard.Board
	for t := piece.Pawn; t <= piece.King; t++ {
		occ |= pieces[c][t]
	}
	return occ
}

// attacksTo recomputes, from scratch against the given occupancy, the
// set of pieces (of either color, found in pieces) attacking s. It must
// be recomputed on every exchange step rather than cached, since
// removing a blocker can expose a new sliding attacker (the classic
// rook-behind-rook x-ray).
func attacksTo(s square.Square, occupied bitboard.Board, pieces pieceSets) bitboard.Board {
	var attackers bitboard.Board

	attackers |= bitboard.PawnAttacks[piece.Black][s] & pieces[piece.White][piece.Pawn]
	attackers |= bitboard.PawnAttacks[piece.White][s] & pieces[piece.Black][piece.Pawn]
	attackers |= bitboard.KnightAttacks[s] & (pieces[piece.White][piece.Knight] | pieces[piece.Black][piece.Knight])
	attackers |= bitboard.KingAttacks[s] & (pieces[piece.White][piece.King] | pieces[piece.Black][piece.King])

	diagonal := bitboard.BishopSpan(bitboard.Square(s), occupied)
	attackers |= diagonal & (pieces[piece.White][piece.Bishop] | pieces[piece.White][piece.Queen] |
		pieces[piece.Black][piece.Bishop] | pieces[piece.Black][piece.Queen])

	straight := bitboard.RookSpan(bitboard.Square(s), occupied)
	attackers |= straight & (pieces[piece.White][piece.Rook] | pieces[piece.White][piece.Queen] |
		pieces[piece.Black][piece.Rook] | pieces[piece.Black][piece.Queen])

	return attackers
}

// leastValuableAttacker picks the cheapest piece of color c within
// attackers, returning its square and type.
func leastValuableAttacker(attackers bitboard.Board, pieces pieceSets, c piece.Color) (square.Square, piece.Type) {
	for t := piece.Pawn; t <= piece.King; t++ {
		if bb := attackers & pieces[c][t]; bb != bitboard.Empty {
			return bb.FirstOne(), t
		}
	}
	panic("see: leastValuableAttacker called with no attackers")
}
