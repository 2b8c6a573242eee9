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

package eval

import (
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// homeSquares[c] is the pair of squares c's bishops and knights start
// on, used for the "still on home square" penalty.
var homeSquares = [piece.NColor]struct {
	knights, bishops bitboard.Board
}{
	piece.White: {
		knights: bitboard.Square(square.B1) | bitboard.Square(square.G1),
		bishops: bitboard.Square(square.C1) | bitboard.Square(square.F1),
	},
	piece.Black: {
		knights: bitboard.Square(square.B8) | bitboard.Square(square.G8),
		bishops: bitboard.Square(square.C8) | bitboard.Square(square.F8),
	},
}

// squareControlScore scores strong squares: squares covered by a
// friendly pawn and not by an enemy pawn, plus a further bonus for
// minor pieces actually parked on one.
func squareControlScore(b *board.Board) int {
	return squareControlFor(b, piece.White) - squareControlFor(b, piece.Black)
}

func squareControlFor(b *board.Board, us piece.Color) int {
	const strongSquareBonus = 20
	const minorOnStrongSquareBonus = 20

	them := us.Other()
	strong := pawnAttacks(b, us) &^ pawnAttacks(b, them)

	score := strongSquareBonus * strong.Count()

	minors := b.Knights(us) | b.Bishops(us)
	score += minorOnStrongSquareBonus * (minors & strong).Count()

	return score
}

// placementScore scores piece placement: home-square minors, the
// bishop pair, rooks/queens on the 7th rank or open files, and
// straight pieces stacked behind a passed pawn.
func placementScore(b *board.Board) int {
	return placementFor(b, piece.White) - placementFor(b, piece.Black)
}

func placementFor(b *board.Board, us piece.Color) int {
	const (
		homeSquarePenalty   = -15
		bishopPairBonus     = 20
		seventhRankBonus    = 30
		openFileBonus       = 35
		semiOpenFileBonus   = 25
		behindPassedBonus   = 20
	)

	score := 0

	home := homeSquares[us]
	score += homeSquarePenalty * (b.Knights(us) & home.knights).Count()
	score += homeSquarePenalty * (b.Bishops(us) & home.bishops).Count()

	if b.Bishops(us).Count() >= 2 {
		score += bishopPairBonus
	}

	seventhRank := bitboard.Ranks[square.Rank7]
	if us == piece.Black {
		seventhRank = bitboard.Ranks[square.Rank2]
	}

	ourPawns := b.Pawns(us)
	theirPawns := b.Pawns(us.Other())
	passed := passedPawns(b, us)

	for straight := b.Rooks(us) | b.Queens(us); straight != bitboard.Empty; {
		s := straight.Pop()

		if bitboard.Square(s)&seventhRank != bitboard.Empty {
			score += seventhRankBonus
		}

		file := bitboard.Files[s.File()]
		switch {
		case file&(ourPawns|theirPawns) == bitboard.Empty:
			score += openFileBonus
		case file&ourPawns == bitboard.Empty:
			score += semiOpenFileBonus
		}

		for p := passed; p != bitboard.Empty; {
			pawnSq := p.Pop()
			if bitboard.ForwardFileMask[us.Other()][pawnSq]&bitboard.Square(s) != bitboard.Empty &&
				s.File() == pawnSq.File() {
				score += behindPassedBonus
				break
			}
		}
	}

	return score
}

// passedPawns returns the set of c's pawns that have no enemy pawn
// blocking or guarding their path to promotion.
func passedPawns(b *board.Board, c piece.Color) bitboard.Board {
	them := c.Other()
	theirPawns := b.Pawns(them)

	var passed bitboard.Board
	for pawns := b.Pawns(c); pawns != bitboard.Empty; {
		s := pawns.Pop()
		if bitboard.PassedPawnMask[c][s]&theirPawns == bitboard.Empty {
			passed |= bitboard.Square(s)
		}
	}
	return passed
}
