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

// pawnAttacks returns the union of squares attacked by every pawn of
// color c.
func pawnAttacks(b *board.Board, c piece.Color) bitboard.Board {
	var attacked bitboard.Board
	for pawns := b.Pawns(c); pawns != bitboard.Empty; {
		s := pawns.Pop()
		attacked |= bitboard.PawnAttacks[c][s]
	}
	return attacked
}

// pawnStructureScore sums the isolated, doubled, phalanx, passed and
// backward pawn terms, white minus black.
func pawnStructureScore(b *board.Board) int {
	return pawnStructureFor(b, piece.White) - pawnStructureFor(b, piece.Black)
}

func pawnStructureFor(b *board.Board, us piece.Color) int {
	const (
		isolatedPenalty         = -10
		isolatedSemiOpenPenalty = -10
		doubledPenalty          = -5
		phalanxBonus            = 20
		blockedPassedPenalty    = -15
		backwardStrongBonus     = 10
	)

	them := us.Other()
	ourPawns := b.Pawns(us)
	theirPawns := b.Pawns(them)
	ourAttacks := pawnAttacks(b, us)
	theirAttacks := pawnAttacks(b, them)

	score := 0

	for file := square.FileA; file <= square.FileH; file++ {
		onFile := ourPawns & bitboard.Files[file]
		n := onFile.Count()
		if n == 0 {
			continue
		}

		if n > 1 {
			score += doubledPenalty * (n - 1)
		}

		if bitboard.AdjacentFiles[file]&ourPawns == bitboard.Empty {
			score += isolatedPenalty
			if bitboard.Files[file]&theirPawns == bitboard.Empty {
				score += isolatedSemiOpenPenalty
			}
		}
	}

	// phalanx: pawns standing side by side on the same rank, counted once
	// per adjacent pair via the east-neighbor test.
	phalanxPairs := ourPawns & ourPawns.East()
	score += phalanxBonus * phalanxPairs.Count()

	occupied := b.AllOccupied()
	strongSquares := ourAttacks &^ theirAttacks

	for pawns := ourPawns; pawns != bitboard.Empty; {
		s := pawns.Pop()

		if bitboard.PassedPawnMask[us][s]&theirPawns == bitboard.Empty {
			if bitboard.Square(s).Up(us)&occupied != bitboard.Empty {
				score += blockedPassedPenalty
			} else {
				score += passedPawnBonus(us, s)
			}
			continue
		}

		if isBackward(b, us, s) && bitboard.Square(s).Up(us)&strongSquares != bitboard.Empty {
			score += backwardStrongBonus
		}
	}

	return score
}

// passedPawnBonus scores a passed pawn by its distance to the
// promotion square: closer is worth more.
func passedPawnBonus(us piece.Color, s square.Square) int {
	rank := s.Rank()
	distance := int(square.Rank8 - rank)
	if us == piece.Black {
		distance = int(rank)
	}
	// distance ranges 0 (on the promotion square, impossible) to 6.
	return (7 - distance) * 8
}

// isBackward reports whether the pawn on s has no friendly pawn on an
// adjacent file at the same rank or behind, and cannot safely advance
// because the square ahead of it is covered by an enemy pawn.
func isBackward(b *board.Board, us piece.Color, s square.Square) bool {
	them := us.Other()
	ourPawns := b.Pawns(us)
	theirAttacks := pawnAttacks(b, them)

	adjacent := bitboard.AdjacentFiles[s.File()]
	behindAndAdjacent := adjacent & (bitboard.ForwardRanksMask[them][s.Rank()] | bitboard.Ranks[s.Rank()])
	if behindAndAdjacent&ourPawns != bitboard.Empty {
		return false
	}

	ahead := bitboard.Square(s).Up(us)
	return ahead&theirAttacks != bitboard.Empty
}
