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

package bitboard

import "github.com/corvidchess/corvid/pkg/square"

// file and rank masks.
const (
	FileA Board = 0x0101010101010101
	FileB Board = FileA << 1
	FileC Board = FileA << 2
	FileD Board = FileA << 3
	FileE Board = FileA << 4
	FileF Board = FileA << 5
	FileG Board = FileA << 6
	FileH Board = FileA << 7

	Rank1 Board = 0x00000000000000FF
	Rank2 Board = Rank1 << (8 * 1)
	Rank3 Board = Rank1 << (8 * 2)
	Rank4 Board = Rank1 << (8 * 3)
	Rank5 Board = Rank1 << (8 * 4)
	Rank6 Board = Rank1 << (8 * 5)
	Rank7 Board = Rank1 << (8 * 6)
	Rank8 Board = Rank1 << (8 * 7)

	LightSquares Board = 0x55AA55AA55AA55AA
	DarkSquares  Board = ^LightSquares

	Edges Board = FileA | FileH | Rank1 | Rank8
	Center Board = (FileD | FileE) & (Rank4 | Rank5)
)

// Files and Ranks index file/rank masks by square.File/square.Rank.
var (
	Files [square.FileN]Board
	Ranks [square.RankN]Board
)

func init() {
	fileMasks := [square.FileN]Board{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}
	rankMasks := [square.RankN]Board{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}
	Files = fileMasks
	Ranks = rankMasks
}

// AdjacentFiles[f] is the bitboard of files immediately next to file f,
// used by the pawn-structure evaluator to locate isolated/backward pawns.
var AdjacentFiles [square.FileN]Board

// KingAreas[c][s] is the 3x3 (or edge-clipped) block of squares around
// king square s, used for king safety scoring and mobility restriction.
var KingAreas [2][square.N]Board

// PassedPawnMask[c][s] is the set of squares that must be free of enemy
// pawns (on s's file and both adjacent files, ahead of s from c's view)
// for a pawn on s to be passed.
var PassedPawnMask [2][square.N]Board

// ForwardFileMask[c][s] is the set of squares ahead of s, on s's file,
// from color c's perspective. Used for doubled-pawn detection.
var ForwardFileMask [2][square.N]Board

// ForwardRanksMask[c][r] is the set of every square on a rank strictly
// ahead of rank r, from color c's perspective.
var ForwardRanksMask [2][square.RankN]Board

// Pyramid[c][s] is the set of squares from which a color-c pawn could
// eventually reach s: every square behind s (from c's perspective) on
// s's file or on a file within one step per rank travelled, since a
// pawn can only drift sideways via a diagonal capture on its way
// forward (§4.1). Used by the transposition table to purge entries
// whose recorded pawns could not have arrived on the live position's
// pawn squares (§4.6 "TT purging").
var Pyramid [2][square.N]Board

// Between[s1][s2] is the set of squares strictly between s1 and s2 if
// they share a rank, file, or diagonal, and Empty otherwise. Used by
// the pin/check analyzer (§4.3) to build restricted-move masks.
var Between [square.N][square.N]Board

// Line[s1][s2] is the full line (rank, file, or diagonal) through s1
// and s2, extended to the board edges, or Empty if they share none.
var Line [square.N][square.N]Board

func init() {
	for s := square.Square(0); s < square.N; s++ {
		f, r := s.File(), s.Rank()

		adj := Empty
		if f > square.FileA {
			adj |= Files[f-1]
		}
		if f < square.FileH {
			adj |= Files[f+1]
		}
		AdjacentFiles[f] = adj

		KingAreas[0][s] = kingArea(s)
		KingAreas[1][s] = kingArea(s)

		ForwardFileMask[0][s] = fileAhead(f, r, 1)
		ForwardFileMask[1][s] = fileAhead(f, r, -1)

		whiteAhead, blackAhead := fileAhead(f, r, 1), fileAhead(f, r, -1)
		PassedPawnMask[0][s] = whiteAhead | whiteAhead.East() | whiteAhead.West()
		PassedPawnMask[1][s] = blackAhead | blackAhead.East() | blackAhead.West()

		Pyramid[0][s] = pyramid(f, r, 1)
		Pyramid[1][s] = pyramid(f, r, -1)
	}

	for r := square.Rank(0); r < square.RankN; r++ {
		var white, black Board
		for rr := square.Rank(0); rr < square.RankN; rr++ {
			if rr > r {
				white |= Ranks[rr]
			}
			if rr < r {
				black |= Ranks[rr]
			}
		}
		ForwardRanksMask[0][r] = white
		ForwardRanksMask[1][r] = black
	}

	for s1 := square.Square(0); s1 < square.N; s1++ {
		for s2 := square.Square(0); s2 < square.N; s2++ {
			Between[s1][s2] = between(s1, s2)
			Line[s1][s2] = line(s1, s2)
		}
	}
}

func kingArea(s square.Square) Board {
	b := Square(s)
	area := b | b.East() | b.West()
	area |= area.North() | area.South()
	return area
}

// fileAhead returns the squares on file f strictly ahead of rank r, in
// direction dir (+1 for white's forward, -1 for black's).
func fileAhead(f square.File, r square.Rank, dir int) Board {
	var b Board
	for rr := int(r) + dir; rr >= 0 && rr < int(square.RankN); rr += dir {
		b |= Square(square.New(f, square.Rank(rr)))
	}
	return b
}

// pyramid computes the backward cone of origin squares for a color-dir
// pawn reaching (f, r): every square dist ranks behind, drifted at most
// dist files either way, widening by one file per rank as the pawn
// advances (dir +1 for white, -1 for black).
func pyramid(f square.File, r square.Rank, dir int) Board {
	var b Board
	for dist := 0; ; dist++ {
		rr := int(r) - dist*dir
		if rr < 0 || rr >= int(square.RankN) {
			break
		}
		for df := -dist; df <= dist; df++ {
			ff := int(f) + df
			if ff < 0 || ff >= int(square.FileN) {
				continue
			}
			b.Set(square.New(square.File(ff), square.Rank(rr)))
		}
	}
	return b
}

// between computes the open interval of squares strictly between s1 and
// s2 along a shared rank, file, or diagonal, by repeated Kogge-Stone
// style stepping in the direction from s1 to s2.
func between(s1, s2 square.Square) Board {
	if s1 == s2 {
		return Empty
	}

	df := int(s2.File()) - int(s1.File())
	dr := int(s2.Rank()) - int(s1.Rank())

	switch {
	case dr == 0:
		return rayBetween(s1, s2, func(b Board) Board {
			if df > 0 {
				return b.East()
			}
			return b.West()
		})
	case df == 0:
		return rayBetween(s1, s2, func(b Board) Board {
			if dr > 0 {
				return b.North()
			}
			return b.South()
		})
	case df == dr:
		return rayBetween(s1, s2, func(b Board) Board {
			if df > 0 {
				return b.NorthEast()
			}
			return b.SouthWest()
		})
	case df == -dr:
		return rayBetween(s1, s2, func(b Board) Board {
			if df > 0 {
				return b.SouthEast()
			}
			return b.NorthWest()
		})
	default:
		return Empty
	}
}

func rayBetween(s1, s2 square.Square, step func(Board) Board) Board {
	var b Board
	cur := step(Square(s1))
	for cur != Empty && cur != Square(s2) {
		b |= cur
		cur = step(cur)
	}
	if cur != Square(s2) {
		return Empty
	}
	return b
}

// line returns the full rank/file/diagonal through s1 and s2, extended
// to both board edges, or Empty if the two squares share none.
func line(s1, s2 square.Square) Board {
	if s1 == s2 {
		return Empty
	}

	switch {
	case s1.Rank() == s2.Rank():
		return Ranks[s1.Rank()]
	case s1.File() == s2.File():
		return Files[s1.File()]
	case s1.Diagonal() == s2.Diagonal():
		return diagonalMask(s1.Diagonal(), true)
	case s1.AntiDiagonal() == s2.AntiDiagonal():
		return diagonalMask(s1.AntiDiagonal(), false)
	default:
		return Empty
	}
}

func diagonalMask(index int, main bool) Board {
	var b Board
	for s := square.Square(0); s < square.N; s++ {
		if main {
			if int(s.Diagonal()) == index {
				b.Set(s)
			}
		} else if int(s.AntiDiagonal()) == index {
			b.Set(s)
		}
	}
	return b
}
