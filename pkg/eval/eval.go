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

// Package eval implements the static position evaluator (§4.5): a
// symmetric, feature-based scoring function consumed by the search's
// leaf and quiescence nodes. The returned value is always relative to
// the side to move (positive is good for whoever moves next), matching
// the negamax convention the search is built around.
package eval

import (
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
)

// Mate is the base magnitude of a checkmate score. A mate found with bk
// plies of search depth still remaining at the mated node (bk_depth)
// scores Mate+bk, so that shallower mates, found with more depth left,
// are always preferred over deeper ones regardless of how the rest of
// the tree scores.
const Mate = 10000

// material value of each piece type, in centipawns.
var materialValue = [piece.TypeN]int{
	piece.Pawn:   100,
	piece.Knight: 400,
	piece.Bishop: 400,
	piece.Rook:   600,
	piece.Queen:  1100,
}

// perspective bundles the legal moves and move-generation scratch state
// computed for one color to move, used so mobility, pin and check
// features can be read for both colors without permanently mutating b.
type perspective struct {
	moves  []move.Move
	pinned bitboard.Board
	checkN int
}

// evaluateAs temporarily sets b's side to move to c, runs move
// generation to populate the scratch fields for c's perspective, reads
// off what the evaluator needs, and returns the board's side to move to
// whatever it was before the call.
func evaluateAs(b *board.Board, c piece.Color) perspective {
	orig := b.SideToMove
	b.SideToMove = c
	moves := b.GenerateMoves()
	p := perspective{
		moves:  moves,
		pinned: b.PinnedStraight | b.PinnedDiagonal,
		checkN: b.CheckN,
	}
	b.SideToMove = orig
	return p
}

// Evaluate returns the static evaluation of b from the perspective of
// the side to move, or the terminal score if the side to move has no
// legal moves. bkDepth is the remaining search depth at this node
// (backward depth, counted down from the root), used to prefer
// shallower mates over deeper ones.
func Evaluate(b *board.Board, bkDepth int) int {
	if b.IsDraw() {
		return 0
	}

	us := b.SideToMove

	white := evaluateAs(b, piece.White)
	black := evaluateAs(b, piece.Black)

	// evaluateAs always restores b.SideToMove, but GenerateMoves was
	// last run for black's perspective; refresh the scratch state one
	// final time so the board is left consistent with the real side to
	// move for whatever runs after Evaluate returns.
	b.SideToMove = us
	b.GenerateMoves()

	ours := white
	if us == piece.Black {
		ours = black
	}

	if len(ours.moves) == 0 {
		if ours.checkN > 0 {
			return -(Mate + bkDepth)
		}
		return 0
	}

	score := materialScore(b) +
		mobilityScore(b, white, black) +
		pawnStructureScore(b) +
		squareControlScore(b) +
		placementScore(b) +
		kingSafetyScore(b, us) +
		pinsScore(white, black)

	if us == piece.Black {
		score = -score
	}
	return score
}

// materialScore returns white's material total minus black's.
func materialScore(b *board.Board) int {
	score := 0
	for t := piece.Pawn; t <= piece.Queen; t++ {
		white := (b.PieceBBs[t] & b.ColorBBs[piece.White]).Count()
		black := (b.PieceBBs[t] & b.ColorBBs[piece.Black]).Count()
		score += materialValue[t] * (white - black)
	}
	return score
}

// mobilityScore returns the legal-move-count difference plus the
// king-queen "ghost mobility" penalty for exposed kings.
func mobilityScore(b *board.Board, white, black perspective) int {
	score := len(white.moves) - len(black.moves)
	score -= 2 * (ghostMobility(b, piece.White) - ghostMobility(b, piece.Black))
	return score
}

// ghostMobility counts the empty squares a queen placed on c's king
// square could reach, a proxy for how exposed that king currently is.
func ghostMobility(b *board.Board, c piece.Color) int {
	king := b.King(c)
	occupied := b.AllOccupied()
	reach := bitboard.QueenSpan(king, occupied) &^ occupied
	return reach.Count()
}

// pinsScore penalizes each side for its own pinned pieces.
func pinsScore(white, black perspective) int {
	const pinPenalty = 20
	return pinPenalty * (black.pinned.Count() - white.pinned.Count())
}

// kingSafetyScore scores castling status (symmetric, white minus black)
// plus the opposition bonus, which is asymmetric and applied only to
// the side to move.
func kingSafetyScore(b *board.Board, us piece.Color) int {
	const castleMadeBonus = 30
	const rightsLostPenalty = 60
	const oppositionBonus = 15

	score := 0
	if b.CastlingRights.HasCastled(piece.White) {
		score += castleMadeBonus
	}
	if b.CastlingRights.RightsLost(piece.White) {
		score -= rightsLostPenalty
	}
	if b.CastlingRights.HasCastled(piece.Black) {
		score -= castleMadeBonus
	}
	if b.CastlingRights.RightsLost(piece.Black) {
		score += rightsLostPenalty
	}

	if kingsInOpposition(b) {
		if us == piece.White {
			score += oppositionBonus
		} else {
			score -= oppositionBonus
		}
	}

	return score
}

// kingsInOpposition reports whether the two kings face each other with
// a single square between them on the same file, rank or diagonal.
func kingsInOpposition(b *board.Board) bool {
	white := b.King(piece.White).FirstOne()
	black := b.King(piece.Black).FirstOne()
	between := bitboard.Between[white][black]
	return between.Count() == 1 && bitboard.Line[white][black] != bitboard.Empty
}
