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

package search

import (
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/see"
)

// move ordering tiers (§4.6 step 7), highest first: the transposition
// table's suggested move, promotions, winning or equal captures,
// killer moves, castles, history-ordered quiets, and finally losing
// captures (tried last instead of skipped, since search correctness
// still needs every legal move visited outside of pruning).
const (
	scoreTT        = 1_000_000
	scorePromotion = 900_000
	scoreGoodNoisy = 800_000
	scoreKiller0   = 700_000
	scoreKiller1   = 690_000
	scoreCastle    = 600_000
	scoreQuiet     = 0
	scoreBadNoisy  = -800_000
)

// scoredMove is a legal move paired with its move-ordering score.
type scoredMove struct {
	move.Move
	score int
}

// orderMoves scores every legal move in moves for search at plys,
// preferring ttMove, then promotions and good captures (MVV-LVA, every
// capture split into good and bad by static exchange evaluation),
// then killers, then castles, then quiets ranked by history score.
func (s *Context) orderMoves(b *board.Board, moves []move.Move, ttMove move.Move, plys int) []scoredMove {
	us := b.SideToMove
	scored := make([]scoredMove, len(moves))

	for i, m := range moves {
		scored[i] = scoredMove{Move: m, score: s.scoreMove(b, m, ttMove, us, plys)}
	}
	return scored
}

func (s *Context) scoreMove(b *board.Board, m, ttMove move.Move, us piece.Color, plys int) int {
	switch {
	case m == ttMove:
		return scoreTT

	case m.IsPromotion():
		return scorePromotion + see.Values[m.ToPiece.Type()]

	case m.IsCapture():
		gain := see.Of(b, m)
		mvvLva := see.Values[m.CapturedPiece.Type()]*16 - see.Values[m.FromPiece.Type()]
		if gain >= 0 {
			return scoreGoodNoisy + mvvLva
		}
		return scoreBadNoisy + mvvLva

	case m == s.killers[plys][0]:
		return scoreKiller0
	case m == s.killers[plys][1]:
		return scoreKiller1

	case m.IsCastle():
		return scoreCastle

	default:
		return scoreQuiet + int(s.history[us][m.From][m.To])
	}
}

// pickMove selects the highest-scoring move among scored[start:] and
// swaps it into position start, an incremental selection sort that
// avoids sorting moves that a beta cutoff will mean are never tried.
func pickMove(scored []scoredMove, start int) move.Move {
	best := start
	for i := start + 1; i < len(scored); i++ {
		if scored[i].score > scored[best].score {
			best = i
		}
	}
	scored[start], scored[best] = scored[best], scored[start]
	return scored[start].Move
}
