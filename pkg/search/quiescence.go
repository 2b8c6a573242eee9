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
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/see"
)

// quiescenceMaxQDepth bounds how many plies quiescence search descends
// past the point bkDepth ran out, a backstop against positions with
// long forced capture sequences (§4.6 step 5).
const quiescenceMaxQDepth = 10

// quiescence extends the search past bkDepth 0 along capture,
// promotion and check-evading lines only, to avoid misjudging a
// position where the side to move has a hanging piece it hasn't yet
// been allowed to take or escape (the horizon effect, §4.6 step 5).
func (s *Context) quiescence(alpha, beta Eval, fdDepth int) Eval {
	b := s.board
	qDepth := fdDepth - s.depth
	if qDepth < 0 {
		qDepth = 0
	}

	s.nodes++
	s.qNodes++
	s.sumQDepth += qDepth
	if qDepth > s.maxQDepth {
		s.maxQDepth = qDepth
	}

	if b.DrawClock >= 100 || (fdDepth <= s.drawMaxFdDepth && b.RepeatsCycle()) {
		return 0
	}

	inCheck := b.IsInCheck(b.SideToMove)

	// standing pat: the side to move may always decline every capture
	// available, so a position at least as good as beta without moving
	// is an immediate cutoff, unless it is in check and so has no
	// "do nothing" option.
	standPat := Eval(eval.Evaluate(b, 0))
	if !inCheck {
		if standPat >= beta {
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	if qDepth >= quiescenceMaxQDepth || fdDepth >= MaxDepth {
		return standPat
	}

	moves := b.GenerateMoves()
	if len(moves) == 0 {
		if inCheck {
			return -Eval(eval.Mate) + Eval(fdDepth)
		}
		return 0
	}

	scored := s.orderMoves(b, moves, move.Null, fdDepth)
	best := standPat
	if inCheck {
		best = -Inf
	}

	searched := 0
	for i := range scored {
		m := pickMove(scored, i)

		if !inCheck {
			if !m.IsCapture() && !m.IsPromotion() {
				continue
			}

			// delta pruning: skip a capture that even in the best case
			// (winning the full value of the captured piece, plus a
			// safety margin) couldn't raise the score to alpha.
			const deltaMargin = 200
			gain := see.Values[m.CapturedPiece.Type()]
			if m.IsPromotion() {
				gain += see.Values[m.ToPiece.Type()] - see.Values[m.FromPiece.Type()]
			}
			if standPat+Eval(gain)+deltaMargin < alpha {
				continue
			}

			if see.Of(b, m) < 0 {
				continue
			}
		}

		b.Play(m)
		searched++
		s.sumQMoves++
		value := -s.quiescence(-beta, -alpha, fdDepth+1)
		b.UnmakeMove()

		if s.stopped {
			return 0
		}

		if value > best {
			best = value
			if value > alpha {
				alpha = value
			}
		}
		if alpha >= beta {
			break
		}
	}

	if inCheck && searched == 0 {
		return -Eval(eval.Mate) + Eval(fdDepth)
	}

	return best
}
