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
	"github.com/corvidchess/corvid/pkg/search/tt"
	"github.com/corvidchess/corvid/pkg/see"
)

// constants governing negamax's pruning decisions, named after the
// quantities in §4.6's "Search procedure": bk_depth is the remaining
// depth to search, fd_depth the number of plies already played from
// the root.
const (
	ttableMinBkDepth         = 2
	ttableMaxFdDepth         = 10
	ttableUseValueMinFdDepth = 1

	nullMoveMinFdDepth         = 4
	nullMoveChangeBkDepth      = 2
	nullMoveMinLeftoverBkDepth = 1
	nullMoveMaxLeftoverBkDepth = 5

	endgamePieces       = 8
	endCutoffMinBkDepth = 4
)

// negamax searches the current position to bkDepth remaining plies,
// having already played fdDepth plies from the root, returning a score
// from the side to move's perspective and filling in pv with the
// principal variation found along the explored path (§4.6 "Search
// procedure").
func (s *Context) negamax(alpha, beta Eval, bkDepth, fdDepth int, pv *PV, cutNode bool) Eval {
	pvNode := beta-alpha > 1
	b := s.board

	// Step 1: repetition and fifty-move draws. The fifty-move clock
	// applies everywhere; the 9-ply cycle check is trusted only up to
	// drawMaxFdDepth plies from the root, the bound computed from real
	// game history past which a freshly-formed in-search cycle is no
	// longer assumed equivalent to one that would truly recur on the
	// board (§4.6 step 1).
	if b.DrawClock >= 100 {
		return 0
	}
	if bkDepth >= 1 && fdDepth <= s.drawMaxFdDepth && b.RepeatsCycle() {
		return 0
	}

	if bkDepth <= 0 || fdDepth >= MaxDepth {
		return s.quiescence(alpha, beta, fdDepth)
	}

	s.nodes++

	// Step 10: cancellation, checked only deep enough into the tree
	// that giving up the subtree can't discard too much of the search.
	if bkDepth >= endCutoffMinBkDepth && s.shouldStop() {
		return 0
	}

	inCheck := b.IsInCheck(b.SideToMove)

	// Step 2: transposition table probe. The table is read only within
	// TTABLE_MAX_FD_DEPTH plies of the root (fd_depth <=
	// TTABLE_MAX_FD_DEPTH), and the stored value is trusted only once
	// fd_depth has passed both its own minimum and drawMaxFdDepth, since
	// closer to the root a stored value may not reflect the position's
	// true distance to a repetition draw.
	var ttMove move.Move
	useTTableValue := fdDepth >= ttableUseValueMinFdDepth && fdDepth >= s.drawMaxFdDepth
	if bkDepth >= ttableMinBkDepth && fdDepth <= ttableMaxFdDepth {
		if entry, found := s.tt.Probe(b.Hash); found {
			ttMove = entry.Move
			s.ttHits++

			if !pvNode && useTTableValue && int(entry.Depth) >= bkDepth {
				value := Eval(entry.Value.ToSearch(fdDepth))
				switch entry.Type {
				case tt.ExactEntry:
					return value
				case tt.LowerBound:
					if value >= beta {
						return value
					}
				case tt.UpperBound:
					if value <= alpha {
						return value
					}
				}
			}
		}
	}

	staticEval := Eval(eval.Evaluate(b, bkDepth))

	// Step 3: null-move pruning. Passing the move and searching a
	// shallower window is sound as long as a null move couldn't itself
	// be the best move (in check) and the position isn't so materially
	// bare that zugzwang makes the null-move assumption unsafe.
	if !pvNode && !inCheck && fdDepth >= nullMoveMinFdDepth &&
		bkDepth >= nullMoveChangeBkDepth && staticEval >= beta &&
		!b.IsEndgame(endgamePieces) {

		reduction := nullMoveMinLeftoverBkDepth + (bkDepth-nullMoveMinLeftoverBkDepth)/4
		if reduction > nullMoveMaxLeftoverBkDepth {
			reduction = nullMoveMaxLeftoverBkDepth
		}

		b.PlayNull()
		var childPV PV
		value := -s.negamax(-beta, -beta+1, bkDepth-1-reduction, fdDepth+1, &childPV, !cutNode)
		b.UnmakeNull()

		if s.stopped {
			return 0
		}
		if value >= beta {
			return value
		}
	}

	moves := b.GenerateMoves()
	if len(moves) == 0 {
		if inCheck {
			return -Eval(eval.Mate) + Eval(fdDepth) // checkmate, prefer shorter mates
		}
		return 0 // stalemate
	}

	scored := s.orderMoves(b, moves, ttMove, fdDepth)
	quietSeeMargin, noisySeeMargin := seeMargins(bkDepth)

	originalAlpha := alpha
	best := -Inf
	bestMove := move.Null
	legalMoves := 0
	var quietsTried []move.Move
	var rootMoves []RootMove

	for i := range scored {
		m := pickMove(scored, i)

		// Step 6: SEE pruning of clearly-losing moves away from the
		// leaves, where a single ply's material swing still dominates
		// whatever positional gain the move might carry.
		if !pvNode && bkDepth <= 8 && legalMoves > 0 && best > LoseInMaxPly {
			margin := quietSeeMargin
			if m.IsCapture() {
				margin = noisySeeMargin
			}
			if see.Of(b, m) < margin {
				continue
			}
		}

		b.Play(m)
		legalMoves++
		s.sumMoves++

		var childPV PV
		var value Eval

		// Step 7: principal variation search. The first move of every
		// node gets a full window; later moves are first tried with a
		// null window (and a late-move reduction) and only re-searched
		// at full width if that fails to prove inferior.
		switch {
		case legalMoves == 1:
			value = -s.negamax(-beta, -alpha, bkDepth-1, fdDepth+1, &childPV, false)
		default:
			reduction := s.reduction(bkDepth, legalMoves, m, inCheck, pvNode)
			value = -s.negamax(-alpha-1, -alpha, bkDepth-1-reduction, fdDepth+1, &childPV, true)
			if value > alpha && (reduction > 0 || value < beta) {
				value = -s.negamax(-beta, -alpha, bkDepth-1, fdDepth+1, &childPV, false)
			}
		}

		b.UnmakeMove()

		if s.stopped {
			return 0
		}

		if fdDepth == 0 {
			rootMoves = append(rootMoves, RootMove{Move: m, Value: value})
		}

		if m.IsQuiet() {
			quietsTried = append(quietsTried, m)
		}

		if value > best {
			best = value
			bestMove = m
			if value > alpha {
				alpha = value
				pv.update(m, childPV)
			}
		}

		// Step 8: beta cutoff. Record the move as a killer and reward
		// it (and penalize the quiets already tried and rejected) in
		// the history table.
		if alpha >= beta {
			if m.IsQuiet() {
				s.storeKiller(fdDepth, m)
				bonus := depthBonus(bkDepth)
				s.updateHistory(b.SideToMove.Other(), m, bonus)
				for _, q := range quietsTried[:len(quietsTried)-1] {
					s.updateHistory(b.SideToMove.Other(), q, -bonus)
				}
			}
			break
		}
	}

	// a root search that failed high stopped at the cutoff and valued
	// only part of the root moves, so only a full pass replaces the list.
	if fdDepth == 0 && best < beta {
		s.rootMoves = rootMoves
	}

	// Step 9: transposition table store, unconditional (given fd_depth
	// has passed drawMaxFdDepth) even when no improvement on alpha was
	// found, since a searched upper bound is still useful information
	// for a later probe. A value computed before drawMaxFdDepth may be
	// contaminated by an in-search cycle that the real game history
	// would resolve differently, so it is withheld from the table.
	if fdDepth >= s.drawMaxFdDepth {
		var entryType tt.EntryType
		switch {
		case best <= originalAlpha:
			entryType = tt.UpperBound
		case best >= beta:
			entryType = tt.LowerBound
		default:
			entryType = tt.ExactEntry
		}

		s.tt.Store(tt.Entry{
			Hash:           b.Hash,
			Move:           bestMove,
			Value:          tt.FromSearch(int(best), fdDepth),
			Type:           entryType,
			Depth:          uint8(bkDepth),
			PieceCounts:    b.PieceCounts(),
			CastlingRights: b.CastlingRights,
			Pawns:          b.PawnBBs(),
		})
	}

	return best
}
