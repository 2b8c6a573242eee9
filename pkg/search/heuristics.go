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
	"github.com/corvidchess/corvid/internal/util"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
)

// storeKiller records m as a killer move for plys: a quiet move that
// caused a beta cutoff, tried early at the same ply in sibling nodes
// (§4.6 step 8).
func (s *Context) storeKiller(plys int, m move.Move) {
	if !m.IsCapture() && m != s.killers[plys][0] {
		s.killers[plys][1] = s.killers[plys][0]
		s.killers[plys][0] = m
	}
}

// updateHistory adjusts the history heuristic score of quiet move m by
// bonus, decaying proportionally to the existing score so that it
// stays bounded (§4.6 step 7 "remaining non-captures").
func (s *Context) updateHistory(us piece.Color, m move.Move, bonus Eval) {
	if m.IsCapture() {
		return
	}
	entry := &s.history[us][m.From][m.To]
	*entry += bonus - *entry*Eval(util.Abs(int(bonus)))/32768
}

// depthBonus is the history bonus awarded for a cutoff found at the
// given remaining depth: deeper cutoffs are more informative.
func depthBonus(bkDepth int) Eval {
	return Eval(util.Min(2000, bkDepth*155))
}

// seeMargins returns the static-exchange-evaluation pruning thresholds
// used to skip clearly-losing quiet and noisy moves at the given
// remaining depth.
func seeMargins(bkDepth int) (quiet, noisy int) {
	return -64 * bkDepth, -19 * bkDepth * bkDepth
}
