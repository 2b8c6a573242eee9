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

// aspirationWindow implements aspiration windows, which are a way to
// reduce the search space in an alpha-beta search. The technique is to
// use a guess of the expected value (usually from the last iteration in
// iterative deepening), and use a window around this as the alpha-beta
// bounds. Because the window is narrower, more beta cutoffs are achieved,
// and the search takes a shorter time. The drawback is that if the true
// score is outside this window, then a costly re-search must be made.
func (s *Context) aspirationWindow(depth int, prevEval Eval) (Eval, PV) {
	alpha := -Inf
	beta := Inf

	initialDepth := depth

	var windowSize Eval = 50

	// only narrow the window once the search is deep enough that a
	// fail high/low's re-search cost is worth paying for the extra
	// cutoffs a narrow window buys at shallower depths.
	if depth >= 5 {
		alpha = prevEval - windowSize
		beta = prevEval + windowSize
	}

	for {
		if s.shouldStop() {
			return 0, nil
		}

		var pv PV
		s.depth = depth
		result := s.negamax(alpha, beta, depth, 0, &pv, false)

		switch {
		case result <= alpha: // fail low
			beta = (alpha + beta) / 2
			alpha -= windowSize
			if alpha < -Inf {
				alpha = -Inf
			}
			depth = initialDepth

		case result >= beta: // fail high
			beta += windowSize
			if beta > Inf {
				beta = Inf
			}
			if result <= Inf/2 && result >= -Inf/2 {
				depth--
			}

		default:
			return result, pv
		}

		windowSize += windowSize / 2
	}
}
