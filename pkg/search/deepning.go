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
	"fmt"
	"os"
	"time"
)

// iterativeDeepening is the main search loop. It calls negamax (through
// aspirationWindow) for increasing depths until the depth limit is hit
// or time runs out, printing a CECP "post"-style info line after every
// depth that completes. finishFirst guarantees depth 1 always finishes
// even if the time budget is exhausted mid-iteration (§4.6 "Iterative
// deepening", §4.7 "finish_first").
func (s *Context) iterativeDeepening(finishFirst bool) Result {
	var result Result
	var score Eval
	var pv PV

	for depth := 1; depth <= s.limits.Depth; depth++ {
		childScore, childPV := s.aspirationWindow(depth, score)

		if s.stopped && finishFirst && depth == 1 {
			// a cut-short first iteration is searched again with the
			// time and node limits lifted, so that a depth-1 result
			// always exists; an explicit Stop still ends the rerun.
			manager, nodes := s.time, s.limits.Nodes
			s.stopped, s.time, s.limits.Nodes = false, nil, 0
			childScore, childPV = s.aspirationWindow(depth, score)
			s.stopped, s.time, s.limits.Nodes = true, manager, nodes
		}

		if s.stopped && !(finishFirst && depth == 1) {
			// the new pv isn't trusted if the iteration was cut short,
			// since it may not reflect a fully-searched position.
			break
		}

		score, pv = childScore, childPV
		result.Depth = depth
		result.Score = score
		result.PV = pv

		elapsed := time.Since(s.start)
		// CECP "post" format (§6): ply score time(centiseconds) nodes pv
		fmt.Fprintf(os.Stdout,
			"%d %d %d %d %s\n",
			depth, score, elapsed.Milliseconds()/10, s.nodes, pv,
		)

		if s.time != nil && !s.limits.Infinite && s.time.Expired() {
			break
		}

		if s.stopped {
			break
		}
	}

	result.Incomplete = s.stopped
	return result
}
