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

	"github.com/corvidchess/corvid/pkg/eval"
)

// Eval is a search-relative evaluation: positive favors the side to
// move at the node it was computed at, per the negamax convention
// pkg/eval uses (§4.5).
type Eval int

// Inf is larger in magnitude than any real evaluation or mate score,
// used to seed the initial alpha-beta window.
const Inf Eval = 32000

// WinInMaxPly and LoseInMaxPly bound the range a score must be outside
// of to be considered a mate score rather than a material/positional
// one; MaxDepth is the largest bkDepth a mate score could carry.
const (
	WinInMaxPly  Eval = eval.Mate - MaxDepth
	LoseInMaxPly Eval = -WinInMaxPly
)

// String renders e as a decimal centipawn score, or "#n"/"#-n" for a
// mate found n moves from the position the score was computed at.
func (e Eval) String() string {
	switch {
	case e >= WinInMaxPly:
		plys := eval.Mate - int(e)
		return fmt.Sprintf("#%d", (plys+1)/2)
	case e <= LoseInMaxPly:
		plys := eval.Mate + int(e)
		return fmt.Sprintf("#-%d", (plys+1)/2)
	default:
		return fmt.Sprintf("%.2f", float64(e)/100)
	}
}
