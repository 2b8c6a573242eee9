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
	"strings"

	"github.com/corvidchess/corvid/pkg/move"
)

// PV is a principal variation: the sequence of moves the search
// currently believes is best from the root.
type PV []move.Move

// update replaces pv with m followed by child, the child node's own
// principal variation.
func (pv *PV) update(m move.Move, child PV) {
	*pv = append(PV{m}, child...)
}

// String renders the variation in long algebraic notation.
func (pv PV) String() string {
	moves := make([]string, len(pv))
	for i, m := range pv {
		moves[i] = m.String()
	}
	return strings.Join(moves, " ")
}
