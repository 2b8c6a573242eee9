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

package board

// Perft counts the leaf nodes of the full game tree rooted at b, to the
// given depth, used by "corvid bench" (SPEC_FULL.md §4)
// to cross-check move generation against known node counts. Unlike the
// teacher's standalone Perft(fen, depth), GenerateMoves already returns
// only legal moves (§4.4), so no post-hoc in-check filter is needed.
func (b *Board) Perft(depth int) int {
	if depth == 0 {
		return 1
	}

	var nodes int
	for _, m := range b.GenerateMoves() {
		if err := b.MakeMove(m); err != nil {
			continue
		}
		nodes += b.Perft(depth - 1)
		b.UnmakeMove()
	}

	return nodes
}
