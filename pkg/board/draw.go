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

// IsDraw reports whether the position is drawn by the fifty-move rule
// or by the search's 9-ply repetition cycle (§4.3, §4.6 step 1). Full
// correspondence-grade threefold repetition by complete game history
// is out of scope; see RepeatsCycle.
func (b *Board) IsDraw() bool {
	return b.DrawClock >= 100 || b.RepeatsCycle()
}

// RepeatsCycle reports whether the current position equals both the
// position 4 plies ago and the position 8 plies ago, the 9-ply
// repetition window spec.md uses in place of hashing complete game
// history (§4.6 step 1).
func (b *Board) RepeatsCycle() bool {
	n := len(b.History)
	if n < 8 {
		return false
	}
	return b.Hash == b.History[n-4].Hash && b.Hash == b.History[n-8].Hash
}
