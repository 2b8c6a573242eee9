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

package zobrist_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
	"github.com/corvidchess/corvid/pkg/zobrist"
)

func TestKeysAreDistinct(t *testing.T) {
	seen := make(map[zobrist.Key]bool)
	for p := 0; p < piece.N; p++ {
		for s := square.Square(0); s < square.N; s++ {
			k := zobrist.PieceSquare[p][s]
			if seen[k] {
				t.Fatalf("duplicate zobrist key for piece %d square %s", p, s)
			}
			seen[k] = true
		}
	}
}

func TestTogglesAreInvolutions(t *testing.T) {
	var s zobrist.State
	orig := s.Hash
	s.Toggle(piece.WhiteKnight, square.F3)
	s.Toggle(piece.WhiteKnight, square.F3)
	if s.Hash != orig {
		t.Error("toggling the same piece-square twice should be a no-op")
	}

	s.ToggleSideToMove()
	s.ToggleSideToMove()
	if s.Hash != orig {
		t.Error("toggling side to move twice should be a no-op")
	}
}
