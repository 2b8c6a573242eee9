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

package piece_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/piece"
)

func TestRoundTrip(t *testing.T) {
	for _, p := range []piece.Piece{
		piece.WhitePawn, piece.WhiteKnight, piece.WhiteBishop,
		piece.WhiteRook, piece.WhiteQueen, piece.WhiteKing,
		piece.BlackPawn, piece.BlackKnight, piece.BlackBishop,
		piece.BlackRook, piece.BlackQueen, piece.BlackKing,
	} {
		parsed, err := piece.NewFromString(p.String())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", p, err)
		}

		if parsed != p {
			t.Errorf("round trip: got %s, want %s", parsed, p)
		}
	}
}

func TestTypeColor(t *testing.T) {
	if piece.WhiteKnight.Type() != piece.Knight {
		t.Errorf("type: got %s, want N", piece.WhiteKnight.Type())
	}

	if piece.BlackKnight.Color() != piece.Black {
		t.Errorf("color: got %s, want b", piece.BlackKnight.Color())
	}
}

func TestOther(t *testing.T) {
	if piece.White.Other() != piece.Black || piece.Black.Other() != piece.White {
		t.Error("Other() is not an involution over {White, Black}")
	}
}
