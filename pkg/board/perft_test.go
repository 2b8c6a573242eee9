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

package board_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/fen"
)

// Standard perft suite positions and node counts (Chess Programming
// Wiki), the same cross-check the teacher's pkg/board/perft.go exists
// to support.
func TestPerft(t *testing.T) {
	cases := []struct {
		fen   string
		depth int
		nodes int
	}{
		{fen.StartPos, 1, 20},
		{fen.StartPos, 2, 400},
		{fen.StartPos, 3, 8902},
		{fen.StartPos, 4, 197281},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 1, 48},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, 2039},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 1, 14},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 2, 191},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
	}

	for _, c := range cases {
		b, err := fen.Parse(c.fen)
		if err != nil {
			t.Fatalf("fen.Parse(%q): %v", c.fen, err)
		}
		if got := b.Perft(c.depth); got != c.nodes {
			t.Errorf("Perft(%q, %d) = %d, want %d", c.fen, c.depth, got, c.nodes)
		}
	}
}
