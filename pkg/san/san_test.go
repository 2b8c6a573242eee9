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

package san_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/fen"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/san"
	"github.com/corvidchess/corvid/pkg/square"
)

func findMove(t *testing.T, moves []move.Move, from, to square.Square) move.Move {
	t.Helper()
	for _, m := range moves {
		if m.From == from && m.To == to {
			return m
		}
	}
	t.Fatalf("no legal move %s-%s", from, to)
	return move.Null
}

func TestDisambiguationByFile(t *testing.T) {
	b, err := fen.Parse("8/8/8/8/8/2N5/8/4K1N1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	m := findMove(t, b.GenerateMoves(), square.C3, square.E2)
	if got, want := san.Move(b, m), "Nce2"; got != want {
		t.Errorf("Move() = %q, want %q", got, want)
	}
}

func TestCheckAndMateMarker(t *testing.T) {
	b, err := fen.Parse("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	m := findMove(t, b.GenerateMoves(), square.A1, square.A8)
	if got, want := san.Move(b, m), "Ra8#"; got != want {
		t.Errorf("Move() = %q, want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	b, err := fen.Parse(fen.StartPos)
	if err != nil {
		t.Fatal(err)
	}

	for _, m := range b.GenerateMoves() {
		s := san.Move(b, m)
		got, err := san.Parse(b, s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got.From != m.From || got.To != m.To || got.ToPiece != m.ToPiece {
			t.Errorf("round trip %q: got %+v, want %+v", s, got, m)
		}
	}
}

func TestCastlingRoundTrip(t *testing.T) {
	b, err := fen.Parse("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	m := findMove(t, b.GenerateMoves(), square.E1, square.G1)
	if s := san.Move(b, m); s != "O-O" {
		t.Errorf("kingside castle SAN = %q, want O-O", s)
	}

	got, err := san.Parse(b, "O-O")
	if err != nil {
		t.Fatal(err)
	}
	if got.To != square.G1 {
		t.Errorf("parsed castle To = %s, want %s", got.To, square.G1)
	}
}
