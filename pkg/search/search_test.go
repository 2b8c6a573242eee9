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

package search_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/fen"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/search/tt"
)

func newSearch(t *testing.T, position string) (*search.Context, func()) {
	t.Helper()
	b, err := fen.Parse(position)
	if err != nil {
		t.Fatalf("parse %q: %v", position, err)
	}
	table := tt.New(1)
	return search.NewContext(b, table), func() {}
}

func TestMateInOne(t *testing.T) {
	// back-rank mate: Qa8#.
	s, done := newSearch(t, "6k1/5ppp/8/8/8/8/5PPP/Q5K1 w - - 0 1")
	defer done()

	result, err := s.Search(search.Limits{Depth: 3}, true, true)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(result.PV) == 0 {
		t.Fatal("expected a principal variation")
	}
	want := "a1a8"
	if got := result.PV[0].String(); got != want {
		t.Errorf("mate in one: got best move %s, want %s", got, want)
	}
	if result.Score < search.WinInMaxPly {
		t.Errorf("mate in one: got score %s, want a mate score", result.Score)
	}
}

func TestMateInTwo(t *testing.T) {
	// smothered-mate pattern: Qg8+ Rxg8 Nf7#.
	s, done := newSearch(t, "5r1k/6pp/7N/8/2Q5/8/8/6K1 w - - 0 1")
	defer done()

	result, err := s.Search(search.Limits{Depth: 5}, true, true)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if result.Score < search.WinInMaxPly {
		t.Errorf("mate in two: got score %s, want a mate score", result.Score)
	}
}

func TestSearchRespectsNodeLimit(t *testing.T) {
	s, done := newSearch(t, fen.StartPos)
	defer done()

	result, err := s.Search(search.Limits{Depth: search.MaxDepth, Nodes: 500}, true, true)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if result.Nodes == 0 {
		t.Error("expected at least one node to be searched")
	}
	if len(result.Moves) == 0 {
		t.Error("expected at least one root move")
	}
}

func TestSearchRejectsIllegalPosition(t *testing.T) {
	// side not to move (white) is in check: an illegal position that
	// could only arise from a corrupted FEN or a bug upstream.
	s, done := newSearch(t, "6k1/8/8/8/8/8/6q1/6K1 b - - 0 1")
	defer done()

	if _, err := s.Search(search.Limits{Depth: 1}, true, true); err == nil {
		t.Error("expected an error searching an illegal position")
	}
}

func TestAnnotatesRootMoves(t *testing.T) {
	s, done := newSearch(t, "6k1/5ppp/8/8/8/8/5PPP/Q5K1 w - - 0 1")
	defer done()

	result, err := s.Search(search.Limits{Depth: 3}, false, true)
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	var sawMate bool
	for _, rm := range result.Moves {
		if rm.Move.Checkmate {
			sawMate = true
		}
	}
	if !sawMate {
		t.Error("expected the mating move to be annotated as checkmate")
	}
}
