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

package eval_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/fen"
)

func TestStartingPositionIsRoughlySymmetric(t *testing.T) {
	b, err := fen.Parse(fen.StartPos)
	if err != nil {
		t.Fatal(err)
	}

	if got := eval.Evaluate(b, 0); got < -5 || got > 5 {
		t.Errorf("starting position should evaluate near zero, got %d", got)
	}
}

func TestMirroredPositionsAreSymmetric(t *testing.T) {
	white, err := fen.Parse("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	black, err := fen.Parse("4k3/4p3/8/8/8/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	gotWhite := eval.Evaluate(white, 0)
	gotBlack := eval.Evaluate(black, 0)
	if gotWhite != gotBlack {
		t.Errorf("mirrored positions should evaluate identically from the side to move's view, got %d and %d", gotWhite, gotBlack)
	}
	if gotWhite <= 0 {
		t.Errorf("a side up a pawn should evaluate positively, got %d", gotWhite)
	}
}

func TestFoolsMateIsCheckmate(t *testing.T) {
	// 1. f3 e5 2. g4 Qh4#
	b, err := fen.Parse("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatal(err)
	}

	got := eval.Evaluate(b, 0)
	want := -(eval.Mate + 0)
	if got != want {
		t.Errorf("fool's mate should score %d from the mated side's view, got %d", want, got)
	}
}

func TestMaterialAdvantageIsPositive(t *testing.T) {
	b, err := fen.Parse("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	if got := eval.Evaluate(b, 0); got < 800 {
		t.Errorf("a lone extra queen should score well above material parity, got %d", got)
	}
}
