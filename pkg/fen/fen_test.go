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

package fen_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/fen"
)

func TestRoundTrip(t *testing.T) {
	positions := []string{
		fen.StartPos,
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp2ppp/8/2Ppp3/8/8/PP1PPPPP/RNBQKBNR w KQkq e6 0 3",
	}

	for _, want := range positions {
		b, err := fen.Parse(want)
		if err != nil {
			t.Fatalf("parse %q: %v", want, err)
		}
		if got := fen.String(b); got != want {
			t.Errorf("round trip: got %q, want %q", got, want)
		}
	}
}

func TestInvalidFEN(t *testing.T) {
	if _, err := fen.Parse("not a fen"); err == nil {
		t.Error("expected error for malformed fen")
	}
}
