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

package square_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/square"
)

func TestRoundTrip(t *testing.T) {
	cases := []square.Square{
		square.A1, square.H1, square.A8, square.H8,
		square.E4, square.D5, square.None,
	}

	for _, s := range cases {
		parsed, err := square.NewFromString(s.String())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", s, err)
		}

		if parsed != s {
			t.Errorf("round trip: got %s, want %s", parsed, s)
		}
	}
}

func TestFileRank(t *testing.T) {
	if square.E4.File() != square.FileE {
		t.Errorf("e4 file: got %s, want e", square.E4.File())
	}

	if square.E4.Rank() != square.Rank4 {
		t.Errorf("e4 rank: got %s, want 4", square.E4.Rank())
	}
}

func TestFlipped(t *testing.T) {
	if square.E1.Flipped() != square.E8 {
		t.Errorf("e1 flipped: got %s, want e8", square.E1.Flipped())
	}
}

func TestDiagonal(t *testing.T) {
	// a1 and h8 both lie on the main diagonal.
	if square.A1.Diagonal() != square.H8.Diagonal() {
		t.Errorf("a1/h8 diagonal mismatch: %d != %d", square.A1.Diagonal(), square.H8.Diagonal())
	}

	// a8 and h1 both lie on the main anti-diagonal.
	if square.A8.AntiDiagonal() != square.H1.AntiDiagonal() {
		t.Errorf("a8/h1 anti-diagonal mismatch: %d != %d", square.A8.AntiDiagonal(), square.H1.AntiDiagonal())
	}
}
