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

package castling_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/piece"
)

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"KQkq", "Kq", "-", "kq"} {
		r := castling.NewRights(s)
		if r.FEN() != s {
			t.Errorf("round trip %q: got %q", s, r.FEN())
		}
	}
}

func TestAuxiliaryBitsDontLeakIntoFEN(t *testing.T) {
	r := castling.NewRights("KQkq").MarkCastled(piece.White).MarkRightsLost(piece.Black)

	if r.FEN() != "KQkq" {
		t.Errorf("aux bits leaked into FEN: got %q", r.FEN())
	}

	if !r.HasCastled(piece.White) {
		t.Error("expected white to be marked as castled")
	}

	if r.HasCastled(piece.Black) {
		t.Error("black should not be marked as castled")
	}

	if !r.RightsLost(piece.Black) {
		t.Error("expected black to be marked as rights-lost")
	}
}
