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

package tt_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/fen"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/search/tt"
	"github.com/corvidchess/corvid/pkg/square"
)

// TestPurgeDropsUnreachablePawnConfiguration covers the §8 testable
// property directly: an entry recording a pawn retreat that is
// impossible to reach from the live position must be purged, even
// though its piece counts and castling rights still match.
func TestPurgeDropsUnreachablePawnConfiguration(t *testing.T) {
	b, err := fen.Parse(fen.StartPos)
	if err != nil {
		t.Fatalf("fen.Parse(StartPos): %v", err)
	}

	table := tt.New(1)

	entry := tt.Entry{
		Hash:           0x1234,
		Type:           tt.ExactEntry,
		PieceCounts:    b.PieceCounts(),
		CastlingRights: b.CastlingRights,
		Pawns:          b.PawnBBs(),
	}
	// no white pawn could ever have retreated to a1: it isn't on any
	// square a white pawn starting at rank 2 or later could reach
	// backwards.
	entry.Pawns[piece.White].Set(square.A1)

	table.Store(entry)
	if _, found := table.Probe(entry.Hash); !found {
		t.Fatal("entry should be stored before Purge runs")
	}

	table.Purge(b.PieceCounts(), b.CastlingRights, b.PawnBBs())
	if _, found := table.Probe(entry.Hash); found {
		t.Error("Purge should drop an entry with an unreachable pawn square")
	}
}

// TestPurgeKeepsReachableConfiguration is the control: an entry whose
// piece counts, castling rights, and pawn squares are all exactly the
// live position's own must survive Purge.
func TestPurgeKeepsReachableConfiguration(t *testing.T) {
	b, err := fen.Parse(fen.StartPos)
	if err != nil {
		t.Fatalf("fen.Parse(StartPos): %v", err)
	}

	table := tt.New(1)
	entry := tt.Entry{
		Hash:           0x5678,
		Type:           tt.ExactEntry,
		PieceCounts:    b.PieceCounts(),
		CastlingRights: b.CastlingRights,
		Pawns:          b.PawnBBs(),
	}
	table.Store(entry)

	table.Purge(b.PieceCounts(), b.CastlingRights, b.PawnBBs())
	if _, found := table.Probe(entry.Hash); !found {
		t.Error("Purge should keep an entry whose configuration matches the live position")
	}
}

// TestPurgeDropsLostCastlingRights covers the other half of §4.6 "TT
// purging": an entry claiming a castling right the live position has
// already lost cannot have been reached from it.
func TestPurgeDropsLostCastlingRights(t *testing.T) {
	b, err := fen.Parse(fen.StartPos)
	if err != nil {
		t.Fatalf("fen.Parse(StartPos): %v", err)
	}

	table := tt.New(1)
	entry := tt.Entry{
		Hash:           0x9abc,
		Type:           tt.ExactEntry,
		PieceCounts:    b.PieceCounts(),
		CastlingRights: castling.All,
		Pawns:          b.PawnBBs(),
	}
	table.Store(entry)

	liveRights := castling.NewRights("kq") // white has since lost both rights
	table.Purge(b.PieceCounts(), liveRights, b.PawnBBs())
	if _, found := table.Probe(entry.Hash); found {
		t.Error("Purge should drop an entry claiming castling rights the live position lost")
	}
}
