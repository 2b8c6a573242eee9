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

// Package tt implements the search's transposition table: a fixed-size
// hash table mapping a position's Zobrist key to the best move, score,
// and bound found for it by a previous search (§4.6 step 2, §4.6
// "TT purging").
package tt

import (
	"math/bits"
	"unsafe"

	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/zobrist"
)

// EntrySize is the size in bytes of a single table entry.
var EntrySize = int(unsafe.Sizeof(Entry{}))

// New creates a transposition table sized to at most mbs megabytes.
func New(mbs int) *Table {
	size := (mbs * 1024 * 1024) / EntrySize
	if size == 0 {
		size = 1
	}
	return &Table{table: make([]Entry, size), size: size}
}

// Table is the transposition table proper: a flat slice indexed by a
// Lemire fast-range reduction of the position hash, with one entry per
// slot and quality-based replacement.
type Table struct {
	table []Entry
	size  int
	epoch uint8
}

// Clear empties every entry in the table.
func (t *Table) Clear() {
	clear(t.table)
}

// Clone returns an independent copy of the table, for a ponder search
// that needs to purge and mutate its own copy of the cumulative table
// without racing the controller's or a sibling hypothesis's searches
// (§4.7 step 2, §5 "Memory").
func (t *Table) Clone() *Table {
	clone := &Table{table: make([]Entry, len(t.table)), size: t.size, epoch: t.epoch}
	copy(clone.table, t.table)
	return clone
}

// NewSearch bumps the table's epoch, ageing every entry already
// stored without erasing it; called at the start of every search so
// that stale entries lose replacement priority over fresh ones.
func (t *Table) NewSearch() {
	t.epoch++
}

// Resize replaces the table with one of a new size, carrying over as
// many of the old entries as fit.
func (t *Table) Resize(mbs int) {
	size := (mbs * 1024 * 1024) / EntrySize
	if size == 0 {
		size = 1
	}
	newTable := make([]Entry, size)
	copy(newTable, t.table)
	t.table = newTable
	t.size = size
}

// Store records entry, keeping whichever of the new and existing
// entry at that slot has the higher quality() (§4.6 step 9).
func (t *Table) Store(entry Entry) {
	slot := t.slot(entry.Hash)
	entry.epoch = t.epoch
	if entry.quality() >= slot.quality() {
		*slot = entry
	}
}

// Probe looks up hash, reporting whether the returned entry is both
// present and not a stale collision.
func (t *Table) Probe(hash zobrist.Key) (Entry, bool) {
	entry := *t.slot(hash)
	return entry, entry.Type != NoEntry && entry.Hash == hash
}

func (t *Table) slot(hash zobrist.Key) *Entry {
	// Lemire's fast alternative to modulo reduction:
	// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
	index, _ := bits.Mul(uint(hash), uint(t.size))
	return &t.table[index]
}

// Purge drops every entry that cannot be reached from the live
// position: one with more pieces of some color/type than the live
// position has, one claiming castling rights the live position has
// already lost, or one whose recorded pawns aren't reachable (via the
// pawn-pyramid lookup) from the live position's own pawns (§4.6 "TT
// purging"). It is a coarse, cheap filter, not an exact reachability
// proof.
func (t *Table) Purge(pieceCounts [piece.NColor][piece.TypeN]int, rights castling.Rights, pawns [piece.NColor]bitboard.Board) {
	for i := range t.table {
		e := &t.table[i]
		if e.Type == NoEntry {
			continue
		}

		if e.CastlingRights&^rights&castling.All != 0 {
			*e = Entry{}
			continue
		}

		unreachable := false
		for c := piece.Color(0); c < piece.NColor && !unreachable; c++ {
			for typ := piece.Pawn; typ < piece.TypeN; typ++ {
				if e.PieceCounts[c][typ] > pieceCounts[c][typ] {
					unreachable = true
					break
				}
			}
		}
		if unreachable {
			*e = Entry{}
			continue
		}

		for c := piece.Color(0); c < piece.NColor && !unreachable; c++ {
			entryPawns := e.Pawns[c]
			for !entryPawns.IsEmpty() {
				p := entryPawns.Pop()
				if bitboard.Pyramid[c][p]&pawns[c] == bitboard.Empty {
					unreachable = true
					break
				}
			}
		}
		if unreachable {
			*e = Entry{}
		}
	}
}

// Entry is a single transposition table slot.
type Entry struct {
	Hash zobrist.Key // full key, to detect slot collisions
	Move move.Move   // best move found in this position

	Value Eval      // search value of this position
	Type  EntryType // what kind of bound Value is

	Depth uint8 // bk_depth this entry was searched to
	epoch uint8 // age, for replacement priority

	// PieceCounts is a coarse fingerprint of the position used by
	// Purge to discard entries unreachable from a later position.
	PieceCounts [piece.NColor][piece.TypeN]int

	// CastlingRights is the position's rights at the time of Store,
	// checked by Purge against the live position's rights.
	CastlingRights castling.Rights

	// Pawns is each color's pawn bitboard at the time of Store, checked
	// by Purge against the pawn-pyramid lookup.
	Pawns [piece.NColor]bitboard.Board
}

// quality ranks entry against another entry for the same slot: deeper
// searches and fresher epochs are worth more.
func (e *Entry) quality() uint8 {
	return e.epoch + e.Depth/3
}

// EntryType says what relationship Value has to the position's true
// value (§4.6 step 9): exact, or only a lower/upper bound reached by
// an alpha-beta cutoff.
type EntryType uint8

const (
	NoEntry EntryType = iota
	ExactEntry
	LowerBound
	UpperBound
)

// Eval is a transposition-table-relative score: mate scores are
// stored as "plies to mate from this position" rather than "from the
// search root", so that an entry found at a different ply from where
// it was stored still scores the correct distance to mate.
type Eval int

// WinThreshold and LoseThreshold bound the range outside of which a
// score is assumed to be a mate score and needs ply-rebasing.
const (
	WinThreshold  = 9000
	LoseThreshold = -9000
)

// FromSearch converts a root-relative search score at the given ply
// into a table-relative Eval ready for Store.
func FromSearch(score, plys int) Eval {
	switch {
	case score > WinThreshold:
		score += plys
	case score < LoseThreshold:
		score -= plys
	}
	return Eval(score)
}

// ToSearch converts a table-relative Eval fetched at the given ply
// back into a root-relative search score.
func (e Eval) ToSearch(plys int) int {
	score := int(e)
	switch {
	case score > WinThreshold:
		score -= plys
	case score < LoseThreshold:
		score += plys
	}
	return score
}
