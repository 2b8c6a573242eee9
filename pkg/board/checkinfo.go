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

package board

import (
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/piece"
)

// refreshMoveGenState recomputes every piece of derived state move
// generation needs: the check count and mask, the straight and
// diagonal pin masks, the set of squares seen by the enemy (for king
// mobility and castling-through-check legality), and the
// friends/enemies/occupied/target convenience sets (§4.3).
func (b *Board) refreshMoveGenState() {
	us := b.SideToMove
	them := us.Other()

	b.Friends = b.ColorBBs[us]
	b.Enemies = b.ColorBBs[them]
	b.Occupied = b.Friends | b.Enemies

	b.computeCheckInfo(us, them)
	b.computePinMasks(us, them)
	b.computeSeenByEnemy(us, them)

	if b.CheckN == 0 {
		b.Target = ^b.Friends
	} else {
		b.Target = b.CheckMask &^ b.Friends
	}
}

// computeCheckInfo finds every enemy piece currently giving check and
// builds CheckMask: the set of squares a non-king piece may move to in
// order to end the check (capture the checker, or for a sliding
// checker, interpose on the check ray). CheckMask is left as
// bitboard.Universe when not in check, so "target & CheckMask" is
// always a safe legality filter regardless of check status. CheckN
// counts distinct checkers; 2 or more means only the king may move.
func (b *Board) computeCheckInfo(us, them piece.Color) {
	occ := b.Occupied
	kingSq := b.Kings[us]

	b.CheckN = 0
	b.CheckMask = bitboard.Empty

	if pawns := b.Pawns(them) & bitboard.PawnAttacks[us][kingSq]; pawns != bitboard.Empty {
		b.CheckMask |= pawns
		b.CheckN++
	}

	if knights := b.Knights(them) & bitboard.KnightAttacks[kingSq]; knights != bitboard.Empty {
		b.CheckMask |= knights
		b.CheckN++
	}

	diagonalCheckers := (b.Bishops(them) | b.Queens(them)) & bitboard.BishopSpan(bitboard.Square(kingSq), occ)
	if diagonalCheckers != bitboard.Empty {
		if diagonalCheckers.Count() > 1 {
			// two sliders hitting the king along different diagonal
			// rays: treat as double check, no interposing square is
			// common to both.
			b.CheckN += diagonalCheckers.Count()
		} else {
			checkerSq := diagonalCheckers.FirstOne()
			b.CheckMask |= bitboard.Between[kingSq][checkerSq] | bitboard.Square(checkerSq)
			b.CheckN++
		}
	}

	straightCheckers := (b.Rooks(them) | b.Queens(them)) & bitboard.RookSpan(bitboard.Square(kingSq), occ)
	if straightCheckers != bitboard.Empty {
		if straightCheckers.Count() > 1 {
			// two sliders hitting the king along different straight
			// rays: treat as double check, no interposing square is
			// common to both.
			b.CheckN += straightCheckers.Count()
		} else {
			checkerSq := straightCheckers.FirstOne()
			b.CheckMask |= bitboard.Between[kingSq][checkerSq] | bitboard.Square(checkerSq)
			b.CheckN++
		}
	}

	if b.CheckN == 0 {
		b.CheckMask = bitboard.Universe
	}
}

// computePinMasks finds every friendly piece pinned to the king along
// a straight or diagonal ray, split by ray type (§4.3: "restricted to
// the pin line" means different things for a rook-type and a
// bishop-type piece, so the two are kept separate rather than merged
// into a single pin mask).
func (b *Board) computePinMasks(us, them piece.Color) {
	kingSq := b.Kings[us]
	kingBB := bitboard.Square(kingSq)

	b.PinnedStraight = bitboard.Empty
	b.PinnedDiagonal = bitboard.Empty

	straightAttackers := (b.Rooks(them) | b.Queens(them))
	for candidates := straightAttackers; candidates != bitboard.Empty; {
		attackerSq := candidates.Pop()
		if attackerSq.File() != kingSq.File() && attackerSq.Rank() != kingSq.Rank() {
			continue
		}

		between := bitboard.Between[kingSq][attackerSq]
		blockers := between & b.Occupied
		if blockers.Count() == 1 && blockers&b.Friends != bitboard.Empty {
			b.PinnedStraight |= blockers | between | bitboard.Square(attackerSq) | kingBB
		}
	}

	diagonalAttackers := (b.Bishops(them) | b.Queens(them))
	for candidates := diagonalAttackers; candidates != bitboard.Empty; {
		attackerSq := candidates.Pop()
		ray := bitboard.Line[kingSq][attackerSq]
		if ray == bitboard.Empty || attackerSq.File() == kingSq.File() || attackerSq.Rank() == kingSq.Rank() {
			continue
		}

		between := bitboard.Between[kingSq][attackerSq]
		blockers := between & b.Occupied
		if blockers.Count() == 1 && blockers&b.Friends != bitboard.Empty {
			b.PinnedDiagonal |= blockers | between | bitboard.Square(attackerSq) | kingBB
		}
	}
}

// computeSeenByEnemy builds the set of squares the enemy attacks, used
// to forbid the king from moving into, through, or adjacent to attack
// (castling) without that square needing a dedicated per-move
// IsAttacked probe. The king itself is removed from the occupancy
// first so that sliding attackers correctly see through the square the
// king is vacating.
func (b *Board) computeSeenByEnemy(us, them piece.Color) {
	occWithoutKing := b.Occupied &^ bitboard.Square(b.Kings[us])

	var seen bitboard.Board

	for pawns := b.Pawns(them); pawns != bitboard.Empty; {
		s := pawns.Pop()
		seen |= bitboard.PawnAttacks[them][s]
	}
	for knights := b.Knights(them); knights != bitboard.Empty; {
		s := knights.Pop()
		seen |= bitboard.KnightAttacks[s]
	}
	for bishops := b.Bishops(them) | b.Queens(them); bishops != bitboard.Empty; {
		s := bishops.Pop()
		seen |= bitboard.BishopSpan(bitboard.Square(s), occWithoutKing)
	}
	for rooks := b.Rooks(them) | b.Queens(them); rooks != bitboard.Empty; {
		s := rooks.Pop()
		seen |= bitboard.RookSpan(bitboard.Square(s), occWithoutKing)
	}
	seen |= bitboard.KingAttacks[b.Kings[them]]

	b.SeenByEnemy = seen
}
