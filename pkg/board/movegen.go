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
	"github.com/corvidchess/corvid/pkg/attacks"
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// averageBranchingFactor sizes the move-list allocation; 31 is the
// commonly cited average legal-move count for a chess position.
const averageBranchingFactor = 31

// GenerateMoves generates every legal move available to the side to
// move in the current position (§4.4).
func (b *Board) GenerateMoves() []move.Move {
	b.refreshMoveGenState()

	moves := make([]move.Move, 0, averageBranchingFactor)

	b.appendKingMoves(&moves)

	if b.CheckN >= 2 {
		// in double check only the king can move
		return moves
	}

	b.appendKnightMoves(&moves)
	b.appendBishopMoves(&moves)
	b.appendRookMoves(&moves)
	b.appendQueenMoves(&moves)
	b.appendPawnMoves(&moves)

	return moves
}

func (b *Board) appendKingMoves(moves *[]move.Move) {
	us := b.SideToMove
	king := piece.New(piece.King, us)
	kingSq := b.Kings[us]

	targets := bitboard.KingAttacks[kingSq] &^ (b.Friends | b.SeenByEnemy)
	b.serializeMoves(moves, king, kingSq, targets)

	if b.CheckN == 0 {
		b.appendCastlingMoves(moves)
	}
}

func (b *Board) appendKnightMoves(moves *[]move.Move) {
	us := b.SideToMove
	knight := piece.New(piece.Knight, us)

	for knights := b.Knights(us) &^ (b.PinnedStraight | b.PinnedDiagonal); knights != bitboard.Empty; {
		from := knights.Pop()
		b.serializeMoves(moves, knight, from, bitboard.KnightAttacks[from]&b.Target)
	}
}

func (b *Board) appendBishopMoves(moves *[]move.Move) {
	b.appendDiagonalMoves(moves, piece.New(piece.Bishop, b.SideToMove), b.Bishops(b.SideToMove))
}

func (b *Board) appendRookMoves(moves *[]move.Move) {
	b.appendStraightMoves(moves, piece.New(piece.Rook, b.SideToMove), b.Rooks(b.SideToMove))
}

func (b *Board) appendQueenMoves(moves *[]move.Move) {
	queen := piece.New(piece.Queen, b.SideToMove)
	queens := b.Queens(b.SideToMove)
	b.appendDiagonalMoves(moves, queen, queens)
	b.appendStraightMoves(moves, queen, queens)
}

// appendDiagonalMoves generates moves for pieces (bishops and queens)
// that move along diagonals: pieces pinned on a straight ray cannot
// move at all, pieces pinned on a diagonal ray are restricted to that
// ray, and unpinned pieces move freely within Target.
func (b *Board) appendDiagonalMoves(moves *[]move.Move, p piece.Piece, sliders bitboard.Board) {
	sliders &^= b.PinnedStraight

	for pinned := sliders & b.PinnedDiagonal; pinned != bitboard.Empty; {
		from := pinned.Pop()
		targets := bitboard.BishopSpan(bitboard.Square(from), b.Occupied) & b.Target & b.PinnedDiagonal
		b.serializeMoves(moves, p, from, targets)
	}

	for free := sliders &^ b.PinnedDiagonal; free != bitboard.Empty; {
		from := free.Pop()
		targets := bitboard.BishopSpan(bitboard.Square(from), b.Occupied) & b.Target
		b.serializeMoves(moves, p, from, targets)
	}
}

// appendStraightMoves is appendDiagonalMoves's rook/queen analogue.
func (b *Board) appendStraightMoves(moves *[]move.Move, p piece.Piece, sliders bitboard.Board) {
	sliders &^= b.PinnedDiagonal

	for pinned := sliders & b.PinnedStraight; pinned != bitboard.Empty; {
		from := pinned.Pop()
		targets := bitboard.RookSpan(bitboard.Square(from), b.Occupied) & b.Target & b.PinnedStraight
		b.serializeMoves(moves, p, from, targets)
	}

	for free := sliders &^ b.PinnedStraight; free != bitboard.Empty; {
		from := free.Pop()
		targets := bitboard.RookSpan(bitboard.Square(from), b.Occupied) & b.Target
		b.serializeMoves(moves, p, from, targets)
	}
}

func (b *Board) appendPawnMoves(moves *[]move.Move) {
	us := b.SideToMove
	them := us.Other()

	var promotionRank, doublePushRank bitboard.Board
	var p piece.Piece

	if us == piece.White {
		promotionRank, doublePushRank = bitboard.Rank8, bitboard.Rank3
		p = piece.WhitePawn
	} else {
		promotionRank, doublePushRank = bitboard.Rank1, bitboard.Rank6
		p = piece.BlackPawn
	}

	pushTarget := b.CheckMask &^ b.Occupied
	captureTarget := b.Enemies & b.CheckMask

	pawns := b.Pawns(us)
	attackers := pawns &^ b.PinnedStraight

	unpinnedAttackers := attackers &^ b.PinnedDiagonal
	pinnedAttackers := attackers & b.PinnedDiagonal

	for bb := unpinnedAttackers; bb != bitboard.Empty; {
		from := bb.Pop()
		b.appendPawnCaptures(moves, p, from, attacks.PawnCaptures(from, us, b.Friends)&captureTarget, promotionRank)
	}
	for bb := pinnedAttackers; bb != bitboard.Empty; {
		from := bb.Pop()
		targets := attacks.PawnCaptures(from, us, b.Friends) & captureTarget & b.PinnedDiagonal
		b.appendPawnCaptures(moves, p, from, targets, promotionRank)
	}

	pushers := pawns &^ b.PinnedDiagonal
	unpinnedPushers := pushers &^ b.PinnedStraight
	pinnedPushers := pushers & b.PinnedStraight

	for bb := unpinnedPushers; bb != bitboard.Empty; {
		from := bb.Pop()
		b.appendPawnPushes(moves, p, us, from, pushTarget, doublePushRank, promotionRank, bitboard.Universe)
	}
	for bb := pinnedPushers; bb != bitboard.Empty; {
		from := bb.Pop()
		b.appendPawnPushes(moves, p, us, from, pushTarget, doublePushRank, promotionRank, b.PinnedStraight)
	}

	b.appendEnPassant(moves, p, us, them, attackers)
}

func (b *Board) appendPawnCaptures(moves *[]move.Move, p piece.Piece, from square.Square, targets, promotionRank bitboard.Board) {
	simple := targets &^ promotionRank
	for bb := simple; bb != bitboard.Empty; {
		to := bb.Pop()
		*moves = append(*moves, b.newMove(p, from, to))
	}

	promoting := targets & promotionRank
	for bb := promoting; bb != bitboard.Empty; {
		to := bb.Pop()
		appendPromotions(moves, b.newMove(p, from, to))
	}
}

func (b *Board) appendPawnPushes(moves *[]move.Move, p piece.Piece, us piece.Color, from square.Square, pushTarget, doublePushRank, promotionRank, pinMask bitboard.Board) {
	single := bitboard.Square(from).Up(us) &^ b.Occupied
	if single == bitboard.Empty {
		return
	}

	var double bitboard.Board
	if single&doublePushRank != bitboard.Empty {
		double = single.Up(us) &^ b.Occupied
	}

	single &= pushTarget & pinMask
	double &= pushTarget & pinMask

	if single != bitboard.Empty {
		to := single.FirstOne()
		m := b.newMove(p, from, to)
		if bitboard.Square(to)&promotionRank != bitboard.Empty {
			appendPromotions(moves, m)
		} else {
			*moves = append(*moves, m)
		}
	}

	if double != bitboard.Empty {
		to := double.FirstOne()
		*moves = append(*moves, b.newMove(p, from, to))
	}
}

func (b *Board) appendEnPassant(moves *[]move.Move, p piece.Piece, us, them piece.Color, attackers bitboard.Board) {
	ep := b.EnPassantTarget
	if ep == square.None {
		return
	}

	var capturedPawnSq square.Square
	if us == piece.White {
		capturedPawnSq = square.New(ep.File(), ep.Rank()-1)
	} else {
		capturedPawnSq = square.New(ep.File(), ep.Rank()+1)
	}

	epMask := bitboard.Square(ep) | bitboard.Square(capturedPawnSq)
	if b.CheckMask&epMask == bitboard.Empty {
		return
	}

	kingSq := b.Kings[us]
	epRank := bitboard.Ranks[capturedPawnSq.Rank()]

	kingOnEPRank := bitboard.Square(kingSq)&epRank != bitboard.Empty
	enemyRooksQueens := (b.Rooks(them) | b.Queens(them)) & epRank
	possiblePin := kingOnEPRank && enemyRooksQueens != bitboard.Empty

	for from := bitboard.PawnAttacks[them][ep] & attackers; from != bitboard.Empty; {
		fromSq := from.Pop()

		if b.PinnedDiagonal.IsSet(fromSq) && !b.PinnedDiagonal.IsSet(ep) {
			continue
		}

		if possiblePin {
			withoutPawns := b.Occupied &^ (bitboard.Square(fromSq) | bitboard.Square(capturedPawnSq))
			if bitboard.RookSpan(bitboard.Square(kingSq), withoutPawns)&enemyRooksQueens != bitboard.Empty {
				continue
			}
		}

		*moves = append(*moves, b.newMove(p, fromSq, ep))
	}
}

// appendCastlingMoves generates castling pseudo-moves: legality
// requires the right to still be held, the squares between king and
// rook to be empty, and the squares the king passes through (including
// its destination) to not be seen by the enemy.
func (b *Board) appendCastlingMoves(moves *[]move.Move) {
	switch b.SideToMove {
	case piece.White:
		if b.CastlingRights&castling.WhiteKingside != 0 &&
			(b.Occupied|b.SeenByEnemy)&castleMaskF1G1 == bitboard.Empty {
			*moves = append(*moves, b.newMove(piece.WhiteKing, square.E1, square.G1))
		}
		if b.CastlingRights&castling.WhiteQueenside != 0 &&
			b.Occupied&castleMaskB1C1D1 == bitboard.Empty &&
			b.SeenByEnemy&castleMaskC1D1 == bitboard.Empty {
			*moves = append(*moves, b.newMove(piece.WhiteKing, square.E1, square.C1))
		}
	case piece.Black:
		if b.CastlingRights&castling.BlackKingside != 0 &&
			(b.Occupied|b.SeenByEnemy)&castleMaskF8G8 == bitboard.Empty {
			*moves = append(*moves, b.newMove(piece.BlackKing, square.E8, square.G8))
		}
		if b.CastlingRights&castling.BlackQueenside != 0 &&
			b.Occupied&castleMaskB8C8D8 == bitboard.Empty &&
			b.SeenByEnemy&castleMaskC8D8 == bitboard.Empty {
			*moves = append(*moves, b.newMove(piece.BlackKing, square.E8, square.C8))
		}
	}
}

var (
	castleMaskF1G1   = bitboard.Square(square.F1) | bitboard.Square(square.G1)
	castleMaskB1C1D1 = bitboard.Square(square.B1) | bitboard.Square(square.C1) | bitboard.Square(square.D1)
	castleMaskC1D1   = bitboard.Square(square.C1) | bitboard.Square(square.D1)
	castleMaskF8G8   = bitboard.Square(square.F8) | bitboard.Square(square.G8)
	castleMaskB8C8D8 = bitboard.Square(square.B8) | bitboard.Square(square.C8) | bitboard.Square(square.D8)
	castleMaskC8D8   = bitboard.Square(square.C8) | bitboard.Square(square.D8)
)

func (b *Board) serializeMoves(moves *[]move.Move, p piece.Piece, from square.Square, targets bitboard.Board) {
	for bb := targets; bb != bitboard.Empty; {
		to := bb.Pop()
		*moves = append(*moves, b.newMove(p, from, to))
	}
}

// newMove builds a move record from a (piece, from, to) triple,
// filling in the captured piece and the prior-state snapshot fields
// from the board's current state.
func (b *Board) newMove(p piece.Piece, from, to square.Square) move.Move {
	return move.Move{
		From:            from,
		To:              to,
		FromPiece:       p,
		ToPiece:         p,
		CapturedPiece:   b.Position[to],
		HalfMoves:       b.DrawClock,
		CastlingRights:  b.CastlingRights,
		EnPassantSquare: b.EnPassantTarget,
	}
}

func appendPromotions(moves *[]move.Move, m move.Move) {
	c := m.FromPiece.Color()
	for _, t := range piece.Promotions {
		promo := m
		promo.ToPiece = piece.New(t, c)
		*moves = append(*moves, promo)
	}
}
