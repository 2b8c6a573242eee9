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

// Package board implements the position model (§3): bitboard piece
// sets plus a mailbox for O(1) piece-at-square lookup, legal move
// generation built on the check/pin analyzer (§4.3), and the
// make/unmake move pair (§4.2).
package board

import (
	"fmt"

	"github.com/corvidchess/corvid/pkg/attacks"
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
	"github.com/corvidchess/corvid/pkg/zobrist"
)

// maxGameLength is the initial capacity of the make/unmake history
// stack (which still grows past it if needed); it is far beyond any
// realistic game, the nine-ply repetition window (§3) only ever looks
// at its tail.
const maxGameLength = 1024

// Board represents the complete state of a chess position.
type Board struct {
	Hash     zobrist.Key
	Position [square.N]piece.Piece
	PieceBBs [piece.TypeN]bitboard.Board
	ColorBBs [piece.NColor]bitboard.Board

	Kings [piece.NColor]square.Square

	SideToMove      piece.Color
	EnPassantTarget square.Square
	CastlingRights  castling.Rights

	// move-generation scratch state, refreshed by refreshMoveGenState
	// at the start of every GenerateMoves call.
	CheckN           int
	CheckMask        bitboard.Board
	PinnedStraight   bitboard.Board
	PinnedDiagonal   bitboard.Board
	SeenByEnemy      bitboard.Board
	Friends, Enemies bitboard.Board
	Occupied         bitboard.Board
	Target           bitboard.Board

	Plys      int
	FullMoves int
	DrawClock int

	History []Undo
}

// Undo is the information make_move snapshots so unmake_move can
// restore the prior position in O(1) (§4.2).
type Undo struct {
	Move            move.Move
	CastlingRights  castling.Rights
	CapturedPiece   piece.Piece
	EnPassantTarget square.Square
	DrawClock       int
	Hash            zobrist.Key
}

// New returns an empty board. Use github.com/corvidchess/corvid/pkg/fen
// to populate it from a FEN string.
func New() *Board {
	return &Board{
		EnPassantTarget: square.None,
		History:         make([]Undo, 0, maxGameLength),
	}
}

// Clone returns a deep copy of b, independent of b for every later
// make/unmake call. Ponder searches each need their own copy (§4.7,
// §5 "each ponder search owns its chessboard") since the controller
// keeps playing moves on the original while workers search in parallel.
func (b *Board) Clone() *Board {
	clone := *b
	clone.History = make([]Undo, len(b.History), maxGameLength)
	copy(clone.History, b.History)
	return &clone
}

// String renders the board as an ASCII diagram.
func (b *Board) String() string {
	s := "+---+---+---+---+---+---+---+---+\n"
	for rank := square.Rank(7); rank >= 0; rank-- {
		s += "| "
		for file := square.FileA; file <= square.FileH; file++ {
			p := b.Position[square.New(file, rank)]
			s += p.String() + " | "
		}
		s += fmt.Sprintf("%d\n", rank+1)
		s += "+---+---+---+---+---+---+---+---+\n"
	}
	s += "  a   b   c   d   e   f   g   h\n"
	return s
}

// Occupant returns the piece standing on s, or piece.NoPiece.
func (b *Board) Occupant(s square.Square) piece.Piece {
	return b.Position[s]
}

// ClearSquare removes whatever piece stands on s from every board
// record, including the Zobrist hash.
func (b *Board) ClearSquare(s square.Square) {
	p := b.Position[s]
	if p == piece.NoPiece {
		return
	}

	b.ColorBBs[p.Color()].Unset(s)
	b.PieceBBs[p.Type()].Unset(s)
	b.Position[s] = piece.NoPiece
	b.Hash ^= zobrist.PieceSquare[p][s]
}

// FillSquare places p on s in every board record, including the
// Zobrist hash. s must be empty; callers that might overwrite an
// occupied square must ClearSquare it first.
func (b *Board) FillSquare(s square.Square, p piece.Piece) {
	c, t := p.Color(), p.Type()

	b.ColorBBs[c].Set(s)
	b.PieceBBs[t].Set(s)
	b.Position[s] = p
	b.Hash ^= zobrist.PieceSquare[p][s]

	if t == piece.King {
		b.Kings[c] = s
	}
}

// MovePiece relocates the piece on "from" to "to", clearing whatever
// (if anything) previously stood on "to".
func (b *Board) MovePiece(from, to square.Square) {
	p := b.Position[from]
	b.ClearSquare(from)
	b.ClearSquare(to)
	b.FillSquare(to, p)
}

func (b *Board) AllOccupied() bitboard.Board {
	return b.ColorBBs[piece.White] | b.ColorBBs[piece.Black]
}

func (b *Board) Pawns(c piece.Color) bitboard.Board   { return b.PieceBBs[piece.Pawn] & b.ColorBBs[c] }
func (b *Board) Knights(c piece.Color) bitboard.Board { return b.PieceBBs[piece.Knight] & b.ColorBBs[c] }
func (b *Board) Bishops(c piece.Color) bitboard.Board { return b.PieceBBs[piece.Bishop] & b.ColorBBs[c] }
func (b *Board) Rooks(c piece.Color) bitboard.Board   { return b.PieceBBs[piece.Rook] & b.ColorBBs[c] }
func (b *Board) Queens(c piece.Color) bitboard.Board  { return b.PieceBBs[piece.Queen] & b.ColorBBs[c] }
func (b *Board) King(c piece.Color) bitboard.Board     { return b.PieceBBs[piece.King] & b.ColorBBs[c] }

// IsInCheck reports whether color c's king is currently attacked.
func (b *Board) IsInCheck(c piece.Color) bool {
	return b.IsAttacked(b.Kings[c], c.Other())
}

// IsAttacked reports whether square s is attacked by any of them's
// pieces, given the board's current occupancy.
func (b *Board) IsAttacked(s square.Square, them piece.Color) bool {
	occ := b.AllOccupied()

	var pieces [piece.TypeN]bitboard.Board
	pieces[piece.Pawn] = b.Pawns(them)
	pieces[piece.Knight] = b.Knights(them)
	pieces[piece.Bishop] = b.Bishops(them)
	pieces[piece.Rook] = b.Rooks(them)
	pieces[piece.Queen] = b.Queens(them)
	pieces[piece.King] = b.King(them)

	return attacks.AttackersTo(s, them, occ, pieces) != bitboard.Empty
}

// HasMobility reports whether the side to move has at least one legal
// move, by generating the legal move list and checking that it is
// non-empty — used by the search's
// stalemate/checkmate terminal test (§4.4, §4.6) where only the
// existence of a move matters.
func (b *Board) HasMobility() bool {
	return len(b.GenerateMoves()) > 0
}
