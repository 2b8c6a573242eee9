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

// Package move implements the move record (§3): the squares, pieces,
// and bookkeeping a single ply needs both to be played and to be
// unmade, plus the diagnostic flags (check/checkmate/stalemate/draw)
// that the game controller and SAN formatter annotate a played move
// with.
package move

import (
	"fmt"
	"strings"

	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// Move represents a single ply, including enough of the board's prior
// state (castling rights, en-passant target, half-move clock) for
// unmake to restore it in O(1).
type Move struct {
	From square.Square
	To   square.Square

	FromPiece     piece.Piece
	ToPiece       piece.Piece
	CapturedPiece piece.Piece

	// prior board state, snapshotted for unmake.
	HalfMoves       int
	CastlingRights  castling.Rights
	EnPassantSquare square.Square

	// diagnostic flags, unset by move generation and filled in by the
	// board or SAN package once the move has actually been played and
	// its effect on the opponent's position is known.
	Check     bool
	Checkmate bool
	Stalemate bool
	Draw      bool
}

// Null is the null move, played by the search's null-move pruning
// heuristic (§4.6.5): it passes the turn without moving a piece.
var Null = Move{From: square.None, To: square.None}

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool {
	return m.From == square.None && m.To == square.None
}

// String renders m in long algebraic notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	str := fmt.Sprintf("%s%s", m.From, m.To)
	if m.IsPromotion() {
		str += strings.ToLower(m.ToPiece.Type().String())
	}
	return str
}

// CastlingRightUpdates returns the castling rights that playing m
// revokes: moving a king or rook off its home square, or capturing a
// rook on its home square, permanently forfeits the associated right.
func (m Move) CastlingRightUpdates() castling.Rights {
	var toRemove castling.Rights

	switch m.From {
	case square.H1:
		toRemove |= castling.WhiteKingside
	case square.A1:
		toRemove |= castling.WhiteQueenside
	case square.E1:
		toRemove |= castling.White
	case square.H8:
		toRemove |= castling.BlackKingside
	case square.A8:
		toRemove |= castling.BlackQueenside
	case square.E8:
		toRemove |= castling.Black
	}

	switch m.To {
	case square.H1:
		toRemove |= castling.WhiteKingside
	case square.A1:
		toRemove |= castling.WhiteQueenside
	case square.H8:
		toRemove |= castling.BlackKingside
	case square.A8:
		toRemove |= castling.BlackQueenside
	}

	return toRemove
}

// IsReversible reports whether m is reversible for the purposes of
// the fifty-move/draw clock: captures and pawn moves are irreversible
// and reset it.
func (m Move) IsReversible() bool {
	return !m.IsCapture() && m.FromPiece.Type() != piece.Pawn
}

// IsCastle reports whether m is a king castling move, king- or
// queenside.
func (m Move) IsCastle() bool {
	switch m.FromPiece {
	case piece.WhiteKing:
		return m.From == square.E1 && (m.To == square.G1 || m.To == square.C1)
	case piece.BlackKing:
		return m.From == square.E8 && (m.To == square.G8 || m.To == square.C8)
	default:
		return false
	}
}

// IsKingsideCastle and IsQueensideCastle disambiguate IsCastle by side.
func (m Move) IsKingsideCastle() bool {
	return m.IsCastle() && (m.To == square.G1 || m.To == square.G8)
}

func (m Move) IsQueensideCastle() bool {
	return m.IsCastle() && (m.To == square.C1 || m.To == square.C8)
}

// IsCapture reports whether m captures a piece, including en passant.
func (m Move) IsCapture() bool {
	return m.CapturedPiece != piece.NoPiece
}

// IsEnPassant reports whether m is a pawn capture onto the en-passant
// target square.
func (m Move) IsEnPassant() bool {
	return m.FromPiece.Type() == piece.Pawn && m.To == m.EnPassantSquare && m.EnPassantSquare != square.None
}

// EnPassantCapturedSquare returns the square of the pawn actually
// captured by an en-passant move: the target rank's opposite-color
// neighbor of m.To, not m.To itself.
func (m Move) EnPassantCapturedSquare() square.Square {
	if m.FromPiece.Color() == piece.White {
		return square.New(m.To.File(), m.To.Rank()-1)
	}
	return square.New(m.To.File(), m.To.Rank()+1)
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.FromPiece != m.ToPiece
}

// IsDoublePawnPush reports whether m is a two-square pawn advance from
// the home rank, which opens an en-passant opportunity for the mover's
// opponent.
func (m Move) IsDoublePawnPush() bool {
	if m.FromPiece.Type() != piece.Pawn {
		return false
	}

	fromRank := m.From.Rank()
	toRank := m.To.Rank()

	return fromRank == square.Rank2 && toRank == square.Rank4 ||
		fromRank == square.Rank7 && toRank == square.Rank5
}

// IsQuiet reports whether m is neither a capture nor a promotion,
// i.e. a move quiescence search ignores.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// WithDiagnostics returns a copy of m annotated with the given
// post-move diagnostic flags, for SAN formatting ("+"/"#") and game
// termination detection.
func (m Move) WithDiagnostics(check, checkmate, stalemate, draw bool) Move {
	m.Check = check
	m.Checkmate = checkmate
	m.Stalemate = stalemate
	m.Draw = draw
	return m
}
