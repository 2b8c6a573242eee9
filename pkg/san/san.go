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

// Package san implements Standard Algebraic Notation (de)serialization
// of moves (§6): piece letter, minimal same-destination disambiguation,
// capture/promotion/check/mate markers, and castling's "O-O"/"O-O-O".
package san

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// pattern matches every non-castling SAN move: an optional piece
// letter, optional file/rank disambiguation, an optional capture mark,
// the destination square, an optional promotion suffix (either FIDE's
// "=Q" or the older "/Q"), and an optional check/mate mark.
var pattern = regexp.MustCompile(`^([NBRQK])?([a-h])?([1-8])?(x)?([a-h][1-8])(?:[=/]([NBRQ]))?[+#]?$`)

// pieceLetters maps a piece type to its SAN letter, empty for pawns.
var pieceLetters = map[piece.Type]byte{
	piece.Knight: 'N',
	piece.Bishop: 'B',
	piece.Rook:   'R',
	piece.Queen:  'Q',
	piece.King:   'K',
}

var letterTypes = map[byte]piece.Type{
	'N': piece.Knight,
	'B': piece.Bishop,
	'R': piece.Rook,
	'Q': piece.Queen,
	'K': piece.King,
}

// Move returns the SAN representation of m, a legal move in position b.
// b must not yet have had m played on it. The check and mate markers
// are determined by actually playing m and probing the resulting
// position, then unplaying it, per §6.
func Move(b *board.Board, m move.Move) string {
	if m.IsCastle() {
		if m.IsKingsideCastle() {
			return annotate(b, m, "O-O")
		}
		return annotate(b, m, "O-O-O")
	}

	var sb strings.Builder

	t := m.FromPiece.Type()
	if letter, ok := pieceLetters[t]; ok {
		sb.WriteByte(letter)
		sb.WriteString(disambiguation(b, m))
	}

	if m.IsCapture() {
		if t == piece.Pawn {
			sb.WriteString(m.From.File().String())
		}
		sb.WriteByte('x')
	}

	sb.WriteString(m.To.String())

	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(pieceLetters[m.ToPiece.Type()])
	}

	return annotate(b, m, sb.String())
}

// disambiguation returns the minimal file, rank, or file+rank prefix
// needed to distinguish m from other legal moves by a piece of the same
// type moving to the same destination.
func disambiguation(b *board.Board, m move.Move) string {
	var sameFile, sameRank bool
	rivals := 0

	for _, rival := range b.GenerateMoves() {
		if rival.To != m.To || rival.From == m.From || rival.FromPiece != m.FromPiece {
			continue
		}
		rivals++
		if rival.From.File() == m.From.File() {
			sameFile = true
		}
		if rival.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}

	switch {
	case rivals == 0:
		return ""
	case !sameFile:
		return m.From.File().String()
	case !sameRank:
		return m.From.Rank().String()
	default:
		return m.From.String()
	}
}

// annotate plays m on b to determine the check/checkmate suffix, then
// unplays it, returning s with that suffix appended.
func annotate(b *board.Board, m move.Move, s string) string {
	if err := b.MakeMove(m); err != nil {
		// m came from GenerateMoves, so this is an internal
		// inconsistency, not an input error worth reporting here.
		return s
	}
	defer b.UnmakeMove()

	them := b.SideToMove
	if !b.IsInCheck(them) {
		return s
	}
	if len(b.GenerateMoves()) == 0 {
		return s + "#"
	}
	return s + "+"
}

// Parse finds the legal move in b matching the SAN string s. b is the
// position the move is to be played from.
func Parse(b *board.Board, s string) (move.Move, error) {
	s = strings.TrimSpace(s)

	legal := b.GenerateMoves()

	if s == "O-O" || s == "O-O-O" {
		for _, m := range legal {
			if s == "O-O" && m.IsKingsideCastle() {
				return m, nil
			}
			if s == "O-O-O" && m.IsQueensideCastle() {
				return m, nil
			}
		}
		return move.Null, fmt.Errorf("san: no legal castling move %q", s)
	}

	groups := pattern.FindStringSubmatch(s)
	if groups == nil {
		return move.Null, fmt.Errorf("san: malformed move %q", s)
	}

	pieceLetter, fromFile, fromRank, dest, promo := groups[1], groups[2], groups[3], groups[5], groups[6]

	wantType := piece.Pawn
	if pieceLetter != "" {
		wantType = letterTypes[pieceLetter[0]]
	}

	to, err := square.NewFromString(dest)
	if err != nil {
		return move.Null, fmt.Errorf("san: %w", err)
	}

	var matches []move.Move
	for _, m := range legal {
		if m.FromPiece.Type() != wantType || m.To != to {
			continue
		}
		if fromFile != "" && m.From.File().String() != fromFile {
			continue
		}
		if fromRank != "" && m.From.Rank().String() != fromRank {
			continue
		}
		if promo != "" {
			if !m.IsPromotion() || letterTypes[promo[0]] != m.ToPiece.Type() {
				continue
			}
		} else if m.IsPromotion() {
			continue
		}
		matches = append(matches, m)
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return move.Null, fmt.Errorf("san: no legal move matches %q", s)
	default:
		return move.Null, fmt.Errorf("san: move %q is ambiguous", s)
	}
}
