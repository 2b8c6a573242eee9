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

// Package castling implements castling-rights tracking, including the
// "castle made"/"castle lost" bookkeeping the evaluator needs (§4.5:
// castle made +30, rights fully lost without castling -60).
package castling

import "github.com/corvidchess/corvid/pkg/piece"

// Rights packs the four FEN castling flags plus, in the high nibble, a
// per-color "has castled" and "has irrevocably lost both rights without
// castling" bit. The low nibble alone is what NewRights/String/FEN round
// trip; the high nibble is auxiliary evaluator state, set by the board's
// make-move logic and never serialized.
type Rights byte

// the four FEN-visible rights bits.
const (
	WhiteKingside  Rights = 1 << 0
	WhiteQueenside Rights = 1 << 1
	BlackKingside  Rights = 1 << 2
	BlackQueenside Rights = 1 << 3

	White = WhiteKingside | WhiteQueenside
	Black = BlackKingside | BlackQueenside

	Kingside  = WhiteKingside | BlackKingside
	Queenside = WhiteQueenside | BlackQueenside

	All  Rights = White | Black
	None Rights = 0

	N = 1 << 4
)

// the auxiliary "castle made"/"castle lost" bits, one per color.
const (
	whiteMade Rights = 1 << 4
	blackMade Rights = 1 << 5
	whiteLost Rights = 1 << 6
	blackLost Rights = 1 << 7
)

// NewRights parses the FEN castling-availability field, e.g. "KQkq" or
// "-". It leaves the auxiliary bits clear.
func NewRights(r string) Rights {
	var rights Rights

	if r == "-" {
		return None
	}

	for _, c := range r {
		switch c {
		case 'K':
			rights |= WhiteKingside
		case 'Q':
			rights |= WhiteQueenside
		case 'k':
			rights |= BlackKingside
		case 'q':
			rights |= BlackQueenside
		}
	}

	return rights
}

// FEN returns the FEN castling-availability field for the low nibble of
// c, ignoring the auxiliary bits.
func (c Rights) FEN() string {
	var str string

	if c&WhiteKingside != 0 {
		str += "K"
	}
	if c&WhiteQueenside != 0 {
		str += "Q"
	}
	if c&BlackKingside != 0 {
		str += "k"
	}
	if c&BlackQueenside != 0 {
		str += "q"
	}

	if str == "" {
		str = "-"
	}

	return str
}

// String is an alias of FEN, used for debug printing.
func (c Rights) String() string {
	return c.FEN()
}

// MarkCastled returns c with the given color's "has castled" bit set.
func (c Rights) MarkCastled(color piece.Color) Rights {
	if color == piece.White {
		return c | whiteMade
	}
	return c | blackMade
}

// HasCastled reports whether the given color has already castled.
func (c Rights) HasCastled(color piece.Color) bool {
	if color == piece.White {
		return c&whiteMade != 0
	}
	return c&blackMade != 0
}

// MarkRightsLost returns c with the given color's "lost both rights
// without castling" bit set, which is sticky once both the side's
// kingside and queenside rights have been cleared.
func (c Rights) MarkRightsLost(color piece.Color) Rights {
	if color == piece.White {
		return c | whiteLost
	}
	return c | blackLost
}

// RightsLost reports whether the given color has irrevocably lost both
// castling rights without ever having castled.
func (c Rights) RightsLost(color piece.Color) bool {
	if color == piece.White {
		return c&whiteLost != 0
	}
	return c&blackLost != 0
}

// Side returns the subset of c's FEN-visible rights belonging to color.
func (c Rights) Side(color piece.Color) Rights {
	if color == piece.White {
		return c & White
	}
	return c & Black
}
