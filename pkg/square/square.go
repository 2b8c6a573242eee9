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

// Package square declares constants representing every square on a
// chessboard, and related utility functions.
//
// Squares are indexed little-endian rank-file: index = rank*8 + file,
// with rank 0 being the white back rank and file 0 being the a-file.
// Squares are represented using algebraic notation in their string form,
// and the null square is represented using the "-" symbol.
package square

import "fmt"

// Square represents a square on a chessboard.
type Square int8

// None is the null square, used for "no en-passant target" etc.
const None Square = -1

// constants representing every square on the board.
const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 0, 1, 2, 3, 4, 5, 6, 7
	A2, B2, C2, D2, E2, F2, G2, H2 Square = 8, 9, 10, 11, 12, 13, 14, 15
	A3, B3, C3, D3, E3, F3, G3, H3 Square = 16, 17, 18, 19, 20, 21, 22, 23
	A4, B4, C4, D4, E4, F4, G4, H4 Square = 24, 25, 26, 27, 28, 29, 30, 31
	A5, B5, C5, D5, E5, F5, G5, H5 Square = 32, 33, 34, 35, 36, 37, 38, 39
	A6, B6, C6, D6, E6, F6, G6, H6 Square = 40, 41, 42, 43, 44, 45, 46, 47
	A7, B7, C7, D7, E7, F7, G7, H7 Square = 48, 49, 50, 51, 52, 53, 54, 55
	A8, B8, C8, D8, E8, F8, G8, H8 Square = 56, 57, 58, 59, 60, 61, 62, 63
)

// N is the number of squares on the board.
const N = 64

// New creates a new Square from a file and a rank.
func New(file File, rank Rank) Square {
	return Square(int(rank)<<3 | int(file))
}

// NewFromString parses a Square from its algebraic notation, e.g. "e4".
// It returns None for the placeholder string "-".
func NewFromString(id string) (Square, error) {
	if id == "-" {
		return None, nil
	}

	if len(id) != 2 {
		return None, fmt.Errorf("square: invalid square identifier %q", id)
	}

	file, err := FileFrom(id[0])
	if err != nil {
		return None, err
	}

	rank, err := RankFrom(id[1])
	if err != nil {
		return None, err
	}

	return New(file, rank), nil
}

// String converts a square to its algebraic notation, e.g. "e4". The
// null square is rendered as "-".
func (s Square) String() string {
	if s == None {
		return "-"
	}

	return s.File().String() + s.Rank().String()
}

// File returns the file of the square.
func (s Square) File() File {
	return File(s) & 7
}

// Rank returns the rank of the square.
func (s Square) Rank() Rank {
	return Rank(s) >> 3
}

// Diagonal returns the NE-SW diagonal index of the square: all squares
// on the same diagonal share a Diagonal value, in the range [0, 14].
func (s Square) Diagonal() int {
	return int(s.Rank()) - int(s.File()) + 7
}

// AntiDiagonal returns the NW-SE diagonal index of the square: all
// squares on the same anti-diagonal share an AntiDiagonal value, in the
// range [0, 14].
func (s Square) AntiDiagonal() int {
	return int(s.Rank()) + int(s.File())
}

// Flipped mirrors a square vertically (rank r -> rank 7-r).
func (s Square) Flipped() Square {
	return New(s.File(), 7-s.Rank())
}
