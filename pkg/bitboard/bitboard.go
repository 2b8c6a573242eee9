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

// Package bitboard implements a 64-bit set-of-squares type and the
// primitive operations (shifts, fills, spans) that move generation and
// evaluation are built from.
//
// Bit i represents square i under the package square indexing: rank 0
// is white's back rank, file 0 is the a-file, index = rank*8 + file.
package bitboard

import (
	"math/bits"
	"strings"

	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// Board is a 64-bit bitboard: a set of squares.
type Board uint64

// Empty and Universe are the empty and full bitboards.
const (
	Empty    Board = 0
	Universe Board = 0xFFFFFFFFFFFFFFFF
)

// Square returns the singleton bitboard containing just s.
func Square(s square.Square) Board {
	if s == square.None {
		return Empty
	}
	return Board(1) << uint(s)
}

// String renders the bitboard as 8 lines of 8 characters, rank 8 first,
// file a first, per the board-display external interface (§6). Set
// squares are '#', clear squares '.'.
func (b Board) String() string {
	return b.Format('.', '#')
}

// Format renders the bitboard using the given characters for clear and
// set squares respectively.
func (b Board) Format(zero, one byte) string {
	var sb strings.Builder
	for rank := square.Rank(7); rank >= 0; rank-- {
		for file := square.FileA; file <= square.FileH; file++ {
			s := square.New(file, rank)
			if b.IsSet(s) {
				sb.WriteByte(one)
			} else {
				sb.WriteByte(zero)
			}
		}
		if rank > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// IsSet reports whether square s is a member of b.
func (b Board) IsSet(s square.Square) bool {
	return b&Square(s) != Empty
}

// Set adds square s to b.
func (b *Board) Set(s square.Square) {
	*b |= Square(s)
}

// Unset removes square s from b.
func (b *Board) Unset(s square.Square) {
	*b &^= Square(s)
}

// IsEmpty reports whether b has no members.
func (b Board) IsEmpty() bool {
	return b == Empty
}

// IsSingleton reports whether b has exactly one member.
func (b Board) IsSingleton() bool {
	return b != Empty && b&(b-1) == Empty
}

// Count returns the number of squares in b (popcount).
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// FirstOne returns the lowest-indexed square in b, or square.None if b
// is empty.
func (b Board) FirstOne() square.Square {
	if b == Empty {
		return square.None
	}
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// LastOne returns the highest-indexed square in b, or square.None if b
// is empty.
func (b Board) LastOne() square.Square {
	if b == Empty {
		return square.None
	}
	return square.Square(63 - bits.LeadingZeros64(uint64(b)))
}

// Pop removes and returns the lowest-indexed square in b.
func (b *Board) Pop() square.Square {
	s := b.FirstOne()
	*b &= *b - 1
	return s
}

// directional single-step shifts, masking off file-wraparound.

// North shifts b towards higher ranks (as seen from white).
func (b Board) North() Board { return b << 8 }

// South shifts b towards lower ranks.
func (b Board) South() Board { return b >> 8 }

// East shifts b towards higher files, clearing file-h wraparound.
func (b Board) East() Board { return (b &^ FileH) << 1 }

// West shifts b towards lower files, clearing file-a wraparound.
func (b Board) West() Board { return (b &^ FileA) >> 1 }

// NorthEast, NorthWest, SouthEast, SouthWest are the diagonal steps.
func (b Board) NorthEast() Board { return (b &^ FileH) << 9 }
func (b Board) NorthWest() Board { return (b &^ FileA) << 7 }
func (b Board) SouthEast() Board { return (b &^ FileH) >> 7 }
func (b Board) SouthWest() Board { return (b &^ FileA) >> 9 }

// Up and Down shift relative to the given color's forward direction.
func (b Board) Up(c piece.Color) Board {
	if c == piece.White {
		return b.North()
	}
	return b.South()
}

func (b Board) Down(c piece.Color) Board {
	if c == piece.White {
		return b.South()
	}
	return b.North()
}

// FlipVertical mirrors the bitboard across the rank-4/rank-5 boundary,
// i.e. rank r <-> rank 7-r.
func (b Board) FlipVertical() Board {
	v := uint64(b)
	v = (v<<56 | (v<<40)&0x00ff000000000000 | (v<<24)&0x0000ff0000000000 | (v<<8)&0x000000ff00000000 |
		(v>>8)&0x00000000ff000000 | (v>>24)&0x0000000000ff0000 | (v>>40)&0x000000000000ff00 | v>>56)
	return Board(v)
}

// FlipHorizontal mirrors the bitboard across the d/e-file boundary,
// i.e. file f <-> file 7-f. Used in attack-table construction (§4.1).
func (b Board) FlipHorizontal() Board {
	v := uint64(b)
	const (
		k1 = 0x5555555555555555
		k2 = 0x3333333333333333
		k4 = 0x0f0f0f0f0f0f0f0f
	)
	v = ((v >> 1) & k1) | ((v & k1) << 1)
	v = ((v >> 2) & k2) | ((v & k2) << 2)
	v = ((v >> 4) & k4) | ((v & k4) << 4)
	return Board(v)
}

// Reverse reverses the bit order of b (a1 <-> h8), i.e. flips both
// horizontally and vertically.
func (b Board) Reverse() Board {
	return Board(bits.Reverse64(uint64(b)))
}
