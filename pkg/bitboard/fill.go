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

package bitboard

// This file implements sliding-piece attack generation via Kogge-Stone
// occluded fills, the technique named by the data model for rook,
// bishop, and queen attacks (§4.1), rather than precomputed magic
// tables: a generator set is stepped one square at a time, masked
// against the empty squares and OR'd into the fill, so each fill
// completes in a fixed six iterations regardless of how far the slide
// can travel.

// occludedFill grows generators one step per iteration along dir, each
// step gated by empty so propagation stops before the first occupied
// square: the result holds the generators and the empty squares they
// reach, not the blocker itself (occludedSpan's extra step adds it).
func occludedFill(generators, empty Board, step func(Board) Board) Board {
	fill := generators
	flood := empty

	for i := 0; i < 6; i++ {
		generators = step(generators) & flood
		fill |= generators
		flood &= step(flood)
	}

	return fill
}

// occludedSpan is the occluded fill advanced one further step, i.e. the
// set of squares actually reachable (attacked) by a slider at
// generators with occupied squares occ: the ray continues into and
// including the first occupied square, then stops.
func occludedSpan(generators, occ Board, step func(Board) Board) Board {
	empty := ^occ
	return step(occludedFill(generators, empty, step))
}

// FillNorth, FillSouth, ... flood-fill the empty squares reachable from
// generators by repeated steps in the named direction, stopping just
// before (not including) the first blocker.
func FillNorth(generators, empty Board) Board { return occludedFill(generators, empty, Board.North) }
func FillSouth(generators, empty Board) Board { return occludedFill(generators, empty, Board.South) }
func FillEast(generators, empty Board) Board  { return occludedFill(generators, empty, Board.East) }
func FillWest(generators, empty Board) Board  { return occludedFill(generators, empty, Board.West) }

func FillNorthEast(generators, empty Board) Board {
	return occludedFill(generators, empty, Board.NorthEast)
}
func FillNorthWest(generators, empty Board) Board {
	return occludedFill(generators, empty, Board.NorthWest)
}
func FillSouthEast(generators, empty Board) Board {
	return occludedFill(generators, empty, Board.SouthEast)
}
func FillSouthWest(generators, empty Board) Board {
	return occludedFill(generators, empty, Board.SouthWest)
}

// SpanNorth, SpanSouth, ... are the attack sets of a slider at
// generators (a single square, generally) given the full board's
// occupancy occ: the ray, including the first blocking piece.
func SpanNorth(generators, occ Board) Board { return occludedSpan(generators, occ, Board.North) }
func SpanSouth(generators, occ Board) Board { return occludedSpan(generators, occ, Board.South) }
func SpanEast(generators, occ Board) Board  { return occludedSpan(generators, occ, Board.East) }
func SpanWest(generators, occ Board) Board  { return occludedSpan(generators, occ, Board.West) }

func SpanNorthEast(generators, occ Board) Board {
	return occludedSpan(generators, occ, Board.NorthEast)
}
func SpanNorthWest(generators, occ Board) Board {
	return occludedSpan(generators, occ, Board.NorthWest)
}
func SpanSouthEast(generators, occ Board) Board {
	return occludedSpan(generators, occ, Board.SouthEast)
}
func SpanSouthWest(generators, occ Board) Board {
	return occludedSpan(generators, occ, Board.SouthWest)
}

// RookSpan returns the rook attack set from a single square s (as a
// generator bitboard) given full-board occupancy occ: the union of the
// four straight-line occluded spans.
func RookSpan(generators, occ Board) Board {
	return SpanNorth(generators, occ) | SpanSouth(generators, occ) |
		SpanEast(generators, occ) | SpanWest(generators, occ)
}

// BishopSpan returns the bishop attack set from generators given
// occupancy occ: the union of the four diagonal occluded spans.
func BishopSpan(generators, occ Board) Board {
	return SpanNorthEast(generators, occ) | SpanNorthWest(generators, occ) |
		SpanSouthEast(generators, occ) | SpanSouthWest(generators, occ)
}

// QueenSpan is the union of RookSpan and BishopSpan.
func QueenSpan(generators, occ Board) Board {
	return RookSpan(generators, occ) | BishopSpan(generators, occ)
}

// straightSteps and diagonalSteps list the four rook-like and four
// bishop-like step functions respectively, used by flood-fill variants
// that need to iterate over "all straight directions" or "all diagonal
// directions" generically (e.g. the check/pin analyzer, §4.3).
var straightSteps = [4]func(Board) Board{Board.North, Board.South, Board.East, Board.West}
var diagonalSteps = [4]func(Board) Board{Board.NorthEast, Board.NorthWest, Board.SouthEast, Board.SouthWest}

// StraightRaysFrom returns the full straight-line ray (rook span) from a
// single square s given occupancy occ, split per direction, used when
// the caller needs to know which direction a pinning/checking piece's
// ray came from.
func StraightRaysFrom(s Board, occ Board) [4]Board {
	var rays [4]Board
	for i, step := range straightSteps {
		rays[i] = occludedSpan(s, occ, step)
	}
	return rays
}

// DiagonalRaysFrom is StraightRaysFrom's bishop-span analogue.
func DiagonalRaysFrom(s Board, occ Board) [4]Board {
	var rays [4]Board
	for i, step := range diagonalSteps {
		rays[i] = occludedSpan(s, occ, step)
	}
	return rays
}
