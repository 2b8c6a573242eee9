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

// Package fen implements Forsyth-Edwards Notation (de)serialization of
// board positions, the external interface named in §6.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
	"github.com/corvidchess/corvid/pkg/zobrist"
)

// StartPos is the FEN of the standard chess starting position.
const StartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Parse builds a *board.Board from a FEN string.
func Parse(fen string) (*board.Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("fen: need at least 4 fields, got %d", len(fields))
	}
	// half-move clock and full-move number are optional in some
	// CECP/xboard producers; default them rather than reject.
	for len(fields) < 6 {
		fields = append(fields, "0")
	}
	if fields[5] == "0" {
		fields[5] = "1"
	}

	b := board.New()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("fen: position field must have 8 ranks, got %d", len(ranks))
	}

	for i, rankData := range ranks {
		rank := square.Rank(7 - i)
		file := square.FileA

		for _, ch := range rankData {
			if ch >= '1' && ch <= '8' {
				file += square.File(ch - '0')
				continue
			}

			if file > square.FileH {
				return nil, fmt.Errorf("fen: rank %d overflows past the h-file", 8-i)
			}

			p, err := piece.NewFromString(string(ch))
			if err != nil {
				return nil, fmt.Errorf("fen: %w", err)
			}

			b.FillSquare(square.New(file, rank), p)
			file++
		}
	}

	color, err := piece.NewColor(fields[1])
	if err != nil {
		return nil, fmt.Errorf("fen: %w", err)
	}
	b.SideToMove = color
	if color == piece.Black {
		b.Hash ^= zobrist.SideToMove
	}

	b.CastlingRights = castling.NewRights(fields[2])
	b.Hash ^= zobrist.Castling[b.CastlingRights&castling.All]

	ep, err := square.NewFromString(fields[3])
	if err != nil {
		return nil, fmt.Errorf("fen: %w", err)
	}
	b.EnPassantTarget = ep
	if ep != square.None {
		b.Hash ^= zobrist.EnPassant[ep.File()]
	}

	drawClock, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("fen: invalid half-move clock %q: %w", fields[4], err)
	}
	b.DrawClock = drawClock

	fullMoves, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("fen: invalid full-move number %q: %w", fields[5], err)
	}
	b.FullMoves = fullMoves

	return b, nil
}

// String returns the FEN representation of b.
func String(b *board.Board) string {
	var sb strings.Builder

	for i := 0; i < 8; i++ {
		rank := square.Rank(7 - i)
		empty := 0

		for file := square.FileA; file <= square.FileH; file++ {
			p := b.Occupant(square.New(file, rank))
			if p == piece.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}

		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if i < 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.SideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(b.CastlingRights.FEN())
	sb.WriteByte(' ')
	sb.WriteString(b.EnPassantTarget.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.DrawClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullMoves))

	return sb.String()
}
