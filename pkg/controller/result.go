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

package controller

import (
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/piece"
)

// GameResult names why a game has ended, for CECP's result-string
// bookkeeping (§6, SPEC_FULL.md §5 "computer/result protocol bookkeeping
// and game-end detection").
type GameResult int

const (
	NoResult GameResult = iota
	WhiteMates
	BlackMates
	Stalemate
	DrawByRepetition
	DrawByFiftyMoveRule
	DrawByInsufficientMaterial
)

// String renders r as the exact CECP result line (§6), or "" if the
// game has not ended.
func (r GameResult) String() string {
	switch r {
	case WhiteMates:
		return "1-0 {White mates}"
	case BlackMates:
		return "0-1 {Black mates}"
	case Stalemate:
		return "1/2-1/2 {Stalemate}"
	case DrawByRepetition:
		return "1/2-1/2 {Draw by repetition}"
	case DrawByFiftyMoveRule:
		return "1/2-1/2 {Draw by fifty move rule}"
	case DrawByInsufficientMaterial:
		return "1/2-1/2 {Draw by insufficient material}"
	default:
		return ""
	}
}

// PGNTag renders r as a PGN "Result" tag value ("1-0", "0-1", "1/2-1/2",
// or "*" if the game has not ended), for internal/pgnlog's Recorder.
func (r GameResult) PGNTag() string {
	switch r {
	case WhiteMates:
		return "1-0"
	case BlackMates:
		return "0-1"
	case Stalemate, DrawByRepetition, DrawByFiftyMoveRule, DrawByInsufficientMaterial:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// DetectResult inspects b and reports whether the game has already
// ended: checkmate or stalemate for the side to move, fifty-move and
// 9-ply-cycle draws (§4.6 step 1), or insufficient mating material
// (K vs K, K+B vs K, K+N vs K — SPEC_FULL.md §5).
func DetectResult(b *board.Board) GameResult {
	if len(b.GenerateMoves()) == 0 {
		if !b.IsInCheck(b.SideToMove) {
			return Stalemate
		}
		if b.SideToMove == piece.White {
			return BlackMates
		}
		return WhiteMates
	}

	switch {
	case b.DrawClock >= 100:
		return DrawByFiftyMoveRule
	case b.RepeatsCycle():
		return DrawByRepetition
	case isInsufficientMaterial(b):
		return DrawByInsufficientMaterial
	default:
		return NoResult
	}
}

// isInsufficientMaterial reports whether neither side has enough
// material to force mate: no pawns, rooks or queens anywhere, and at
// most one minor piece total across both sides.
func isInsufficientMaterial(b *board.Board) bool {
	counts := b.PieceCounts()

	minors := 0
	for c := piece.Color(0); c < piece.NColor; c++ {
		if counts[c][piece.Pawn] > 0 || counts[c][piece.Rook] > 0 || counts[c][piece.Queen] > 0 {
			return false
		}
		minors += counts[c][piece.Knight] + counts[c][piece.Bishop]
	}
	return minors <= 1
}
