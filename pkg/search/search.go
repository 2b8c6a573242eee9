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

// Package search implements the alpha-beta search (§4.6): principal
// variation search with a transposition table, null-move pruning,
// killer/history move ordering, static-exchange-gated captures,
// quiescence search, aspiration windows and iterative deepening.
package search

import (
	"errors"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/search/clock"
	"github.com/corvidchess/corvid/pkg/search/tt"
)

// MaxDepth bounds the ply count any single search can reach; it sizes
// every per-ply scratch array (killers, move-set stacks, pv).
const MaxDepth = 256

// NewContext allocates a search bound to b using table as its
// transposition table. b is not copied: the search makes and unmakes
// moves on it directly, restoring it to its original state by the
// time Search returns.
func NewContext(b *board.Board, table *tt.Table) *Context {
	return &Context{board: b, tt: table}
}

// Context holds all per-search working state: the board being
// searched, the shared transposition table, move ordering heuristics,
// and bookkeeping for cancellation and statistics.
type Context struct {
	board *board.Board
	tt    *tt.Table
	time  clock.Manager

	limits Limits

	stopped bool

	nodes, qNodes, ttHits           int
	sumQDepth, maxQDepth            int
	sumMoves, sumQMoves             int

	depth int // current iterative-deepening depth

	killers [MaxDepth + 1][2]move.Move
	history [piece.NColor][64][64]Eval

	rootMoves []RootMove

	drawMaxFdDepth int

	start time.Time
}

// RootMove is one legal move from the root position, annotated with
// its search value.
type RootMove struct {
	Move  move.Move
	Value Eval
}

// Limits bounds how long and how deep a search may run, mirroring the
// CECP controller's clock and depth controls (§4.7).
type Limits struct {
	Nodes int
	Depth int

	Infinite  bool
	MoveTime  time.Duration
	Time      [piece.NColor]time.Duration
	Increment [piece.NColor]time.Duration
	MovesToGo int
}

// Result reports everything the caller might want to know about a
// completed (or cancelled) search (§4.6 "Iterative deepening").
type Result struct {
	Moves []RootMove // root moves, sorted best-value-first

	Depth int
	Score Eval
	PV    PV

	Nodes, QNodes int
	AvgQDepth     float64
	AvgBranching  float64
	MaxQDepth     int

	TTHits     int
	Incomplete bool
	FailLow    bool
	FailHigh   bool

	Elapsed time.Duration
}

// Stop requests that the search halt at its next cancellation check
// point (§4.6 step 10, §5 "Cancellation").
func (s *Context) Stop() { s.stopped = true }

// InProgress reports whether the search has not yet been stopped.
func (s *Context) InProgress() bool { return !s.stopped }

// Search runs iterative deepening up to limits.Depth (or MaxDepth),
// stopping early if limits' time or node budget is exhausted. bestOnly
// skips annotating the full root move list with post-move game-state
// diagnostics, which is only needed for multi-move analysis output.
// finishFirst guarantees that even an immediate cancellation still
// returns a depth-1 result (§4.6, §4.7 "finish_first").
//
// A Stop issued before Search starts is honoured, and a finished
// search leaves the Context stopped, so each Context runs one search.
func (s *Context) Search(limits Limits, bestOnly, finishFirst bool) (Result, error) {
	if s.board.IsInCheck(s.board.SideToMove.Other()) {
		return Result{}, errors.New("search: position is illegal, side not to move is in check")
	}

	if limits.Depth <= 0 || limits.Depth > MaxDepth {
		limits.Depth = MaxDepth
	}

	s.limits = limits
	s.nodes, s.qNodes, s.ttHits = 0, 0, 0
	s.sumQDepth, s.maxQDepth, s.sumMoves, s.sumQMoves = 0, 0, 0, 0
	s.rootMoves = nil
	s.start = time.Now()
	s.drawMaxFdDepth = s.computeDrawMaxFdDepth()

	switch {
	case limits.Infinite:
		s.time = nil
	case limits.MoveTime != 0:
		s.time = &clock.Fixed{Duration: limits.MoveTime}
		s.time.Deadline()
	case limits.Time[s.board.SideToMove] == 0 && limits.Increment[s.board.SideToMove] == 0:
		// no clock was given: only the depth and node limits apply.
		s.time = nil
	default:
		s.time = &clock.Normal{
			Us:        s.board.SideToMove,
			Time:      toMillis(limits.Time),
			Increment: toMillis(limits.Increment),
			MovesToGo: limits.MovesToGo,
		}
		s.time.Deadline()
	}

	s.tt.NewSearch()
	defer s.Stop()

	result := s.iterativeDeepening(finishFirst)
	result.Elapsed = time.Since(s.start)
	result.Nodes, result.QNodes, result.TTHits = s.nodes, s.qNodes, s.ttHits
	result.MaxQDepth = s.maxQDepth
	if s.qNodes > 0 {
		result.AvgQDepth = float64(s.sumQDepth) / float64(s.qNodes)
	}
	if s.nodes > 0 {
		result.AvgBranching = float64(s.sumMoves) / float64(s.nodes)
	}

	result.Moves = s.rootMoves
	sortRootMoves(result.Moves)
	if !bestOnly {
		annotateRootMoves(s.board, result.Moves)
	}

	return result, nil
}

func toMillis(d [piece.NColor]time.Duration) [piece.NColor]int {
	var ms [piece.NColor]int
	for c, v := range d {
		ms[c] = int(v.Milliseconds())
	}
	return ms
}

// shouldStop reports whether a running search should halt now. Node
// and time checks are throttled to every 2048 nodes (§4.6 step 10) so
// that cancellation polling itself never dominates search cost.
func (s *Context) shouldStop() bool {
	switch {
	case s.stopped:
		return true
	case s.limits.Infinite:
		return false
	case s.nodes&2047 != 0:
		return false
	case s.limits.Nodes != 0 && s.nodes > s.limits.Nodes:
		s.Stop()
		return true
	case s.time != nil && s.time.Expired():
		s.Stop()
		return true
	default:
		return false
	}
}

// computeDrawMaxFdDepth scans the game history played so far for a
// state that repeats with a 4-ply period close to the current
// position. Its result bounds how close to the root the in-search
// cycle guard (negamax step 1) and transposition table (step 2) are
// allowed to trust values that might be tainted by a repetition that
// already exists in real game history rather than one formed purely
// within the search tree.
func (s *Context) computeDrawMaxFdDepth() int {
	h := s.board.History
	n := len(h)
	for i := 4; i >= 1; i-- {
		if n < 9-i {
			continue
		}
		if h[n-9+i].Hash == h[n-5+i].Hash {
			return i
		}
	}
	return 0
}

// sortRootMoves orders moves best-value-first.
func sortRootMoves(moves []RootMove) {
	for i := 1; i < len(moves); i++ {
		for j := i; j > 0 && moves[j].Value > moves[j-1].Value; j-- {
			moves[j], moves[j-1] = moves[j-1], moves[j]
		}
	}
}

// annotateRootMoves plays each root move one ply to discover its
// check/checkmate/stalemate/draw status, per §4.6 "Top-level" and the
// same actually-play-and-probe approach pkg/san uses for SAN markers.
func annotateRootMoves(b *board.Board, moves []RootMove) {
	for i, rm := range moves {
		if err := b.MakeMove(rm.Move); err != nil {
			continue
		}
		them := b.SideToMove
		inCheck := b.IsInCheck(them)
		noMoves := len(b.GenerateMoves()) == 0
		moves[i].Move = rm.Move.WithDiagnostics(
			inCheck && !noMoves,
			inCheck && noMoves,
			!inCheck && noMoves,
			b.IsDraw(),
		)
		b.UnmakeMove()
	}
}
