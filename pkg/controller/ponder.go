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
	"sync"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/search/tt"
)

// NumParallelSearches is the default concurrency cap on simultaneous
// ponder hypotheses (§4.7 step 2).
const NumParallelSearches = 4

// hypothesisSweepTime bounds the brief sweep used to pick which of the
// opponent's replies are worth pondering (§4.7 step 1); the sweep is
// limited by this time only, not by a depth cap.
const hypothesisSweepTime = 750 * time.Millisecond

// hypothesis is one opponent move the scheduler has chosen to ponder,
// together with the worker searching our reply to it.
type hypothesis struct {
	move   move.Move
	board  *board.Board
	search *search.Context

	done   bool
	result search.Result
}

// Ponderer runs up to NumParallelSearches concurrent searches, one per
// hypothesized opponent reply, while the opponent is thinking (§4.7
// "Pondering", §5 "Shared resources"). Its three protected fields —
// active, completed and the end flag/known move — are exactly the
// three §5 names as shared state, all behind mu/cond.
type Ponderer struct {
	mu   sync.Mutex
	cond *sync.Cond

	active    []*hypothesis
	completed []*hypothesis

	searchEndFlag     bool
	knownOpponentMove move.Move

	limits search.Limits
	table  *tt.Table
}

// NewPonderer creates a scheduler that will purge clones of table for
// each hypothesis it starts.
func NewPonderer(table *tt.Table) *Ponderer {
	p := &Ponderer{table: table}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// purgedClone returns a clone of table with every entry unreachable
// from b's live position dropped (§4.6 "TT purging", §4.7 step 2 "a
// purged copy of the cumulative TT").
func purgedClone(b *board.Board, table *tt.Table) *tt.Table {
	clone := table.Clone()
	clone.Purge(b.PieceCounts(), b.CastlingRights, b.PawnBBs())
	return clone
}

// Hypotheses picks the opponent's top-N replies to b by value, from a
// sweep of at most hypothesisSweepTime played from the opponent's perspective
// (§4.7 step 1).
func Hypotheses(b *board.Board, table *tt.Table, n int) []move.Move {
	ctx := search.NewContext(b.Clone(), purgedClone(b, table))
	result, err := ctx.Search(search.Limits{Depth: search.MaxDepth, MoveTime: hypothesisSweepTime}, true, true)
	if err != nil {
		return nil
	}

	if n > len(result.Moves) {
		n = len(result.Moves)
	}
	moves := make([]move.Move, n)
	for i := 0; i < n; i++ {
		moves[i] = result.Moves[i].Move
	}
	return moves
}

// Start launches a worker per hypothesis move (up to NumParallelSearches),
// each searching our best reply to the position after that move is
// played on a private clone of b (§4.7 step 2, §5 "Scheduling").
func (p *Ponderer) Start(b *board.Board, moves []move.Move, limits search.Limits) {
	p.mu.Lock()
	p.searchEndFlag = false
	p.knownOpponentMove = move.Null
	p.active = nil
	p.completed = nil
	p.limits = limits
	p.mu.Unlock()

	if len(moves) > NumParallelSearches {
		moves = moves[:NumParallelSearches]
	}

	for _, m := range moves {
		clone := b.Clone()
		clone.Play(m)

		h := &hypothesis{
			move:   m,
			board:  clone,
			search: search.NewContext(clone, purgedClone(clone, p.table)),
		}

		p.mu.Lock()
		p.active = append(p.active, h)
		p.mu.Unlock()

		go p.run(h)
	}
}

// run executes one hypothesis's search and moves it from active to
// completed, notifying the controller thread (§5 "Suspension points").
func (p *Ponderer) run(h *hypothesis) {
	result, _ := h.search.Search(p.limits, true, true)

	p.mu.Lock()
	h.result = result
	h.done = true
	for i, active := range p.active {
		if active == h {
			p.active = append(p.active[:i], p.active[i+1:]...)
			break
		}
	}
	p.completed = append(p.completed, h)
	p.cond.Broadcast()
	p.mu.Unlock()
}

// StopAll requests cancellation of every in-flight hypothesis and
// blocks until all have observed it, honouring the cancellation
// liveness guarantee in §8 ("Cancellation liveness").
func (p *Ponderer) StopAll() {
	p.mu.Lock()
	p.searchEndFlag = true
	active := append([]*hypothesis(nil), p.active...)
	p.mu.Unlock()

	for _, h := range active {
		h.search.Stop()
	}

	p.mu.Lock()
	for len(p.active) > 0 {
		p.cond.Wait()
	}
	p.mu.Unlock()
}

// OpponentMoved reports the opponent's actual move, and returns the
// result of the matching hypothesis if one was found and had already
// finished or finishes promptly, per §4.7 step 4. ok is false if no
// hypothesis matched, in which case the caller must launch a fresh
// direct search.
func (p *Ponderer) OpponentMoved(m move.Move) (search.Result, bool) {
	p.mu.Lock()
	p.knownOpponentMove = m

	var matched *hypothesis
	for _, h := range p.completed {
		if h.move == m {
			matched = h
			break
		}
	}
	if matched == nil {
		for _, h := range p.active {
			if h.move == m {
				matched = h
				break
			}
		}
	}

	others := make([]*hypothesis, 0, len(p.active))
	for _, h := range p.active {
		if h != matched {
			others = append(others, h)
		}
	}
	p.mu.Unlock()

	for _, h := range others {
		h.search.Stop()
	}

	if matched == nil {
		return search.Result{}, false
	}

	// let the matching search run to completion or its own deadline;
	// it was already given the full limits when started. run()
	// broadcasts on p.cond every time a hypothesis finishes.
	p.mu.Lock()
	for !matched.done {
		p.cond.Wait()
	}
	p.mu.Unlock()

	return matched.result, true
}
