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
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/search/tt"
)

// Controller owns the live game board, the cumulative transposition
// table and the pondering scheduler, translating clock/mode state into
// search.Limits (§4.7).
type Controller struct {
	Board *board.Board
	Table *tt.Table

	Clock    Clock
	opponent OpponentPredictor
	pondering *Ponderer

	PonderEnabled bool
}

// New creates a controller bound to b, with its own transposition
// table sized to mbs megabytes.
func New(b *board.Board, mbs int) *Controller {
	table := tt.New(mbs)
	return &Controller{
		Board:     b,
		Table:     table,
		pondering: NewPonderer(table),
	}
}

// Reset replaces the live position with b, clearing the transposition
// table and cancelling any in-flight pondering — used by the CECP "new"
// and "setboard" commands (§6), which both start a fresh game state.
func (c *Controller) Reset(b *board.Board) {
	c.StopPondering()
	c.Board = b
	c.Table.Clear()
	c.opponent = OpponentPredictor{}
}

// Go runs a direct search bounded by the current clock's budget and
// plays no move itself — the caller (internal/engine) applies the
// returned best move to Board once it has replied on the protocol
// channel, matching the teacher's command/search separation.
func (c *Controller) Go() (search.Result, error) {
	budget := Compute(c.Clock, &c.opponent)

	limits := search.Limits{Depth: search.MaxDepth}
	if budget.MaxResponse > 0 {
		limits.MoveTime = budget.MaxResponse
	}

	ctx := search.NewContext(c.Board, c.Table)
	start := time.Now()
	result, err := ctx.Search(limits, false, true)
	c.observeThinkTime(time.Since(start))
	return result, err
}

// observeThinkTime folds our own think time into the opponent
// predictor as a rough prior until real opponent timings arrive; once
// the predictor holds any sample, later opponent timings are blended
// into it by OpponentMoved and this prior is no longer added.
func (c *Controller) observeThinkTime(d time.Duration) {
	if !c.opponent.has {
		c.opponent.Observe(d)
	}
}

// StartPondering begins speculatively searching the opponent's likely
// replies to the position on Board (§4.7 steps 1-2).
func (c *Controller) StartPondering() {
	if !c.PonderEnabled {
		return
	}
	moves := Hypotheses(c.Board, c.Table, NumParallelSearches)
	if len(moves) == 0 {
		return
	}
	limits := search.Limits{Depth: search.MaxDepth, Infinite: true}
	if budget := Compute(c.Clock, &c.opponent); budget.MaxSearch > 0 {
		limits = search.Limits{Depth: search.MaxDepth, MoveTime: budget.MaxSearch}
	}
	c.pondering.Start(c.Board, moves, limits)
}

// StopPondering cancels every in-flight ponder search and waits for
// them to observe cancellation (§5 "Cancellation liveness").
func (c *Controller) StopPondering() {
	if c.pondering != nil {
		c.pondering.StopAll()
	}
}

// OpponentMoved reports the opponent's actual move, adopting the
// matching ponder search's in-progress work if one exists (§4.7
// step 4). It folds the observed think time into the EWMA predictor.
func (c *Controller) OpponentMoved(m move.Move, thinkTime time.Duration) (search.Result, bool) {
	c.opponent.Observe(thinkTime)
	if !c.PonderEnabled {
		return search.Result{}, false
	}
	return c.pondering.OpponentMoved(m)
}
