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

// Package controller implements the time budgeting and pondering
// scheduler that sits above pkg/search (§4.7, §5): translating a CECP
// clock and mode into search limits, and running speculative searches
// against the opponent's likely replies while they think.
package controller

import "time"

// ClockKind names the three time-control shapes CECP exposes (§4.7).
type ClockKind int

const (
	// Classical is N moves per period plus a per-move increment.
	Classical ClockKind = iota
	// Incremental is a single remaining-time budget plus an increment,
	// replenished every move (movestogo unset or zero).
	Incremental
	// FixedMax is a flat wall-clock allowance per move (CECP "st").
	FixedMax
)

// Clock describes the controller's view of the game clock, as set by
// the CECP `level`/`st`/`time`/`otim` commands.
type Clock struct {
	Kind ClockKind

	Remaining       time.Duration // our remaining time
	Increment       time.Duration // per-move incement (classical/incremental)
	MovesUntilControl int         // moves left in the current period (classical)

	MoveTime time.Duration // fixed per-move allowance (FixedMax)
}

// opponentThinkAlpha is the EWMA smoothing factor for the opponent
// think-time predictor (§4.7 "Time budgeting").
const opponentThinkAlpha = 0.2

// OpponentPredictor tracks an exponentially-weighted moving average of
// how long the opponent takes to reply, used to pad max_search_duration
// so a ponder search doesn't get cut off right as the opponent moves.
type OpponentPredictor struct {
	avg time.Duration
	has bool
}

// Observe folds one more observed think time into the average.
func (p *OpponentPredictor) Observe(thinkTime time.Duration) {
	if !p.has {
		p.avg = thinkTime
		p.has = true
		return
	}
	p.avg = time.Duration(opponentThinkAlpha*float64(thinkTime) + (1-opponentThinkAlpha)*float64(p.avg))
}

// Predict returns the current prediction of the opponent's next think
// time, zero until the first observation.
func (p *OpponentPredictor) Predict() time.Duration {
	return p.avg
}

// Budget is the pair of durations the controller computes before every
// move decision (§4.7 "Time budgeting"): how long a direct response may
// take, and how long a ponder search following the same line may run
// before risking being cut off mid-thought.
type Budget struct {
	MaxResponse time.Duration
	MaxSearch   time.Duration
}

// Compute derives a Budget from the clock state and the opponent
// think-time predictor, following the exact per-clock-kind formulas
// named in §4.7.
func Compute(c Clock, opponent *OpponentPredictor) Budget {
	switch c.Kind {
	case Classical:
		movesLeft := c.MovesUntilControl
		if movesLeft <= 0 {
			movesLeft = 1
		}
		maxResponse := c.Remaining / time.Duration(movesLeft)
		maxSearch := maxResponse + opponent.Predict()
		return Budget{MaxResponse: maxResponse, MaxSearch: maxSearch}

	case Incremental:
		maxResponse := c.Increment + c.Remaining/25
		return Budget{MaxResponse: maxResponse, MaxSearch: maxResponse + opponent.Predict()}

	case FixedMax:
		return Budget{MaxResponse: c.MoveTime, MaxSearch: 2 * c.MoveTime}

	default:
		return Budget{}
	}
}
