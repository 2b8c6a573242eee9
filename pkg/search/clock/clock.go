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

// Package clock implements the deadlines a single alpha-beta search
// polls against (§4.6 "Cancellation", §4.7 "Time budgeting"). Fixed
// takes a ready-made duration, such as the budget the controller
// computes; Normal derives its own budget from the remaining clock,
// increment and moves to go. Both track the resulting absolute
// deadline and whether it has passed.
package clock

import (
	"time"

	"github.com/corvidchess/corvid/pkg/piece"
)

// Manager hands out and extends a single search's deadline.
type Manager interface {
	// Deadline sets the internal deadline for the search to stop by.
	Deadline()

	// Extend pushes the deadline further into the future, when the
	// search wants more time than originally budgeted. An extension
	// may be a no-op, e.g. under a fixed move-time limit.
	Extend()

	// Expired reports whether the deadline has passed.
	Expired() bool
}

// Normal is the time manager used for classical and incremental time
// controls: it derives a deadline from the remaining clock, per-move
// increment, and moves left to the next time control (§4.7).
type Normal struct {
	Us piece.Color

	Time, Increment [piece.NColor]int
	MovesToGo       int

	deadline time.Time
}

var _ Manager = (*Normal)(nil)

// movesToGo returns the number of moves left before the next time
// control: MovesToGo when one was given, and 30 otherwise.
func (c *Normal) movesToGo() int {
	if c.MovesToGo > 0 {
		return c.MovesToGo
	}
	return 30
}

func (c *Normal) Deadline() {
	budget := time.Duration(c.Time[c.Us]) * time.Millisecond / time.Duration(c.movesToGo())
	budget += time.Duration(c.Increment[c.Us]) * time.Millisecond
	c.deadline = time.Now().Add(budget)
}

func (c *Normal) Extend() {
	c.deadline = c.deadline.Add(time.Duration(c.Time[c.Us]) * time.Millisecond / 30)
}

func (c *Normal) Expired() bool {
	return time.Now().After(c.deadline)
}

// Fixed is the time manager used for a fixed per-move time budget
// (CECP's "st" command, or a direct movetime search): its deadline
// cannot be extended.
type Fixed struct {
	Duration time.Duration
	deadline time.Time
}

var _ Manager = (*Fixed)(nil)

func (c *Fixed) Deadline() { c.deadline = time.Now().Add(c.Duration) }
func (c *Fixed) Extend()   {}
func (c *Fixed) Expired() bool {
	return time.Now().After(c.deadline)
}
