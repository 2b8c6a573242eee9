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

package display

import (
	"fmt"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/nsf/termbox-go"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/square"
)

// Dashboard is a live TUI rendering the board alongside search
// statistics, opened by the "corvid watch" subcommand; the CECP
// session itself never opens it (SPEC_FULL.md §4 "internal/display").
type Dashboard struct {
	boardWidget *widgets.Paragraph
	statsWidget *widgets.Paragraph
	npsGauge    *widgets.Gauge

	closed bool
}

// Open initializes the terminal for TUI rendering. The caller must call
// Close before the process writes any more plain-text protocol output,
// since termui takes over the whole screen.
func Open() (*Dashboard, error) {
	if err := ui.Init(); err != nil {
		return nil, fmt.Errorf("display: init tui: %w", err)
	}

	d := &Dashboard{
		boardWidget: widgets.NewParagraph(),
		statsWidget: widgets.NewParagraph(),
		npsGauge:    widgets.NewGauge(),
	}

	d.boardWidget.Title = "Board"
	d.boardWidget.SetRect(0, 0, 34, 20)

	d.statsWidget.Title = "Search"
	d.statsWidget.SetRect(34, 0, 84, 20)

	d.npsGauge.Title = "nps (capped display at 5M)"
	d.npsGauge.SetRect(0, 20, 84, 23)

	return d, nil
}

// Close tears down the TUI and restores the terminal, syncing termbox's
// backing buffer so no rendering artifacts bleed into the plain-text
// protocol output that resumes after the dashboard closes.
func (d *Dashboard) Close() {
	if d.closed {
		return
	}
	d.closed = true
	ui.Close()
	_ = termbox.Sync()
}

// Update redraws the dashboard from the current position and the most
// recent iterative-deepening result.
func (d *Dashboard) Update(b *board.Board, result search.Result) {
	d.boardWidget.Text = renderBoard(b)

	var pv strings.Builder
	for i, m := range result.PV {
		if i > 0 {
			pv.WriteByte(' ')
		}
		pv.WriteString(m.String())
	}

	d.statsWidget.Text = fmt.Sprintf(
		"depth  %d\nscore  %s\nnodes  %d\nttHits %d\npv     %s",
		result.Depth, result.Score, result.Nodes, result.TTHits, pv.String(),
	)

	nps := 0.0
	if result.Elapsed > 0 {
		nps = float64(result.Nodes) / result.Elapsed.Seconds()
	}
	d.npsGauge.Percent = int(nps / 5_000_000 * 100)
	if d.npsGauge.Percent > 100 {
		d.npsGauge.Percent = 100
	}

	ui.Render(d.boardWidget, d.statsWidget, d.npsGauge)
}

// Wait blocks until the user presses 'q' or Ctrl-C, for standalone
// dashboard views (e.g. "corvid watch") that have nothing else driving
// the termui event loop.
func (d *Dashboard) Wait() {
	for e := range ui.PollEvents() {
		if e.Type == ui.KeyboardEvent && (e.ID == "q" || e.ID == "<C-c>") {
			return
		}
	}
}

// renderBoard draws b as an 8x8 grid of piece glyphs, rank 8 first.
func renderBoard(b *board.Board) string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			s := square.New(square.File(f), square.Rank(r))
			sb.WriteString(b.Position[s].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
