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

// Package display implements everything printed to an interactive
// terminal that isn't raw CECP protocol text: a colorized/wrapped
// writer for thinking and error lines, a live search-stats dashboard,
// and an HTML report of a finished search's iterative-deepening
// history (SPEC_FULL.md §4).
package display

import (
	"fmt"
	"io"

	"github.com/mitchellh/colorstring"
	wordwrap "github.com/mitchellh/go-wordwrap"
)

// DefaultWidth is the line width thinking/error output wraps to when
// the terminal's actual width isn't known.
const DefaultWidth = 100

// Writer colorizes and wraps protocol-adjacent lines (§7 "tellusererror",
// thinking output) before writing them to an underlying terminal.
type Writer struct {
	out   io.Writer
	width int
}

// NewWriter wraps out, colorizing output to width columns.
func NewWriter(out io.Writer, width int) *Writer {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Writer{out: out, width: width}
}

// Error writes msg in red, tagged as a CECP "tellusererror"-style line
// (§7), wrapped to the writer's width.
func (w *Writer) Error(msg string) {
	w.colored("[red]"+msg, true)
}

// Info writes msg in the default color, wrapped but not tagged — used
// for thinking/analysis lines that aren't protocol-significant.
func (w *Writer) Info(msg string) {
	w.colored(msg, false)
}

func (w *Writer) colored(msg string, tag bool) {
	wrapped := wordwrap.WrapString(msg, uint(w.width))
	rendered := colorstring.Color(wrapped)
	if tag {
		fmt.Fprintf(w.out, "tellusererror %s\n", rendered)
		return
	}
	fmt.Fprintf(w.out, "%s\n", rendered)
}
