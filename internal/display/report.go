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
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// IterationSample is one completed iterative-deepening depth's result,
// logged during a search for later charting.
type IterationSample struct {
	Depth int
	Score int
	Nodes int
}

// WriteReport renders samples as an HTML line chart (score and node
// count against depth) to w, for the "corvid report" command
// (SPEC_FULL.md §4, go-echarts/v2).
func WriteReport(w io.Writer, samples []IterationSample) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Iterative deepening",
			Subtitle: "score and node count by depth",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "depth"}),
	)

	depths := make([]string, len(samples))
	scores := make([]opts.LineData, len(samples))
	nodes := make([]opts.LineData, len(samples))
	for i, s := range samples {
		depths[i] = fmt.Sprintf("%d", s.Depth)
		scores[i] = opts.LineData{Value: s.Score}
		nodes[i] = opts.LineData{Value: s.Nodes}
	}

	line.SetXAxis(depths).
		AddSeries("score (cp)", scores).
		AddSeries("nodes", nodes)

	return line.Render(w)
}
