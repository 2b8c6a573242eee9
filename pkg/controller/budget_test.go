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

package controller_test

import (
	"testing"
	"time"

	"github.com/corvidchess/corvid/pkg/controller"
)

func TestComputeClassical(t *testing.T) {
	c := controller.Clock{
		Kind:              controller.Classical,
		Remaining:         40 * time.Second,
		MovesUntilControl: 10,
	}
	var pred controller.OpponentPredictor
	pred.Observe(2 * time.Second)

	b := controller.Compute(c, &pred)
	if want := 4 * time.Second; b.MaxResponse != want {
		t.Errorf("MaxResponse = %v, want %v", b.MaxResponse, want)
	}
	if want := b.MaxResponse + 2*time.Second; b.MaxSearch != want {
		t.Errorf("MaxSearch = %v, want %v", b.MaxSearch, want)
	}
}

func TestComputeClassicalZeroMovesUntilControl(t *testing.T) {
	c := controller.Clock{
		Kind:              controller.Classical,
		Remaining:         10 * time.Second,
		MovesUntilControl: 0,
	}
	var pred controller.OpponentPredictor

	b := controller.Compute(c, &pred)
	if b.MaxResponse != 10*time.Second {
		t.Errorf("MaxResponse = %v, want %v", b.MaxResponse, 10*time.Second)
	}
}

func TestComputeIncremental(t *testing.T) {
	c := controller.Clock{
		Kind:      controller.Incremental,
		Remaining: 25 * time.Second,
		Increment: 1 * time.Second,
	}
	var pred controller.OpponentPredictor

	b := controller.Compute(c, &pred)
	if want := 2 * time.Second; b.MaxResponse != want {
		t.Errorf("MaxResponse = %v, want %v", b.MaxResponse, want)
	}
}

func TestComputeFixedMax(t *testing.T) {
	c := controller.Clock{Kind: controller.FixedMax, MoveTime: 3 * time.Second}
	var pred controller.OpponentPredictor

	b := controller.Compute(c, &pred)
	if b.MaxResponse != 3*time.Second {
		t.Errorf("MaxResponse = %v, want %v", b.MaxResponse, 3*time.Second)
	}
	if b.MaxSearch != 6*time.Second {
		t.Errorf("MaxSearch = %v, want %v", b.MaxSearch, 6*time.Second)
	}
}

func TestOpponentPredictorEWMA(t *testing.T) {
	var p controller.OpponentPredictor
	if p.Predict() != 0 {
		t.Fatalf("zero-value predictor should predict 0, got %v", p.Predict())
	}

	p.Observe(1 * time.Second)
	if p.Predict() != 1*time.Second {
		t.Fatalf("first observation should set the average exactly, got %v", p.Predict())
	}

	p.Observe(2 * time.Second)
	// 0.2*2s + 0.8*1s = 1.2s
	want := 1200 * time.Millisecond
	if p.Predict() != want {
		t.Errorf("Predict() = %v, want %v", p.Predict(), want)
	}
}
