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

package pgnlog

import (
	"fmt"
	"os"

	"gopkg.in/freeeve/pgn.v1"
)

// SuitePosition is one canned test position read out of a PGN suite
// file, identified by the FEN its final board position reaches.
type SuitePosition struct {
	Tags map[string]string
	FEN  string
}

// LoadSuite reads every game in the PGN file at path and returns the
// final FEN each one reaches, for the "corvid bench" fixed-position
// benchmark (SPEC_FULL.md §4, not used during play).
func LoadSuite(path string) ([]SuitePosition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := pgn.NewPGNScanner(f)

	var positions []SuitePosition
	for scanner.Next() {
		game, err := scanner.Scan()
		if err != nil {
			return nil, fmt.Errorf("pgnlog: parsing suite %s: %w", path, err)
		}

		positions = append(positions, SuitePosition{
			Tags: game.Tags,
			FEN:  game.Board.String(),
		})
	}

	return positions, nil
}
