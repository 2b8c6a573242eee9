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

package square

import "fmt"

// File represents a file on the chessboard. FileA is the leftmost file
// from white's point of view.
type File int8

// Constants representing every file.
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// FileN is the number of files on the board.
const FileN = 8

// String converts a File into its string representation.
func (f File) String() string {
	return string(rune('a' + f))
}

// FileFrom parses a File from its ASCII letter, e.g. 'e'.
func FileFrom(id byte) (File, error) {
	if id < 'a' || id > 'h' {
		return 0, fmt.Errorf("square: invalid file identifier %q", id)
	}

	return File(id - 'a'), nil
}

// DiagonalN and AntiDiagonalN are the number of diagonals/anti-diagonals
// on the board (15 each, indexed [0, 14]).
const DiagonalN = 15
const AntiDiagonalN = 15
