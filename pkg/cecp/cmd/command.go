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

// Package cmd implements a command schema for the CECP (xboard) protocol,
// generalizing the teacher's flag-based UCI command schema to CECP's
// positional-argument commands (§6).
package cmd

import (
	"fmt"
	"io"

	"github.com/corvidchess/corvid/internal/display"
)

// NewSchema initializes a new command schema.
func NewSchema(replyWriter io.Writer) Schema {
	return Schema{
		replyWriter: replyWriter,
		commands:    make(map[string]Command),
	}
}

// Schema contains a command schema for a client.
type Schema struct {
	replyWriter io.Writer
	commands    map[string]Command
}

// Add adds the given command to the Schema.
func (s *Schema) Add(c Command) {
	s.commands[c.Name] = c
}

func (s *Schema) Get(name string) (Command, bool) {
	cmd, found := s.commands[name]
	return cmd, found
}

// Command represents the schema of a GUI-to-engine command. Unlike UCI,
// CECP commands take a raw, command-specific positional argument list
// rather than named flags, so Command carries no flag schema: each
// command's Run parses its own Interaction.Args.
type Command struct {
	// Name is the command's token, as typed by the GUI.
	Name string

	// Parallel commands don't block the REPL from reading the next
	// line while Run is still executing (needed by "go", which keeps
	// searching while the GUI may send "?" or a clock update).
	Parallel bool

	// Run is the command's work function.
	Run func(Interaction) error
}

func (c Command) RunWith(args []string, parallelize bool, schema Schema) error {
	interaction := Interaction{
		stdout:  schema.replyWriter,
		Command: c,
		Args:    args,
	}

	if parallelize && c.Parallel {
		go func() {
			// a parallel command (e.g. "go") runs on its own goroutine,
			// so a panicking search would otherwise crash the process
			// past RunWith's own recover; catch it here instead and
			// resign the game rather than let it happen (§7).
			defer func() {
				if r := recover(); r != nil {
					display.NewWriter(interaction.stdout, 0).Error(fmt.Sprintf("internal error: %v", r))
					interaction.Reply("resign")
				}
			}()
			if err := c.Run(interaction); err != nil {
				interaction.Replyf("Error (%s): %s", err, c.Name)
			}
		}()
		return nil
	}

	return c.Run(interaction)
}

// Interaction encapsulates relevant information about a Command sent to
// the engine by the GUI.
type Interaction struct {
	stdout io.Writer

	Command // parent Command

	// Args are the whitespace-separated tokens following the command
	// name, unparsed.
	Args []string
}

// Reply writes a is line to the GUI, like fmt.Println.
func (i *Interaction) Reply(a ...any) (int, error) {
	return fmt.Fprintln(i.stdout, a...)
}

// Replyf writes a line to the GUI, like fmt.Printf with a newline
// terminator appended.
func (i *Interaction) Replyf(format string, a ...any) (int, error) {
	return fmt.Fprintf(i.stdout, format+"\n", a...)
}
