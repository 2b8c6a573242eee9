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

// Package cecp implements the Chess Engine Communication Protocol
// (xboard-style) client loop (§6 "Controller protocol"), generalizing the
// teacher's pkg/uci client to CECP's line-oriented, positional-argument
// command set.
package cecp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/corvidchess/corvid/internal/display"
	"github.com/corvidchess/corvid/pkg/cecp/cmd"
)

// NewClient creates a Client listening on stdin for CECP commands, with
// the default quit command added.
func NewClient() Client {
	client := Client{
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}

	client.commands = cmd.NewSchema(client.stdout)
	client.AddCommand(cmdQuit)

	return client
}

// errQuit is returned by the quit command to stop the REPL.
var errQuit = fmt.Errorf("cecp: quit")

// errInternal is returned by RunWith when a command panicked and was
// already reported and resigned; Start must not print it again.
var errInternal = fmt.Errorf("cecp: internal error")

var cmdQuit = cmd.Command{
	Name: "quit",
	Run: func(cmd.Interaction) error {
		return errQuit
	},
}

// Client represents a CECP client talking to a GUI over stdin/stdout.
type Client struct {
	stdin  io.Reader
	stdout io.Writer

	commands cmd.Schema
}

// AddCommand adds the given command to the client's schema.
func (c *Client) AddCommand(cmd cmd.Command) {
	c.commands.Add(cmd)
}

// Start runs a read-eval-print loop over the client's stdin until "quit"
// is received or a read error occurs.
func (c *Client) Start() error {
	reader := bufio.NewReader(c.stdin)

	for {
		prompt, err := reader.ReadString('\n')
		if err != nil {
			return err
		}

		args := strings.Fields(prompt)
		if len(args) == 0 {
			continue
		}

		switch err := c.RunWith(args, true); err {
		case nil:
			// no error: continue the loop
		case errQuit:
			return nil
		case errInternal:
			// already reported via tellusererror and resigned above
		default:
			c.Printf("Error (%s): %s\n", err, args[0])
		}
	}
}

// Run runs the given arguments as a command without parallelization,
// e.g. for commands issued by the engine itself rather than the GUI.
func (c *Client) Run(args ...string) error {
	return c.RunWith(args, false)
}

// RunWith finds the command named by args[0] and runs it with the
// remaining args. A command that panics (an internal invariant
// violation, e.g. pkg/board/makemove.go or pkg/see/see.go) is caught
// here rather than crashing the process: it is reported to the GUI as
// a "tellusererror" line and the engine resigns the current game (§7).
func (c *Client) RunWith(args []string, parallelize bool) (err error) {
	name, args := args[0], args[1:]

	command, found := c.commands.Get(name)
	if !found {
		return fmt.Errorf("command not found: %s", name)
	}

	defer func() {
		if r := recover(); r != nil {
			display.NewWriter(c.stdout, 0).Error(fmt.Sprintf("internal error: %v", r))
			c.Println("resign")
			err = errInternal
		}
	}()

	return command.RunWith(args, parallelize, c.commands)
}

// Print acts as fmt.Print on the client's stdout.
func (c *Client) Print(a ...any) (int, error) { return fmt.Fprint(c.stdout, a...) }

// Printf acts as fmt.Printf on the client's stdout.
func (c *Client) Printf(format string, a ...any) (int, error) { return fmt.Fprintf(c.stdout, format, a...) }

// Println acts as fmt.Println on the client's stdout.
func (c *Client) Println(a ...any) (int, error) { return fmt.Fprintln(c.stdout, a...) }
