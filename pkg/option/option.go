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

// Package option implements a small runtime-configuration schema, the
// teacher's pkg/uci/option (UCI "setoption name ... value ...") repurposed
// as cmd/corvid's CLI flag set (SPEC_FULL.md §3 "Configuration"): hash
// table size and pondering on/off are implicit CECP options with no
// protocol command of their own, so they're configured once at startup
// instead, alongside the PGN log path.
package option

import (
	"fmt"
	"strconv"
)

// NewSchema returns a new, empty option schema.
func NewSchema() Schema {
	return Schema{options: make(map[string]Option)}
}

// Schema maps a flag's name to its Option definition.
type Schema struct {
	options map[string]Option
}

// AddOption registers an option under name.
func (schema *Schema) AddOption(name string, option Option) {
	schema.options[name] = option
}

// SetDefaults applies every option's default value, as if it had been
// passed on the command line.
func (schema *Schema) SetDefaults() error {
	for _, option := range schema.options {
		if err := option.Initialize(); err != nil {
			return err
		}
	}
	return nil
}

// ParseArgs parses a "--name value" (or "--name=value") flag list,
// applying each recognized option's Storage function in turn and
// leaving every other option at whatever SetDefaults left it at.
// Unknown flags are reported as errors rather than silently ignored,
// matching the teacher's "set option: %q is not a valid option" strictness.
func (schema *Schema) ParseArgs(args []string) error {
	for i := 0; i < len(args); i++ {
		name, value, inline := cutFlag(args[i])
		if name == "" {
			return fmt.Errorf("option: malformed flag %q", args[i])
		}

		if !inline {
			if i+1 >= len(args) {
				return fmt.Errorf("option: flag %q expects a value", name)
			}
			i++
			value = args[i]
		}

		if err := schema.SetOption(name, value); err != nil {
			return err
		}
	}
	return nil
}

// cutFlag splits a "--name", "--name=value" or "-name" argument into its
// name and, if present inline, its value.
func cutFlag(arg string) (name, value string, inline bool) {
	for len(arg) > 0 && arg[0] == '-' {
		arg = arg[1:]
	}
	if arg == "" {
		return "", "", false
	}
	for i := 0; i < len(arg); i++ {
		if arg[i] == '=' {
			return arg[:i], arg[i+1:], true
		}
	}
	return arg, "", false
}

// SetOption sets the named option to value.
func (schema *Schema) SetOption(name, value string) error {
	option, found := schema.options[name]
	if !found {
		return fmt.Errorf("option: %q is not a recognized flag", name)
	}
	return option.Store(value)
}

// Option is the interface implemented by every flag type.
type Option interface {
	Store(string) error // parse and apply a user-supplied value
	Initialize() error   // apply the default value
}

// Check is a boolean flag, e.g. "--ponder=true".
type Check struct {
	Default bool
	Storage func(bool) error
}

var _ Option = (*Check)(nil)

func (option *Check) Store(value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("option: malformed bool %q: %w", value, err)
	}
	return option.Storage(b)
}

func (option *Check) Initialize() error {
	return option.Storage(option.Default)
}

// Spin is an integer flag bounded to [Min, Max], e.g. "--hash=128".
type Spin struct {
	Default  int
	Min, Max int
	Storage  func(int) error
}

var _ Option = (*Spin)(nil)

func (option *Spin) Store(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("option: malformed int %q: %w", value, err)
	}
	if n < option.Min || n > option.Max {
		return fmt.Errorf("option: value %d out of bounds [%d, %d]", n, option.Min, option.Max)
	}
	return option.Storage(n)
}

func (option *Spin) Initialize() error {
	return option.Storage(option.Default)
}

// String is a free-form text flag, e.g. "--pgn-log=games.pgn".
type String struct {
	Default string
	Storage func(string) error
}

var _ Option = (*String)(nil)

func (option *String) Store(value string) error {
	return option.Storage(value)
}

func (option *String) Initialize() error {
	return option.Storage(option.Default)
}
