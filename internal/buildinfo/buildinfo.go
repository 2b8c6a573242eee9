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

// Package buildinfo holds the engine's version stamp, normally produced
// by internal/generator/build from "git describe" (teacher's
// scripts/build), kept here as a plain constant since this module has no
// build pipeline to regenerate it from.
package buildinfo

// Version is the engine's reported version string.
const Version = "v0.1.0-dev"

// Name is the engine's name, as reported to the GUI.
const Name = "Corvid"

// Author is the engine's reported author.
const Author = "corvidchess"
