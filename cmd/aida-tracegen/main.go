// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"github.com/0xsoniclabs/aida-tracegen/config"
	"github.com/0xsoniclabs/aida-tracegen/tracegen"
	"github.com/urfave/cli/v2"
)

// Exit codes of the trace generator.
const (
	exitFailure       = 1
	exitConfiguration = 2
	exitInvariant     = 3
)

// TraceGenApp data structure
var TraceGenApp = cli.App{
	Name:      "Aida Trace Generator",
	HelpName:  "aida-tracegen",
	Usage:     "generate synthetic storage access traces with controlled locality",
	Copyright: "(c) 2025 Sonic Labs",
	Flags: []cli.Flag{
		&config.EnvFileFlag,
	},
	Before: config.LoadEnvFile,
	Commands: []*cli.Command{
		&SingleCommand,
		&MultiCommand,
		&StatsCommand,
	},
}

// main implements the trace generator
func main() {
	if err := TraceGenApp.Run(os.Args); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the exit status of the process.
func exitCode(err error) int {
	switch tracegen.KindOf(err) {
	case tracegen.KindConfiguration:
		return exitConfiguration
	case tracegen.KindInvariant:
		return exitInvariant
	default:
		return exitFailure
	}
}
