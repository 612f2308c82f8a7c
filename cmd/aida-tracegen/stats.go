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
	"github.com/0xsoniclabs/aida-tracegen/logger"
	"github.com/0xsoniclabs/aida-tracegen/tracegen/analysis"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// StatsCommand prints locality statistics of an existing trace.
var StatsCommand = cli.Command{
	Action:    statsAction,
	Name:      config.StatsCommand,
	Usage:     "prints locality statistics of a trace file",
	ArgsUsage: "<trace-file>",
	Flags: []cli.Flag{
		&config.BlockSizeFlag,
		&config.ChartFlag,
		&logger.LogLevelFlag,
	},
}

func statsAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "tracegen-stats")

	file, err := os.Open(cfg.TraceFile)
	if err != nil {
		return errors.Wrapf(err, "cannot open trace file %s", cfg.TraceFile)
	}
	defer file.Close()

	collector := analysis.NewCollector(nil)
	for addr, err := range analysis.ReadTrace(file, cfg.BlockSize) {
		if err != nil {
			return errors.Wrapf(err, "cannot read trace file %s", cfg.TraceFile)
		}
		collector.Add(addr)
	}
	summary := collector.Summary()
	log.Noticef("Read %d requests from %s", summary.References, cfg.TraceFile)

	if _, err := fmt.Fprintln(ctx.App.Writer, summary.Table()); err != nil {
		return err
	}
	if cfg.Chart == "" {
		return nil
	}
	return report(ctx, &config.Config{Chart: cfg.Chart}, summary)
}
