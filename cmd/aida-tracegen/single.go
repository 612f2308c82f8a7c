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
	"github.com/0xsoniclabs/aida-tracegen/config"
	"github.com/0xsoniclabs/aida-tracegen/logger"
	"github.com/0xsoniclabs/aida-tracegen/tracegen"
	"github.com/0xsoniclabs/aida-tracegen/tracegen/distribution"
	"github.com/0xsoniclabs/aida-tracegen/tracegen/generator"
	"github.com/urfave/cli/v2"
)

// SingleCommand generates a trace mixing one IRD and one IRM distribution.
var SingleCommand = cli.Command{
	Action: singleAction,
	Name:   config.SingleCommand,
	Usage:  "generates a trace from a single address stream",
	Flags: []cli.Flag{
		&config.AddressesFlag,
		&config.LengthFlag,
		&config.IRMProbabilityFlag,
		&config.SeedFlag,
		&config.BlockSizeFlag,
		&config.IRDFlag,
		&config.IRMFlag,
		&config.ReadFractionFlag,
		&config.SizesFlag,
		&config.OutputFlag,
		&config.SqliteFlag,
		&config.SummaryFlag,
		&config.ChartFlag,
		&logger.LogLevelFlag,
	},
	Description: `
Generates a trace of block requests over a footprint of unique addresses.
Every address is drawn either from the IRM distribution (with probability
pirm) or re-referenced according to the IRD distribution.
`,
}

func singleAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "tracegen-single")

	ird, err := distribution.ParseIRD(cfg.IRD)
	if err != nil {
		return err
	}
	irm, err := distribution.ParseIRM(cfg.IRM, cfg.Addresses, false)
	if err != nil {
		return err
	}
	log.Noticef("Generating trace: addresses=%d length=%d pIRM=%v seed=%d", cfg.Addresses, cfg.Length, cfg.IRMProbability, cfg.Seed)
	log.Infof("IRD: %v", ird)
	log.Infof("IRM: %v", irm)

	gen, err := generator.NewSingleStream(cfg.Addresses, cfg.IRMProbability, ird, irm, tracegen.NewRandom(cfg.Seed, tracegen.StreamAddresses))
	if err != nil {
		return err
	}
	return emitTrace(ctx, cfg, log, gen)
}
