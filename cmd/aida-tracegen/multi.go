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

// MultiCommand generates a trace from groups of addresses with individual
// IRD distributions.
var MultiCommand = cli.Command{
	Action: multiAction,
	Name:   config.MultiCommand,
	Usage:  "generates a trace from multiple address groups",
	Flags: []cli.Flag{
		&config.AddressesFlag,
		&config.LengthFlag,
		&config.GroupsFlag,
		&config.GroupIRDFlag,
		&config.PopularityFlag,
		&config.SeedFlag,
		&config.BlockSizeFlag,
		&config.ReadFractionFlag,
		&config.SizesFlag,
		&config.OutputFlag,
		&config.SqliteFlag,
		&config.SummaryFlag,
		&config.ChartFlag,
		&logger.LogLevelFlag,
	},
	Description: `
Splits the footprint into equally sized groups. Each group re-references
its addresses according to its own IRD distribution, scaled by a
popularity drawn from the popularity distribution.
`,
}

func multiAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "tracegen-multi")

	specs := cfg.GroupIRDs()
	irds := make([]distribution.Sampler, len(specs))
	for i, spec := range specs {
		if irds[i], err = distribution.ParseIRD(spec); err != nil {
			return tracegen.WrapConfig(err, "group %d", i)
		}
	}
	popularitySampler, err := distribution.ParseIRM(cfg.IRM, cfg.Addresses, true)
	if err != nil {
		return err
	}

	log.Noticef("Generating trace: addresses=%d length=%d groups=%d seed=%d", cfg.Addresses, cfg.Length, cfg.Groups, cfg.Seed)
	rg := tracegen.NewRandom(cfg.Seed, tracegen.StreamAddresses)
	popularity, err := generator.Popularity(popularitySampler, cfg.Groups, rg)
	if err != nil {
		return err
	}
	for i := range irds {
		log.Infof("group %d: popularity=%v IRD: %v", i, popularity[i], irds[i])
	}

	gen, err := generator.NewMultiGroup(cfg.Addresses, irds, popularity, rg)
	if err != nil {
		return err
	}
	return emitTrace(ctx, cfg, log, gen)
}
