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
	"time"

	"github.com/0xsoniclabs/aida-tracegen/config"
	"github.com/0xsoniclabs/aida-tracegen/logger"
	"github.com/0xsoniclabs/aida-tracegen/tracegen"
	"github.com/0xsoniclabs/aida-tracegen/tracegen/analysis"
	"github.com/0xsoniclabs/aida-tracegen/tracegen/distribution"
	"github.com/0xsoniclabs/aida-tracegen/tracegen/generator"
	"github.com/0xsoniclabs/aida-tracegen/tracegen/output"
	"github.com/0xsoniclabs/aida-tracegen/tracegen/request"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// emitTrace annotates the addresses produced by the generator and passes
// the resulting requests to all configured outputs.
func emitTrace(ctx *cli.Context, cfg *config.Config, log logger.Logger, gen *generator.Generator) (err error) {
	sizes, err := distribution.ParseSizes(cfg.Sizes)
	if err != nil {
		return err
	}
	log.Infof("request sizes: %v", sizes)
	annotator, err := request.NewAnnotator(sizes, cfg.ReadFraction, cfg.BlockSize, tracegen.NewRandom(cfg.Seed, tracegen.StreamAnnotation))
	if err != nil {
		return err
	}

	writers, err := openWriters(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.CombineErrors(err, writers.Close())
	}()

	var collector *analysis.Collector
	if cfg.Summary || cfg.Chart != "" {
		collector = analysis.NewCollector(gen.Group)
	}

	start := time.Now()
	for addr, err := range gen.Stream(cfg.Length) {
		if err != nil {
			return err
		}
		if err := writers.Write(annotator.Annotate(addr)); err != nil {
			return err
		}
		if collector != nil {
			collector.Add(addr)
		}
	}

	stats := gen.Stats()
	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Noticef("Generated %d requests (%d IRM draws, %d scheduled) in %vh %vm %vs", stats.Emitted, stats.IRMDraws, stats.Pops, hours, minutes, seconds)

	if collector == nil {
		return nil
	}
	return report(ctx, cfg, collector.Summary())
}

// openWriters opens the trace output (stdout unless a file is given) and
// the optional sqlite3 database.
func openWriters(ctx *cli.Context, cfg *config.Config, log logger.Logger) (output.Writers, error) {
	var writers output.Writers
	if cfg.Output == "" {
		writers = append(writers, output.NewTextWriter(ctx.App.Writer))
	} else {
		w, err := output.NewFileWriter(cfg.Output)
		if err != nil {
			return nil, err
		}
		writers = append(writers, w)
	}

	if cfg.Sqlite != "" {
		w, err := output.NewSQLiteWriter(cfg.Sqlite)
		if err != nil {
			return nil, errors.CombineErrors(err, writers.Close())
		}
		log.Infof("Storing requests of run %s in %s", w.RunID(), cfg.Sqlite)
		writers = append(writers, w)
	}
	return writers, nil
}

// report prints the summary of a trace and renders its charts.
func report(ctx *cli.Context, cfg *config.Config, summary analysis.Summary) error {
	if cfg.Summary {
		if _, err := fmt.Fprintln(ctx.App.ErrWriter, summary.Table()); err != nil {
			return err
		}
	}
	if cfg.Chart == "" {
		return nil
	}
	file, err := os.Create(cfg.Chart)
	if err != nil {
		return errors.Wrapf(err, "cannot create chart file %s", cfg.Chart)
	}
	return errors.CombineErrors(summary.WriteCharts(file), file.Close())
}
