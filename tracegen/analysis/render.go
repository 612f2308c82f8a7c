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

package analysis

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Table renders the summary as a human readable table.
func (s Summary) Table() string {
	p := message.NewPrinter(language.English)
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle("Trace Summary")
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRow(table.Row{"references", p.Sprintf("%d", s.References)})
	t.AppendRow(table.Row{"unique addresses", p.Sprintf("%d", s.Unique)})
	t.AppendRow(table.Row{"reuses", p.Sprintf("%d", s.Reuses)})
	if s.Reuses > 0 {
		t.AppendRow(table.Row{"mean reuse distance", p.Sprintf("%.2f", s.MeanReuse)})
		for _, q := range s.ReusePercentiles {
			t.AppendRow(table.Row{fmt.Sprintf("p%v reuse distance", q.Percentile), p.Sprintf("%d", q.Distance)})
		}
	}
	if len(s.Groups) > 1 {
		t.AppendSeparator()
		for _, g := range s.Groups {
			t.AppendRow(table.Row{
				fmt.Sprintf("group %d", g.Group),
				p.Sprintf("%d refs / %d addrs = %.2f", g.References, g.Addresses, g.RevisitRate),
			})
		}
	}
	return t.Render()
}

// newFrequencyChart creates a bar chart of the most frequent addresses.
func newFrequencyChart(top []AddressCount) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeChalk,
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Address Frequency",
			Subtitle: "most referenced addresses",
		}))
	labels := make([]string, len(top))
	items := make([]opts.BarData, len(top))
	for i, a := range top {
		labels[i] = strconv.FormatInt(a.Address, 10)
		items[i] = opts.BarData{Value: a.References}
	}
	bar.SetXAxis(labels).AddSeries("References", items)
	return bar
}

// newReuseChart creates a line chart of reuse distance percentiles.
func newReuseChart(percentiles []Percentile) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeChalk,
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title: "Reuse Distance",
		}))
	labels := make([]string, len(percentiles))
	items := make([]opts.LineData, len(percentiles))
	for i, p := range percentiles {
		labels[i] = fmt.Sprintf("p%v", p.Percentile)
		items[i] = opts.LineData{Value: p.Distance}
	}
	line.SetXAxis(labels).AddSeries("Distance", items)
	return line
}

// WriteCharts renders the summary as an HTML page.
func (s Summary) WriteCharts(w io.Writer) error {
	page := components.NewPage()
	page.PageTitle = "Trace Summary"
	page.AddCharts(newFrequencyChart(s.Top), newReuseChart(s.ReusePercentiles))
	return page.Render(w)
}
