// seehuhn.de/go/contour - convert contour plots to GeoJSON
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
	numberStyle = cellStyle.Align(lipgloss.Right)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"})
)

// summaryRow describes one feature.
type summaryRow struct {
	title    string
	color    string
	geometry string
	parts    int
	points   int
	size     float64 // length of lines, area of polygons
}

func summarize(fc *geojson.FeatureCollection) []summaryRow {
	rows := make([]summaryRow, 0, len(fc.Features))
	for _, f := range fc.Features {
		row := summaryRow{
			title:    propString(f.Properties, "title"),
			color:    propString(f.Properties, "stroke"),
			geometry: f.Geometry.GeoJSONType(),
		}
		if fill := propString(f.Properties, "fill"); fill != "" {
			row.color = fill
		}
		switch g := f.Geometry.(type) {
		case orb.LineString:
			row.parts = 1
			row.points = len(g)
			row.size = planar.Length(g)
		case orb.Polygon:
			row.parts = 1
			row.points = polygonPoints(g)
			row.size = planar.Area(g)
		case orb.MultiPolygon:
			row.parts = len(g)
			for _, p := range g {
				row.points += polygonPoints(p)
			}
			row.size = planar.Area(g)
		}
		rows = append(rows, row)
	}
	return rows
}

func polygonPoints(p orb.Polygon) int {
	n := 0
	for _, r := range p {
		n += len(r)
	}
	return n
}

func propString(props geojson.Properties, key string) string {
	s, _ := props[key].(string)
	return s
}

// renderSummary formats the rows as a table, with a color swatch in front
// of every title.
func renderSummary(rows []summaryRow) string {
	if len(rows) == 0 {
		return dimStyle.Render("no features") + "\n"
	}

	header := []string{"", "title", "geometry", "parts", "points", "size"}
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{
			swatch(r.color),
			r.title,
			r.geometry,
			strconv.Itoa(r.parts),
			strconv.Itoa(r.points),
			strconv.FormatFloat(r.size, 'g', 6, 64),
		}
	}

	widths := make([]int, len(header))
	for j, h := range header {
		widths[j] = lipgloss.Width(h)
	}
	for _, row := range cells {
		for j, c := range row {
			widths[j] = max(widths[j], lipgloss.Width(c))
		}
	}

	var b strings.Builder
	line := make([]string, len(header))
	for j, h := range header {
		line[j] = cellStyle.Width(widths[j] + 2).Render(headerStyle.Render(h))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, line...))
	b.WriteByte('\n')
	for _, row := range cells {
		for j, c := range row {
			style := cellStyle
			if j >= 3 {
				style = numberStyle
			}
			line[j] = style.Width(widths[j] + 2).Render(c)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, line...))
		b.WriteByte('\n')
	}
	return b.String()
}

func swatch(hex string) string {
	if hex == "" {
		return "  "
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
