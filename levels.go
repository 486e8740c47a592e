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

package contour

import (
	"fmt"
	"strconv"
	"strings"
)

// Extend indicates which ends of a filled contour plot are open.
type Extend int

const (
	ExtendNeither Extend = iota
	ExtendMin
	ExtendMax
	ExtendBoth
)

func (e Extend) String() string {
	switch e {
	case ExtendMin:
		return "min"
	case ExtendMax:
		return "max"
	case ExtendBoth:
		return "both"
	default:
		return "neither"
	}
}

// ParseExtend converts "neither", "min", "max" or "both" to an Extend value.
// The empty string is treated as "neither".
func ParseExtend(s string) (Extend, error) {
	switch strings.ToLower(s) {
	case "", "neither":
		return ExtendNeither, nil
	case "min":
		return ExtendMin, nil
	case "max":
		return ExtendMax, nil
	case "both":
		return ExtendBoth, nil
	}
	return ExtendNeither, &ConfigError{Field: "extend", Reason: fmt.Sprintf("unknown value %q", s)}
}

func formatLevel(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}

// BandLabels returns the labels of the bands between consecutive levels.
// Open ends add "<x" in front and ">x" at the back, as requested by extend.
func BandLabels(levels []float64, extend Extend) []string {
	var labels []string
	if len(levels) == 0 {
		return labels
	}
	if extend == ExtendMin || extend == ExtendBoth {
		labels = append(labels, "<"+formatLevel(levels[0]))
	}
	for i := 0; i+1 < len(levels); i++ {
		labels = append(labels, formatLevel(levels[i])+"-"+formatLevel(levels[i+1]))
	}
	if extend == ExtendMax || extend == ExtendBoth {
		labels = append(labels, ">"+formatLevel(levels[len(levels)-1]))
	}
	return labels
}

// LineTitle returns the title of an isoline at the given level.
func LineTitle(level float64, unit string) string {
	return formatLevel(level) + " " + unit
}

// levelValue rounds a level to 6 decimal places.
func levelValue(level float64) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(level, 'f', 6, 64), 64)
	if err != nil {
		return level
	}
	return v
}
