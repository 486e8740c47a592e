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
	"math"
	"strings"

	"seehuhn.de/go/geom/matrix"
)

// Policy selects how the rings of filled contours become features.
type Policy int

const (
	// PolicyMultiRing emits one MultiPolygon per (level, color), with holes
	// detected from the ring orientation.
	PolicyMultiRing Policy = iota

	// PolicyOverlap emits every ring as a separate Polygon without holes.
	// Features of neighbouring bands overlap.
	PolicyOverlap
)

func (p Policy) String() string {
	if p == PolicyOverlap {
		return "overlap"
	}
	return "multi-ring"
}

// ParsePolicy converts "multi-ring" (or "multi") and "overlap" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "", "multi", "multi-ring":
		return PolicyMultiRing, nil
	case "overlap":
		return PolicyOverlap, nil
	}
	return PolicyMultiRing, &ConfigError{Field: "policy", Reason: fmt.Sprintf("unknown value %q", s)}
}

// Config holds the settings for a conversion.
type Config struct {
	// MinAngleDeg enables angle based simplification.  Vertices where the
	// line turns by no more than this many degrees are removed.
	// Nil disables simplification.
	MinAngleDeg *float64

	// Tolerance enables an additional Douglas-Peucker pass with this
	// distance threshold, after angle based simplification.
	Tolerance *float64

	// NDigits is the number of decimal digits kept in the output
	// coordinates.  Nil disables rounding.
	NDigits *int

	// Unit is appended to feature titles.
	Unit string

	// StrokeWidth is the stroke-width property of every feature.
	StrokeWidth float64

	// FillOpacity is the fill opacity of filled contour features.
	// Nil means 0.9.  Must not be set together with FillOpacityRange.
	FillOpacity *float64

	// FillOpacityRange, if set, makes the fill opacity grow linearly
	// from FillOpacityRange[0] in steps of (max-min)/len(levels).
	FillOpacityRange *[2]float64

	// Properties are merged into the properties of every feature.
	// Keys given here override the generated ones.
	Properties map[string]any

	// Policy is the feature layout of filled contours.  The zero value is
	// PolicyMultiRing.
	Policy Policy

	// Transform maps contour engine coordinates to output coordinates.
	// The zero matrix means no transformation.
	Transform matrix.Matrix

	// StrictPaths makes malformed paths abort the conversion instead of
	// being skipped.
	StrictPaths bool

	// CheckHoles logs a warning for every hole whose bounding box is not
	// contained in the bounding box of its outer ring.  The output is not
	// affected.
	CheckHoles bool

	// BBox adds the bounding box of all features to the collection.
	BBox bool
}

// Default values used by DefaultConfig and for unset fields.
const (
	DefaultNDigits     = 5
	DefaultStrokeWidth = 1.0
	DefaultFillOpacity = 0.9
)

// DefaultConfig returns the default settings: no simplification,
// coordinates rounded to 5 digits, stroke width 1, fill opacity 0.9 and
// multi-ring polygons.
func DefaultConfig() Config {
	ndigits := DefaultNDigits
	return Config{
		NDigits:     &ndigits,
		StrokeWidth: DefaultStrokeWidth,
		Policy:      PolicyMultiRing,
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.MinAngleDeg != nil && (math.IsNaN(*c.MinAngleDeg) || *c.MinAngleDeg < 0) {
		return &ConfigError{Field: "MinAngleDeg", Reason: "must be non-negative"}
	}
	if c.Tolerance != nil && (math.IsNaN(*c.Tolerance) || *c.Tolerance < 0) {
		return &ConfigError{Field: "Tolerance", Reason: "must be non-negative"}
	}
	if c.NDigits != nil && (*c.NDigits < 0 || *c.NDigits > 15) {
		return &ConfigError{Field: "NDigits", Reason: "must be between 0 and 15"}
	}
	if c.StrokeWidth < 0 || math.IsNaN(c.StrokeWidth) {
		return &ConfigError{Field: "StrokeWidth", Reason: "must be non-negative"}
	}
	if c.FillOpacity != nil && c.FillOpacityRange != nil {
		return &ConfigError{Field: "FillOpacity", Reason: "cannot be combined with FillOpacityRange"}
	}
	if c.FillOpacity != nil && !validOpacity(*c.FillOpacity) {
		return &ConfigError{Field: "FillOpacity", Reason: "must be in [0, 1]"}
	}
	if r := c.FillOpacityRange; r != nil {
		if !validOpacity(r[0]) || !validOpacity(r[1]) {
			return &ConfigError{Field: "FillOpacityRange", Reason: "bounds must be in [0, 1]"}
		}
	}
	if c.Policy != PolicyMultiRing && c.Policy != PolicyOverlap {
		return &ConfigError{Field: "Policy", Reason: fmt.Sprintf("unknown policy %d", c.Policy)}
	}
	return nil
}

func validOpacity(x float64) bool {
	return x >= 0 && x <= 1
}

// transform returns the affine map for output coordinates.
func (c *Config) transform() (matrix.Matrix, bool) {
	if c.Transform == (matrix.Matrix{}) || c.Transform == matrix.Identity {
		return matrix.Identity, false
	}
	return c.Transform, true
}
