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

import "fmt"

// MalformedPathError reports a vertex buffer which cannot be decoded.
// Only the affected path is lost; the conversion continues unless
// Config.StrictPaths is set.
type MalformedPathError struct {
	Index  int  // position of the offending command, or -1
	Code   Code // the offending command
	Reason string
}

func (e *MalformedPathError) Error() string {
	if e.Reason != "" {
		return "malformed path: " + e.Reason
	}
	return fmt.Sprintf("malformed path: unknown code %d at index %d", e.Code, e.Index)
}

// DegenerateRingError indicates a polyline with too few points for the
// requested operation.
type DegenerateRingError struct {
	Points int
	Need   int
}

func (e *DegenerateRingError) Error() string {
	return fmt.Sprintf("degenerate ring: %d points, need at least %d", e.Points, e.Need)
}

// ShapeMismatchError indicates that a path group cannot be attributed to a
// level label.
type ShapeMismatchError struct {
	Labels int
	Groups int
	Group  int // index of the offending group, or -1 for a count mismatch
}

func (e *ShapeMismatchError) Error() string {
	if e.Group >= 0 {
		return fmt.Sprintf("shape mismatch: group %d has no level among %d labels",
			e.Group, e.Labels)
	}
	return fmt.Sprintf("shape mismatch: %d path groups for %d labels", e.Groups, e.Labels)
}

// ConfigError indicates an invalid conversion setting.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Reason)
}
