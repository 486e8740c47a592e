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
	"math"

	"seehuhn.de/go/geom/vec"
)

// zeroLengthThreshold is the length below which a direction vector is
// treated as degenerate.
const zeroLengthThreshold = 1e-12

// SimplifyAngle removes vertices where the polyline turns by less than
// minAngleDeg degrees.
//
// The turn at vertex i is measured as the angle between the current baseline
// direction and the chord v[i+1]-v[i-1].  When a vertex is kept, the baseline
// is reset to v[i]-v[i-1].  The first and last vertices are always kept, and
// the vertex before the last is never kept.  If a direction vector has zero
// length, the vertex is kept.
//
// The polyline must have at least 3 points; SimplifyAngle panics with a
// *DegenerateRingError otherwise.
func SimplifyAngle(v []vec.Vec2, minAngleDeg float64) []vec.Vec2 {
	if len(v) < 3 {
		panic(&DegenerateRingError{Points: len(v), Need: 3})
	}

	accepted := make([]vec.Vec2, 0, len(v))
	accepted = append(accepted, v[0])

	baseline := v[1].Sub(v[0])
	for i := 1; i < len(v)-2; i++ {
		candidate := v[i+1].Sub(v[i-1])
		angle, ok := angleDeg(baseline, candidate)
		if !ok || angle > minAngleDeg {
			accepted = append(accepted, v[i])
			baseline = v[i].Sub(v[i-1])
		}
	}

	accepted = append(accepted, v[len(v)-1])
	return accepted
}

// angleDeg returns the unsigned angle between a and b in degrees.
// The second return value is false if either vector has zero length.
func angleDeg(a, b vec.Vec2) (float64, bool) {
	la := a.Length()
	lb := b.Length()
	if la < zeroLengthThreshold || lb < zeroLengthThreshold {
		return 0, false
	}
	cos := a.Mul(1 / la).Dot(b.Mul(1 / lb))
	cos = max(-1, min(1, cos))
	return math.Abs(math.Acos(cos) * 180 / math.Pi), true
}
