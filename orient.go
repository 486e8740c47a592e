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

import "seehuhn.de/go/geom/vec"

// Orientation is the winding order of a ring.
type Orientation int

const (
	CW Orientation = iota
	CCW
)

func (o Orientation) String() string {
	if o == CCW {
		return "CCW"
	}
	return "CW"
}

// RingOrientation returns the winding order of a ring, in a coordinate
// system where y points up.
//
// The test is evaluated at the leftmost vertex (lowest y among ties), where
// the ring is always convex.  If the last point repeats the first one, it is
// ignored, and so are repeated copies of the leftmost vertex.  Rings with
// fewer than three distinct vertices are reported as CW.
func RingOrientation(ring []vec.Vec2) Orientation {
	n := len(ring)
	if n > 1 && ring[0] == ring[n-1] {
		n--
	}
	if n < 3 {
		return CW
	}

	anchor := 0
	for i := 1; i < n; i++ {
		p, q := ring[i], ring[anchor]
		if p.X < q.X || (p.X == q.X && p.Y < q.Y) {
			anchor = i
		}
	}

	// Neighbours equal to the anchor carry no direction; skip them.
	b := ring[anchor]
	prev := (anchor + n - 1) % n
	for prev != anchor && ring[prev] == b {
		prev = (prev + n - 1) % n
	}
	next := (anchor + 1) % n
	for next != anchor && ring[next] == b {
		next = (next + 1) % n
	}
	if prev == anchor || next == anchor {
		return CW
	}
	a := ring[prev] // predecessor
	c := ring[next] // successor
	det := (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
	if det > 0 {
		return CCW
	}
	return CW
}

// Reverse returns a copy of ring with the order of the points reversed.
func Reverse(ring []vec.Vec2) []vec.Vec2 {
	out := make([]vec.Vec2, len(ring))
	for i, p := range ring {
		out[len(ring)-1-i] = p
	}
	return out
}
