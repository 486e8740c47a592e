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
	"iter"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Code is a per-vertex path command, numbered as in the contour engine's
// output.
type Code uint8

// These are the path commands understood by Decompose.  Curve3 and Curve4
// only appear in paths converted from curved outlines; contour engines never
// emit them and Decompose rejects them.
const (
	Stop      Code = 0
	MoveTo    Code = 1
	LineTo    Code = 2
	Curve3    Code = 3
	Curve4    Code = 4
	ClosePoly Code = 79
)

func (c Code) String() string {
	switch c {
	case Stop:
		return "Stop"
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case Curve3:
		return "Curve3"
	case Curve4:
		return "Curve4"
	case ClosePoly:
		return "ClosePoly"
	default:
		return fmt.Sprintf("Code(%d)", uint8(c))
	}
}

// VertexBuffer is a raw path as produced by a contour engine: a point buffer
// with one command per point.
//
// If Codes is nil, the first point is a MoveTo and all following points are
// LineTo commands.
type VertexBuffer struct {
	Points []vec.Vec2
	Codes  []Code
}

// SubPath is a maximal run of points between two path breaks.
// A closed SubPath repeats its first point as the last point.
type SubPath struct {
	Points []vec.Vec2
	Closed bool
}

// Decompose splits a vertex buffer into its sub-paths.
//
// The sequence is produced lazily in a single pass over the buffer.
// If an unknown command is encountered, a *MalformedPathError is yielded
// and the sequence ends.  Sub-paths yielded before the error are valid.
func Decompose(buf VertexBuffer) iter.Seq2[SubPath, error] {
	return func(yield func(SubPath, error) bool) {
		if buf.Codes != nil && len(buf.Codes) != len(buf.Points) {
			yield(SubPath{}, &MalformedPathError{
				Index:  -1,
				Reason: fmt.Sprintf("%d codes for %d points", len(buf.Codes), len(buf.Points)),
			})
			return
		}

		var current []vec.Vec2
		flush := func(closed bool) bool {
			if len(current) == 0 {
				return true
			}
			sp := SubPath{Points: current, Closed: closed}
			current = nil
			return yield(sp, nil)
		}

		for i, pt := range buf.Points {
			code := LineTo
			if buf.Codes != nil {
				code = buf.Codes[i]
			} else if i == 0 {
				code = MoveTo
			}

			switch code {
			case Stop:
				if !flush(false) {
					return
				}
			case MoveTo:
				if !flush(false) {
					return
				}
				current = []vec.Vec2{pt}
			case LineTo:
				current = append(current, pt)
			case ClosePoly:
				// The vertex stored with ClosePoly carries no information.
				if len(current) > 0 {
					current = append(current, current[0])
					if !flush(true) {
						return
					}
				}
			default:
				yield(SubPath{}, &MalformedPathError{Index: i, Code: code})
				return
			}
		}

		// inputs without a trailing close or stop
		flush(false)
	}
}

// PathBuffer converts a path.Path into a vertex buffer.
//
// Curves are stored with the Curve3 and Curve4 codes, one code per
// control point, and are therefore rejected by Decompose.
func PathBuffer(p path.Path) VertexBuffer {
	var buf VertexBuffer
	var start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			start = pts[0]
			buf.Points = append(buf.Points, pts[0])
			buf.Codes = append(buf.Codes, MoveTo)
		case path.CmdLineTo:
			buf.Points = append(buf.Points, pts[0])
			buf.Codes = append(buf.Codes, LineTo)
		case path.CmdQuadTo:
			buf.Points = append(buf.Points, pts[0], pts[1])
			buf.Codes = append(buf.Codes, Curve3, Curve3)
		case path.CmdCubeTo:
			buf.Points = append(buf.Points, pts[0], pts[1], pts[2])
			buf.Codes = append(buf.Codes, Curve4, Curve4, Curve4)
		case path.CmdClose:
			buf.Points = append(buf.Points, start)
			buf.Codes = append(buf.Codes, ClosePoly)
		}
	}
	return buf
}
