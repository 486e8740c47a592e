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

// Package contour converts the output of a contouring engine into GeoJSON.
//
// Line contours ([Isolines]) become LineString features, one per sub-path.
// Filled contours ([Bands]) become Polygon or MultiPolygon features, one per
// band, with holes detected from the winding order of the rings.  Every
// feature carries simplestyle properties (stroke, fill, title) so that the
// result can be displayed without further styling.
//
// The raw paths are given as [VertexBuffer] values, a point buffer with one
// command code per point.  [Decompose] splits them into sub-paths,
// [SimplifyAngle] removes nearly collinear vertices and [AssembleRings]
// attaches holes to their outer rings.  [ContourToGeoJSON] and
// [ContourfToGeoJSON] run the whole pipeline.  [Marshal] produces canonical
// GeoJSON text with sorted keys.
package contour

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
