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

	"github.com/lucasb-eyer/go-colorful"
)

// HexColor converts red, green and blue components in the range [0, 1] to a
// "#rrggbb" string.  Components outside the range are clamped.
func HexColor(r, g, b float64) string {
	return colorful.Color{R: r, G: g, B: b}.Clamped().Hex()
}

// NormalizeColor converts a "#rgb" or "#rrggbb" color to lower case
// "#rrggbb" form.
func NormalizeColor(s string) (string, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("color %q: %w", s, err)
	}
	return c.Hex(), nil
}
