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
	"io"
	"os"

	"github.com/paulmach/orb/geojson"
	"github.com/tidwall/pretty"
)

// Marshal returns the canonical GeoJSON text of fc: object keys are sorted
// and no whitespace is emitted.  Re-encoding a decoded collection gives the
// same bytes.
func Marshal(fc *geojson.FeatureCollection) ([]byte, error) {
	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	sorted := pretty.PrettyOptions(data, &pretty.Options{SortKeys: true})
	return pretty.Ugly(sorted), nil
}

// Unmarshal decodes a GeoJSON feature collection.
func Unmarshal(data []byte) (*geojson.FeatureCollection, error) {
	return geojson.UnmarshalFeatureCollection(data)
}

// Write writes the canonical GeoJSON text of fc to w.
func Write(w io.Writer, fc *geojson.FeatureCollection) error {
	data, err := Marshal(fc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteFile writes the canonical GeoJSON text of fc to the named file.
func WriteFile(name string, fc *geojson.FeatureCollection) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("geojson output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(f, fc)
}
