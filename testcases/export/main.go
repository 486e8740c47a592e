// Command export writes the GeoJSON output of all test cases as golden files.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/testcases"
)

const goldenDir = "testdata/golden"

func main() {
	if err := os.MkdirAll(goldenDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			fc, err := tc.Convert()
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			err = contour.WriteFile(filepath.Join(goldenDir, name+".geojson"), fc)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}
