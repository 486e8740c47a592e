// Command genpdf draws all test cases for visual inspection.
// It writes a PDF and a PNG preview per test case.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/contour/preview"
	"seehuhn.de/go/contour/testcases"
)

const previewDir = "testdata/preview"

func main() {
	if err := os.MkdirAll(previewDir, 0755); err != nil {
		panic(err)
	}

	opt := &preview.Options{Width: 256, Height: 256}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			fc, err := tc.Convert()
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			pdfPath := filepath.Join(previewDir, name+".pdf")
			if err := preview.WritePDF(pdfPath, fc, opt); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			pngPath := filepath.Join(previewDir, name+".png")
			if err := preview.WritePNGFile(pngPath, fc, opt); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}
