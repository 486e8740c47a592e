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

// Command contourjson converts a contour plot dump to GeoJSON.
//
// The input is a JSON document as described in package source.  Settings
// can be given as flags or as CONTOUR_* environment variables, which are
// also read from a .env file in the current directory.  LOG_LEVEL and
// LOG_FORMAT control the diagnostic output.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/paulmach/orb/geojson"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/preview"
	"seehuhn.de/go/contour/source"
)

func main() {
	_ = godotenv.Load(".env")
	l := newLogger(os.Stderr, os.Getenv)

	opt, err := parseOptions(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		l.Error("invalid arguments", "err", err)
		os.Exit(2)
	}

	if err := run(opt, os.Stdin, os.Stdout, os.Stderr, l); err != nil {
		l.Error("conversion failed", "err", err)
		os.Exit(1)
	}
}

// run converts the input and writes all requested outputs.  The summary
// goes to stderr when the GeoJSON is written to stdout.
func run(opt *options, stdin io.Reader, stdout, stderr io.Writer, l *slog.Logger) error {
	contour.SetLogger(l)

	var dump *source.Dump
	var err error
	if opt.in == "-" {
		dump, err = source.Read(stdin)
	} else {
		dump, err = source.ReadFile(opt.in)
	}
	if err != nil {
		return err
	}
	l.Debug("read contour dump", "kind", dump.Kind,
		"levels", len(dump.Levels), "groups", len(dump.Groups))

	var fc *geojson.FeatureCollection
	if dump.Kind == source.Filled {
		fc, err = contour.ContourfToGeoJSON(dump.Bands(), opt.cfg)
	} else {
		fc, err = contour.ContourToGeoJSON(dump.Isolines(), opt.cfg)
	}
	if err != nil {
		return err
	}
	l.Info("converted", "kind", dump.Kind, "features", len(fc.Features))

	summaryOut := stdout
	if opt.out == "-" {
		if err := contour.Write(stdout, fc); err != nil {
			return fmt.Errorf("geojson output: %w", err)
		}
		summaryOut = stderr
	} else if err := contour.WriteFile(opt.out, fc); err != nil {
		return err
	}

	if opt.png != "" {
		if err := preview.WritePNGFile(opt.png, fc, nil); err != nil {
			return err
		}
	}
	if opt.pdf != "" {
		if err := preview.WritePDF(opt.pdf, fc, nil); err != nil {
			return err
		}
	}

	if opt.summary {
		_, err := io.WriteString(summaryOut, renderSummary(summarize(fc)))
		return err
	}
	return nil
}
