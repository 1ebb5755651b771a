// SPDX-License-Identifier: MIT
// Command sxbp is the CLI driver for solving and rendering SXBP figures. It
// restores the argument-handling surface of the original sxp.c driver,
// built on the standard library's flag package rather than a third-party
// CLI framework — no full example repo in this corpus vendors one.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/saxbophone/sxbp/codec"
	"github.com/saxbophone/sxbp/figure"
	"github.com/saxbophone/sxbp/render"
	"github.com/saxbophone/sxbp/solver"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "solve":
		err = runSolve(os.Args[2:])
	case "render":
		err = runRender(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "sxbp: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: sxbp solve -in FILE -out FILE [-perfection N]")
	fmt.Fprintln(os.Stderr, "       sxbp render -in FILE -out FILE -format pbm|png|svg [-scale N]")
}

func runSolve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	in := fs.String("in", "", "input file of raw bytes to encode")
	out := fs.String("out", "", "output file for the solved SXBP binary format")
	perfection := fs.Int64("perfection", 0, "perfection threshold (0 disables the gate)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("solve: -in and -out are required")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		return err
	}

	f, err := figure.Init(data)
	if err != nil {
		return err
	}
	if _, err := solver.PlotSpiral(f, solver.WithPerfectionThreshold(*perfection)); err != nil {
		return err
	}

	dumped, err := codec.Dump(f)
	if err != nil {
		return err
	}

	return os.WriteFile(*out, dumped, 0o644)
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	in := fs.String("in", "", "input file in the solved SXBP binary format")
	out := fs.String("out", "", "output file for the rendered image")
	format := fs.String("format", "pbm", "output format: pbm, png, or svg")
	scale := fs.Int("scale", 1, "pixels per cell, for pbm/png output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("render: -in and -out are required")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		return err
	}
	f, err := codec.Load(data)
	if err != nil {
		return err
	}

	var output []byte
	switch *format {
	case "pbm":
		bmp, err := render.FromFigure(f, *scale)
		if err != nil {
			return err
		}
		output = render.EncodePBM(bmp)
	case "png":
		bmp, err := render.FromFigure(f, *scale)
		if err != nil {
			return err
		}
		output, err = render.EncodePNG(bmp)
		if err != nil {
			return err
		}
	case "svg":
		svg, err := render.EncodeSVG(f, 1)
		if err != nil {
			return err
		}
		output = []byte(svg)
	default:
		return fmt.Errorf("render: unknown format %q", *format)
	}

	return os.WriteFile(*out, output, 0o644)
}
