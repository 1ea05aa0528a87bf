// Package main is specinfo, a headless companion tool that prints summary
// statistics for measurement files without starting the GUI.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"spectralab/domain/spectrum"
)

func main() {
	from := flag.Float64("from", math.NaN(), "lower integration bound (defaults to the first sample)")
	to := flag.Float64("to", math.NaN(), "upper integration bound (defaults to the last sample)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] file.txt [file.txt ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	exitCode := 0
	for _, path := range flag.Args() {
		if err := report(path, *from, *to); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func report(path string, from, to float64) error {
	s, err := spectrum.Load(path)
	if err != nil {
		return err
	}

	lo, hi := s.XRange()
	fmt.Printf("%s\n", path)
	fmt.Printf("  samples: %d\n", len(s))
	fmt.Printf("  x range: %g to %g\n", lo, hi)

	if math.IsNaN(from) && math.IsNaN(to) {
		area, err := spectrum.Intensity(s)
		if err != nil {
			return err
		}
		fmt.Printf("  intensity: %.6g\n", area)
		return nil
	}

	if math.IsNaN(from) {
		from = lo
	}
	if math.IsNaN(to) {
		to = hi
	}
	area, xLow, xHigh, err := spectrum.IntensityBetween(s, from, to)
	if err != nil {
		return err
	}
	fmt.Printf("  intensity(%g to %g): %.6g\n", xLow, xHigh, area)
	return nil
}
