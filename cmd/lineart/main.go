// Command lineart redraws a grayscale image as a single line that follows a
// Hilbert curve.
//
// Usage:
//
//	lineart [flags] input output
//
// The output format is chosen by the output file's extension.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"slices"

	"honnef.co/go/lineart"
	"honnef.co/go/lineart/internal/imageio"
	"honnef.co/go/lineart/internal/raster"
)

func main() {
	var (
		order    = flag.Int("order", lineart.DefaultConfig.Order, "order of the Hilbert curve")
		renderer = flag.String("renderer", "wave", "stroke renderer: wave, sine or zigzag")
		omega    = flag.Float64("omega", 1, "angular frequency of the wave renderer, in radians per pixel")
		periods  = flag.Float64("periods", 0, "waves per segment for the sine renderer (0: one per pixel)")
		maxLen   = flag.Float64("maxlen", lineart.DefaultConfig.MaxSegmentLength, "maximum segment length in pixels")
		smooth   = flag.Bool("smooth", false, "round off the curve's corners")
		stretch  = flag.Bool("stretch", lineart.DefaultConfig.Stretch, "stretch the input's contrast to the full range")
		workers  = flag.Int("workers", 0, "number of goroutines (0: GOMAXPROCS)")
		verbose  = flag.Bool("v", false, "log pipeline details")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] input output\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	input, output := flag.Arg(0), flag.Arg(1)

	if *verbose {
		lineart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	r, err := newRenderer(*renderer, *omega, *periods)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := imageio.FormatOf(output); err != nil {
		log.Fatal(err)
	}

	g, err := imageio.Load(input)
	if err != nil {
		log.Fatal(err)
	}

	cfg := lineart.DefaultConfig.
		WithOrder(*order).
		WithMaxSegmentLength(*maxLen).
		WithSmooth(*smooth).
		WithStretch(*stretch).
		WithRenderer(r).
		WithWorkers(*workers)
	strokes, err := lineart.Approximate(g, cfg)
	if err != nil {
		log.Fatalf("approximating %s: %v", input, err)
	}

	c := raster.NewCanvas(g.Width, g.Height)
	c.DrawLines(slices.Values(strokes))
	if err := imageio.Save(output, c.Image()); err != nil {
		log.Fatalf("failed to save: %v", err)
	}
	log.Printf("drew %d lines into %s (%dx%d)", len(strokes), output, g.Width, g.Height)
}

func newRenderer(name string, omega, periods float64) (lineart.Renderer, error) {
	switch name {
	case "wave":
		return lineart.ContinuousSine{Omega: omega}, nil
	case "sine":
		return lineart.Sine{Periods: periods}, nil
	case "zigzag":
		return lineart.Zigzag{}, nil
	default:
		return nil, fmt.Errorf("unknown renderer %q", name)
	}
}
