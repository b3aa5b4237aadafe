// Command graydemo runs the gray filters over a PGM image and writes one
// output file per filter, plus a drawing of the shape primitives.
//
// Usage:
//
//	graydemo [-out dir] [-v] [-log-format console|json] <input.pgm>
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/gray"
	"github.com/gogpu/gray/filter"
	"github.com/gogpu/gray/internal/logging"
	"github.com/gogpu/gray/shape"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// step is one named demonstration filter.
type step struct {
	output string
	filter filter.Filter
}

func demoSteps() ([]step, error) {
	mean, err := filter.NewConvolutionMatrix([][]float64{
		{1.0 / 9, 1.0 / 9, 1.0 / 9},
		{1.0 / 9, 1.0 / 9, 1.0 / 9},
		{1.0 / 9, 1.0 / 9, 1.0 / 9},
	})
	if err != nil {
		return nil, err
	}
	gauss, err := filter.NewConvolutionMatrix([][]float64{
		{1.0 / 16, 2.0 / 16, 1.0 / 16},
		{2.0 / 16, 4.0 / 16, 2.0 / 16},
		{1.0 / 16, 2.0 / 16, 1.0 / 16},
	})
	if err != nil {
		return nil, err
	}

	return []step{
		{"brightness_contrast.pgm", filter.NewBrightnessContrast(1.5, 30)},
		{"gamma_correction.pgm", filter.NewGammaCorrection(0.5)},
		{"mean_blur.pgm", mean},
		{"gaussian_blur.pgm", gauss},
		{"sobel.pgm", filter.NewSobel()},
	}, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("graydemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		outDir    = fs.String("out", ".", "output directory")
		verbose   = fs.Bool("v", false, "enable debug logging")
		logFormat = fs.String("log-format", "console", "log format: console or json")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: graydemo [-out dir] [-v] [-log-format console|json] <input.pgm>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	format, ok := logging.ParseFormat(*logFormat)
	if !ok {
		fmt.Fprintf(stderr, "graydemo: unknown log format %q\n", *logFormat)
		return 2
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	zl := logging.NewZerolog(stderr, format, level)
	log := slog.New(logging.NewHandler(zl))
	gray.SetLogger(log)
	defer gray.SetLogger(nil)

	input := fs.Arg(0)
	img, err := gray.Load(input)
	if err != nil {
		log.Error("could not load image", "path", input, "err", err)
		return 1
	}
	log.Info("loaded image", "path", input, "width", img.Width(), "height", img.Height())

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Error("could not create output directory", "dir", *outDir, "err", err)
		return 1
	}

	steps, err := demoSteps()
	if err != nil {
		log.Error("could not build filters", "err", err)
		return 1
	}

	failed := 0
	written := 0
	processed := gray.New(img.Width(), img.Height())
	for _, s := range steps {
		path := filepath.Join(*outDir, s.output)
		if err := s.filter.Process(img, processed); err != nil {
			log.Error("filter failed", "filter", fmt.Sprint(s.filter), "err", err)
			failed++
			continue
		}
		if err := processed.Save(path); err != nil {
			log.Error("could not save image", "path", path, "err", err)
			failed++
			continue
		}
		log.Info("saved", "filter", fmt.Sprint(s.filter), "path", path)
		written++
	}

	path := filepath.Join(*outDir, "drawing.pgm")
	if err := drawing(img.Width(), img.Height()).Save(path); err != nil {
		log.Error("could not save image", "path", path, "err", err)
		failed++
	} else {
		log.Info("saved", "path", path)
		written++
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(stdout, "Processed %d×%d image (%d pixels): %d files written, %d failed\n",
		img.Width(), img.Height(), img.Width()*img.Height(), written, failed)

	if failed > 0 {
		return 1
	}
	return 0
}

// drawing renders the shape primitives on a black w x h image.
func drawing(w, h int) *gray.Image {
	img := gray.Zeros(w, h)
	shape.Circle(img, image.Pt(w/2, h/2), 50, 255)
	shape.Rectangle(img, image.Rect(100, 100, 300, 250), 255)
	shape.Line(img, image.Pt(0, 0), image.Pt(w-1, h-1), 255)
	return img
}
