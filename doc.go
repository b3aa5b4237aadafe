// Package gray provides a minimal grayscale image toolkit for Go.
//
// # Overview
//
// gray is built around [Image], an owned 8-bit grayscale pixel buffer stored
// as one contiguous row-major byte slice. Images are read and written in a
// single fixed binary layout (binary PGM):
//
//	"P5\n" <width> " " <height> "\n255\n" <width*height raw bytes>
//
// Filters live in the filter sub-package and drawing primitives in the shape
// sub-package.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/gray"
//		"github.com/gogpu/gray/filter"
//	)
//
//	src, err := gray.Load("input.pgm")
//	if err != nil {
//		return err
//	}
//	dst := gray.New(src.Width(), src.Height())
//	if err := filter.NewBrightnessContrast(1.5, 30).Process(src, dst); err != nil {
//		return err
//	}
//	return dst.Save("output.pgm")
//
// # Ownership
//
// An Image exclusively owns its pixel store. [Image.Clone] and
// [Image.CopyFrom] always allocate; [Image.Region] returns an independent
// copy, never a view. [Image.Pix] is the one escape hatch that exposes the
// store directly.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Logging
//
// gray is silent unless a logger is installed with [SetLogger]. Records are
// emitted only at [slog.LevelDebug]: one per Load and Save (path and size)
// and one per filter Process call (filter name and size).
//
//	gray.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//		Level: slog.LevelDebug,
//	})))
//
// # Concurrency
//
// Images carry no locks. Concurrent reads are safe; writes require external
// synchronization. The package logger is safe for concurrent use.
package gray

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
