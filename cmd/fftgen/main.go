// Command fftgen emits a loop-unrolled, constant-folded radix-2 FFT/IFFT
// fragment for a given power-of-two transform size.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/thesyncim/fftgen/internal/fftgen"
	"github.com/thesyncim/fftgen/internal/version"
)

var errMissingPoints = errors.New("-n/--points is required")

func main() {
	os.Exit(doMain(os.Stdout, os.Stderr, os.Args[1:]))
}

// doMain is separated from main so tests can drive it with captured
// streams and inspect the exit code instead of the process itself.
func doMain(stdout, stderr io.Writer, args []string) (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "fftgen: internal error: %v\n", r)
			exitCode = 2
		}
	}()

	flags := newCLIFlags(stderr)
	if err := flags.parse(args); err != nil {
		fmt.Fprintln(stderr, flags.usage())
		return 1
	}

	if flags.help {
		fmt.Fprintln(stdout, flags.usage())
		return 0
	}
	if flags.version {
		fmt.Fprintln(stdout, version.Get())
		return 0
	}

	logger := log.NewWithOptions(stderr, log.Options{ReportTimestamp: false})
	logger.SetLevel(verbosityToLevel(flags.verbose))

	cfg, err := flags.config()
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr, flags.usage())
		return 1
	}

	logger.Debug("generating fragment", "n", cfg.N, "inverse", cfg.Inverse)

	if err := fftgen.Generate(cfg, stdout); err != nil {
		if errors.Is(err, fftgen.ErrInvalidSize) {
			fmt.Fprintln(stderr, fmt.Errorf("fftgen: %w", err))
			fmt.Fprintln(stderr, flags.usage())
			return 1
		}
		if errors.Is(err, fftgen.ErrSizeTooLarge) {
			fmt.Fprintln(stderr, fmt.Errorf("fftgen: %w", err))
			return 1
		}
		fmt.Fprintln(stderr, fmt.Errorf("fftgen: %w", err))
		return 1
	}

	logger.Debug("done")
	return 0
}

// verbosityToLevel maps the -v repeat count onto charmbracelet/log's level
// scale, starting at Warn (the default) and descending toward Debug.
func verbosityToLevel(v int) log.Level {
	switch {
	case v <= 0:
		return log.WarnLevel
	case v == 1:
		return log.InfoLevel
	default:
		return log.DebugLevel
	}
}
