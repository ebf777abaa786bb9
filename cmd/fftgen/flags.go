package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/thesyncim/fftgen/internal/fftgen"
)

// cliFlags holds the parsed command line, one field per fftgen.Config
// field plus the CLI-only early-exit and verbosity flags.
type cliFlags struct {
	set *flag.FlagSet

	points  int
	inverse bool
	realIn  bool
	realOut bool
	symmIn  bool
	symmOut bool
	license bool
	format  string
	indent  string
	verbose int
	help    bool
	version bool
}

// newCLIFlags registers the full flag surface. Short flags are single
// runes so pflag's shorthand-bundling applies to them: "-rsn1024" parses
// as "-r -s -n=1024" because r and s carry NoOptDefVal (booleans) and n
// is the first value-taking flag encountered in the group.
func newCLIFlags(stderr io.Writer) *cliFlags {
	f := &cliFlags{set: flag.NewFlagSet("fftgen", flag.ContinueOnError)}
	f.set.SetOutput(stderr)

	f.set.IntVarP(&f.points, "points", "n", 0, "transform size; must be a positive power of two (required)")
	f.set.BoolVarP(&f.inverse, "inverse", "i", false, "emit an inverse transform")
	f.set.BoolVarP(&f.realIn, "real-in-opt", "r", false, "assume the input's imaginary part is zero")
	f.set.BoolVarP(&f.realOut, "real-out-opt", "o", false, "suppress the final stage's imaginary output")
	f.set.BoolVarP(&f.symmIn, "symm-in-opt", "m", false, "assume the input is Hermitian-symmetric")
	f.set.BoolVarP(&f.symmOut, "symm-out-opt", "s", false, "suppress writes to indices above n/2 in the final stage")
	f.set.BoolVarP(&f.license, "license", "l", false, "prepend the GPL-3 license banner")
	f.set.StringVarP(&f.format, "format", "f", fftgen.DefaultNumberFormat, "printf verb used for generic real constants")
	f.set.StringVarP(&f.indent, "indent", "t", "", "string prefixed to every emitted statement line")
	f.set.CountVarP(&f.verbose, "verbose", "v", "increase diagnostic verbosity; repeatable")
	f.set.BoolVarP(&f.help, "help", "h", false, "print usage and exit")
	f.set.BoolVarP(&f.version, "version", "V", false, "print the fftgen version and exit")

	return f
}

func (f *cliFlags) parse(args []string) error {
	return f.set.Parse(args)
}

// config validates the parsed flags and returns the Config they describe.
// It is called only once help/version early exits have been ruled out.
func (f *cliFlags) config() (fftgen.Config, error) {
	if !f.set.Changed("points") {
		return fftgen.Config{}, fmt.Errorf("fftgen: %w", errMissingPoints)
	}
	return fftgen.Config{
		N:            f.points,
		Inverse:      f.inverse,
		RealIn:       f.realIn,
		RealOut:      f.realOut,
		SymmIn:       f.symmIn,
		SymmOut:      f.symmOut,
		License:      f.license,
		NumberFormat: f.format,
		Indent:       f.indent,
	}, nil
}

func (f *cliFlags) usage() string {
	return "Usage: fftgen -n SIZE [flags]\n\n" + f.set.FlagUsages()
}
