// Package version exposes fftgen's build version to the CLI's --version
// flag and diagnostic logging.
package version

import "runtime/debug"

// Default is overridden at release build time via:
//
//	go build -ldflags "-X github.com/thesyncim/fftgen/internal/version.Default=v1.2.3"
var Default = "dev"

// Get returns Default if it was set by -ldflags, otherwise falls back to
// the module version recorded in the binary's build info (set when fftgen
// is installed with "go install module@version").
func Get() string {
	if Default != "dev" {
		return Default
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Default
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Default
}
