package version

import "testing"

func TestGetFallsBackToDefaultOutsideABuild(t *testing.T) {
	// go test binaries carry build info but typically no tagged module
	// version, so Get must not panic and must return a non-empty string.
	if got := Get(); got == "" {
		t.Error("Get() returned an empty string")
	}
}

func TestGetPrefersExplicitDefault(t *testing.T) {
	old := Default
	defer func() { Default = old }()

	Default = "v9.9.9"
	if got := Get(); got != "v9.9.9" {
		t.Errorf("Get() = %q, want %q", got, "v9.9.9")
	}
}
