// Package version carries the build metadata stamped into the langid
// binary at link time.
package version

// Set via -ldflags "-X github.com/MeKo-Tech/langid/internal/version.Version=..."
// and friends; the defaults identify an unstamped development build.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info returns the version, commit and build date of this binary.
func Info() (string, string, string) {
	return Version, GitCommit, BuildDate
}
