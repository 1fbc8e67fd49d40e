// Package version reports the build that produced a pipeline binary
package version

// BuildInfo holds version information about a stage binary
type BuildInfo struct {
	Stage   string `json:"stage"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Fields returns the build info as static log fields
func (b BuildInfo) Fields() map[string]string {
	return map[string]string{
		"version": b.Version,
		"commit":  b.Commit,
	}
}

// Info returns the build information for stage. version, commit and date are
// set at build time:
//
//	-ldflags "-X 'evalsnap/internal/core/version.version=v0.1.0' -X 'evalsnap/internal/core/version.commit=abcd'"
func Info(stage string) BuildInfo {
	return BuildInfo{
		Stage:   stage,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
