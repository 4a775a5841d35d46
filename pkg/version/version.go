// Package version holds build-time version info for vpn-chainer.
// Set via main using Set(), read from anywhere via Get().
package version

// Build information, populated by Set() at startup.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// Info is a snapshot of the build information.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
}

// Set stores build-time version info. Call once from main. Empty values keep
// the defaults so plain `go build` output still reports something.
func Set(v, c, d string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		buildDate = d
	}
}

// Get returns the build information.
func Get() Info {
	return Info{Version: version, Commit: commit, BuildDate: buildDate}
}

// Version returns the build version string.
func Version() string { return version }
