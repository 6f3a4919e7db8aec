// Package buildinfo carries version data injected with -ldflags "-X".
package buildinfo

import "go.uber.org/zap"

var (
	BuildVersion string
	BuildDate    string
	BuildCommit  string
)

// Info is the build data with "N/A" for anything not injected.
type Info struct {
	Version string
	Date    string
	Commit  string
}

func Get() Info {
	return Info{
		Version: orNA(BuildVersion),
		Date:    orNA(BuildDate),
		Commit:  orNA(BuildCommit),
	}
}

// Log writes the build info at info level.
func (i Info) Log(logger *zap.SugaredLogger) {
	logger.Infow("build info", "version", i.Version, "date", i.Date, "commit", i.Commit)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
