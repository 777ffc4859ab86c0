package app

import "fmt"

// Build metadata, set with ldflags, e.g.
// go build -ldflags "-X github.com/heartmarshall/petcare-basedata/internal/app.Version=1.4.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version line used in startup logs and by
// basedatactl version.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
