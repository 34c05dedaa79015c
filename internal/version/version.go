// Package version reports build information for the breach binary.
package version

import "fmt"

// Name is the binary name shown in version output.
const Name = "breach"

// Set at build time:
//
//	go build -ldflags "-X github.com/example/breachtracker/internal/version.Commit=$(git rev-parse HEAD)"
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the version string. There is no semver; builds are
// identified by commit.
func String() string {
	return fmt.Sprintf("%s dev (commit: %s, built: %s)", Name, shortCommit(), BuildTime)
}

func shortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
