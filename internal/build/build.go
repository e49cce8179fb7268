package build

import "fmt"

// Overridden at link time, e.g. -ldflags "-X github.com/bornholm/recordbox/internal/build.ShortVersion=v1.0.0"
var (
	ShortVersion = "dev"
	GitRef       = "unknown"
	BuildDate    = "unknown"
)

var LongVersion = fmt.Sprintf("%s (%s, built %s)", ShortVersion, GitRef, BuildDate)
