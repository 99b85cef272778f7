// Package buildinfo carries values stamped in with -ldflags "-X calcpad/internal/buildinfo.Version=...".
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
)

// Short returns a compact build identifier for the window title and startup log.
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		if len(Commit) > 12 {
			return Commit[:12]
		}
		return Commit
	default:
		return "dev"
	}
}
