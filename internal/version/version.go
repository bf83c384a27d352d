package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/repolist/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/repolist/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/repolist/internal/version.Date={{.Date}}
)

// String returns the version with commit and date when known.
func String() string {
	if Commit == "unknown" {
		return Version
	}
	return Version + " (" + Commit + ", " + Date + ")"
}
