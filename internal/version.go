package internal

// Set at build time with -ldflags "-X github.com/screenmap/screenmap/internal.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)
