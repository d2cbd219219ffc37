package buildconfig

// Set with -ldflags "-X github.com/geneblend/geneblend/internal/buildconfig.version=..."
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = ""
)

const service = "geneblend"

func Version() string {
	return version
}

func Commit() string {
	return commit
}

// VersionInfo is the body of GET /version.
func VersionInfo() map[string]string {
	info := map[string]string{
		"service": service,
		"version": version,
		"commit":  commit,
	}
	if buildDate != "" {
		info["build_date"] = buildDate
	}
	return info
}
