package langsync

// Version information for the SDK.
// These values can be overridden at build time using ldflags:
//
//	go build -ldflags "-X github.com/YonasValentin/langsync.xyz-sub000.Version=1.0.0"
const (
	// Name is the SDK name, as reported to the API.
	Name = "langsync-go"

	// Version is the semantic version of the SDK.
	// Override at build time with ldflags for releases.
	Version = "0.1.0"
)

// ClientHeader is the header that identifies SDK traffic to the hosted API.
const ClientHeader = "X-LangSync-Client"

// Build-time information, typically set via ldflags.
var (
	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// FullVersion returns the version string with optional build info.
func FullVersion() string {
	v := Version
	if GitCommit != "unknown" && GitCommit != "" {
		short := GitCommit
		if len(short) > 7 {
			short = short[:7]
		}
		v += "+" + short
	}
	return v
}

// UserAgent returns a user agent string for HTTP requests.
func UserAgent() string {
	return Name + "/" + Version
}
