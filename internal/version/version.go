package version

// Version is the current Tickety release. Overridden at build time with
// -ldflags "-X github.com/thomas-vilte/tickety/internal/version.Version=x.y.z".
var Version = "0.1.0"

// FullVersion returns the version with the v prefix
func FullVersion() string {
	return "v" + Version
}

// UserAgent identifies Tickety in requests to the provider.
func UserAgent() string {
	return "tickety/" + FullVersion()
}
