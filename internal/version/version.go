// internal/version/version.go
package version

// Version is the release version; overridden at build time via
// -ldflags "-X memplane/internal/version.Version=...".
var Version = "0.1.0"
