// Package version exposes build version information.
package version

// Version is the current release version, overridable at build time via
// -ldflags "-X sorbet-lsp/src/internal/version.Version=..."
var Version = "0.1.0-dev"
