//go:build debug

package version

// Debug is true in binaries built with -tags debug. Debug builds log at
// DEBUG level, print build information and run extra self-checks.
const Debug = true
