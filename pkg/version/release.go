//go:build !debug

package version

// Debug is false in release builds. Release binaries log at INFO level and
// skip the debug-only banner sections.
const Debug = false
