package version

import "runtime"

// archNames maps GOARCH values to the banner strings used by the cross
// compilation targets this template is built for.
var archNames = map[string]string{
	"arm64":   "arm64 (aarch64)",
	"arm":     "armhf (ARM Hard Float)",
	"riscv64": "riscv64",
	"amd64":   "amd64 (x86_64)",
	"386":     "i386 (x86)",
}

// ArchitectureName returns the human readable name of the architecture this
// binary targets, or "Unknown" for targets without a banner string.
func ArchitectureName() string {
	return archNameFor(runtime.GOARCH)
}

func archNameFor(goarch string) string {
	if name, ok := archNames[goarch]; ok {
		return name
	}
	return "Unknown"
}
