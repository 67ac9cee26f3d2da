package version

import (
	"strings"
	"testing"
)

func TestBuildVersion(t *testing.T) {
	v := BuildVersion()
	if !strings.Contains(v, ProjectName) {
		t.Errorf("expected project name in %q", v)
	}
	if !strings.Contains(v, "v"+Version) {
		t.Errorf("expected version in %q", v)
	}
	if !strings.Contains(v, "["+BuildMode()+"]") {
		t.Errorf("expected build mode in %q", v)
	}
}

func TestBuildModeMatchesDebugConstant(t *testing.T) {
	if Debug && BuildMode() != "Debug" {
		t.Errorf("Debug build reports mode %q", BuildMode())
	}
	if !Debug && BuildMode() != "Release" {
		t.Errorf("Release build reports mode %q", BuildMode())
	}
}

func TestArchNameFor(t *testing.T) {
	cases := map[string]string{
		"arm64":   "arm64 (aarch64)",
		"arm":     "armhf (ARM Hard Float)",
		"riscv64": "riscv64",
		"amd64":   "amd64 (x86_64)",
		"386":     "i386 (x86)",
		"s390x":   "Unknown",
		"":        "Unknown",
	}
	for goarch, want := range cases {
		if got := archNameFor(goarch); got != want {
			t.Errorf("archNameFor(%q) = %q, want %q", goarch, got, want)
		}
	}
}

func TestArchitectureNameNeverEmpty(t *testing.T) {
	if ArchitectureName() == "" {
		t.Error("ArchitectureName returned empty string")
	}
}
