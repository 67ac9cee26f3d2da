package version

// ProjectName is the display name used in the startup banner.
const ProjectName = "CrossCompile Template"

// Version represents the current version of the template
const Version = "1.0.0"

// BuildVersion returns the version string for display
func BuildVersion() string {
	return ProjectName + " v" + Version + " [" + BuildMode() + "]"
}

// BuildMode reports which flavor this binary was compiled as. The debug
// flavor is selected with `go build -tags debug`; everything else is a
// release build.
func BuildMode() string {
	if Debug {
		return "Debug"
	}
	return "Release"
}
