package cli

import (
	"fmt"
	"runtime"

	"github.com/tacogips/packer-inject/internal/version"
)

// VersionInfo contains version information
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// currentVersion collects build metadata for --version.
func currentVersion() VersionInfo {
	return VersionInfo{
		Version:   version.Version,
		GoVersion: runtime.Version(),
		Commit:    version.GitCommit,
		BuildDate: version.BuildDate,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// versionTemplate renders VersionInfo as cobra's --version output.
func versionTemplate(info VersionInfo) string {
	return fmt.Sprintf("packer-inject version %s\nBuilt with: %s\nCommit: %s\nBuild date: %s\nOS/Arch: %s/%s\n",
		info.Version, info.GoVersion, info.Commit, info.BuildDate, info.OS, info.Arch)
}
