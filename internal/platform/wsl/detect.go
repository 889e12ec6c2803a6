// Package wsl detects whether mtcli runs inside the Windows Subsystem for Linux and
// converts paths between the Windows and WSL addressing schemes.
package wsl

import (
	"os"
	"strings"

	"github.com/spf13/afero"
)

// osReleasePath holds the kernel release string on Linux, the same value uname -r prints.
const osReleasePath = "/proc/sys/kernel/osrelease"

// Environment describes the OS context mtcli runs under.
type Environment struct {
	WSL bool
}

// Detect reports whether the kernel release or distro name identify a WSL host.
func Detect(release, distro string) Environment {
	rel := strings.ToLower(release)
	return Environment{
		WSL: strings.Contains(rel, "microsoft") || strings.Contains(strings.ToLower(distro), "wsl"),
	}
}

// DetectSystem reads the running kernel release from fs and the WSL_DISTRO_NAME variable.
func DetectSystem(fs afero.Fs) Environment {
	release, err := afero.ReadFile(fs, osReleasePath)
	if err != nil {
		release = nil
	}
	return Detect(string(release), os.Getenv("WSL_DISTRO_NAME"))
}
