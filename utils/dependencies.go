// Package utils holds small helpers shared by the commands.
package utils

import (
	"fmt"
	"os/exec"
	"runtime"
)

// ValidateFFmpegDependencies checks that ffmpeg and ffprobe are available
// in PATH. Commands that shell out call this before prompting the operator
// so a missing install fails fast instead of mid-run.
func ValidateFFmpegDependencies() error {
	for _, tool := range []string{"ffprobe", "ffmpeg"} {
		if _, err := exec.LookPath(tool); err != nil {
			return fmt.Errorf("%s not found in PATH. %s", tool, installInstructions())
		}
	}
	return nil
}

// installInstructions returns platform-specific installation instructions
func installInstructions() string {
	switch runtime.GOOS {
	case "darwin":
		return "Install with: brew install ffmpeg"
	case "linux":
		return "Install with: apt-get install ffmpeg (Ubuntu/Debian) or yum install ffmpeg (CentOS/RHEL)"
	case "windows":
		return "Download from https://ffmpeg.org/download.html and add to PATH"
	default:
		return "Download from https://ffmpeg.org/download.html"
	}
}
