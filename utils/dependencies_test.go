package utils

import (
	"os/exec"
	"testing"
)

func TestValidateFFmpegDependencies(t *testing.T) {
	_, ffmpegErr := exec.LookPath("ffmpeg")
	_, ffprobeErr := exec.LookPath("ffprobe")
	installed := ffmpegErr == nil && ffprobeErr == nil

	err := ValidateFFmpegDependencies()
	if installed && err != nil {
		t.Errorf("ffmpeg and ffprobe are in PATH but validation failed: %v", err)
	}
	if !installed && err == nil {
		t.Error("Expected validation to fail when ffmpeg/ffprobe are missing")
	}
}

func TestInstallInstructionsNotEmpty(t *testing.T) {
	if installInstructions() == "" {
		t.Error("Install instructions should never be empty")
	}
}
