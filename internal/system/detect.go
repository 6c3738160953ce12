package system

import (
	"os"
	"os/exec"
)

// CommandExists checks if a command is available in PATH
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// TryPaths returns the first existing path from the list
func TryPaths(paths ...string) string {
	for _, p := range paths {
		if FileExists(p) {
			return p
		}
	}
	return ""
}
