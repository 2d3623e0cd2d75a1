package infra

import (
	"os"
	"path/filepath"
)

// workspaceDir is the local runtime-data directory used when present
// (portable/dev mode). Otherwise files land next to the binary's cwd.
const workspaceDir = "_workspace"

// ResolveConfigPath returns the config file location: a local _workspace copy
// wins over ./config.yaml. The file may not exist; LoadConfig handles that.
func ResolveConfigPath() string {
	local := filepath.Join(workspaceDir, "config.yaml")
	if _, err := os.Stat(local); err == nil {
		return local
	}
	return "config.yaml"
}

// ResolveLogPath places the log file inside _workspace when that directory
// exists, otherwise in the current directory.
func ResolveLogPath(filename string) string {
	if info, err := os.Stat(workspaceDir); err == nil && info.IsDir() {
		return filepath.Join(workspaceDir, filename)
	}
	return filename
}
