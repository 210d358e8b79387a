package config

import (
	"os"
	"path/filepath"
)

// EnvHome overrides the HookHub home directory
const EnvHome = "HOOKHUB_HOME"

// GetHookHubHome returns HOOKHUB_HOME or the ~/.hookhub default
func GetHookHubHome() string {
	home := os.Getenv(EnvHome)
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".hookhub"
		}
		return filepath.Join(homeDir, ".hookhub")
	}
	return ExpandPath(home)
}

// GetCatalogDBPath returns $HOOKHUB_HOME/catalog.db
func GetCatalogDBPath() string {
	return filepath.Join(GetHookHubHome(), "catalog.db")
}

// GetCatalogLockPath returns $HOOKHUB_HOME/catalog.lock
func GetCatalogLockPath() string {
	return filepath.Join(GetHookHubHome(), "catalog.lock")
}

// GetSettingsPath returns $HOOKHUB_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHookHubHome(), "settings.json")
}

// GetSSHDir returns $HOOKHUB_HOME/ssh, where the server host key lives
func GetSSHDir() string {
	return filepath.Join(GetHookHubHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
