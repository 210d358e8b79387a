package ui

import (
	"fmt"

	"github.com/hookhub/hookhub/internal/theme"
)

// AppName is shown at the top of every screen
const AppName = "HookHub"

// VersionInfo holds version information for display in UI headers.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

// DefaultVersionInfo provides default values when version info is not available
var DefaultVersionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Tagline:   "Discover Claude Code hooks",
	Version:   "dev",
}

// versionInfo holds the global version info set by SetVersionInfo
var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the global version info (called from main.go)
func SetVersionInfo(info VersionInfo) {
	if info.Tagline == "" {
		info.Tagline = DefaultVersionInfo.Tagline
	}
	versionInfo = info
}

// GetVersionInfo returns the version info set by main.go
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// renderHeader renders the app name (with build info in dev mode), the
// tagline and an optional subtitle such as a dialog title.
func renderHeader(styles theme.Styles, devMode bool, subtitle string) string {
	appNameLine := styles.AppName.Render(AppName)
	if devMode {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		appNameLine += styles.Version.Render(fmt.Sprintf(" %s | %s | %s | %s",
			versionInfo.Version,
			commit,
			versionInfo.Date,
			versionInfo.GoVersion))
	}

	result := appNameLine + "\n" + styles.Tagline.Render(versionInfo.Tagline)
	if subtitle != "" {
		result += "\n\n" + styles.Subtitle.Render(subtitle)
	}

	return result + "\n"
}
