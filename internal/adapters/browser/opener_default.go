//go:build !darwin && !windows

package browser

import "os/exec"

var defaultBrowsers = []string{
	"xdg-open",
	"sensible-browser",
	"x-www-browser",
	"firefox",
	"chromium",
}

func findPlatformBrowser(link string) (string, []string) {
	for _, browser := range defaultBrowsers {
		if _, err := exec.LookPath(browser); err == nil {
			return browser, []string{link}
		}
	}
	return "", nil
}
