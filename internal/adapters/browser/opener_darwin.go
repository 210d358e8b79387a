//go:build darwin

package browser

func findPlatformBrowser(link string) (string, []string) {
	return "open", []string{link}
}
