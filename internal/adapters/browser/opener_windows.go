//go:build windows

package browser

func findPlatformBrowser(link string) (string, []string) {
	return "rundll32", []string{"url.dll,FileProtocolHandler", link}
}
