package browser

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"

	"github.com/hookhub/hookhub/internal/logging"
	"github.com/hookhub/hookhub/internal/ports"
)

// EnvBrowser names the command used to open links, ahead of $BROWSER
const EnvBrowser = "HOOKHUB_BROWSER"

var _ ports.URLOpener = (*Opener)(nil)

// Opener implements ports.URLOpener
type Opener struct{}

// NewOpener creates a new browser opener
func NewOpener() *Opener {
	return &Opener{}
}

// Open starts a browser on link without waiting for it to exit.
// Priority: $HOOKHUB_BROWSER → $BROWSER → platform defaults
func (o *Opener) Open(link string) error {
	if err := validateLink(link); err != nil {
		return err
	}

	browser, args := findBrowser(link)
	if browser == "" {
		return fmt.Errorf("no browser found. Set $%s or $BROWSER", EnvBrowser)
	}

	logging.Logger.Info("Opening browser", "browser", browser, "url", link)

	cmd := exec.Command(browser, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start browser: %w", err)
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			logging.Logger.Warn("Browser exited with error", "error", err, "browser", browser)
		}
	}()

	return nil
}

// validateLink only lets web links through so catalog data cannot make us
// run arbitrary file handlers
func validateLink(link string) error {
	if link == "" {
		return fmt.Errorf("no URL provided")
	}
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", link, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open %q: only http and https links are supported", link)
	}
	return nil
}

func findBrowser(link string) (string, []string) {
	if browser := os.Getenv(EnvBrowser); browser != "" {
		return browser, []string{link}
	}

	if browser := os.Getenv("BROWSER"); browser != "" {
		return browser, []string{link}
	}

	return findPlatformBrowser(link)
}
