package common

import (
	"net/url"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// OpenURL opens rawURL in the system browser. Unsafe or malformed URLs
// are silently dropped.
func OpenURL(rawURL string) tea.Cmd {
	return func() tea.Msg {
		if !IsSafeExternalURL(rawURL) {
			return nil
		}
		_ = exec.Command("open", rawURL).Start()
		return nil
	}
}

// IsSafeExternalURL reports whether raw is an http(s) URL with a host.
func IsSafeExternalURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Host == "" {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return true
	default:
		return false
	}
}
