package platform

import (
	"fmt"
	"os"
	"strings"
)

// Autostart manages the OS launch-at-login entry for the app.
type Autostart interface {
	Enable(appName, execPath string) error
	Disable(appName string) error
}

type autostart struct{}

// NewAutostart returns the platform-specific implementation.
func NewAutostart() Autostart {
	return &autostart{}
}

// Apply enables or disables launch-at-login for the current binary.
func Apply(service Autostart, appName string, enabled bool) error {
	if !enabled {
		return service.Disable(appName)
	}
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	return service.Enable(appName, execPath)
}

func slugify(appName string) string {
	name := strings.ToLower(strings.TrimSpace(appName))
	if name == "" {
		name = "tomatick"
	}
	return strings.ReplaceAll(name, " ", "-")
}

