// Package config provides the global configuration directory for savi.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the savi configuration directory.
//
// Resolution:
//   - $SAVI_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/savi if set (respects XDG on any platform)
//   - %AppData%/savi on Windows
//   - ~/.config/savi on macOS and Linux
func Dir() string {
	if dir := os.Getenv("SAVI_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "savi")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "savi")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "savi")
}
