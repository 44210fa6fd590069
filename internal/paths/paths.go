// Package paths resolves the per-user locations awscmds reads from.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName names the awscmds directory under the XDG config home.
const AppName = "awscmds"

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the directory holding config.yaml: <ConfigHome>/awscmds,
// or AWSCMDS_CONFIG_DIR when set.
func ConfigDir() string {
	if dir := os.Getenv("AWSCMDS_CONFIG_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the default config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
