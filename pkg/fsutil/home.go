// Package fsutil provides filesystem utilities.
package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"src.tvk.sh/pkg/env"
)

// GetHome returns the home directory of the current user. $HOME takes
// precedence over what the OS reports.
func GetHome() (string, error) {
	if home := os.Getenv(env.HOME); home != "" {
		return home, nil
	}
	return os.UserHomeDir()
}

// TildeAbbr abbreviates the user's home directory to ~.
func TildeAbbr(path string) string {
	home, err := GetHome()
	if home == "" || home == "/" {
		// If home is "" or "/", do not abbreviate because (1) it is likely a
		// problem with the environment and (2) it will make the path actually
		// longer.
		return path
	}
	if err == nil {
		if path == home {
			return "~"
		} else if strings.HasPrefix(path, home+"/") || (runtime.GOOS == "windows" && strings.HasPrefix(path, home+"\\")) {
			return "~" + path[len(home):]
		}
	}
	return path
}

// ExpandTilde expands a leading ~/ to the user's home directory. Other paths,
// and all paths when the home directory is unknown, are returned unchanged.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := GetHome()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, path[1:])
}
