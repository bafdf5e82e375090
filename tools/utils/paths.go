package utils

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

const AppName = "seti-icons"

func Expanduser(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		usr, err := user.Current()
		if err == nil {
			home = usr.HomeDir
		}
	}
	if err != nil || home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	path = strings.ReplaceAll(path, string(os.PathSeparator), "/")
	parts := strings.Split(path, "/")
	if parts[0] == "~" {
		parts[0] = home
	} else {
		uname := parts[0][1:]
		if uname != "" {
			u, err := user.Lookup(uname)
			if err == nil && u.HomeDir != "" {
				parts[0] = u.HomeDir
			}
		}
	}
	return strings.Join(parts, string(os.PathSeparator))
}

func Abspath(path string) string {
	q, err := filepath.Abs(path)
	if err == nil {
		return q
	}
	return path
}

// ConfigDir is the directory searched for configuration such as color
// themes: $SETI_ICONS_CONFIG_DIRECTORY, else $XDG_CONFIG_HOME/seti-icons,
// else ~/.config/seti-icons.
func ConfigDir() string {
	if q := os.Getenv("SETI_ICONS_CONFIG_DIRECTORY"); q != "" {
		return Abspath(Expanduser(q))
	}
	if q := os.Getenv("XDG_CONFIG_HOME"); q != "" {
		return filepath.Join(Abspath(Expanduser(q)), AppName)
	}
	return filepath.Join(Expanduser("~/.config"), AppName)
}
