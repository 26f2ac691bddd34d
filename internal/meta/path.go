package meta

import (
	"os"
	"path/filepath"
	"sync"
)

// ConfigDir returns the directory overfmt reads its config file from.
var ConfigDir = sync.OnceValue(
	func() string {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir, err = os.UserHomeDir()
			if err != nil {
				dir, err = os.Getwd()
				if err != nil {
					dir = "."
				}
			} else {
				dir = filepath.Join(dir, ".config")
			}
		}

		return filepath.Join(dir, Name)
	},
)

// CacheDir returns the directory overfmt writes transient files (such as
// pprof profiles) to.
var CacheDir = sync.OnceValue(
	func() string {
		dir, err := os.UserCacheDir()
		if err != nil {
			dir, err = os.UserHomeDir()
			if err != nil {
				dir, err = os.Getwd()
				if err != nil {
					dir = "."
				}
			} else {
				dir = filepath.Join(dir, ".cache")
			}
		}

		return filepath.Join(dir, Name)
	},
)
