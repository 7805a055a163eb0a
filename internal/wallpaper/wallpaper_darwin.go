//go:build darwin

package wallpaper

import "strconv"

func platformApplier(string) (Applier, error) {
	return backend{name: "macos", set: func(path string) error {
		return runCommand("osascript", "-e",
			`tell application "System Events" to tell every desktop to set picture to `+strconv.Quote(path))
	}}, nil
}
