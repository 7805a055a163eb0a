//go:build linux

package wallpaper

import "strconv"

func platformApplier(desktop string) (Applier, error) {
	switch desktop {
	case "gnome":
		return backend{name: "gnome", set: setGNOME}, nil
	case "cinnamon":
		return backend{name: "cinnamon", set: dconfSetter("/org/cinnamon/desktop/background/picture-options",
			"/org/cinnamon/desktop/background/picture-uri", true)}, nil
	case "mate":
		return backend{name: "mate", set: dconfSetter("/org/mate/desktop/background/picture-options",
			"/org/mate/desktop/background/picture-filename", false)}, nil
	case "deepin":
		return backend{name: "deepin", set: dconfSetter("/com/deepin/wrap/gnome/desktop/background/picture-options",
			"/com/deepin/wrap/gnome/desktop/background/picture-uri", true)}, nil
	case "kde":
		return backend{name: "kde", set: setKDE}, nil
	case "xfce":
		return backend{name: "xfce", set: setXFCE}, nil
	case "lxde":
		return backend{name: "lxde", set: func(path string) error {
			return runCommand("pcmanfm", "--set-wallpaper", path, "--wallpaper-mode=crop")
		}}, nil
	}
	// Window managers without a desktop shell.
	return backend{name: "feh", set: func(path string) error {
		return runCommand("feh", "--bg-fill", path)
	}}, nil
}

func setGNOME(path string) error {
	uri := fileURI(path)
	if err := runCommand("gsettings", "set", "org.gnome.desktop.background", "picture-options", "zoom"); err != nil {
		return err
	}
	if err := runCommand("gsettings", "set", "org.gnome.desktop.background", "picture-uri", uri); err != nil {
		return err
	}
	// Older GNOME releases have no dark variant; ignore that failure.
	_ = runCommand("gsettings", "set", "org.gnome.desktop.background", "picture-uri-dark", uri)
	return nil
}

func dconfSetter(optionsKey, pictureKey string, asURI bool) func(string) error {
	return func(path string) error {
		if err := runCommand("dconf", "write", optionsKey, strconv.Quote("zoom")); err != nil {
			return err
		}
		value := path
		if asURI {
			value = fileURI(path)
		}
		return runCommand("dconf", "write", pictureKey, strconv.Quote(value))
	}
}

func setXFCE(path string) error {
	return runCommand("xfconf-query", "--channel", "xfce4-desktop",
		"--property", "/backdrop/screen0/monitor0/workspace0/last-image", "--set", path)
}
