package wallpaper

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

var (
	// ErrRelativePath is returned for image paths that are not absolute.
	ErrRelativePath = errors.New("wallpaper path must be absolute")
	// ErrUnsupported is returned when no applier exists for the platform.
	ErrUnsupported = errors.New("wallpaper backend unsupported on this platform")
)

// Applier sets an image file as the desktop wallpaper.
type Applier interface {
	Apply(path string) error
}

// ApplierFunc adapts a function to Applier.
type ApplierFunc func(path string) error

// Apply calls f(path).
func (f ApplierFunc) Apply(path string) error { return f(path) }

// backend is a named Applier that checks its input before calling set.
type backend struct {
	name string
	set  func(path string) error
}

func (b backend) Apply(path string) error {
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s: %w: %q", b.name, ErrRelativePath, path)
	}
	if err := b.set(path); err != nil {
		return fmt.Errorf("%s: %w", b.name, err)
	}
	return nil
}

func (b backend) String() string { return b.name }

// runCommand executes an external program. Replaced in tests.
var runCommand = func(name string, args ...string) error {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Detect picks an applier. A non-empty command template wins; otherwise the
// desktop name (or the session environment when desktop is empty) selects a
// platform backend.
func Detect(desktop, command string) (Applier, error) {
	if strings.TrimSpace(command) != "" {
		return Command(command)
	}
	if strings.TrimSpace(desktop) == "" {
		desktop = DesktopFromEnv(os.Getenv)
	}
	return platformApplier(normalizeDesktop(desktop))
}

// Command returns an applier that runs a user supplied command line. "%s" in
// the template is replaced by the image path; without it the path is appended.
func Command(template string) (Applier, error) {
	fields := strings.Fields(template)
	if len(fields) == 0 {
		return nil, fmt.Errorf("wallpaper command is empty")
	}
	return backend{
		name: "command",
		set: func(path string) error {
			args := make([]string, 0, len(fields))
			substituted := false
			for _, f := range fields[1:] {
				if strings.Contains(f, "%s") {
					f = strings.ReplaceAll(f, "%s", path)
					substituted = true
				}
				args = append(args, f)
			}
			if !substituted {
				args = append(args, path)
			}
			return runCommand(fields[0], args...)
		},
	}, nil
}

// DesktopFromEnv reads the running desktop session from XDG_CURRENT_DESKTOP,
// falling back to DESKTOP_SESSION.
func DesktopFromEnv(getenv func(string) string) string {
	if current := getenv("XDG_CURRENT_DESKTOP"); current != "" {
		// e.g. "ubuntu:GNOME"; the last entry is the base desktop.
		parts := strings.Split(current, ":")
		return parts[len(parts)-1]
	}
	return getenv("DESKTOP_SESSION")
}

func normalizeDesktop(desktop string) string {
	d := strings.ToLower(strings.TrimSpace(desktop))
	d = strings.TrimPrefix(d, "x-")
	switch {
	case d == "":
		return ""
	case strings.Contains(d, "plasma"), d == "kde":
		return "kde"
	case strings.Contains(d, "gnome"), d == "ubuntu", d == "unity", d == "pop", d == "budgie":
		return "gnome"
	case strings.Contains(d, "xfce"):
		return "xfce"
	case strings.Contains(d, "lxde"), strings.Contains(d, "lxqt"):
		return "lxde"
	}
	return d
}

func fileURI(path string) string {
	return "file://" + filepath.ToSlash(path)
}
