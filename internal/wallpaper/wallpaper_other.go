//go:build !linux && !darwin && !windows

package wallpaper

import "fmt"

func platformApplier(desktop string) (Applier, error) {
	return nil, fmt.Errorf("%w (desktop %q); set wallpaper_command", ErrUnsupported, desktop)
}
