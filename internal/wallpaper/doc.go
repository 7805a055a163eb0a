// Package wallpaper applies an image file as the desktop wallpaper.
//
// Detect chooses a backend. A configured command template always wins
// ("feh --bg-fill %s"). Otherwise the platform decides:
//
//   - macOS: osascript / System Events
//   - Windows: SystemParametersInfoW via golang.org/x/sys/windows
//   - Linux: GNOME (gsettings), Cinnamon, MATE and Deepin (dconf), KDE Plasma
//     (D-Bus evaluateScript), XFCE (xfconf-query), LXDE/LXQt (pcmanfm) and
//     feh for bare window managers
//
// The desktop name comes from configuration or XDG_CURRENT_DESKTOP. Every
// backend rejects relative paths and prefixes errors with its name. Calls run
// without a timeout; a hung desktop tool blocks the caller.
package wallpaper
