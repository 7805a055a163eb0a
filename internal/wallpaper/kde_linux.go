//go:build linux

package wallpaper

import (
	"fmt"
	"strconv"

	"github.com/godbus/dbus/v5"
)

const kdeScript = `var all = desktops();
for (var i = 0; i < all.length; i++) {
	var d = all[i];
	d.wallpaperPlugin = "org.kde.image";
	d.currentConfigGroup = Array("Wallpaper", "org.kde.image", "General");
	d.writeConfig("Image", %s);
}`

// plasmaCall sends the script to plasmashell. Replaced in tests.
var plasmaCall = func(script string) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}
	obj := conn.Object("org.kde.plasmashell", "/PlasmaShell")
	if call := obj.Call("org.kde.PlasmaShell.evaluateScript", 0, script); call.Err != nil {
		return fmt.Errorf("evaluate plasma script: %w", call.Err)
	}
	return nil
}

func setKDE(path string) error {
	return plasmaCall(fmt.Sprintf(kdeScript, strconv.Quote(fileURI(path))))
}
