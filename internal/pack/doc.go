// Package pack loads wallpaper packs.
//
// A pack is a directory under the packs dir holding images and a manifest,
// pack.toml (preferred) or pack.yaml. The manifest lists images per day
// segment, keyed by the anchor that opens the segment:
//
//	name = "Mojave"
//	midnight = ["night-1.jpg", "night-2.jpg"]   # midnight -> moonset
//	moonset  = ["predawn.jpg"]                   # moonset  -> sunrise
//	sunrise  = ["dawn.jpg", "morning.jpg"]       # sunrise  -> noon
//	noon     = ["afternoon.jpg"]                 # noon     -> sunset
//	sunset   = ["dusk.jpg"]                      # sunset   -> moonrise
//	moonrise = ["late.jpg"]                      # moonrise -> next midnight
//
// Relative file names resolve against the pack directory. Images are not
// opened or checked.
package pack
