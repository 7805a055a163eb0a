package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/daywall/internal/app"
)

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "List installed wallpaper packs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.Packs(options(cmd))
	},
}

var initOpts app.InitOptions

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Write a config file with your location and pack and create the packs
directory. An existing config is kept unless --force is given.

Examples:
  daywall init --lat 45.81 --lon 15.98 --pack mojave`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.Init(options(cmd), initOpts)
	},
}

func init() {
	initCmd.Flags().Float64Var(&initOpts.Latitude, "lat", 0, "latitude in degrees, north positive")
	initCmd.Flags().Float64Var(&initOpts.Longitude, "lon", 0, "longitude in degrees, east positive")
	initCmd.Flags().StringVar(&initOpts.Pack, "pack", "", "wallpaper pack name")
	initCmd.Flags().BoolVarP(&initOpts.Force, "force", "f", false, "overwrite an existing config")
	rootCmd.AddCommand(packsCmd, initCmd)
}
