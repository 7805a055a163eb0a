// Package app wires daywall together for each CLI command.
//
// # Overview
//
// This package is the composition root: it loads configuration, sets up
// logging, loads the selected pack, picks a wallpaper backend and hands
// everything to the day-cycle scheduler. Commands share one Options struct
// so tests can swap the filesystem, clock, astronomy and applier.
//
// # Startup
//
//  1. config.Load reads ~/.config/daywall/config.toml plus DAYWALL_* overrides
//  2. config.EnsureDirs creates the config, packs and log directories
//  3. An empty pack prints a hint and stops with success before any
//     astronomy is computed
//  4. logging.Setup opens the daemon log
//  5. pack.Load reads the pack manifest
//  6. wallpaper.Detect picks a backend unless one was injected
//  7. daycycle.New builds the scheduler
//
// # Commands
//
//   - Run: scheduler in the foreground; ctx cancellation calls Stop
//   - Watch: scheduler in a goroutine (StartScheduler) with the ui package
//     reading a shared state.Store; quitting the TUI calls Stop
//   - Timeline, Anchors: plan one day and print it
//   - Packs: list installed packs
//   - Init: write a starter config
//
// # Shutdown
//
// SIGINT and SIGTERM cancel the context in main. Run turns that into
// Scheduler.Stop through context.AfterFunc, so the signal path only sets the
// scheduler's stop flag and wakes its sleep.
package app
