package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/five82/daywall/internal/astro"
	"github.com/five82/daywall/internal/config"
	"github.com/five82/daywall/internal/daycycle"
	"github.com/five82/daywall/internal/pack"
	"github.com/five82/daywall/internal/prefs"
	"github.com/five82/daywall/internal/ui"
)

// Timeline prints the selected pack's timeline for date (YYYY-MM-DD, empty
// for today), marking the entry that would be applied now.
func Timeline(opts Options, date string) error {
	opts = opts.withDefaults()
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if err := cfg.RequirePack(); err != nil {
		fmt.Fprintf(opts.Stdout, notConfiguredHint, err, configPathForDisplay(opts.ConfigPath))
		return nil
	}
	p, err := pack.Load(opts.Fs, cfg.PacksDir, cfg.Pack)
	if err != nil {
		return fmt.Errorf("load pack: %w", err)
	}

	day, err := planDay(opts, cfg, p, date)
	if err != nil {
		return err
	}

	theme := ui.GetTheme(prefs.Load(opts.Fs, opts.PrefsPath).Theme)
	fmt.Fprintf(opts.Stdout, "%s (%d images) at %.4f, %.4f\n", p.Name, p.Count(), cfg.Latitude, cfg.Longitude)
	fmt.Fprintln(opts.Stdout, ui.RenderTimeline(day.Anchors, day.Timeline, opts.Location, opts.Now(), theme))
	return nil
}

// Anchors prints the anchor instants for date at the configured location.
// No pack is needed.
func Anchors(opts Options, date string) error {
	opts = opts.withDefaults()
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	day, err := planDay(opts, cfg, pack.Pack{}, date)
	if err != nil {
		return err
	}
	theme := ui.GetTheme(prefs.Load(opts.Fs, opts.PrefsPath).Theme)
	fmt.Fprintln(opts.Stdout, ui.RenderAnchors(day.Anchors, opts.Location, theme))
	return nil
}

// Packs lists the packs under the packs dir, marking the selected one.
func Packs(opts Options) error {
	opts = opts.withDefaults()
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	names, err := pack.List(opts.Fs, cfg.PacksDir)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintf(opts.Stdout, "no packs in %s\n", cfg.PacksDir)
		return nil
	}
	for _, name := range names {
		marker := " "
		if name == cfg.Pack {
			marker = "*"
		}
		fmt.Fprintf(opts.Stdout, "%s %s\n", marker, name)
	}
	return nil
}

// InitOptions are the values written by Init.
type InitOptions struct {
	Longitude float64
	Latitude  float64
	Pack      string
	Force     bool
}

// Init writes a starter config file and creates the daywall directories.
func Init(opts Options, in InitOptions) error {
	opts = opts.withDefaults()
	cfg := config.Default()
	cfg.Longitude = in.Longitude
	cfg.Latitude = in.Latitude
	cfg.Pack = strings.TrimSpace(in.Pack)

	path, err := config.Save(opts.Fs, opts.ConfigPath, cfg, in.Force)
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}
	if err := config.EnsureDirs(opts.Fs, path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(opts.Stdout, "wrote %s\npacks go in %s\n", path, cfg.PacksDir)
	return nil
}

func planDay(opts Options, cfg config.Config, p pack.Pack, date string) (daycycle.Day, error) {
	planner := daycycle.Planner{
		Provider:  opts.Provider,
		Images:    p.Images(),
		Longitude: cfg.Longitude,
		Latitude:  cfg.Latitude,
		Location:  opts.Location,
	}
	var (
		day daycycle.Day
		err error
	)
	if date == "" {
		day, err = planner.Plan(opts.Now())
	} else {
		var t time.Time
		t, err = time.ParseInLocation(time.DateOnly, date, opts.Location)
		if err != nil {
			return daycycle.Day{}, fmt.Errorf("parse date %q: %w", date, err)
		}
		day, err = planner.PlanDate(astro.Day(t))
	}
	if err != nil {
		return daycycle.Day{}, fmt.Errorf("fetch anchors: %w", err)
	}
	return day, nil
}
