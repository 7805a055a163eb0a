package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/five82/daywall/internal/astro"
	"github.com/five82/daywall/internal/config"
	"github.com/five82/daywall/internal/daycycle"
	"github.com/five82/daywall/internal/logging"
	"github.com/five82/daywall/internal/pack"
	"github.com/five82/daywall/internal/prefs"
	"github.com/five82/daywall/internal/state"
	"github.com/five82/daywall/internal/ui"
	"github.com/five82/daywall/internal/wallpaper"
)

// Options configure a daywall command.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/daywall/prefs.toml
	PollEvery  int    // seconds; zero uses the config value

	// Fs is the filesystem for config, packs and prefs; nil uses the OS.
	Fs afero.Fs
	// Stdout receives user-facing output; nil uses os.Stdout.
	Stdout io.Writer
	// Stderr receives console logs; nil uses os.Stderr.
	Stderr io.Writer
	// Getenv is used for desktop detection; nil uses os.Getenv.
	Getenv func(string) string

	// Provider and Applier replace the astronomical calculator and the
	// detected desktop backend.
	Provider astro.Provider
	Applier  wallpaper.Applier
	Location *time.Location
	Now      func() time.Time
	// Clock replaces the scheduler's wall clock and sleep.
	Clock daycycle.Clock
}

func (o Options) withDefaults() Options {
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Getenv == nil {
		o.Getenv = os.Getenv
	}
	if o.Provider == nil {
		o.Provider = astro.Calculator{}
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

const notConfiguredHint = "daywall is not configured: %v.\n" +
	"Pick one of the packs listed by `daywall packs` and set `pack` in %s,\n" +
	"or run `daywall init --pack <name>`.\n"

// Run schedules wallpapers until ctx is cancelled. An empty pack is not an
// error: a hint is printed and Run returns nil without computing anything.
func Run(ctx context.Context, opts Options) error {
	opts = opts.withDefaults()
	sess, err := start(opts, opts.Stderr)
	if err != nil {
		if errors.Is(err, config.ErrNotConfigured) {
			return nil
		}
		return err
	}
	defer sess.close()

	sched, err := sess.scheduler(nil)
	if err != nil {
		return err
	}
	stop := context.AfterFunc(ctx, sched.Stop)
	defer stop()

	if err := sched.Run(ctx); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}
	return nil
}

// Watch runs the scheduler behind the watch TUI. Quitting the TUI stops the
// scheduler; a scheduler failure stays on screen until the user quits.
func Watch(ctx context.Context, opts Options) error {
	opts = opts.withDefaults()
	sess, err := start(opts, io.Discard)
	if err != nil {
		if errors.Is(err, config.ErrNotConfigured) {
			return nil
		}
		return err
	}
	defer sess.close()

	store := &state.Store{}
	sched, err := sess.scheduler(store)
	if err != nil {
		return err
	}

	errc := StartScheduler(ctx, sched, sess.log)

	userPrefs := prefs.Load(opts.Fs, opts.PrefsPath)
	uiErr := ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Fs:        opts.Fs,
		LogPath:   sess.cfg.LogFile,
		Location:  opts.Location,
		ThemeName: userPrefs.Theme,
		ShowLogs:  userPrefs.ShowLogs,
		PrefsPath: opts.PrefsPath,
		Logger:    sess.log,
		OnQuit:    sched.Stop,
		Now:       opts.Now,
	})
	sched.Stop()
	schedErr := <-errc
	if uiErr != nil {
		return fmt.Errorf("watch ui: %w", uiErr)
	}
	if schedErr != nil {
		return fmt.Errorf("scheduler: %w", schedErr)
	}
	return nil
}

// session is the state shared by the scheduling commands.
type session struct {
	opts   Options
	cfg    config.Config
	pack   pack.Pack
	log    zerolog.Logger
	closer io.Closer
}

// start loads config, sets up logging and loads the selected pack. It
// returns config.ErrNotConfigured, after printing the hint, when no pack is
// selected.
func start(opts Options, console io.Writer) (*session, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	if err := cfg.RequirePack(); err != nil {
		fmt.Fprintf(opts.Stdout, notConfiguredHint, err, configPathForDisplay(opts.ConfigPath))
		return nil, err
	}

	logger, closer, err := logging.Setup(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile, Console: console, Fs: opts.Fs})
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}

	p, err := pack.Load(opts.Fs, cfg.PacksDir, cfg.Pack)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("load pack: %w", err)
	}
	logger.Info().
		Str("pack", cfg.Pack).
		Int("images", p.Count()).
		Float64("lat", cfg.Latitude).
		Float64("lon", cfg.Longitude).
		Msg("daywall starting")

	return &session{opts: opts, cfg: cfg, pack: p, log: logger, closer: closer}, nil
}

func (s *session) close() {
	_ = s.closer.Close()
}

func (s *session) scheduler(store *state.Store) (*daycycle.Scheduler, error) {
	applier := s.opts.Applier
	if applier == nil {
		desktop := s.cfg.Desktop
		if desktop == "" {
			desktop = wallpaper.DesktopFromEnv(s.opts.Getenv)
		}
		detected, err := wallpaper.Detect(desktop, s.cfg.WallpaperCommand)
		if err != nil {
			return nil, fmt.Errorf("select wallpaper backend: %w", err)
		}
		s.log.Info().Str("desktop", desktop).Stringer("backend", backendName{detected}).Msg("wallpaper backend selected")
		applier = detected
	}

	if store != nil {
		store.SetSource(s.cfg.Pack, s.cfg.Longitude, s.cfg.Latitude)
	}
	sched, err := daycycle.New(daycycle.Options{
		Planner: daycycle.Planner{
			Provider:  s.opts.Provider,
			Images:    s.pack.Images(),
			Longitude: s.cfg.Longitude,
			Latitude:  s.cfg.Latitude,
			Location:  s.opts.Location,
		},
		Applier:              applier,
		PollInterval:         s.cfg.PollInterval(),
		Clock:                s.opts.Clock,
		Logger:               s.log,
		Store:                store,
		ContinueOnApplyError: s.cfg.ContinueOnApplyError,
		SkipRepeatedImage:    !s.cfg.ReapplyEveryTick,
	})
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	return sched, nil
}

func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.Fs, opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if opts.PollEvery > 0 {
		cfg.PollSeconds = opts.PollEvery
	}
	if err := config.EnsureDirs(opts.Fs, opts.ConfigPath, cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func configPathForDisplay(path string) string {
	if path != "" {
		return path
	}
	return config.DefaultPath()
}

// backendName prints an applier's backend name when it has one.
type backendName struct{ a wallpaper.Applier }

func (b backendName) String() string {
	if s, ok := b.a.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", b.a)
}
