package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/daywall/internal/config"
	"github.com/five82/daywall/internal/pack"
	"github.com/five82/daywall/internal/wallpaper"
)

const (
	configPath = "/cfg/daywall/config.toml"
	hour       = int64(3600)
)

// countingProvider places transits at fixed offsets from the requested day
// and counts calls.
type countingProvider struct {
	mu    sync.Mutex
	calls int
}

func (p *countingProvider) hit() {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
}

func (p *countingProvider) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func (p *countingProvider) Sunrise(day int64, _, _ float64) (int64, error) {
	p.hit()
	return day + 6*hour, nil
}

func (p *countingProvider) Sunset(day int64, _, _ float64) (int64, error) {
	p.hit()
	return day + 18*hour, nil
}

func (p *countingProvider) Moonrise(day int64, _, _ float64) (int64, error) {
	p.hit()
	return day + 21*hour, nil
}

func (p *countingProvider) Moonset(day int64, _, _ float64) (int64, error) {
	p.hit()
	return day + 3*hour, nil
}

func (p *countingProvider) Noon(day int64, _ float64) int64 {
	p.hit()
	return day + 12*hour
}

func (p *countingProvider) Midnight(day int64, _ float64) int64 {
	p.hit()
	return day
}

type fixture struct {
	fs       afero.Fs
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	provider *countingProvider
	logFile  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		fs:       afero.NewMemMapFs(),
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
		provider: &countingProvider{},
		logFile:  filepath.Join(t.TempDir(), "daywall.log"),
	}
	f.write(t, "/packs/mojave/pack.toml", `
name = "mojave"
midnight = ["night.jpg"]
moonset = ["predawn.jpg"]
sunrise = ["dawn.jpg", "morning.jpg"]
noon = ["afternoon.jpg"]
sunset = ["dusk.jpg"]
moonrise = ["late.jpg"]
`)
	f.write(t, "/packs/other/pack.yaml", "midnight: [a.png]\n")
	return f
}

func (f *fixture) write(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, f.fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(f.fs, path, []byte(body), 0o644))
}

func (f *fixture) writeConfig(t *testing.T, pack string, extra string) {
	t.Helper()
	f.write(t, configPath, fmt.Sprintf(`
longitude = 15.8
latitude = 45.7
pack = %q
packs_dir = "/packs"
poll_seconds = 1
log_file = %q
%s
`, pack, f.logFile, extra))
}

func (f *fixture) options(applier wallpaper.Applier) Options {
	return Options{
		ConfigPath: configPath,
		PrefsPath:  "/cfg/daywall/prefs.toml",
		Fs:         f.fs,
		Stdout:     f.stdout,
		Stderr:     f.stderr,
		Getenv:     func(string) string { return "" },
		Provider:   f.provider,
		Applier:    applier,
		Location:   time.UTC,
		Now: func() time.Time {
			return time.Date(2024, time.March, 10, 13, 0, 0, 0, time.UTC)
		},
	}
}

func TestRun_EmptyPackIsNotConfigured(t *testing.T) {
	f := newFixture(t)
	f.writeConfig(t, "", "")
	applier := wallpaper.ApplierFunc(func(string) error {
		t.Fatal("applier called")
		return nil
	})

	err := Run(context.Background(), f.options(applier))

	require.NoError(t, err)
	assert.Contains(t, f.stdout.String(), "not configured")
	assert.Contains(t, f.stdout.String(), configPath)
	assert.Zero(t, f.provider.count(), "provider must not be consulted")
}

func TestRun_AppliesUntilCancelled(t *testing.T) {
	f := newFixture(t)
	f.writeConfig(t, "mojave", "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var applied []string
	applier := wallpaper.ApplierFunc(func(path string) error {
		applied = append(applied, path)
		cancel()
		return nil
	})

	require.NoError(t, Run(ctx, f.options(applier)))
	require.Len(t, applied, 1)
	assert.Contains(t, applied[0], "/packs/mojave/")
	assert.Equal(t, 6, f.provider.count())
	assert.Contains(t, f.stderr.String(), "wallpaper applied")
}

// instantClock never waits and cancels the run after the given number of
// sleeps.
type instantClock struct {
	now    time.Time
	sleeps int
	limit  int
	cancel context.CancelFunc
}

func (c *instantClock) Now() time.Time { return c.now }

func (c *instantClock) After(d time.Duration) <-chan time.Time {
	c.sleeps++
	if c.sleeps == c.limit {
		c.cancel()
	}
	c.now = c.now.Add(d)
	ch := make(chan time.Time, 1)
	ch <- c.now
	return ch
}

func TestRun_ReapplyEveryTickFromConfig(t *testing.T) {
	tests := []struct {
		name  string
		extra string
		want  int
	}{
		{name: "default applies every tick", extra: "", want: 3},
		{name: "disabled skips repeated image", extra: "reapply_every_tick = false", want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.writeConfig(t, "mojave", tt.extra)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			var applied []string
			applier := wallpaper.ApplierFunc(func(path string) error {
				applied = append(applied, path)
				return nil
			})
			opts := f.options(applier)
			// 13:00 to 13:00:03 all fall in the noon segment.
			opts.Clock = &instantClock{now: opts.Now(), limit: 3, cancel: cancel}

			require.NoError(t, Run(ctx, opts))
			require.Len(t, applied, tt.want)
			for _, path := range applied {
				assert.Equal(t, "/packs/mojave/afternoon.jpg", path)
			}
		})
	}
}

func TestRun_ApplyFailureIsFatal(t *testing.T) {
	f := newFixture(t)
	f.writeConfig(t, "mojave", "")
	boom := errors.New("no display")

	err := Run(context.Background(), f.options(wallpaper.ApplierFunc(func(string) error { return boom })))

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "apply wallpaper")
}

func TestRun_MissingPack(t *testing.T) {
	f := newFixture(t)
	f.writeConfig(t, "nope", "")

	err := Run(context.Background(), f.options(wallpaper.ApplierFunc(func(string) error { return nil })))

	require.Error(t, err)
	assert.ErrorIs(t, err, pack.ErrPackNotFound)
	assert.Zero(t, f.provider.count())
}

func TestRun_InvalidConfig(t *testing.T) {
	f := newFixture(t)
	f.write(t, configPath, "latitude = 120\n")

	err := Run(context.Background(), f.options(nil))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestTimeline_PrintsPlannedDay(t *testing.T) {
	f := newFixture(t)
	f.writeConfig(t, "mojave", "")

	require.NoError(t, Timeline(f.options(nil), "2024-03-10"))

	out := f.stdout.String()
	assert.Contains(t, out, "mojave (7 images)")
	assert.Contains(t, out, "/packs/mojave/dawn.jpg")
	assert.Contains(t, out, "/packs/mojave/late.jpg")
	// sunrise -> noon split in two: 09:00 and 12:00.
	assert.Contains(t, out, "09:00:00")
}

func TestTimeline_BadDate(t *testing.T) {
	f := newFixture(t)
	f.writeConfig(t, "mojave", "")

	err := Timeline(f.options(nil), "10/03/2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse date")
}

func TestAnchors_DoesNotNeedPack(t *testing.T) {
	f := newFixture(t)
	f.writeConfig(t, "", "")

	require.NoError(t, Anchors(f.options(nil), "2024-03-10"))
	out := f.stdout.String()
	assert.Contains(t, out, "next_midnight")
	assert.Contains(t, out, "2024-03-10 06:00:00 UTC")
}

func TestPacks_ListsAndMarksSelected(t *testing.T) {
	f := newFixture(t)
	f.writeConfig(t, "mojave", "")

	require.NoError(t, Packs(f.options(nil)))
	assert.Equal(t, "* mojave\n  other\n", f.stdout.String())
}

func TestInit_WritesConfigOnce(t *testing.T) {
	f := newFixture(t)
	opts := f.options(nil)

	require.NoError(t, Init(opts, InitOptions{Longitude: 15.8, Latitude: 45.7, Pack: "mojave"}))
	assert.Contains(t, f.stdout.String(), "wrote "+configPath)

	cfg, err := config.Load(f.fs, configPath)
	require.NoError(t, err)
	assert.Equal(t, "mojave", cfg.Pack)
	assert.InDelta(t, 45.7, cfg.Latitude, 1e-9)

	err = Init(opts, InitOptions{Pack: "other"})
	require.Error(t, err)
	require.NoError(t, Init(opts, InitOptions{Pack: "other", Force: true}))
}
