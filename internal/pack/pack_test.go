package pack

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/daywall/internal/anchor"
)

const packsDir = "/packs"

func writeFile(t *testing.T, fs afero.Fs, path, body string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(body), 0o644))
}

func TestLoad_TOML(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/packs/mojave/pack.toml", `
name = "Mojave"
author = "Apple"
midnight = ["night-1.jpg", "night-2.jpg"]
moonset = ["predawn.jpg"]
sunrise = ["dawn.jpg", "morning.jpg"]
noon = ["/srv/shared/afternoon.jpg"]
sunset = []
moonrise = ["late.jpg"]
`)

	p, err := Load(fs, packsDir, "mojave")
	require.NoError(t, err)

	assert.Equal(t, "Mojave", p.Name)
	assert.Equal(t, "Apple", p.Author)
	assert.Equal(t, "/packs/mojave/pack.toml", p.File)
	assert.Equal(t, 7, p.Count())

	im := p.Images()
	assert.Equal(t, []string{"/packs/mojave/night-1.jpg", "/packs/mojave/night-2.jpg"}, im[anchor.MidnightToMoonset])
	assert.Equal(t, []string{"/packs/mojave/predawn.jpg"}, im[anchor.MoonsetToSunrise])
	assert.Equal(t, []string{"/srv/shared/afternoon.jpg"}, im[anchor.NoonToSunset])
	assert.Empty(t, im[anchor.SunsetToMoonrise])
	assert.Equal(t, []string{"/packs/mojave/late.jpg"}, im[anchor.MoonriseToNextDayMidnight])

	// Images returns copies.
	im[anchor.MidnightToMoonset][0] = "changed"
	assert.Equal(t, "/packs/mojave/night-1.jpg", p.Images()[anchor.MidnightToMoonset][0])
}

func TestLoad_YAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/packs/firewatch/pack.yaml", `
midnight: [a.png]
sunrise:
  - b.png
  - c.png
`)

	p, err := Load(fs, packsDir, "firewatch")
	require.NoError(t, err)
	assert.Equal(t, "firewatch", p.Name)
	assert.Equal(t, 3, p.Count())
	assert.Equal(t, []string{"/packs/firewatch/b.png", "/packs/firewatch/c.png"}, p.Images()[anchor.SunriseToNoon])
}

func TestLoad_PrefersTOML(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/packs/both/pack.toml", `noon = ["toml.jpg"]`)
	writeFile(t, fs, "/packs/both/pack.yaml", `noon: [yaml.jpg]`)

	p, err := Load(fs, packsDir, "both")
	require.NoError(t, err)
	assert.Equal(t, []string{"/packs/both/toml.jpg"}, p.Images()[anchor.NoonToSunset])
}

func TestLoad_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/packs/empty-dir/readme.txt", "nothing here")
	writeFile(t, fs, "/packs/broken/pack.toml", `midnight = [`)
	writeFile(t, fs, "/packs/blank/pack.toml", `midnight = [""]`)

	_, err := Load(fs, packsDir, "missing")
	assert.ErrorIs(t, err, ErrPackNotFound)

	_, err = Load(fs, packsDir, "empty-dir")
	assert.ErrorIs(t, err, ErrPackNotFound)

	_, err = Load(fs, packsDir, "broken")
	assert.ErrorContains(t, err, "parse pack")

	_, err = Load(fs, packsDir, "blank")
	assert.ErrorContains(t, err, "validate pack")

	_, err = Load(fs, packsDir, "  ")
	assert.ErrorContains(t, err, "empty")

	_, err = Load(fs, packsDir, "../etc")
	assert.ErrorContains(t, err, "invalid pack name")
}

func TestList(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/packs/zeta/pack.yml", `noon: [z.jpg]`)
	writeFile(t, fs, "/packs/alpha/pack.toml", `noon = ["a.jpg"]`)
	writeFile(t, fs, "/packs/not-a-pack/image.jpg", "")
	writeFile(t, fs, "/packs/stray.toml", "")

	names, err := List(fs, packsDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)

	names, err = List(fs, "/nowhere")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestManifestLists_CoversEverySegment(t *testing.T) {
	m := manifest{
		Midnight: []string{"a.jpg"},
		Moonset:  []string{"b.jpg"},
		Sunrise:  []string{"c.jpg"},
		Noon:     []string{"d.jpg"},
		Sunset:   []string{"e.jpg"},
		Moonrise: []string{"f.jpg"},
	}
	im, err := m.lists()
	require.NoError(t, err)
	for _, seg := range anchor.Segments() {
		assert.Len(t, im[seg], 1, seg.String())
	}
	assert.Equal(t, []string{"d.jpg"}, im[anchor.NoonToSunset])
	assert.Equal(t, []string{"f.jpg"}, im[anchor.MoonriseToNextDayMidnight])
}
