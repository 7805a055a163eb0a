package timeline

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/daywall/internal/anchor"
)

func shortDay() anchor.Set {
	return anchor.FromTimes([anchor.Count]int64{0, 3600, 7200, 14400, 21600, 25200, 28800})
}

func images(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s-%d.jpg", prefix, i)
	}
	return out
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name       string
		start, end int64
		count      int
		want       []int64
	}{
		{"zero count", 0, 3600, 0, nil},
		{"negative count", 0, 3600, -2, nil},
		{"two images", 0, 3600, 2, []int64{1800, 3600}},
		{"single image lands on end", 100, 200, 1, []int64{200}},
		{"truncating step", 0, 10, 3, []int64{3, 6, 9}},
		{"empty interval", 50, 50, 3, []int64{50, 50, 50}},
		{"reversed interval decreases", 100, 0, 2, []int64{50, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Partition(tt.start, tt.end, tt.count))
		})
	}
}

func TestPartition_CountAndMonotonic(t *testing.T) {
	for count := 0; count <= 50; count++ {
		got := Partition(1_700_000_000, 1_700_086_399, count)
		require.Len(t, got, count)
		for i := 1; i < len(got); i++ {
			require.LessOrEqual(t, got[i-1], got[i], "count=%d index=%d", count, i)
		}
		if count > 0 {
			assert.Greater(t, got[0], int64(1_700_000_000))
			assert.LessOrEqual(t, got[count-1], int64(1_700_086_399))
		}
	}
}

func TestPartition_Deterministic(t *testing.T) {
	first := Partition(17, 90_001, 7)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Partition(17, 90_001, 7))
	}
}

func TestBuild_LengthAndOrder(t *testing.T) {
	var im Images
	im[anchor.MidnightToMoonset] = images("night", 2)
	im[anchor.MoonsetToSunrise] = images("dawn", 1)
	im[anchor.SunriseToNoon] = images("morning", 4)
	im[anchor.NoonToSunset] = nil
	im[anchor.SunsetToMoonrise] = images("dusk", 3)
	im[anchor.MoonriseToNextDayMidnight] = images("late", 5)

	tl := Build(shortDay(), im)
	require.Len(t, tl, im.Len())
	for i := 1; i < len(tl); i++ {
		assert.LessOrEqual(t, tl[i-1].At, tl[i].At, "entry %d out of order", i)
	}

	assert.Equal(t, Entry{At: 1800, Image: "night-0.jpg"}, tl[0])
	assert.Equal(t, Entry{At: 3600, Image: "night-1.jpg"}, tl[1])
	assert.Equal(t, Entry{At: 7200, Image: "dawn-0.jpg"}, tl[2])
	assert.Equal(t, Entry{At: 28800, Image: "late-4.jpg"}, tl[len(tl)-1])
}

func TestBuild_SegmentOrderNotSorted(t *testing.T) {
	// Moonset after sunrise breaks the cyclic order; Build keeps segment order.
	bad := anchor.FromTimes([anchor.Count]int64{0, 9000, 7200, 14400, 21600, 25200, 28800})
	var im Images
	im[anchor.MoonsetToSunrise] = []string{"a.jpg"}
	im[anchor.SunriseToNoon] = []string{"b.jpg"}

	tl := Build(bad, im)
	require.Len(t, tl, 2)
	assert.Equal(t, "a.jpg", tl[0].Image)
	assert.Equal(t, int64(7200), tl[0].At)
	assert.Equal(t, "b.jpg", tl[1].Image)
}

func TestBuild_EmptyImages(t *testing.T) {
	tl := Build(shortDay(), Images{})
	assert.Empty(t, tl)
	_, ok := tl.Next(0)
	assert.False(t, ok)
}

func TestNext_SelectsFirstFutureEntry(t *testing.T) {
	var im Images
	im[anchor.MidnightToMoonset] = []string{"first.jpg", "second.jpg"}
	im[anchor.NoonToSunset] = []string{"afternoon.jpg"}
	tl := Build(shortDay(), im)

	tests := []struct {
		now   int64
		want  string
		found bool
	}{
		{now: -5, want: "first.jpg", found: true},
		{now: 1000, want: "first.jpg", found: true},
		{now: 1800, want: "second.jpg", found: true},
		{now: 3599, want: "second.jpg", found: true},
		{now: 3600, want: "afternoon.jpg", found: true},
		{now: 21599, want: "afternoon.jpg", found: true},
		{now: 21600, found: false},
		{now: 99999, found: false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("now=%d", tt.now), func(t *testing.T) {
			got, ok := tl.Next(tt.now)
			require.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got.Image)
				assert.Greater(t, got.At, tt.now)
				assert.Equal(t, got, tl[tl.Index(tt.now)])
			} else {
				assert.Equal(t, -1, tl.Index(tt.now))
			}
		})
	}
}

func TestClone(t *testing.T) {
	tl := Timeline{{At: 1, Image: "a"}}
	dup := tl.Clone()
	dup[0].Image = "b"
	assert.Equal(t, "a", tl[0].Image)
	assert.Nil(t, Timeline(nil).Clone())
}
