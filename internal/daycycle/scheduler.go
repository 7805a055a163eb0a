package daycycle

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/daywall/internal/state"
	"github.com/five82/daywall/internal/timeline"
	"github.com/five82/daywall/internal/wallpaper"
)

// DefaultPollInterval is how often the scheduler compares the clock against
// the timeline.
const DefaultPollInterval = 30 * time.Second

// Phase is the scheduler state.
type Phase int

const (
	Initializing Phase = iota
	Running
	Recomputing
	Terminating
)

func (p Phase) String() string {
	switch p {
	case Initializing:
		return "initializing"
	case Running:
		return "running"
	case Recomputing:
		return "recomputing"
	case Terminating:
		return "terminating"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Clock abstracts wall-clock reads and the sleep between ticks.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// SystemClock is the real clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time                         { return time.Now() }
func (SystemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Options configure a Scheduler.
type Options struct {
	Planner      Planner
	Applier      wallpaper.Applier
	PollInterval time.Duration
	Clock        Clock
	Logger       zerolog.Logger
	Store        *state.Store // optional; receives every state change

	// SkipRepeatedImage leaves the applier alone when the selected image is
	// the one it last applied. A new day always applies once.
	SkipRepeatedImage bool
	// ContinueOnApplyError logs apply failures instead of stopping.
	ContinueOnApplyError bool
}

// Scheduler is the day-cycle control loop. Run owns all fields except the
// stop flag, which Stop may set from any goroutine.
type Scheduler struct {
	planner  Planner
	applier  wallpaper.Applier
	interval time.Duration
	clock    Clock
	log      zerolog.Logger
	store    *state.Store
	skipSame bool
	tolerant bool

	stopping atomic.Bool
	stopOnce sync.Once
	wake     chan struct{}

	phase      Phase
	day        Day
	lastNow    int64
	applied    string
	hasApplied bool
}

// New validates opts and returns a Scheduler ready to Run.
func New(opts Options) (*Scheduler, error) {
	if opts.Planner.Provider == nil {
		return nil, fmt.Errorf("scheduler requires a transit provider")
	}
	if opts.Applier == nil {
		return nil, fmt.Errorf("scheduler requires a wallpaper applier")
	}
	interval := opts.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	planner := opts.Planner
	planner.Logger = opts.Logger

	return &Scheduler{
		planner:  planner,
		applier:  opts.Applier,
		interval: interval,
		clock:    clock,
		log:      opts.Logger.With().Str("component", "scheduler").Logger(),
		store:    opts.Store,
		skipSame: opts.SkipRepeatedImage,
		tolerant: opts.ContinueOnApplyError,
		wake:     make(chan struct{}),
	}, nil
}

// Stop requests shutdown. The loop exits at the top of its next iteration;
// an apply call already in flight is allowed to finish. Safe to call from a
// signal handler goroutine and more than once.
func (s *Scheduler) Stop() {
	s.stopping.Store(true)
	s.stopOnce.Do(func() { close(s.wake) })
}

// Run plans today, then ticks every poll interval until Stop is called or
// ctx is cancelled. Anchor and apply failures end the loop with an error.
func (s *Scheduler) Run(ctx context.Context) error {
	s.setPhase(Initializing)
	now := s.clock.Now()
	day, err := s.planner.Plan(now)
	if err != nil {
		s.fail(err)
		return fmt.Errorf("fetch anchors: %w", err)
	}
	s.replaceDay(day)
	s.lastNow = now.Unix()
	s.setPhase(Running)

	for {
		if s.stopping.Load() || ctx.Err() != nil {
			s.setPhase(Terminating)
			s.log.Info().Msg("shutdown requested, scheduler stopped")
			return nil
		}
		if err := s.tick(); err != nil {
			s.fail(err)
			s.setPhase(Terminating)
			return err
		}
		s.sleep(ctx)
	}
}

func (s *Scheduler) tick() error {
	now := s.clock.Now()
	s.lastNow = now.Unix()

	if s.day.Anchors.Expired(s.lastNow) {
		return s.recompute(now)
	}
	if s.store != nil {
		s.store.SetPhase(s.phase.String(), now)
	}

	entry, ok := s.day.Timeline.Next(s.lastNow)
	if !ok {
		s.log.Debug().Time("now", now).Msg("past the last scheduled image; nothing to apply")
		return nil
	}
	return s.apply(entry, now)
}

// recompute replaces the whole day and applies nothing this tick.
func (s *Scheduler) recompute(now time.Time) error {
	s.setPhase(Recomputing)
	day, err := s.planner.Plan(now)
	if err != nil {
		return fmt.Errorf("fetch anchors: %w", err)
	}
	s.replaceDay(day)
	s.setPhase(Running)
	return nil
}

func (s *Scheduler) apply(entry timeline.Entry, now time.Time) error {
	if s.skipSame && s.hasApplied && s.applied == entry.Image {
		return nil
	}
	if err := s.applier.Apply(entry.Image); err != nil {
		if !s.tolerant {
			return fmt.Errorf("apply wallpaper %s: %w", entry.Image, err)
		}
		s.log.Error().Err(err).Str("image", entry.Image).Msg("apply wallpaper failed; continuing")
		if s.store != nil {
			s.store.SetError(err)
		}
		return nil
	}
	s.applied = entry.Image
	s.hasApplied = true
	s.log.Info().
		Str("image", entry.Image).
		Time("until", entry.Time(s.planner.location())).
		Msg("wallpaper applied")
	if s.store != nil {
		s.store.SetActive(entry, now)
	}
	return nil
}

// replaceDay swaps in a new day. The next tick applies its selection even
// when repeated images are skipped.
func (s *Scheduler) replaceDay(day Day) {
	s.day = day
	s.hasApplied = false
	s.log.Info().
		Object("anchors", day.Anchors).
		Int("images", len(day.Timeline)).
		Msg("day planned")
	if s.store != nil {
		s.store.SetDay(day.Anchors, day.Timeline)
	}
}

func (s *Scheduler) sleep(ctx context.Context) {
	select {
	case <-s.clock.After(s.interval):
	case <-s.wake:
	case <-ctx.Done():
	}
}

func (s *Scheduler) setPhase(p Phase) {
	s.phase = p
	s.log.Debug().Stringer("phase", p).Msg("scheduler phase")
	if s.store != nil {
		s.store.SetPhase(p.String(), s.clock.Now())
	}
}

func (s *Scheduler) fail(err error) {
	s.log.Error().Err(err).Msg("scheduler failed")
	if s.store != nil {
		s.store.SetError(err)
	}
}
