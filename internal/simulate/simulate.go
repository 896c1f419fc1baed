package simulate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/faker-app/faker/internal/platform"
	"github.com/faker-app/faker/internal/platform/patterns"
	"github.com/faker-app/faker/internal/settings"
)

// Health represents the runtime health of activity simulation
type Health int

const (
	HealthUnknown Health = iota
	HealthOK
	HealthFailed
)

// Keeper runs the periodic activity simulation loop
type Keeper struct {
	mu      sync.Mutex
	running bool
	sim     platform.Simulator
	cfg     settings.Settings
	ctx     context.Context
	cancel  context.CancelFunc
	timer   *time.Timer
	endTime time.Time

	// failCount tracks consecutive simulation failures (atomic for thread-safety)
	failCount int64
}

// New returns a Keeper that dispatches to the given simulator. A nil
// simulator is resolved to the platform default on first Start.
func New(sim platform.Simulator) *Keeper {
	return &Keeper{sim: sim}
}

// IsRunning returns whether the simulation loop is currently active
func (k *Keeper) IsRunning() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.running
}

// Start begins simulating activity indefinitely using the given settings
func (k *Keeper) Start(cfg settings.Settings) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.startLocked(cfg)
}

// StartFor begins simulating activity and stops automatically after d
func (k *Keeper) StartFor(cfg settings.Settings, d time.Duration) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.startLocked(cfg); err != nil {
		return err
	}

	k.endTime = time.Now().Add(d)
	k.timer = time.AfterFunc(d, func() {
		k.Stop()
	})

	return nil
}

func (k *Keeper) startLocked(cfg settings.Settings) error {
	if k.running {
		return errors.New("simulation already running")
	}

	cfg.Normalize()

	if k.sim == nil {
		var err error
		k.sim, err = platform.NewSimulator()
		if err != nil {
			return err
		}
	}

	k.cfg = cfg
	k.ctx, k.cancel = context.WithCancel(context.Background())
	k.running = true

	go k.loop(k.ctx)

	slog.Debug("simulation started",
		"method", cfg.Method,
		"interval", cfg.IntervalSeconds)
	return nil
}

// Stop halts the simulation loop. It is safe to call when not running.
func (k *Keeper) Stop() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.running {
		return nil
	}

	if k.timer != nil {
		k.timer.Stop()
		k.timer = nil
	}
	k.endTime = time.Time{}

	if k.cancel != nil {
		k.cancel()
		k.cancel = nil
	}

	k.running = false
	slog.Debug("simulation stopped")
	return nil
}

// Reconfigure swaps the active settings. A running loop is restarted so
// the new interval takes effect immediately; a stopped Keeper just records
// the settings for the next Start.
func (k *Keeper) Reconfigure(cfg settings.Settings) {
	cfg.Normalize()

	k.mu.Lock()
	defer k.mu.Unlock()

	k.cfg = cfg

	if k.running && k.cancel != nil {
		k.cancel()
		k.ctx, k.cancel = context.WithCancel(context.Background())
		go k.loop(k.ctx)
	}
}

// Settings returns a copy of the settings the Keeper is running with
func (k *Keeper) Settings() settings.Settings {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.cfg
}

// TimeRemaining returns the remaining duration for a timed run
func (k *Keeper) TimeRemaining() time.Duration {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.running || k.endTime.IsZero() {
		return 0
	}

	remaining := time.Until(k.endTime)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// SimulationHealth reports whether recent simulation attempts succeeded
func (k *Keeper) SimulationHealth() Health {
	if atomic.LoadInt64(&k.failCount) > 0 {
		return HealthFailed
	}
	return HealthOK
}

// FailureCount returns the number of consecutive failed simulation attempts
func (k *Keeper) FailureCount() int64 {
	return atomic.LoadInt64(&k.failCount)
}

// loop fires the configured action once per interval until ctx is
// cancelled. A failed action is logged and counted but never stops the
// loop; the next tick retries.
func (k *Keeper) loop(ctx context.Context) {
	timer := time.NewTimer(k.interval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			k.mu.Lock()
			cfg := k.cfg
			sim := k.sim
			k.mu.Unlock()

			if err := perform(sim, cfg); err != nil {
				atomic.AddInt64(&k.failCount, 1)
				slog.Warn("simulation action failed",
					"method", cfg.Method,
					"error", err)
			} else {
				atomic.StoreInt64(&k.failCount, 0)
			}

			timer.Reset(k.interval())
		}
	}
}

func (k *Keeper) interval() time.Duration {
	k.mu.Lock()
	defer k.mu.Unlock()
	return time.Duration(k.cfg.IntervalSeconds) * time.Second
}

// perform executes a single simulation action for the configured method
func perform(sim platform.Simulator, cfg settings.Settings) error {
	switch cfg.Method {
	case settings.MethodKeyboard:
		return sim.PressKey(cfg.Keyboard.Key)
	case settings.MethodMouse:
		return performMouse(sim, cfg)
	case settings.MethodScrollLock:
		return sim.ToggleScrollLock()
	case settings.MethodIdleReset:
		return sim.ResetIdleTimer()
	default:
		return fmt.Errorf("unknown simulation method %q", cfg.Method)
	}
}

// performMouse moves the pointer and returns it to where it started so the
// jiggle is invisible to the user.
func performMouse(sim platform.Simulator, cfg settings.Settings) error {
	if cfg.Mouse.Mode == settings.MouseModeRandom {
		return performMousePattern(sim)
	}

	px := cfg.Mouse.Pixels
	if err := sim.MoveMouse(px, 0); err != nil {
		return err
	}
	return sim.MoveMouse(-px, 0)
}

func performMousePattern(sim platform.Simulator) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	gen := patterns.NewGenerator(rng)

	points := gen.GenerateShapePoints()

	// Points are origin-relative offsets; the simulator takes relative
	// moves, so walk the deltas and finish back at the origin.
	curX, curY := 0, 0
	for i, p := range points {
		x, y := int(math.Round(p.X)), int(math.Round(p.Y))
		if err := sim.MoveMouse(x-curX, y-curY); err != nil {
			return err
		}
		curX, curY = x, y

		if i < len(points)-1 {
			time.Sleep(gen.MovementDelay(patterns.SegmentDistance(points, i)))
			if gen.ShouldPause() {
				time.Sleep(gen.PauseDelay())
			}
		}
	}

	if curX != 0 || curY != 0 {
		time.Sleep(gen.ReturnDelay())
		if err := sim.MoveMouse(-curX, -curY); err != nil {
			return err
		}
	}
	return nil
}
