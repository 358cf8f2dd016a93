// Package spin orchestrates the spin session lifecycle. It is the sole
// caller of the generator/evaluator/payout/economy chain and enforces
// the at-most-one-in-flight-spin invariant.
package spin

import (
	"context"
	"sync"
	"time"

	"github.com/zodiacgames/ZodiacSpin_Go/internal/config"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/domain"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/economy"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/evaluator"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/event"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/generator"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/logger"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/payout"
)

// Service defines the command surface of the spin orchestrator
type Service interface {
	// RequestSpin starts a spin at the given stake (0 keeps the current
	// stake). Returns the new session ID, or ErrSpinInProgress when a
	// spin is already in flight (the request is ignored, not queued).
	RequestSpin(ctx context.Context, stake int) (string, error)

	// SetAutoSpin toggles auto-spin. Disabling cancels any pending
	// scheduled spin but lets an in-flight spin settle normally.
	SetAutoSpin(ctx context.Context, enabled bool)

	// SetTurbo toggles turbo timing for subsequent spins
	SetTurbo(ctx context.Context, enabled bool) bool

	// AdjustStake moves the stored stake by delta, clamped and
	// step-aligned, and returns the resulting stake
	AdjustStake(ctx context.Context, delta int) int

	// SetTheme switches the active theme for subsequent spins
	SetTheme(ctx context.Context, themeID string) error

	// Status returns a read-only snapshot of the orchestrator and economy
	Status() Status

	// Shutdown stops scheduling, settles any in-flight spin immediately
	// and waits for pending work.
	Shutdown(ctx context.Context) error
}

type orchestrator struct {
	cfg       *config.GameConfig
	generator generator.Service
	evaluator evaluator.Service
	payout    payout.Service
	economy   economy.Service
	publisher event.Bus

	newSessionID func() string // Injectable for testing

	mu           sync.Mutex
	state        State
	session      *session
	currentStake int
	autoSpin     bool
	turbo        bool
	themeID      string
	lastRecord   *domain.SpinRecord
	settleTimer  *time.Timer
	autoTimer    *time.Timer
	shuttingDown bool
	wg           sync.WaitGroup
}

// NewService creates a new spin orchestrator. The config must already
// be validated; stake and theme start at their configured defaults.
func NewService(
	cfg *config.GameConfig,
	gen generator.Service,
	eval evaluator.Service,
	pay payout.Service,
	econ economy.Service,
	publisher event.Bus,
) Service {
	return &orchestrator{
		cfg:          cfg,
		generator:    gen,
		evaluator:    eval,
		payout:       pay,
		economy:      econ,
		publisher:    publisher,
		newSessionID: logger.GenerateSessionID,
		state:        StateIdle,
		currentStake: cfg.Stakes.Initial,
		themeID:      cfg.DefaultTheme,
	}
}

func (o *orchestrator) RequestSpin(ctx context.Context, stake int) (string, error) {
	return o.requestSpin(ctx, stake, false)
}

// requestSpin runs the Idle -> Validating -> Spinning transition. Auto
// attempts that fail authorization stop the chain instead of emitting a
// rejection.
func (o *orchestrator) requestSpin(ctx context.Context, stake int, viaAuto bool) (string, error) {
	o.mu.Lock()
	if o.shuttingDown {
		o.mu.Unlock()
		return "", domain.ErrShuttingDown
	}
	if o.state.InFlight() {
		o.mu.Unlock()
		// Ignored, not queued. Diagnostic only, no event.
		logger.FromContext(ctx).Debug("spin request ignored, spin in progress")
		return "", domain.ErrSpinInProgress
	}
	o.state = StateValidating
	if stake > 0 {
		o.currentStake = o.economy.ClampStake(stake)
	}
	stake = o.currentStake
	turbo := o.turbo
	themeID := o.themeID
	auto := o.autoSpin
	o.mu.Unlock()

	// The grid is generated before authorization so a generator failure
	// cannot strand deducted energy. Generation does not depend on the
	// deduction in any way.
	grid, err := o.generator.Grid(generator.SpinContext{
		Level:   o.economy.Snapshot().Level,
		ThemeID: themeID,
	})
	if err != nil {
		o.toIdle()
		return "", err
	}

	snapshot, err := o.economy.BeginSpin(ctx, stake)
	if err != nil {
		o.toIdle()
		reason := domain.RejectReasonForError(err)
		if viaAuto {
			o.mu.Lock()
			o.autoSpin = false
			o.mu.Unlock()
			o.publish(ctx, event.NewAutoSpinStoppedEvent(reason))
		} else {
			o.publish(ctx, event.NewSpinRejectedEvent(reason, stake))
		}
		return "", err
	}

	duration := o.cfg.Timing.SpinDuration
	stagger := o.cfg.Timing.ReelStagger
	if turbo {
		duration = o.cfg.Timing.TurboSpinDuration
		stagger = o.cfg.Timing.TurboReelStagger
	}

	now := time.Now()
	sess := &session{
		id:        o.newSessionID(),
		stake:     stake,
		turbo:     turbo,
		auto:      viaAuto || auto,
		themeID:   themeID,
		grid:      grid,
		snapshot:  snapshot,
		startedAt: now,
		settleAt:  now.Add(duration),
	}
	// Columns reveal left to right, the last one exactly at settle.
	// Pacing only; the outcome is already fixed.
	for col := 0; col < domain.GridCols; col++ {
		sess.revealAt[col] = sess.settleAt.Add(-time.Duration(domain.GridCols-1-col) * stagger)
	}

	o.mu.Lock()
	o.state = StateSpinning
	o.session = sess
	o.wg.Add(1)
	o.mu.Unlock()

	// Publish before arming the settle timer so the started event can
	// never trail the settled one.
	ctx = logger.WithSessionID(ctx, sess.id)
	logger.FromContext(ctx).Info("spin started",
		"stake", stake,
		"turbo", turbo,
		"theme", themeID,
		"auto", viaAuto)
	o.publish(ctx, event.NewSpinStartedEvent(sess.id, stake, turbo, sess.auto))

	o.mu.Lock()
	if o.shuttingDown {
		o.mu.Unlock()
		o.resolve(sess.id)
		o.wg.Done()
		return sess.id, nil
	}
	o.settleTimer = time.AfterFunc(duration, func() {
		defer o.wg.Done()
		o.resolve(sess.id)
	})
	o.mu.Unlock()

	return sess.id, nil
}

// resolve runs Spinning -> Resolving -> Settled -> Idle. Called exactly
// once per session, by the settle timer or by Shutdown.
func (o *orchestrator) resolve(sessionID string) {
	o.mu.Lock()
	if o.session == nil || o.session.id != sessionID || o.state != StateSpinning {
		o.mu.Unlock()
		return
	}
	o.state = StateResolving
	sess := o.session
	o.mu.Unlock()

	ctx := logger.WithSessionID(context.Background(), sess.id)
	log := logger.FromContext(ctx)

	wins := o.evaluator.Evaluate(sess.grid, sess.stake)

	theme, ok := o.cfg.ThemeByID(sess.themeID)
	if !ok {
		theme, _ = o.cfg.ThemeByID(o.cfg.DefaultTheme)
	}
	outcome := o.payout.Compose(wins, sess.stake, sess.snapshot, theme)

	// SettleSpin publishes its LevelUp events before the settled event
	// below, preserving the per-spin ordering guarantee.
	_, snapshot := o.economy.SettleSpin(ctx, outcome)

	record := domain.SpinRecord{
		SessionID:   sess.id,
		Outcome:     outcome,
		GridSymbols: sess.gridSymbolIDs(),
		SettledAt:   time.Now(),
	}

	o.mu.Lock()
	o.state = StateSettled
	o.session = nil
	o.settleTimer = nil
	o.lastRecord = &record
	chainAuto := o.autoSpin && !o.shuttingDown
	nextStake := o.currentStake
	o.state = StateIdle
	o.mu.Unlock()

	log.Info("spin settled",
		"payout", outcome.TotalPayout,
		"tier", outcome.Tier,
		"wins", len(outcome.Wins),
		"streak", snapshot.WinStreak)
	o.publish(ctx, event.NewSpinSettledEvent(sess.id, outcome, snapshot, record.GridSymbols))

	if !chainAuto {
		return
	}

	if err := o.economy.CanAffordSpin(nextStake); err != nil {
		o.mu.Lock()
		o.autoSpin = false
		o.mu.Unlock()
		log.Info("auto spin stopped", "reason", domain.RejectReasonForError(err))
		o.publish(ctx, event.NewAutoSpinStoppedEvent(domain.RejectReasonForError(err)))
		return
	}
	o.scheduleAutoSpin()
}

func (o *orchestrator) scheduleAutoSpin() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.autoSpin || o.shuttingDown {
		return
	}
	delay := o.cfg.Timing.AutoSpinDelay
	if o.turbo {
		delay = o.cfg.Timing.TurboAutoSpinDelay
	}
	o.autoTimer = time.AfterFunc(delay, o.autoSpinAttempt)
}

func (o *orchestrator) autoSpinAttempt() {
	o.mu.Lock()
	if !o.autoSpin || o.shuttingDown {
		o.mu.Unlock()
		return
	}
	stake := o.currentStake
	o.mu.Unlock()

	if _, err := o.requestSpin(context.Background(), stake, true); err != nil {
		// ErrSpinInProgress means a manual spin won the race; its
		// settlement continues the chain. Authorization failures have
		// already stopped the chain and published AutoSpinStopped.
		logger.Debug("auto spin attempt not started", "error", err)
	}
}

func (o *orchestrator) SetAutoSpin(ctx context.Context, enabled bool) {
	o.mu.Lock()
	if o.autoSpin == enabled {
		o.mu.Unlock()
		return
	}
	o.autoSpin = enabled

	if enabled {
		start := o.state == StateIdle && !o.shuttingDown
		o.mu.Unlock()
		logger.FromContext(ctx).Info("auto spin enabled")
		if start {
			go o.autoSpinAttempt()
		}
		return
	}

	// Cancel a pending scheduled spin; cancelling is idempotent. An
	// in-flight spin settles normally but will not chain.
	if o.autoTimer != nil {
		o.autoTimer.Stop()
		o.autoTimer = nil
	}
	o.mu.Unlock()
	logger.FromContext(ctx).Info("auto spin disabled")
	o.publish(ctx, event.NewAutoSpinStoppedEvent(domain.ReasonDisabled))
}

func (o *orchestrator) SetTurbo(ctx context.Context, enabled bool) bool {
	o.mu.Lock()
	o.turbo = enabled
	o.mu.Unlock()
	logger.FromContext(ctx).Info("turbo set", "enabled", enabled)
	return enabled
}

func (o *orchestrator) AdjustStake(ctx context.Context, delta int) int {
	o.mu.Lock()
	o.currentStake = o.economy.ClampStake(o.currentStake + delta)
	stake := o.currentStake
	o.mu.Unlock()
	logger.FromContext(ctx).Debug("stake adjusted", "delta", delta, "stake", stake)
	return stake
}

func (o *orchestrator) SetTheme(ctx context.Context, themeID string) error {
	if _, ok := o.cfg.ThemeByID(themeID); !ok {
		return domain.ErrUnknownTheme
	}
	o.mu.Lock()
	o.themeID = themeID
	o.mu.Unlock()
	logger.FromContext(ctx).Info("theme set", "theme", themeID)
	return nil
}

func (o *orchestrator) Status() Status {
	o.mu.Lock()
	status := Status{
		State:       o.state,
		Stake:       o.currentStake,
		AutoSpin:    o.autoSpin,
		Turbo:       o.turbo,
		ThemeID:     o.themeID,
		LastOutcome: o.lastRecord,
	}
	if o.session != nil {
		status.Session = o.session.view()
	}
	o.mu.Unlock()

	status.Economy = o.economy.Snapshot()
	return status
}

// Shutdown cancels pending auto-spins, settles an in-flight spin
// immediately (the outcome is already determined) and waits for
// background work, bounded by ctx.
func (o *orchestrator) Shutdown(ctx context.Context) error {
	o.mu.Lock()
	o.shuttingDown = true
	if o.autoTimer != nil {
		o.autoTimer.Stop()
		o.autoTimer = nil
	}
	var pending string
	if o.settleTimer != nil && o.settleTimer.Stop() {
		o.wg.Done()
		pending = o.session.id
	}
	o.mu.Unlock()

	if pending != "" {
		o.resolve(pending)
	}

	done := make(chan struct{})
	go func() {
		o.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (o *orchestrator) toIdle() {
	o.mu.Lock()
	o.state = StateIdle
	o.mu.Unlock()
}

func (o *orchestrator) publish(ctx context.Context, evt event.Event) {
	if err := o.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("failed to publish event",
			"event_type", evt.Type,
			"error", err)
	}
}
