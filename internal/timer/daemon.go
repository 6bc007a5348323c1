package timer

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"workday/internal/config"
	"workday/internal/domain"
	"workday/internal/ports"
)

// StartOptions describe the session a new daemon should begin with.
type StartOptions struct {
	DayID            int64
	TaskID           *int64
	StartingPomodoro int
}

// Daemon owns the countdown. It runs in a detached process, ticks once a
// second, mirrors its state to the state file after every tick, and
// reacts to control signals from the CLI. All storage and notification
// failures are logged and the countdown keeps going; the timer must
// never die because the database or Telegram hiccuped.
type Daemon struct {
	paths    config.Paths
	cfg      config.TimerConfig
	storage  ports.Storage
	notifier ports.Notifier
	logger   *log.Logger

	state             *domain.TimerState
	breakCounter      int
	currentPomodoroID int64
	taskName          string
}

// NewDaemon creates a daemon.
func NewDaemon(paths config.Paths, cfg config.TimerConfig, storage ports.Storage, notifier ports.Notifier, logger *log.Logger) *Daemon {
	return &Daemon{
		paths:    paths,
		cfg:      cfg,
		storage:  storage,
		notifier: notifier,
		logger:   logger,
	}
}

// Run starts the first focus session and loops until a stop signal or
// context cancellation arrives.
func (d *Daemon) Run(ctx context.Context, opts StartOptions) error {
	if err := d.begin(ctx, opts); err != nil {
		return err
	}

	sigCh := make(chan os.Signal, 4)
	notifyControlSignals(sigCh)
	defer signal.Stop(sigCh)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return d.finalize()
		case sig := <-sigCh:
			if isStopSignal(sig) {
				d.logger.Printf("received %v, stopping", sig)
				return d.finalize()
			}
			d.handleControlSignal(sig)
		case <-ticker.C:
			if err := d.safeTick(ctx); err != nil {
				d.logger.Printf("tick: %v", err)
			}
		}
	}
}

// begin validates the options and starts the first focus phase.
func (d *Daemon) begin(ctx context.Context, opts StartOptions) error {
	if opts.DayID <= 0 {
		return fmt.Errorf("invalid day id %d", opts.DayID)
	}
	cycle := opts.StartingPomodoro
	if cycle < 1 {
		cycle = 1
	}

	if opts.TaskID != nil {
		task, err := d.storage.Tasks().FindByID(ctx, *opts.TaskID)
		if err != nil {
			d.logger.Printf("failed to load task %d: %v", *opts.TaskID, err)
		} else if task != nil {
			d.taskName = task.Description
		}
	}

	// Resuming a day mid-way keeps the break rotation aligned with the
	// sessions already completed.
	if d.cfg.LongBreakAfter > 0 {
		d.breakCounter = (cycle - 1) % d.cfg.LongBreakAfter
	}

	d.state = &domain.TimerState{
		DayID:  opts.DayID,
		TaskID: opts.TaskID,
	}
	d.logger.Printf("daemon started: day=%d pomodoro=%d", opts.DayID, cycle)
	return d.beginFocus(ctx, cycle)
}

// safeTick keeps the loop alive through a panicking tick. An exited
// daemon leaves a stale marker behind, so the loop logs and carries on.
func (d *Daemon) safeTick(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tick panic: %v", r)
		}
	}()
	return d.tick(ctx)
}

// tick advances the countdown by one second. Order matters: an external
// skip is folded in first, a paused timer only re-persists, and a phase
// whose remaining time reaches zero transitions within the same tick.
// Skipping is therefore indistinguishable from natural expiry.
func (d *Daemon) tick(ctx context.Context) error {
	d.applyExternalSkip()

	if d.state.Phase == domain.PhasePaused {
		return d.persist()
	}

	if d.state.TimeRemainingSeconds > 0 {
		d.state.TimeRemainingSeconds--
	}
	if d.state.TimeRemainingSeconds > 0 {
		return d.persist()
	}

	if d.state.Phase == domain.PhaseFocus {
		return d.finishFocus(ctx)
	}
	return d.finishBreak(ctx)
}

// applyExternalSkip folds in a skip request. The control client signals
// a skip by forcing the remaining seconds in the state file to zero.
func (d *Daemon) applyExternalSkip() {
	if d.state.TimeRemainingSeconds == 0 {
		return
	}
	onDisk, err := ReadState(d.paths.StateFile)
	if err != nil || onDisk == nil {
		return
	}
	if onDisk.TimeRemainingSeconds == 0 {
		d.logger.Printf("skip requested, ending %s phase", d.state.Phase)
		d.state.TimeRemainingSeconds = 0
	}
}

// beginFocus opens a pomodoro record and enters the focus phase.
func (d *Daemon) beginFocus(ctx context.Context, cycle int) error {
	p := domain.NewPomodoro(d.state.DayID, d.state.TaskID, d.cfg.FocusMinutes)
	if err := d.storage.Pomodoros().Create(ctx, p); err != nil {
		d.logger.Printf("failed to record pomodoro: %v", err)
		d.currentPomodoroID = 0
	} else {
		d.currentPomodoroID = p.ID
	}

	now := time.Now()
	d.state.Phase = domain.PhaseFocus
	d.state.BreakKind = nil
	d.state.CurrentPomodoro = cycle
	d.state.TimeRemainingSeconds = d.cfg.FocusMinutes * 60
	d.state.StartedAt = &now

	if err := d.persist(); err != nil {
		return err
	}
	if err := d.notifier.FocusStart(cycle, d.taskName); err != nil {
		d.logger.Printf("notify: %v", err)
	}
	return nil
}

// finishFocus records the completed session and starts the next break.
func (d *Daemon) finishFocus(ctx context.Context) error {
	cycle := d.state.CurrentPomodoro
	if d.currentPomodoroID != 0 {
		if err := d.storage.Pomodoros().Complete(ctx, d.currentPomodoroID); err != nil {
			d.logger.Printf("failed to complete pomodoro record: %v", err)
		}
	}
	if err := d.storage.Days().IncrementActualPomodoros(ctx, d.state.DayID); err != nil {
		d.logger.Printf("failed to bump day counter: %v", err)
	}
	if err := d.notifier.FocusComplete(cycle); err != nil {
		d.logger.Printf("notify: %v", err)
	}

	d.breakCounter++
	kind, minutes := d.nextBreak()
	if err := d.storage.Days().IncrementBreakCounter(ctx, d.state.DayID, kind); err != nil {
		d.logger.Printf("failed to bump break counter: %v", err)
	}

	now := time.Now()
	d.state.Phase = domain.PhaseBreak
	d.state.BreakKind = &kind
	d.state.TimeRemainingSeconds = minutes * 60
	d.state.StartedAt = &now

	d.logger.Printf("pomodoro %d complete, %s break (%dm)", cycle, kind, minutes)
	if err := d.persist(); err != nil {
		return err
	}
	if err := d.notifier.BreakStart(kind, minutes); err != nil {
		d.logger.Printf("notify: %v", err)
	}
	return nil
}

// finishBreak ends the break and begins the next focus session.
func (d *Daemon) finishBreak(ctx context.Context) error {
	if err := d.notifier.BreakEnd(); err != nil {
		d.logger.Printf("notify: %v", err)
	}
	return d.beginFocus(ctx, d.state.CurrentPomodoro+1)
}

// nextBreak picks the break after a completed focus session. Every
// LongBreakAfter-th session earns a long break and resets the rotation;
// otherwise odd sessions get an email break and even ones a rest break.
func (d *Daemon) nextBreak() (domain.BreakKind, int) {
	if d.cfg.LongBreakAfter > 0 && d.breakCounter >= d.cfg.LongBreakAfter {
		d.breakCounter = 0
		return domain.BreakLong, d.cfg.LongBreakMinutes
	}
	if d.breakCounter%2 == 1 {
		return domain.BreakEmail, d.cfg.ShortBreakMinutes
	}
	return domain.BreakRest, d.cfg.ShortBreakMinutes
}

// handleControlSignal applies a pause or resume request.
func (d *Daemon) handleControlSignal(sig os.Signal) {
	switch sig {
	case sigPause:
		if d.state.Phase == domain.PhasePaused || d.state.Phase == domain.PhaseStopped {
			return
		}
		d.state.Pause()
		d.logger.Printf("paused with %s remaining", FormatRemaining(d.state.TimeRemainingSeconds))
		if err := d.persist(); err != nil {
			d.logger.Printf("persist: %v", err)
		}
		if err := d.notifier.TimerPaused(); err != nil {
			d.logger.Printf("notify: %v", err)
		}
	case sigResume:
		if d.state.Phase != domain.PhasePaused {
			return
		}
		d.state.Resume()
		d.logger.Printf("resumed with %s remaining", FormatRemaining(d.state.TimeRemainingSeconds))
		if err := d.persist(); err != nil {
			d.logger.Printf("persist: %v", err)
		}
		if err := d.notifier.TimerResumed(FormatRemaining(d.state.TimeRemainingSeconds)); err != nil {
			d.logger.Printf("notify: %v", err)
		}
	}
}

// finalize marks the timer stopped and releases the PID file. An open
// pomodoro record is left incomplete on purpose; interrupted sessions do
// not count.
func (d *Daemon) finalize() error {
	d.state.Phase = domain.PhaseStopped
	if err := d.persist(); err != nil {
		d.logger.Printf("failed to persist final state: %v", err)
	}
	if err := ClearPID(d.paths.PIDFile); err != nil {
		d.logger.Printf("failed to clear pid file: %v", err)
	}
	d.logger.Printf("daemon stopped")
	return nil
}

// persist mirrors the in-memory state to the state file.
func (d *Daemon) persist() error {
	return WriteState(d.paths.StateFile, d.state)
}

// FormatRemaining renders a second count as MM:SS.
func FormatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
