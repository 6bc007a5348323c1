package timer

import (
	"context"
	"io"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"workday/internal/adapters/storage"
	"workday/internal/config"
	"workday/internal/domain"
	"workday/internal/ports"
)

// eventRecorder captures notification calls in order.
type eventRecorder struct {
	events []string
}

var _ ports.Notifier = (*eventRecorder)(nil)

func (r *eventRecorder) record(e string) error {
	r.events = append(r.events, e)
	return nil
}

func (r *eventRecorder) FocusStart(cycle int, taskName string) error {
	return r.record("focus_start")
}

func (r *eventRecorder) FocusComplete(cycle int) error { return r.record("focus_complete") }

func (r *eventRecorder) BreakStart(kind domain.BreakKind, minutes int) error {
	return r.record("break_start:" + string(kind))
}

func (r *eventRecorder) BreakEnd() error { return r.record("break_end") }

func (r *eventRecorder) DayStart(int, []string) error { return r.record("day_start") }

func (r *eventRecorder) DayComplete(int, int, int, int) error {
	return r.record("day_complete")
}

func (r *eventRecorder) TimerPaused() error { return r.record("paused") }

func (r *eventRecorder) TimerResumed(string) error { return r.record("resumed") }

func newTestDaemon(t *testing.T, cfg config.TimerConfig) (*Daemon, *eventRecorder, ports.Storage, int64) {
	t.Helper()

	store, err := storage.NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	day, err := store.Days().GetOrCreate(context.Background(), "2024-01-05")
	require.NoError(t, err)

	rec := &eventRecorder{}
	d := NewDaemon(config.NewPaths(t.TempDir()), cfg, store, rec, log.New(io.Discard, "", 0))
	return d, rec, store, day.ID
}

// advancePhase ticks until the daemon leaves the given phase.
func advancePhase(t *testing.T, d *Daemon) {
	t.Helper()
	ctx := context.Background()
	phase := d.state.Phase
	kind := d.state.BreakKind
	for i := 0; i < 10000; i++ {
		require.NoError(t, d.tick(ctx))
		if d.state.Phase != phase || d.state.BreakKind != kind {
			return
		}
	}
	t.Fatal("daemon never left the phase")
}

func TestDaemon_Countdown(t *testing.T) {
	cfg := config.TimerConfig{FocusMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 2, LongBreakAfter: 4}
	d, rec, store, dayID := newTestDaemon(t, cfg)
	ctx := context.Background()

	require.NoError(t, d.begin(ctx, StartOptions{DayID: dayID, StartingPomodoro: 1}))
	require.Equal(t, domain.PhaseFocus, d.state.Phase)
	require.Equal(t, 60, d.state.TimeRemainingSeconds)
	require.Equal(t, []string{"focus_start"}, rec.events)

	// Exactly one second per tick, persisted each time.
	for i := 0; i < 59; i++ {
		require.NoError(t, d.tick(ctx))
	}
	require.Equal(t, domain.PhaseFocus, d.state.Phase)
	require.Equal(t, 1, d.state.TimeRemainingSeconds)

	onDisk, err := ReadState(d.paths.StateFile)
	require.NoError(t, err)
	require.Equal(t, 1, onDisk.TimeRemainingSeconds)

	// The 60th tick completes the pomodoro and starts the first break.
	require.NoError(t, d.tick(ctx))
	require.Equal(t, domain.PhaseBreak, d.state.Phase)
	require.NotNil(t, d.state.BreakKind)
	require.Equal(t, domain.BreakEmail, *d.state.BreakKind)
	require.Equal(t, 60, d.state.TimeRemainingSeconds)

	day, err := store.Days().FindByID(ctx, dayID)
	require.NoError(t, err)
	require.Equal(t, 1, day.ActualPomodoros)
	require.Equal(t, 1, day.EmailBreaks)

	count, err := store.Pomodoros().CountCompleted(ctx, dayID)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	require.Equal(t, []string{"focus_start", "focus_complete", "break_start:email"}, rec.events)
}

func TestDaemon_BreakRotation(t *testing.T) {
	cfg := config.TimerConfig{FocusMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 1, LongBreakAfter: 4}
	d, _, store, dayID := newTestDaemon(t, cfg)
	ctx := context.Background()

	require.NoError(t, d.begin(ctx, StartOptions{DayID: dayID, StartingPomodoro: 1}))

	var kinds []domain.BreakKind
	for len(kinds) < 5 {
		advancePhase(t, d) // focus -> break
		require.Equal(t, domain.PhaseBreak, d.state.Phase)
		kinds = append(kinds, *d.state.BreakKind)
		advancePhase(t, d) // break -> next focus
		require.Equal(t, domain.PhaseFocus, d.state.Phase)
	}

	// Email/rest alternate; every fourth session earns the long break and
	// resets the rotation.
	want := []domain.BreakKind{
		domain.BreakEmail, domain.BreakRest, domain.BreakEmail, domain.BreakLong, domain.BreakEmail,
	}
	require.Equal(t, want, kinds)

	day, err := store.Days().FindByID(ctx, dayID)
	require.NoError(t, err)
	require.Equal(t, 5, day.ActualPomodoros)
	require.Equal(t, 3, day.EmailBreaks)
	require.Equal(t, 1, day.RestBreaks) // long breaks are not counted
}

func TestDaemon_ResumedDayKeepsRotation(t *testing.T) {
	cfg := config.TimerConfig{FocusMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 1, LongBreakAfter: 4}
	d, _, _, dayID := newTestDaemon(t, cfg)
	ctx := context.Background()

	// Three sessions already done today; the fourth earns the long break.
	require.NoError(t, d.begin(ctx, StartOptions{DayID: dayID, StartingPomodoro: 4}))
	require.Equal(t, 4, d.state.CurrentPomodoro)

	advancePhase(t, d)
	require.Equal(t, domain.BreakLong, *d.state.BreakKind)
}

func TestDaemon_SkipActsLikeExpiry(t *testing.T) {
	cfg := config.TimerConfig{FocusMinutes: 25, ShortBreakMinutes: 5, LongBreakMinutes: 15, LongBreakAfter: 4}
	d, _, store, dayID := newTestDaemon(t, cfg)
	ctx := context.Background()

	require.NoError(t, d.begin(ctx, StartOptions{DayID: dayID, StartingPomodoro: 1}))
	require.NoError(t, d.tick(ctx))
	require.Equal(t, 25*60-1, d.state.TimeRemainingSeconds)

	// A control client zeroes the remaining time in the state file.
	client := NewClient(d.paths)
	require.NoError(t, WritePID(d.paths.PIDFile, os.Getpid()))
	_, err := client.Skip()
	require.NoError(t, err)

	// The next tick folds the skip in and transitions, same as expiry.
	require.NoError(t, d.tick(ctx))
	require.Equal(t, domain.PhaseBreak, d.state.Phase)
	require.Equal(t, domain.BreakEmail, *d.state.BreakKind)

	day, err := store.Days().FindByID(ctx, dayID)
	require.NoError(t, err)
	require.Equal(t, 1, day.ActualPomodoros)

	// No double transition: the break now counts down normally.
	require.NoError(t, d.tick(ctx))
	require.Equal(t, domain.PhaseBreak, d.state.Phase)
	require.Equal(t, 5*60-1, d.state.TimeRemainingSeconds)
}

func TestDaemon_PauseHoldsCountdown(t *testing.T) {
	cfg := config.TimerConfig{FocusMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 1, LongBreakAfter: 4}
	d, rec, _, dayID := newTestDaemon(t, cfg)
	ctx := context.Background()

	require.NoError(t, d.begin(ctx, StartOptions{DayID: dayID, StartingPomodoro: 1}))
	require.NoError(t, d.tick(ctx))
	remaining := d.state.TimeRemainingSeconds

	d.handleControlSignal(sigPause)
	require.Equal(t, domain.PhasePaused, d.state.Phase)

	for i := 0; i < 5; i++ {
		require.NoError(t, d.tick(ctx))
	}
	require.Equal(t, remaining, d.state.TimeRemainingSeconds)

	// Paused ticks still persist, so status stays readable.
	onDisk, err := ReadState(d.paths.StateFile)
	require.NoError(t, err)
	require.Equal(t, domain.PhasePaused, onDisk.Phase)

	d.handleControlSignal(sigResume)
	require.Equal(t, domain.PhaseFocus, d.state.Phase)
	require.NoError(t, d.tick(ctx))
	require.Equal(t, remaining-1, d.state.TimeRemainingSeconds)

	require.Contains(t, rec.events, "paused")
	require.Contains(t, rec.events, "resumed")
}

func TestDaemon_PausedBreakResumesAsBreak(t *testing.T) {
	cfg := config.TimerConfig{FocusMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 1, LongBreakAfter: 4}
	d, _, _, dayID := newTestDaemon(t, cfg)
	ctx := context.Background()

	require.NoError(t, d.begin(ctx, StartOptions{DayID: dayID, StartingPomodoro: 1}))
	advancePhase(t, d)
	require.Equal(t, domain.PhaseBreak, d.state.Phase)

	d.handleControlSignal(sigPause)
	require.Equal(t, domain.PhasePaused, d.state.Phase)
	require.NotNil(t, d.state.BreakKind)

	d.handleControlSignal(sigResume)
	require.Equal(t, domain.PhaseBreak, d.state.Phase)
}

// TestDaemon_FullCycle exercises the complete transition chain with a
// long-break threshold of two: focus, email break, focus, long break,
// with both sessions recorded.
func TestDaemon_FullCycle(t *testing.T) {
	cfg := config.TimerConfig{FocusMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 1, LongBreakAfter: 2}
	d, rec, store, dayID := newTestDaemon(t, cfg)
	ctx := context.Background()

	require.NoError(t, d.begin(ctx, StartOptions{DayID: dayID, StartingPomodoro: 1}))

	advancePhase(t, d)
	require.Equal(t, domain.BreakEmail, *d.state.BreakKind)
	advancePhase(t, d)
	require.Equal(t, 2, d.state.CurrentPomodoro)
	advancePhase(t, d)
	require.Equal(t, domain.BreakLong, *d.state.BreakKind)

	day, err := store.Days().FindByID(ctx, dayID)
	require.NoError(t, err)
	require.Equal(t, 2, day.ActualPomodoros)
	require.Equal(t, 1, day.EmailBreaks)
	require.Equal(t, 0, day.RestBreaks)

	want := []string{
		"focus_start",
		"focus_complete", "break_start:email",
		"break_end", "focus_start",
		"focus_complete", "break_start:long",
	}
	require.Equal(t, want, rec.events)
}

func TestDaemon_FinalizeReleasesMarker(t *testing.T) {
	cfg := config.TimerConfig{FocusMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 1, LongBreakAfter: 4}
	d, _, _, dayID := newTestDaemon(t, cfg)
	ctx := context.Background()

	require.NoError(t, d.begin(ctx, StartOptions{DayID: dayID, StartingPomodoro: 1}))
	require.NoError(t, WritePID(d.paths.PIDFile, os.Getpid()))

	require.NoError(t, d.finalize())

	onDisk, err := ReadState(d.paths.StateFile)
	require.NoError(t, err)
	require.Equal(t, domain.PhaseStopped, onDisk.Phase)
	require.False(t, onDisk.Active())

	_, err = os.Stat(d.paths.PIDFile)
	require.True(t, os.IsNotExist(err))
}
