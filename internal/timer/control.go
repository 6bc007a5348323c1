package timer

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"time"

	"workday/internal/config"
	"workday/internal/domain"
)

// Stop waits for the daemon to exit before giving up.
const (
	stopPollAttempts = 10
	stopPollInterval = 100 * time.Millisecond
)

// ErrAlreadyPaused and ErrNotPaused guard the pause and resume commands.
var (
	ErrAlreadyPaused = errors.New("timer is already paused")
	ErrNotPaused     = errors.New("timer is not paused")
)

// Client steers the daemon from the CLI process. It spawns the daemon as
// a detached re-exec of the current binary, reads its state file, and
// controls it with signals.
type Client struct {
	paths config.Paths
}

// NewClient creates a control client.
func NewClient(paths config.Paths) *Client {
	return &Client{paths: paths}
}

// Running returns the live daemon's PID, or 0 if none is running. Stale
// PID files from a crashed daemon are cleaned up along the way.
func (c *Client) Running() (int, error) {
	return ReadPID(c.paths.PIDFile)
}

// Start spawns a detached daemon for the given session. Exactly one
// daemon may run at a time.
func (c *Client) Start(opts StartOptions) error {
	pid, err := ReadPID(c.paths.PIDFile)
	if err != nil {
		return err
	}
	if pid != 0 {
		return domain.ErrAlreadyRunning
	}

	// Leftover state from a previous run must not shadow the new session.
	if err := ClearState(c.paths.StateFile); err != nil {
		return err
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to resolve executable: %w", err)
	}

	args := []string{
		"timer-daemon",
		"--day", strconv.FormatInt(opts.DayID, 10),
		"--cycle", strconv.Itoa(opts.StartingPomodoro),
	}
	if opts.TaskID != nil {
		args = append(args, "--task", strconv.FormatInt(*opts.TaskID, 10))
	}

	cmd := exec.Command(exe, args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	configureDaemonProc(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start timer daemon: %w", err)
	}
	// The child is already ticking before the marker lands; a status
	// racing this write discards the state file, and the daemon's next
	// tick rewrites it.
	if err := WritePID(c.paths.PIDFile, cmd.Process.Pid); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// Stop asks the daemon to shut down and waits briefly for it to exit.
func (c *Client) Stop() error {
	pid, err := ReadPID(c.paths.PIDFile)
	if err != nil {
		return err
	}
	if pid == 0 {
		return domain.ErrNotRunning
	}

	if err := stopProcess(pid); err != nil {
		return fmt.Errorf("failed to signal daemon: %w", err)
	}

	for i := 0; i < stopPollAttempts; i++ {
		if !processAlive(pid) {
			return ClearPID(c.paths.PIDFile)
		}
		time.Sleep(stopPollInterval)
	}
	// Death not confirmed within the window; the daemon clears its own
	// marker on exit.
	return nil
}

// Pause suspends the countdown.
func (c *Client) Pause() error {
	pid, state, err := c.liveState()
	if err != nil {
		return err
	}
	if state.Phase == domain.PhasePaused {
		return ErrAlreadyPaused
	}
	return sendSignal(pid, sigPause)
}

// Resume restarts a paused countdown.
func (c *Client) Resume() error {
	pid, state, err := c.liveState()
	if err != nil {
		return err
	}
	if state.Phase != domain.PhasePaused {
		return ErrNotPaused
	}
	return sendSignal(pid, sigResume)
}

// Skip forces the current phase to end. The remaining seconds in the
// state file are zeroed; the daemon folds the change in on its next tick
// and transitions exactly as if the phase had run out naturally.
func (c *Client) Skip() (*domain.TimerState, error) {
	_, state, err := c.liveState()
	if err != nil {
		return nil, err
	}
	state.TimeRemainingSeconds = 0
	if err := WriteState(c.paths.StateFile, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Status returns the current timer state, or nil when no timer is
// running. A state file left behind by a crashed daemon is removed here,
// so stale status heals itself on the first look.
func (c *Client) Status() (*domain.TimerState, error) {
	state, err := ReadState(c.paths.StateFile)
	if err != nil {
		return nil, err
	}
	if !state.Active() {
		return nil, nil
	}

	pid, err := ReadPID(c.paths.PIDFile)
	if err != nil {
		return nil, err
	}
	if pid == 0 {
		if err := ClearState(c.paths.StateFile); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return state, nil
}

// liveState returns the daemon PID and state, failing with ErrNotRunning
// when either is missing.
func (c *Client) liveState() (int, *domain.TimerState, error) {
	pid, err := ReadPID(c.paths.PIDFile)
	if err != nil {
		return 0, nil, err
	}
	if pid == 0 {
		return 0, nil, domain.ErrNotRunning
	}
	state, err := ReadState(c.paths.StateFile)
	if err != nil {
		return 0, nil, err
	}
	if !state.Active() {
		return 0, nil, domain.ErrNotRunning
	}
	return pid, state, nil
}
