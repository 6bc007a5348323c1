package timer

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"workday/internal/config"
	"workday/internal/domain"
)

func TestClient_StatusNotRunning(t *testing.T) {
	client := NewClient(config.NewPaths(t.TempDir()))

	state, err := client.Status()
	require.NoError(t, err)
	require.Nil(t, state)
}

func TestClient_StatusHealsOrphanState(t *testing.T) {
	paths := config.NewPaths(t.TempDir())
	client := NewClient(paths)

	// State file from a crashed daemon, no live process behind it.
	require.NoError(t, WriteState(paths.StateFile, &domain.TimerState{
		Phase:                domain.PhaseFocus,
		CurrentPomodoro:      2,
		TimeRemainingSeconds: 300,
		DayID:                1,
	}))

	state, err := client.Status()
	require.NoError(t, err)
	require.Nil(t, state)

	_, err = os.Stat(paths.StateFile)
	require.True(t, os.IsNotExist(err), "orphan state file should be removed")
}

func TestClient_StatusWithLiveDaemon(t *testing.T) {
	paths := config.NewPaths(t.TempDir())
	client := NewClient(paths)

	require.NoError(t, WriteState(paths.StateFile, &domain.TimerState{
		Phase:                domain.PhaseFocus,
		CurrentPomodoro:      1,
		TimeRemainingSeconds: 60,
		DayID:                1,
	}))
	require.NoError(t, WritePID(paths.PIDFile, os.Getpid()))

	state, err := client.Status()
	require.NoError(t, err)
	require.NotNil(t, state)
	require.Equal(t, domain.PhaseFocus, state.Phase)
	require.Equal(t, 60, state.TimeRemainingSeconds)
}

func TestClient_StartRefusesSecondDaemon(t *testing.T) {
	paths := config.NewPaths(t.TempDir())
	client := NewClient(paths)

	require.NoError(t, WritePID(paths.PIDFile, os.Getpid()))

	err := client.Start(StartOptions{DayID: 1, StartingPomodoro: 1})
	require.ErrorIs(t, err, domain.ErrAlreadyRunning)
}

func TestClient_ControlsRequireRunningDaemon(t *testing.T) {
	client := NewClient(config.NewPaths(t.TempDir()))

	require.ErrorIs(t, client.Stop(), domain.ErrNotRunning)
	require.ErrorIs(t, client.Pause(), domain.ErrNotRunning)
	require.ErrorIs(t, client.Resume(), domain.ErrNotRunning)

	_, err := client.Skip()
	require.ErrorIs(t, err, domain.ErrNotRunning)
}

func TestClient_PauseResumePreconditions(t *testing.T) {
	paths := config.NewPaths(t.TempDir())
	client := NewClient(paths)
	require.NoError(t, WritePID(paths.PIDFile, os.Getpid()))

	require.NoError(t, WriteState(paths.StateFile, &domain.TimerState{
		Phase: domain.PhasePaused, DayID: 1, TimeRemainingSeconds: 10,
	}))
	require.ErrorIs(t, client.Pause(), ErrAlreadyPaused)

	require.NoError(t, WriteState(paths.StateFile, &domain.TimerState{
		Phase: domain.PhaseFocus, DayID: 1, TimeRemainingSeconds: 10,
	}))
	require.ErrorIs(t, client.Resume(), ErrNotPaused)
}

func TestClient_SkipZeroesRemaining(t *testing.T) {
	paths := config.NewPaths(t.TempDir())
	client := NewClient(paths)
	require.NoError(t, WritePID(paths.PIDFile, os.Getpid()))

	require.NoError(t, WriteState(paths.StateFile, &domain.TimerState{
		Phase: domain.PhaseFocus, DayID: 1, CurrentPomodoro: 1, TimeRemainingSeconds: 900,
	}))

	state, err := client.Skip()
	require.NoError(t, err)
	require.Equal(t, 0, state.TimeRemainingSeconds)

	onDisk, err := ReadState(paths.StateFile)
	require.NoError(t, err)
	require.Equal(t, 0, onDisk.TimeRemainingSeconds)
	require.Equal(t, domain.PhaseFocus, onDisk.Phase, "skip must not change the phase itself")
}
