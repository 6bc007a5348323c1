// Package timer implements the detached timer daemon and its control
// client. The two sides share no memory: the daemon owns the countdown
// and mirrors it to a JSON state file after every tick, the client reads
// that file and steers the daemon with OS signals. The one exception is
// skip, where the client forces the remaining seconds in the file to
// zero and the daemon picks the change up on its next tick.
package timer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"workday/internal/domain"
)

// ReadState loads the timer state file. A missing or unparseable file
// reads as nil so that a crashed daemon's leftovers never wedge the CLI.
func ReadState(path string) (*domain.TimerState, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var state domain.TimerState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, nil
	}
	return &state, nil
}

// WriteState persists the timer state atomically. The state is written
// to a temp file in the same directory and renamed over the target, so a
// reader never observes a half-written file.
func WriteState(path string, state *domain.TimerState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}

// ClearState removes the state file. Absence is not an error.
func ClearState(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove state file: %w", err)
	}
	return nil
}
