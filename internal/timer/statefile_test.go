package timer

import (
	"os"
	"path/filepath"
	"testing"

	"workday/internal/domain"
)

func TestStateFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timer.state")

	kind := domain.BreakEmail
	state := &domain.TimerState{
		Phase:                domain.PhaseBreak,
		BreakKind:            &kind,
		CurrentPomodoro:      2,
		TimeRemainingSeconds: 180,
		DayID:                5,
	}
	if err := WriteState(path, state); err != nil {
		t.Fatalf("WriteState() error = %v", err)
	}

	got, err := ReadState(path)
	if err != nil {
		t.Fatalf("ReadState() error = %v", err)
	}
	if got == nil {
		t.Fatal("ReadState() returned nil")
	}
	if got.Phase != domain.PhaseBreak || got.CurrentPomodoro != 2 || got.TimeRemainingSeconds != 180 {
		t.Errorf("ReadState() = %+v, want %+v", got, state)
	}
	if got.BreakKind == nil || *got.BreakKind != domain.BreakEmail {
		t.Errorf("BreakKind = %v, want %v", got.BreakKind, domain.BreakEmail)
	}
}

func TestStateFile_MissingReadsNil(t *testing.T) {
	got, err := ReadState(filepath.Join(t.TempDir(), "absent.state"))
	if err != nil {
		t.Fatalf("ReadState() error = %v", err)
	}
	if got != nil {
		t.Errorf("ReadState() = %+v, want nil", got)
	}
}

func TestStateFile_CorruptReadsNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timer.state")
	if err := os.WriteFile(path, []byte(`{"phase": "focu`), 0600); err != nil {
		t.Fatal(err)
	}

	got, err := ReadState(path)
	if err != nil {
		t.Fatalf("ReadState() error = %v", err)
	}
	if got != nil {
		t.Errorf("corrupt state should read as nil, got %+v", got)
	}
}

func TestStateFile_WriteLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timer.state")
	if err := WriteState(path, &domain.TimerState{Phase: domain.PhaseFocus}); err != nil {
		t.Fatalf("WriteState() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "timer.state" {
		t.Errorf("directory should contain only the state file, got %v", entries)
	}
}

func TestClearState_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timer.state")
	if err := ClearState(path); err != nil {
		t.Errorf("ClearState() of a missing file error = %v", err)
	}

	if err := WriteState(path, &domain.TimerState{Phase: domain.PhaseFocus}); err != nil {
		t.Fatal(err)
	}
	if err := ClearState(path); err != nil {
		t.Errorf("ClearState() error = %v", err)
	}
	if err := ClearState(path); err != nil {
		t.Errorf("second ClearState() error = %v", err)
	}
}

func TestPIDFile(t *testing.T) {
	t.Run("missing reads zero", func(t *testing.T) {
		pid, err := ReadPID(filepath.Join(t.TempDir(), "timer.pid"))
		if err != nil {
			t.Fatalf("ReadPID() error = %v", err)
		}
		if pid != 0 {
			t.Errorf("ReadPID() = %d, want 0", pid)
		}
	})

	t.Run("live process reads back", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "timer.pid")
		if err := WritePID(path, os.Getpid()); err != nil {
			t.Fatalf("WritePID() error = %v", err)
		}
		pid, err := ReadPID(path)
		if err != nil {
			t.Fatalf("ReadPID() error = %v", err)
		}
		if pid != os.Getpid() {
			t.Errorf("ReadPID() = %d, want %d", pid, os.Getpid())
		}
	})

	t.Run("stale marker self-heals", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "timer.pid")
		// Above any real pid_max, so the process cannot exist.
		if err := WritePID(path, 99999999); err != nil {
			t.Fatalf("WritePID() error = %v", err)
		}
		pid, err := ReadPID(path)
		if err != nil {
			t.Fatalf("ReadPID() error = %v", err)
		}
		if pid != 0 {
			t.Errorf("ReadPID() = %d, want 0 for a dead process", pid)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("stale pid file should have been removed")
		}
	})

	t.Run("garbled marker self-heals", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "timer.pid")
		if err := os.WriteFile(path, []byte("not a pid"), 0600); err != nil {
			t.Fatal(err)
		}
		pid, err := ReadPID(path)
		if err != nil {
			t.Fatalf("ReadPID() error = %v", err)
		}
		if pid != 0 {
			t.Errorf("ReadPID() = %d, want 0", pid)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("garbled pid file should have been removed")
		}
	})
}

func TestProcessAlive(t *testing.T) {
	if !processAlive(os.Getpid()) {
		t.Error("processAlive() = false for the current process")
	}
	if processAlive(99999999) {
		t.Error("processAlive() = true for an impossible pid")
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{1500, "25:00"},
		{-5, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatRemaining(tt.seconds); got != tt.want {
			t.Errorf("FormatRemaining(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
