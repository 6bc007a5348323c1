package notification

import (
	"errors"
	"testing"

	"workday/internal/config"
	"workday/internal/domain"
	"workday/internal/ports"
)

type countingNotifier struct {
	calls int
	err   error
}

var _ ports.Notifier = (*countingNotifier)(nil)

func (n *countingNotifier) hit() error { n.calls++; return n.err }

func (n *countingNotifier) FocusStart(int, string) error { return n.hit() }

func (n *countingNotifier) FocusComplete(int) error { return n.hit() }

func (n *countingNotifier) BreakStart(domain.BreakKind, int) error { return n.hit() }

func (n *countingNotifier) BreakEnd() error { return n.hit() }

func (n *countingNotifier) DayStart(int, []string) error { return n.hit() }

func (n *countingNotifier) DayComplete(int, int, int, int) error { return n.hit() }

func (n *countingNotifier) TimerPaused() error { return n.hit() }

func (n *countingNotifier) TimerResumed(string) error { return n.hit() }

func TestMulti_FansOut(t *testing.T) {
	a := &countingNotifier{}
	b := &countingNotifier{}
	multi := NewMulti(a, b)

	if err := multi.FocusStart(1, "task"); err != nil {
		t.Fatalf("FocusStart() error = %v", err)
	}
	if err := multi.BreakStart(domain.BreakEmail, 5); err != nil {
		t.Fatalf("BreakStart() error = %v", err)
	}

	if a.calls != 2 || b.calls != 2 {
		t.Errorf("calls = %d/%d, want 2/2", a.calls, b.calls)
	}
}

func TestMulti_OneFailureDoesNotBlockOthers(t *testing.T) {
	failing := &countingNotifier{err: errors.New("telegram down")}
	healthy := &countingNotifier{}
	multi := NewMulti(failing, healthy)

	err := multi.BreakEnd()
	if err == nil {
		t.Error("BreakEnd() should surface the failure")
	}
	if healthy.calls != 1 {
		t.Errorf("healthy notifier calls = %d, want 1", healthy.calls)
	}
}

func TestTelegram_DisabledIsSilent(t *testing.T) {
	tg := NewTelegram(config.TelegramConfig{})
	if tg.Enabled() {
		t.Error("notifier without credentials should be disabled")
	}
	if err := tg.FocusStart(1, ""); err != nil {
		t.Errorf("disabled notifier should be a silent no-op, got %v", err)
	}
}
