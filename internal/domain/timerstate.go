// Package domain contains the core entities of the workday system:
// the day plan, its tasks, recorded pomodoros, streak counters, and the
// timer state shared between the daemon and control clients.
package domain

import "time"

// Phase represents what the timer daemon is currently doing.
type Phase string

const (
	PhaseFocus   Phase = "focus"
	PhaseBreak   Phase = "break"
	PhasePaused  Phase = "paused"
	PhaseStopped Phase = "stopped"
)

// BreakKind distinguishes the three break flavours.
type BreakKind string

const (
	BreakEmail BreakKind = "email"
	BreakRest  BreakKind = "rest"
	BreakLong  BreakKind = "long"
)

// TimerState is the single record owned by the timer daemon and mirrored
// to the state file after every tick. Control clients read it for status
// and may only ever force TimeRemainingSeconds down to zero (skip).
type TimerState struct {
	Phase                Phase      `json:"phase"`
	BreakKind            *BreakKind `json:"break_kind,omitempty"`
	CurrentPomodoro      int        `json:"current_pomodoro"`
	TimeRemainingSeconds int        `json:"time_remaining_seconds"`
	StartedAt            *time.Time `json:"started_at,omitempty"`
	TaskID               *int64     `json:"task_id,omitempty"`
	DayID                int64      `json:"day_id"`
}

// Active reports whether the state describes a live timer.
func (s *TimerState) Active() bool {
	return s != nil && s.Phase != "" && s.Phase != PhaseStopped
}

// Pause suspends the countdown. The break kind is left untouched so that
// Resume can restore the correct phase.
func (s *TimerState) Pause() {
	if s.Phase == PhasePaused || s.Phase == PhaseStopped {
		return
	}
	s.Phase = PhasePaused
}

// Resume restores the phase that was active before Pause.
func (s *TimerState) Resume() {
	if s.Phase != PhasePaused {
		return
	}
	if s.BreakKind != nil {
		s.Phase = PhaseBreak
	} else {
		s.Phase = PhaseFocus
	}
}
