package domain

import (
	"testing"
)

func TestDay_GoalMet(t *testing.T) {
	tests := []struct {
		name    string
		planned int
		actual  int
		want    bool
	}{
		{"no plan never met", 0, 5, false},
		{"under plan", 8, 7, false},
		{"exactly at plan", 8, 8, true},
		{"over plan", 8, 9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := &Day{PlannedPomodoros: tt.planned, ActualPomodoros: tt.actual}
			if got := day.GoalMet(); got != tt.want {
				t.Errorf("GoalMet() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDay_CompletedTasks(t *testing.T) {
	day := NewDay("2024-01-05")
	day.Tasks = []*Task{
		{Description: "a", Completed: true},
		{Description: "b", Completed: false},
		{Description: "c", Completed: true},
	}

	if got := day.CompletedTasks(); got != 2 {
		t.Errorf("CompletedTasks() = %d, want 2", got)
	}
}
