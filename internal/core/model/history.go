package model

import "time"

// Phase represents which interval the timer is currently in.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// Label returns a human-readable name for the phase.
func (phase Phase) Label() string {
	switch phase {
	case PhaseWork:
		return "Work"
	case PhaseShortBreak:
		return "Short break"
	case PhaseLongBreak:
		return "Long break"
	default:
		return "Idle"
	}
}

// SoundKind identifies a notification sound requested by the timer.
type SoundKind string

const (
	SoundWorkStart     SoundKind = "work_start"
	SoundBreakStart    SoundKind = "break_start"
	SoundTimerComplete SoundKind = "timer_complete"
)

// HistoryEntry records one concluded interval. Entries are created once
// and never mutated afterward. DurationSeconds is the configured length
// of the phase, not the elapsed wall-clock time.
type HistoryEntry struct {
	ID              string    `yaml:"id"`
	StartedAt       time.Time `yaml:"started_at"`
	Phase           Phase     `yaml:"phase"`
	DurationSeconds int       `yaml:"duration_seconds"`
	Completed       bool      `yaml:"completed"`
}
