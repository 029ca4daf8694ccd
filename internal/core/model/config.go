package model

import "time"

// TimerConfig contains the user-configurable phase durations.
type TimerConfig struct {
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
}

// DefaultTimerConfig returns the classic 25/5/15 pomodoro durations.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		Work:       25 * time.Minute,
		ShortBreak: 5 * time.Minute,
		LongBreak:  15 * time.Minute,
	}
}

// PhaseDuration returns the configured duration for the given phase.
// Idle has no duration of its own and maps to the work duration, which
// is what the countdown shows before the first session starts.
func (config TimerConfig) PhaseDuration(phase Phase) time.Duration {
	switch phase {
	case PhaseShortBreak:
		return config.ShortBreak
	case PhaseLongBreak:
		return config.LongBreak
	default:
		return config.Work
	}
}
