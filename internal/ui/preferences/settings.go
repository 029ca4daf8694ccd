package preferences

import (
	"time"

	"tomatick/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration

	SoundEnabled  bool
	LaunchAtLogin bool
}

// DefaultSettings returns default settings for Tomatick.
func DefaultSettings() Settings {
	config := model.DefaultTimerConfig()
	return Settings{
		Work:         config.Work,
		ShortBreak:   config.ShortBreak,
		LongBreak:    config.LongBreak,
		SoundEnabled: true,
	}
}

// TimerConfig converts settings to the engine configuration.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		Work:       settings.Work,
		ShortBreak: settings.ShortBreak,
		LongBreak:  settings.LongBreak,
	}
}
