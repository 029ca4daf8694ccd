package storage

import (
	"strconv"
	"time"

	"tomatick/internal/ui/preferences"
)

const (
	keyWorkSeconds       = "work_seconds"
	keyShortBreakSeconds = "short_break_seconds"
	keyLongBreakSeconds  = "long_break_seconds"
	keySoundEnabled      = "sound_enabled"
	keyLaunchAtLogin     = "launch_at_login"
)

// LoadSettings reads user preferences from the key-value store.
// Missing or invalid values keep their defaults.
func LoadSettings(kv KeyValue) preferences.Settings {
	settings := preferences.DefaultSettings()

	if seconds, ok := getPositiveInt(kv, keyWorkSeconds); ok {
		settings.Work = time.Duration(seconds) * time.Second
	}
	if seconds, ok := getPositiveInt(kv, keyShortBreakSeconds); ok {
		settings.ShortBreak = time.Duration(seconds) * time.Second
	}
	if seconds, ok := getPositiveInt(kv, keyLongBreakSeconds); ok {
		settings.LongBreak = time.Duration(seconds) * time.Second
	}
	if enabled, ok := getBool(kv, keySoundEnabled); ok {
		settings.SoundEnabled = enabled
	}
	if enabled, ok := getBool(kv, keyLaunchAtLogin); ok {
		settings.LaunchAtLogin = enabled
	}
	return settings
}

// SaveSettings writes user preferences to the key-value store.
// Write failures are dropped.
func SaveSettings(kv KeyValue, settings preferences.Settings) {
	_ = kv.Set(keyWorkSeconds, formatSeconds(settings.Work))
	_ = kv.Set(keyShortBreakSeconds, formatSeconds(settings.ShortBreak))
	_ = kv.Set(keyLongBreakSeconds, formatSeconds(settings.LongBreak))
	_ = kv.Set(keySoundEnabled, []byte(strconv.FormatBool(settings.SoundEnabled)))
	_ = kv.Set(keyLaunchAtLogin, []byte(strconv.FormatBool(settings.LaunchAtLogin)))
}

func formatSeconds(duration time.Duration) []byte {
	return []byte(strconv.Itoa(int(duration / time.Second)))
}

func getPositiveInt(kv KeyValue, key string) (int, bool) {
	rawValue, ok := kv.Get(key)
	if !ok {
		return 0, false
	}
	parsed, err := strconv.Atoi(string(rawValue))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}

func getBool(kv KeyValue, key string) (bool, bool) {
	rawValue, ok := kv.Get(key)
	if !ok {
		return false, false
	}
	parsed, err := strconv.ParseBool(string(rawValue))
	if err != nil {
		return false, false
	}
	return parsed, true
}
