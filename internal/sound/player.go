package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	"tomatick/internal/core/model"
)

var clipFiles = map[model.SoundKind]string{
	model.SoundWorkStart:     "work_start.wav",
	model.SoundBreakStart:    "break_start.wav",
	model.SoundTimerComplete: "timer_complete.wav",
}

// Player plays notification clips through the beep speaker mixer.
// Playback is asynchronous and never blocks the caller. A clip that is
// missing or cannot be decoded is skipped silently.
type Player struct {
	sampleRate beep.SampleRate
	clips      map[model.SoundKind]*beep.Buffer
}

// DefaultDir returns the directory Player loads clips from.
func DefaultDir(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, "sounds"), nil
}

// NewPlayer decodes the known clips from soundDir and initializes the
// speaker. Every failure degrades to silence for the affected clip.
func NewPlayer(soundDir string) *Player {
	player := &Player{clips: map[model.SoundKind]*beep.Buffer{}}

	for kind, fileName := range clipFiles {
		buffer, err := loadClip(filepath.Join(soundDir, fileName))
		if err != nil {
			continue
		}
		if player.sampleRate == 0 {
			player.sampleRate = buffer.Format().SampleRate
		}
		player.clips[kind] = buffer
	}

	if len(player.clips) == 0 {
		return player
	}
	if err := speaker.Init(player.sampleRate, player.sampleRate.N(100*time.Millisecond)); err != nil {
		player.clips = map[model.SoundKind]*beep.Buffer{}
	}
	return player
}

// Play queues the clip for the given kind on the speaker mixer.
func (player *Player) Play(kind model.SoundKind) {
	buffer, ok := player.clips[kind]
	if !ok {
		return
	}
	streamer := beep.Streamer(buffer.Streamer(0, buffer.Len()))
	if clipRate := buffer.Format().SampleRate; clipRate != player.sampleRate {
		streamer = beep.Resample(4, clipRate, player.sampleRate, streamer)
	}
	speaker.Play(streamer)
}

func loadClip(path string) (*beep.Buffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open clip: %w", err)
	}
	defer file.Close()

	streamer, format, err := wav.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode clip %s: %w", path, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return buffer, nil
}
