package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"tomatick/internal/core/model"
)

// SoundPlayer plays a notification sound without blocking.
type SoundPlayer interface {
	Play(kind model.SoundKind)
}

// HistoryRecorder persists concluded intervals.
type HistoryRecorder interface {
	Append(entry model.HistoryEntry)
}

// Config contains runtime options for the Engine.
type Config struct {
	TickInterval time.Duration
}

// Every fourth completed work session earns a long break.
const workSessionsPerLongBreak = 4

// Engine is the pomodoro state machine. It counts a phase down one
// second at a time and cycles work, short break and long break phases,
// recording a history entry whenever an interval concludes.
type Engine struct {
	mu            sync.Mutex
	config        model.TimerConfig
	options       Config
	phase         model.Phase
	remaining     time.Duration
	running       bool
	completedWork int
	sessionStart  time.Time
	soundEnabled  bool
	history       HistoryRecorder
	sound         SoundPlayer
	now           func() time.Time
	events        []chan Event
	stopCh        chan struct{}
	loopStarted   bool
	stopped       bool
}

// New creates an Engine in the idle phase with the work countdown armed.
func New(config model.TimerConfig, options Config, history HistoryRecorder, sound SoundPlayer) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	config = normalizeConfig(config)

	return &Engine{
		config:       config,
		options:      options,
		phase:        model.PhaseIdle,
		remaining:    config.Work,
		soundEnabled: true,
		history:      history,
		sound:        sound,
		now:          time.Now,
		stopCh:       make(chan struct{}),
	}
}

func normalizeConfig(config model.TimerConfig) model.TimerConfig {
	defaults := model.DefaultTimerConfig()
	if config.Work <= 0 {
		config.Work = defaults.Work
	}
	if config.ShortBreak <= 0 {
		config.ShortBreak = defaults.ShortBreak
	}
	if config.LongBreak <= 0 {
		config.LongBreak = defaults.LongBreak
	}
	return config
}

// State is a point-in-time snapshot of the engine.
type State struct {
	Phase         model.Phase
	Remaining     time.Duration
	Running       bool
	CompletedWork int
	SoundEnabled  bool
}

// Snapshot returns the current engine state.
func (eng *Engine) Snapshot() State {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return State{
		Phase:         eng.phase,
		Remaining:     eng.remaining,
		Running:       eng.running,
		CompletedWork: eng.completedWork,
		SoundEnabled:  eng.soundEnabled,
	}
}

// Subscribe registers a new observer channel.
func (eng *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	eng.mu.Lock()
	eng.events = append(eng.events, ch)
	eng.mu.Unlock()
	return ch
}

// Start begins or resumes the countdown. From idle it enters the work
// phase and opens a new session. Calling Start while already running
// has no additional effect.
func (eng *Engine) Start() {
	eng.mu.Lock()
	if eng.stopped || eng.running {
		eng.mu.Unlock()
		return
	}
	if eng.phase == model.PhaseIdle {
		eng.phase = model.PhaseWork
		eng.playLocked(model.SoundWorkStart)
	}
	if eng.sessionStart.IsZero() {
		eng.sessionStart = eng.now()
	}
	eng.running = true
	if !eng.loopStarted {
		eng.loopStarted = true
		go eng.run()
	}
	eng.emitStateLocked()
	eng.mu.Unlock()
}

// Pause freezes the countdown. The open session, if any, is logged as
// not completed for the current phase's configured duration.
func (eng *Engine) Pause() {
	eng.mu.Lock()
	if !eng.running {
		eng.mu.Unlock()
		return
	}
	eng.running = false
	eng.closeSessionLocked(false)
	eng.emitStateLocked()
	eng.mu.Unlock()
}

// Reset logs the open session as not completed, stops the countdown
// and returns the engine to idle with a fresh work countdown.
func (eng *Engine) Reset() {
	eng.mu.Lock()
	eng.running = false
	eng.closeSessionLocked(false)
	eng.phase = model.PhaseIdle
	eng.remaining = eng.config.Work
	eng.completedWork = 0
	eng.emitStateLocked()
	eng.mu.Unlock()
}

// UpdateConfig replaces the phase durations. An in-progress countdown
// keeps its remaining time; the new durations apply from the next
// transition. When the engine is idle and stopped the armed work
// countdown is refreshed immediately.
func (eng *Engine) UpdateConfig(config model.TimerConfig) {
	eng.mu.Lock()
	eng.config = normalizeConfig(config)
	if eng.phase == model.PhaseIdle && !eng.running {
		eng.remaining = eng.config.Work
		eng.emitStateLocked()
	}
	eng.mu.Unlock()
}

// SetSoundEnabled toggles notification sounds.
func (eng *Engine) SetSoundEnabled(enabled bool) {
	eng.mu.Lock()
	eng.soundEnabled = enabled
	eng.mu.Unlock()
}

// Stop terminates the ticking loop and closes observer channels.
func (eng *Engine) Stop() {
	eng.mu.Lock()
	if eng.stopped {
		eng.mu.Unlock()
		return
	}
	eng.stopped = true
	eng.running = false
	close(eng.stopCh)
	events := eng.events
	eng.events = nil
	eng.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (eng *Engine) run() {
	ticker := time.NewTicker(eng.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-eng.stopCh:
			return
		case <-ticker.C:
			eng.tick()
		}
	}
}

// tick advances the countdown by one second. Reaching zero triggers
// the phase transition within the same tick.
func (eng *Engine) tick() {
	eng.mu.Lock()
	if !eng.running {
		eng.mu.Unlock()
		return
	}
	if eng.remaining > 0 {
		eng.remaining -= time.Second
	}
	if eng.remaining > 0 {
		eng.emitLocked(Event{
			Type:          EventProgress,
			Phase:         eng.phase,
			Remaining:     eng.remaining,
			Running:       true,
			CompletedWork: eng.completedWork,
			At:            eng.now(),
		})
		eng.mu.Unlock()
		return
	}
	eng.completeLocked()
	eng.mu.Unlock()
}

// completeLocked concludes the current interval and enters the next
// phase without a gap: the session is logged as completed, work
// completions are counted, and the countdown re-arms immediately.
func (eng *Engine) completeLocked() {
	eng.playLocked(model.SoundTimerComplete)
	eng.closeSessionLocked(true)

	if eng.phase == model.PhaseWork {
		eng.completedWork++
		if eng.completedWork%workSessionsPerLongBreak == 0 {
			eng.phase = model.PhaseLongBreak
		} else {
			eng.phase = model.PhaseShortBreak
		}
		eng.playLocked(model.SoundBreakStart)
	} else {
		eng.phase = model.PhaseWork
		eng.playLocked(model.SoundWorkStart)
	}

	eng.remaining = eng.config.PhaseDuration(eng.phase)
	eng.sessionStart = eng.now()
	eng.emitStateLocked()
}

// closeSessionLocked logs the open session, if any, and clears the
// open-session marker. The logged duration is the phase's configured
// length, not the elapsed time.
func (eng *Engine) closeSessionLocked(completed bool) {
	if eng.sessionStart.IsZero() || eng.history == nil {
		return
	}
	entry := model.HistoryEntry{
		ID:              uuid.NewString(),
		StartedAt:       eng.sessionStart,
		Phase:           eng.phase,
		DurationSeconds: int(eng.config.PhaseDuration(eng.phase) / time.Second),
		Completed:       completed,
	}
	eng.sessionStart = time.Time{}
	eng.history.Append(entry)
	eng.emitLocked(Event{
		Type:          EventHistoryAppended,
		Phase:         eng.phase,
		Remaining:     eng.remaining,
		Running:       eng.running,
		CompletedWork: eng.completedWork,
		Entry:         &entry,
		At:            eng.now(),
	})
}

func (eng *Engine) playLocked(kind model.SoundKind) {
	if !eng.soundEnabled || eng.sound == nil {
		return
	}
	eng.sound.Play(kind)
}

func (eng *Engine) emitStateLocked() {
	eng.emitLocked(Event{
		Type:          EventStateChange,
		Phase:         eng.phase,
		Remaining:     eng.remaining,
		Running:       eng.running,
		CompletedWork: eng.completedWork,
		At:            eng.now(),
	})
}

func (eng *Engine) emitLocked(event Event) {
	events := append([]chan Event(nil), eng.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
