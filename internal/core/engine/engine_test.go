package engine

import (
	"testing"
	"time"

	"tomatick/internal/core/model"
)

type recorderStub struct {
	entries []model.HistoryEntry
}

func (rec *recorderStub) Append(entry model.HistoryEntry) {
	rec.entries = append(rec.entries, entry)
}

type soundStub struct {
	kinds []model.SoundKind
}

func (snd *soundStub) Play(kind model.SoundKind) {
	snd.kinds = append(snd.kinds, kind)
}

// newTestEngine returns an engine whose ticker never fires on its own,
// so tests drive the countdown by calling tick directly.
func newTestEngine(t *testing.T, config model.TimerConfig) (*Engine, *recorderStub, *soundStub) {
	t.Helper()
	rec := &recorderStub{}
	snd := &soundStub{}
	eng := New(config, Config{TickInterval: time.Hour}, rec, snd)
	t.Cleanup(eng.Stop)
	return eng, rec, snd
}

func ticks(eng *Engine, n int) {
	for i := 0; i < n; i++ {
		eng.tick()
	}
}

func TestNewStartsIdleWithWorkCountdown(t *testing.T) {
	eng, _, _ := newTestEngine(t, model.TimerConfig{})

	state := eng.Snapshot()
	if state.Phase != model.PhaseIdle {
		t.Fatalf("phase = %q want %q", state.Phase, model.PhaseIdle)
	}
	if state.Remaining != 25*time.Minute {
		t.Fatalf("remaining = %v want %v", state.Remaining, 25*time.Minute)
	}
	if state.Running {
		t.Fatal("engine should not be running before Start")
	}
}

func TestTickDecrementsOneSecond(t *testing.T) {
	eng, _, _ := newTestEngine(t, model.TimerConfig{})
	eng.Start()

	ticks(eng, 10)

	state := eng.Snapshot()
	if want := 1490 * time.Second; state.Remaining != want {
		t.Fatalf("remaining after 10 ticks = %v want %v", state.Remaining, want)
	}
}

func TestTickIgnoredWhileStopped(t *testing.T) {
	eng, _, _ := newTestEngine(t, model.TimerConfig{})

	ticks(eng, 5)

	if got := eng.Snapshot().Remaining; got != 25*time.Minute {
		t.Fatalf("remaining changed while idle: %v", got)
	}
}

func TestWorkCompletionEntersShortBreak(t *testing.T) {
	eng, rec, _ := newTestEngine(t, model.TimerConfig{})
	eng.Start()

	ticks(eng, 1500)

	state := eng.Snapshot()
	if state.Phase != model.PhaseShortBreak {
		t.Fatalf("phase = %q want %q", state.Phase, model.PhaseShortBreak)
	}
	if state.Remaining != 300*time.Second {
		t.Fatalf("remaining = %v want %v", state.Remaining, 300*time.Second)
	}
	if state.CompletedWork != 1 {
		t.Fatalf("completedWork = %d want 1", state.CompletedWork)
	}
	if !state.Running {
		t.Fatal("engine should keep running after a transition")
	}
	if len(rec.entries) != 1 {
		t.Fatalf("history entries = %d want 1", len(rec.entries))
	}
	entry := rec.entries[0]
	if entry.Phase != model.PhaseWork || entry.DurationSeconds != 1500 || !entry.Completed {
		t.Fatalf("entry = %+v want completed work of 1500s", entry)
	}
	if entry.ID == "" || entry.StartedAt.IsZero() {
		t.Fatalf("entry missing id or start time: %+v", entry)
	}
}

func TestFourthWorkSessionEarnsLongBreak(t *testing.T) {
	config := model.TimerConfig{
		Work:       2 * time.Second,
		ShortBreak: time.Second,
		LongBreak:  3 * time.Second,
	}
	eng, _, _ := newTestEngine(t, config)
	eng.Start()

	steps := []struct {
		ticks     int
		phase     model.Phase
		completed int
	}{
		{2, model.PhaseShortBreak, 1}, // 1st work session
		{1, model.PhaseWork, 1},
		{2, model.PhaseShortBreak, 2}, // 2nd
		{1, model.PhaseWork, 2},
		{2, model.PhaseShortBreak, 3}, // 3rd
		{1, model.PhaseWork, 3},
		{2, model.PhaseLongBreak, 4}, // 4th earns the long break
		{3, model.PhaseWork, 4},
	}
	for i, step := range steps {
		ticks(eng, step.ticks)
		state := eng.Snapshot()
		if state.Phase != step.phase {
			t.Fatalf("step %d: phase = %q want %q", i, state.Phase, step.phase)
		}
		if state.CompletedWork != step.completed {
			t.Fatalf("step %d: completedWork = %d want %d", i, state.CompletedWork, step.completed)
		}
	}
}

func TestBreakCompletionDoesNotCountWork(t *testing.T) {
	config := model.TimerConfig{
		Work:       2 * time.Second,
		ShortBreak: time.Second,
		LongBreak:  3 * time.Second,
	}
	eng, _, _ := newTestEngine(t, config)
	eng.Start()

	ticks(eng, 2) // work concludes
	before := eng.Snapshot().CompletedWork
	ticks(eng, 1) // short break concludes
	after := eng.Snapshot().CompletedWork

	if before != 1 || after != 1 {
		t.Fatalf("completedWork = %d then %d, want 1 then 1", before, after)
	}
}

func TestPauseLogsNominalDuration(t *testing.T) {
	eng, rec, _ := newTestEngine(t, model.TimerConfig{})
	eng.Start()
	ticks(eng, 10)

	eng.Pause()

	state := eng.Snapshot()
	if state.Running {
		t.Fatal("engine still running after Pause")
	}
	if state.Remaining != 1490*time.Second {
		t.Fatalf("remaining = %v want %v", state.Remaining, 1490*time.Second)
	}
	if len(rec.entries) != 1 {
		t.Fatalf("history entries = %d want 1", len(rec.entries))
	}
	entry := rec.entries[0]
	if entry.Phase != model.PhaseWork || entry.DurationSeconds != 1500 || entry.Completed {
		t.Fatalf("entry = %+v want abandoned work of nominal 1500s", entry)
	}
}

func TestPauseThenStartResumesCountdown(t *testing.T) {
	eng, rec, _ := newTestEngine(t, model.TimerConfig{})
	eng.Start()
	ticks(eng, 100)
	eng.Pause()
	eng.Start()

	state := eng.Snapshot()
	if !state.Running {
		t.Fatal("engine not running after resume")
	}
	if state.Phase != model.PhaseWork {
		t.Fatalf("phase = %q want %q", state.Phase, model.PhaseWork)
	}
	if state.Remaining != 1400*time.Second {
		t.Fatalf("remaining = %v want %v", state.Remaining, 1400*time.Second)
	}
	// Resuming opens a fresh session; only the pause logged an entry.
	if len(rec.entries) != 1 {
		t.Fatalf("history entries = %d want 1", len(rec.entries))
	}
}

func TestPauseWithoutOpenSessionLogsNothing(t *testing.T) {
	eng, rec, _ := newTestEngine(t, model.TimerConfig{})
	eng.Start()
	eng.Pause()
	eng.Pause()

	if len(rec.entries) != 1 {
		t.Fatalf("history entries = %d want 1", len(rec.entries))
	}
}

func TestResetReturnsToIdle(t *testing.T) {
	config := model.TimerConfig{
		Work:       2 * time.Second,
		ShortBreak: 5 * time.Second,
		LongBreak:  9 * time.Second,
	}
	eng, rec, _ := newTestEngine(t, config)
	eng.Start()
	ticks(eng, 3) // one work session done, mid short break

	eng.Reset()

	state := eng.Snapshot()
	if state.Phase != model.PhaseIdle {
		t.Fatalf("phase = %q want %q", state.Phase, model.PhaseIdle)
	}
	if state.Remaining != 2*time.Second {
		t.Fatalf("remaining = %v want work duration %v", state.Remaining, 2*time.Second)
	}
	if state.CompletedWork != 0 {
		t.Fatalf("completedWork = %d want 0", state.CompletedWork)
	}
	if state.Running {
		t.Fatal("engine still running after Reset")
	}
	// One completed work entry plus the abandoned short break.
	if len(rec.entries) != 2 {
		t.Fatalf("history entries = %d want 2", len(rec.entries))
	}
	last := rec.entries[1]
	if last.Phase != model.PhaseShortBreak || last.Completed || last.DurationSeconds != 5 {
		t.Fatalf("entry = %+v want abandoned short break of nominal 5s", last)
	}
}

func TestResetAfterPauseLogsNothingExtra(t *testing.T) {
	eng, rec, _ := newTestEngine(t, model.TimerConfig{})
	eng.Start()
	ticks(eng, 5)
	eng.Pause()
	eng.Reset()

	if len(rec.entries) != 1 {
		t.Fatalf("history entries = %d want 1", len(rec.entries))
	}
}

func TestStartIsIdempotentWhileRunning(t *testing.T) {
	eng, rec, snd := newTestEngine(t, model.TimerConfig{})
	eng.Start()
	ticks(eng, 3)
	eng.Start()

	state := eng.Snapshot()
	if state.Remaining != 1497*time.Second {
		t.Fatalf("remaining = %v want %v", state.Remaining, 1497*time.Second)
	}
	if len(rec.entries) != 0 {
		t.Fatalf("history entries = %d want 0", len(rec.entries))
	}
	if len(snd.kinds) != 1 {
		t.Fatalf("sounds played = %v want a single work start", snd.kinds)
	}
}

func TestUpdateConfigAppliesOnNextTransition(t *testing.T) {
	config := model.TimerConfig{
		Work:       5 * time.Second,
		ShortBreak: 2 * time.Second,
		LongBreak:  9 * time.Second,
	}
	eng, _, _ := newTestEngine(t, config)
	eng.Start()
	ticks(eng, 2)

	config.ShortBreak = 7 * time.Second
	eng.UpdateConfig(config)

	if got := eng.Snapshot().Remaining; got != 3*time.Second {
		t.Fatalf("remaining changed by UpdateConfig: %v", got)
	}

	ticks(eng, 3) // finish the work session

	state := eng.Snapshot()
	if state.Phase != model.PhaseShortBreak {
		t.Fatalf("phase = %q want %q", state.Phase, model.PhaseShortBreak)
	}
	if state.Remaining != 7*time.Second {
		t.Fatalf("remaining = %v want the updated %v", state.Remaining, 7*time.Second)
	}
}

func TestUpdateConfigRefreshesIdleCountdown(t *testing.T) {
	eng, _, _ := newTestEngine(t, model.TimerConfig{})

	eng.UpdateConfig(model.TimerConfig{Work: 10 * time.Minute})

	if got := eng.Snapshot().Remaining; got != 10*time.Minute {
		t.Fatalf("remaining = %v want %v", got, 10*time.Minute)
	}
}

func TestSounds(t *testing.T) {
	config := model.TimerConfig{
		Work:       time.Second,
		ShortBreak: time.Second,
		LongBreak:  time.Second,
	}

	t.Run("enabled", func(t *testing.T) {
		eng, _, snd := newTestEngine(t, config)
		eng.Start()
		ticks(eng, 1) // work concludes, short break starts

		want := []model.SoundKind{model.SoundWorkStart, model.SoundTimerComplete, model.SoundBreakStart}
		if len(snd.kinds) != len(want) {
			t.Fatalf("sounds = %v want %v", snd.kinds, want)
		}
		for i, kind := range want {
			if snd.kinds[i] != kind {
				t.Fatalf("sound %d = %q want %q", i, snd.kinds[i], kind)
			}
		}
	})

	t.Run("disabled", func(t *testing.T) {
		eng, _, snd := newTestEngine(t, config)
		eng.SetSoundEnabled(false)
		eng.Start()
		ticks(eng, 1)

		if len(snd.kinds) != 0 {
			t.Fatalf("sounds = %v want none", snd.kinds)
		}
	})
}

func TestEvents(t *testing.T) {
	eng, _, _ := newTestEngine(t, model.TimerConfig{})
	events := eng.Subscribe(16)

	eng.Start()
	ticks(eng, 2)
	eng.Pause()

	var types []EventType
	for len(events) > 0 {
		types = append(types, (<-events).Type)
	}
	want := []EventType{EventStateChange, EventProgress, EventProgress, EventHistoryAppended, EventStateChange}
	if len(types) != len(want) {
		t.Fatalf("event types = %v want %v", types, want)
	}
	for i, typ := range want {
		if types[i] != typ {
			t.Fatalf("event %d = %q want %q", i, types[i], typ)
		}
	}
}

func TestStopClosesSubscribers(t *testing.T) {
	eng := New(model.TimerConfig{}, Config{TickInterval: time.Hour}, nil, nil)
	events := eng.Subscribe(1)

	eng.Stop()

	if _, open := <-events; open {
		t.Fatal("subscriber channel still open after Stop")
	}
	// A second Stop must not panic.
	eng.Stop()
}
