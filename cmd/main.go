package main

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"tomatick/internal/core/engine"
	"tomatick/internal/platform"
	"tomatick/internal/sound"
	"tomatick/internal/storage"
	"tomatick/internal/ui/history"
	"tomatick/internal/ui/preferences"
	"tomatick/internal/ui/timer"
	"tomatick/internal/ui/tray"
	"tomatick/resources"
)

const appName = "Tomatick"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.tomatick.app")
	fyneApp.SetIcon(resources.MustIcon("logo_active.png"))
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform")
		return
	}

	var kv storage.KeyValue
	if fileStore, err := storage.OpenFileStore(appName); err != nil {
		log.Printf("open state store: %v", err)
		kv = storage.NewMemoryStore()
	} else {
		kv = fileStore
	}

	settings := storage.LoadSettings(kv)
	historyStore := storage.NewHistoryStore(kv)

	soundDir, err := sound.DefaultDir(appName)
	if err != nil {
		log.Printf("resolve sound dir: %v", err)
	}
	player := sound.NewPlayer(soundDir)

	eng := engine.New(settings.TimerConfig(), engine.Config{TickInterval: time.Second}, historyStore, player)
	eng.SetSoundEnabled(settings.SoundEnabled)

	historyWindow := history.New(fyneApp, historyStore)
	timerWindow := timer.New(fyneApp, timer.Callbacks{
		OnStart:   eng.Start,
		OnPause:   eng.Pause,
		OnReset:   eng.Reset,
		OnHistory: historyWindow.Show,
	})

	autostartService := platform.NewAutostart()
	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		storage.SaveSettings(kv, updated)
		eng.UpdateConfig(updated.TimerConfig())
		eng.SetSoundEnabled(updated.SoundEnabled)
		if err := platform.Apply(autostartService, appName, updated.LaunchAtLogin); err != nil {
			log.Printf("autostart: %v", err)
		}
	})

	trayManager := tray.New(desktopApp, tray.Callbacks{
		OnShowTimer: timerWindow.Show,
		OnToggle: func() {
			if eng.Snapshot().Running {
				eng.Pause()
			} else {
				eng.Start()
			}
		},
		OnReset:       eng.Reset,
		OnHistory:     historyWindow.Show,
		OnPreferences: prefsWindow.Show,
		OnQuit: func() {
			eng.Stop()
			fyneApp.Quit()
		},
	})

	activeIcon := resources.MustIcon("logo_active.png")
	pausedIcon := resources.MustIcon("logo_paused.png")
	desktopApp.SetSystemTrayIcon(pausedIcon)

	state := eng.Snapshot()
	timerWindow.SetState(state.Phase, state.Remaining, state.Running, state.CompletedWork)
	trayManager.SetStatus(statusLine(state.Phase.Label(), state.Remaining))

	events := eng.Subscribe(8)
	go func() {
		for event := range events {
			event := event
			fyne.Do(func() {
				switch event.Type {
				case engine.EventStateChange, engine.EventProgress:
					timerWindow.SetState(event.Phase, event.Remaining, event.Running, event.CompletedWork)
					trayManager.SetRunning(event.Running)
					trayManager.SetStatus(statusLine(event.Phase.Label(), event.Remaining))
					if event.Type == engine.EventStateChange {
						if event.Running {
							desktopApp.SetSystemTrayIcon(activeIcon)
						} else {
							desktopApp.SetSystemTrayIcon(pausedIcon)
						}
					}
				case engine.EventHistoryAppended:
					historyWindow.Refresh()
				}
			})
		}
	}()

	timerWindow.Show()
	fyneApp.Run()
}

func statusLine(phase string, remaining time.Duration) string {
	return fmt.Sprintf("%s %s", phase, timer.FormatClock(remaining))
}
