package timer

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"tomatick/internal/core/model"
)

// Callbacks defines timer window action handlers.
type Callbacks struct {
	OnStart   func()
	OnPause   func()
	OnReset   func()
	OnHistory func()
}

// Window is the main countdown window.
type Window struct {
	window      fyne.Window
	phaseLabel  *widget.Label
	clock       *canvas.Text
	sessions    *widget.Label
	startButton *widget.Button
	resetButton *widget.Button
	callbacks   Callbacks
	running     bool
}

// New creates the countdown window. Closing it hides the window; the
// app keeps running in the tray.
func New(app fyne.App, callbacks Callbacks) *Window {
	window := app.NewWindow("Tomatick")

	clock := canvas.NewText("25:00", theme.Color(theme.ColorNameForeground))
	clock.TextSize = 64
	clock.TextStyle = fyne.TextStyle{Monospace: true}
	clock.Alignment = fyne.TextAlignCenter

	phaseLabel := widget.NewLabelWithStyle("Idle", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	sessions := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})

	win := &Window{
		window:     window,
		phaseLabel: phaseLabel,
		clock:      clock,
		sessions:   sessions,
		callbacks:  callbacks,
	}

	win.startButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), func() {
		if win.running {
			if win.callbacks.OnPause != nil {
				win.callbacks.OnPause()
			}
		} else if win.callbacks.OnStart != nil {
			win.callbacks.OnStart()
		}
	})
	win.resetButton = widget.NewButtonWithIcon("Reset", theme.MediaStopIcon(), func() {
		if win.callbacks.OnReset != nil {
			win.callbacks.OnReset()
		}
	})
	historyButton := widget.NewButtonWithIcon("History", theme.ListIcon(), func() {
		if win.callbacks.OnHistory != nil {
			win.callbacks.OnHistory()
		}
	})

	content := container.NewVBox(
		phaseLabel,
		clock,
		sessions,
		container.NewGridWithColumns(3, win.startButton, win.resetButton, historyButton),
	)
	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(300, 220))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return win
}

// Show displays the countdown window.
func (win *Window) Show() {
	win.window.Show()
	win.window.RequestFocus()
}

// SetState refreshes the window from an engine snapshot.
func (win *Window) SetState(phase model.Phase, remaining time.Duration, running bool, completedWork int) {
	win.running = running
	win.phaseLabel.SetText(phase.Label())
	win.clock.Text = FormatClock(remaining)
	win.clock.Refresh()
	win.sessions.SetText(fmt.Sprintf("%d work sessions completed", completedWork))
	if running {
		win.startButton.SetText("Pause")
		win.startButton.SetIcon(theme.MediaPauseIcon())
	} else {
		win.startButton.SetText("Start")
		win.startButton.SetIcon(theme.MediaPlayIcon())
	}
}

// FormatClock renders a countdown as mm:ss.
func FormatClock(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
