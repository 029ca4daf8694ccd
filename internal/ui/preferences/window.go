package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	workMin    *widget.Entry
	shortMin   *widget.Entry
	longMin    *widget.Entry
	soundCheck *widget.Check
	loginCheck *widget.Check
}

// New creates a preferences window. onSave receives the validated
// settings whenever the user saves.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Tomatick Settings")

	workMin := widget.NewEntry()
	shortMin := widget.NewEntry()
	longMin := widget.NewEntry()

	soundCheck := widget.NewCheck("Play notification sounds", nil)
	loginCheck := widget.NewCheck("Launch at login", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Durations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work session"), workMin, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Short break"), shortMin, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break"), longMin, widget.NewLabel("min")),
		widget.NewLabelWithStyle("General", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		soundCheck,
		loginCheck,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 320))

	prefs := &Window{
		window:     window,
		settings:   settings,
		onSave:     onSave,
		workMin:    workMin,
		shortMin:   shortMin,
		longMin:    longMin,
		soundCheck: soundCheck,
		loginCheck: loginCheck,
	}
	prefs.applySettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.applySettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.applySettings(settings)
}

func (prefs *Window) applySettings(settings Settings) {
	prefs.workMin.SetText(fmt.Sprintf("%d", int(settings.Work.Minutes())))
	prefs.shortMin.SetText(fmt.Sprintf("%d", int(settings.ShortBreak.Minutes())))
	prefs.longMin.SetText(fmt.Sprintf("%d", int(settings.LongBreak.Minutes())))
	prefs.soundCheck.SetChecked(settings.SoundEnabled)
	prefs.loginCheck.SetChecked(settings.LaunchAtLogin)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.workMin.Text); ok {
		settings.Work = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.shortMin.Text); ok {
		settings.ShortBreak = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.longMin.Text); ok {
		settings.LongBreak = time.Duration(minutes) * time.Minute
	}
	settings.SoundEnabled = prefs.soundCheck.Checked
	settings.LaunchAtLogin = prefs.loginCheck.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
