package history

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"tomatick/internal/core/model"
	"tomatick/internal/storage"
)

// Window shows the session log, newest first.
type Window struct {
	window  fyne.Window
	store   *storage.HistoryStore
	entries []model.HistoryEntry
	list    *widget.List
	empty   *widget.Label
}

// New creates the history window over the given store.
func New(app fyne.App, store *storage.HistoryStore) *Window {
	window := app.NewWindow("Session History")

	win := &Window{
		window: window,
		store:  store,
	}
	win.list = widget.NewList(
		func() int {
			return len(win.entries)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(index widget.ListItemID, item fyne.CanvasObject) {
			if index < len(win.entries) {
				item.(*widget.Label).SetText(formatEntry(win.entries[index]))
			}
		},
	)
	win.empty = widget.NewLabelWithStyle("No sessions yet.", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	clearButton := widget.NewButtonWithIcon("Clear history", theme.DeleteIcon(), func() {
		win.store.Clear()
		win.Refresh()
	})

	window.SetContent(container.NewBorder(nil, clearButton, nil, nil, container.NewStack(win.list, win.empty)))
	window.Resize(fyne.NewSize(420, 360))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return win
}

// Show refreshes and displays the history window.
func (win *Window) Show() {
	win.Refresh()
	win.window.Show()
	win.window.RequestFocus()
}

// Refresh reloads the entries from the store.
func (win *Window) Refresh() {
	win.entries = win.store.All()
	if len(win.entries) == 0 {
		win.empty.Show()
	} else {
		win.empty.Hide()
	}
	win.list.Refresh()
}

func formatEntry(entry model.HistoryEntry) string {
	outcome := "stopped"
	if entry.Completed {
		outcome = "completed"
	}
	minutes := entry.DurationSeconds / 60
	return fmt.Sprintf("%s  %s, %d min, %s",
		entry.StartedAt.Local().Format("Jan 2 15:04"),
		entry.Phase.Label(),
		minutes,
		outcome,
	)
}
