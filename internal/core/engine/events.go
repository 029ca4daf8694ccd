package engine

import (
	"time"

	"tomatick/internal/core/model"
)

// EventType defines the type of timer event.
type EventType string

const (
	EventStateChange     EventType = "state_change"
	EventProgress        EventType = "progress"
	EventHistoryAppended EventType = "history_appended"
)

// Event represents a timer update for observers.
type Event struct {
	Type          EventType
	Phase         model.Phase
	Remaining     time.Duration
	Running       bool
	CompletedWork int
	Entry         *model.HistoryEntry
	At            time.Time
}
