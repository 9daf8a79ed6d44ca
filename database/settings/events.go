package settings

import (
	"sync"

	"github.com/D4vidDf/HyperBridge/database/models"
)

// Event represents a settings change event.
type Event struct {
	Old models.Settings
	New models.Settings
}

// Subscriber handles settings events.
type Subscriber func(event Event)

var (
	subscribersMu sync.RWMutex
	subscribers   []Subscriber
)

// Subscribe registers a subscriber for all settings events.
func Subscribe(subscriber Subscriber) {
	subscribersMu.Lock()
	defer subscribersMu.Unlock()
	subscribers = append(subscribers, subscriber)
}

// publishEvent notifies all subscribers of a settings change.
func publishEvent(oldVal, newVal models.Settings) {
	subscribersMu.RLock()
	defer subscribersMu.RUnlock()
	event := Event{Old: oldVal, New: newVal}
	for _, sub := range subscribers {
		go sub(event)
	}
}
