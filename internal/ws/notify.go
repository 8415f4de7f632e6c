package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// StatusChangedEvent is the push payload sent to a candidate when a
// screening record changes status.
type StatusChangedEvent struct {
	Type        string `json:"type"`
	ScreeningID string `json:"screening_id"`
	JobTitle    string `json:"job_title"`
	Status      string `json:"status"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyStatusChanged pushes a status-change event to the candidate's
// connections. No-op when no hub is installed (tests, CLI tools).
func NotifyStatusChanged(candidateID uuid.UUID, evt StatusChangedEvent) {
	h := defaultHub.Load()
	if h == nil || candidateID == uuid.Nil {
		return
	}

	evt.Type = "status_changed"
	evt.Timestamp = time.Now().UTC().Format(time.RFC3339)

	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Send(candidateID, b)
}
