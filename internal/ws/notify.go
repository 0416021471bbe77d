package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// ApplicationUpdatedEvent is pushed to a candidate when an employer moves
// their application to a new status.
type ApplicationUpdatedEvent struct {
	Type          string `json:"type"`
	ApplicationID string `json:"application_id"`
	PostingTitle  string `json:"posting_title"`
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyApplicationUpdated(candidateID, applicationID uuid.UUID, postingTitle, status string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := ApplicationUpdatedEvent{
		Type:          "application_updated",
		ApplicationID: applicationID.String(),
		PostingTitle:  postingTitle,
		Status:        status,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Publish(candidateID, b)
}
