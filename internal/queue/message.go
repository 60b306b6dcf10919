package queue

import (
	"encoding/json"
	"fmt"
	"strings"
)

// EventCoverLetterGenerated is published after a cover letter is stored.
const EventCoverLetterGenerated = "cover-letter/generated"

// Message is the payload sent to downstream event consumers.
type Message struct {
	Name          string `json:"name"`
	CoverLetterID string `json:"coverLetterId"`
	UserID        string `json:"userId"`
	EnqueuedAt    string `json:"enqueuedAt"`
	Version       int    `json:"version"`
}

// EncodeMessage returns the JSON representation of a message.
func EncodeMessage(msg Message) ([]byte, error) {
	if strings.TrimSpace(msg.Name) == "" {
		return nil, fmt.Errorf("event name is required")
	}
	return json.Marshal(msg)
}
