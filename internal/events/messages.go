package events

import (
	"encoding/json"
	"time"
)

// StudyEventMessage is the lightweight lifecycle notification published for a
// study. Consumers fetch the full study from the store if they need more than
// the status.
type StudyEventMessage struct {
	Event     string    `json:"event"`
	StudyID   string    `json:"study_id"`
	FamilyID  string    `json:"family_id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func NewStudyEventMessage(event, studyID, familyID, status string) *StudyEventMessage {
	return &StudyEventMessage{
		Event:     event,
		StudyID:   studyID,
		FamilyID:  familyID,
		Status:    status,
		Timestamp: time.Now().UTC(),
	}
}

func (m *StudyEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func StudyEventMessageFromJSON(data []byte) (*StudyEventMessage, error) {
	var msg StudyEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
