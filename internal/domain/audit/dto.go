package audit

import (
	"encoding/json"
	"time"
)

type EntryResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Action    string          `json:"action"`
	SiteID    *string         `json:"site_id,omitempty"`
	Details   json.RawMessage `json:"details,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func ToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		Username:  e.Username,
		Action:    e.Action,
		SiteID:    e.SiteID,
		Details:   json.RawMessage(e.Details),
		CreatedAt: e.CreatedAt,
	}
}
