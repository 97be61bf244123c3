package dto

import (
	"encoding/json"
	"time"

	"github.com/feral-file/ff-dao/internal/store/schema"
)

// HealthResponse reports the status of the API
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// JournalEntryResponse represents a governance journal entry
type JournalEntryResponse struct {
	Cursor      int64              `json:"cursor"`
	SubjectType schema.SubjectType `json:"subject_type"`
	SubjectID   string             `json:"subject_id"`
	Action      string             `json:"action"`
	Actor       string             `json:"actor"`
	ChangedAt   time.Time          `json:"changed_at"`
	Meta        json.RawMessage    `json:"meta,omitempty"`
}

// JournalListResponse represents a page of journal entries
type JournalListResponse struct {
	Entries    []JournalEntryResponse `json:"items"`
	NextAnchor *int64                 `json:"next_anchor,omitempty"` // Cursor for the next page
	Total      uint64                 `json:"total"`
}

// MapJournalEntryToDTO maps a schema.GovernanceJournal to JournalEntryResponse
func MapJournalEntryToDTO(entry *schema.GovernanceJournal) *JournalEntryResponse {
	dto := &JournalEntryResponse{
		Cursor:      entry.Cursor,
		SubjectType: entry.SubjectType,
		SubjectID:   entry.SubjectID,
		Action:      entry.Action,
		Actor:       entry.Actor,
		ChangedAt:   entry.ChangedAt,
	}

	if entry.Meta != nil {
		dto.Meta = json.RawMessage(entry.Meta)
	}

	return dto
}

// NextOffset returns the offset of the next page, nil on the last page
func NextOffset(offset uint64, pageLen int, total uint64) *uint64 {
	next := offset + uint64(pageLen) //nolint:gosec,G115
	if pageLen == 0 || next >= total {
		return nil
	}
	return &next
}
