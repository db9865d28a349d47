package model

import "time"

type ResetStatus string

const (
	ResetDone   ResetStatus = "reset"
	ResetFailed ResetStatus = "failed"
)

// ResetEntry records one attempted checked_in reset.
type ResetEntry struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	RunID       string      `gorm:"size:36;index:idx_reset_run" json:"run_id"`
	Collection  string      `gorm:"size:32;index:idx_reset_collection" json:"collection"`
	RecordID    string      `gorm:"size:128" json:"record_id"`
	DisplayName string      `gorm:"size:255" json:"display_name"`
	Status      ResetStatus `gorm:"size:20;not null" json:"status"`
	Error       string      `gorm:"type:text" json:"error,omitempty"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`
}

// ResetSummary describes the outcome of resetting one collection.
type ResetSummary struct {
	RunID      string `json:"run_id"`
	Collection string `json:"collection"`
	Found      int    `json:"found"`
	Flagged    int    `json:"flagged"`
	Updated    int    `json:"updated"`
	Failed     int    `json:"failed"`
	Error      string `json:"error,omitempty"`
}
