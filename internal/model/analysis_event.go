package model

import "time"

// AnalysisEvent is an audit row recording one completed analysis run. Events
// arrive asynchronously through the audit queue; losing one never affects the
// analysis result itself.
type AnalysisEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	FileID    uint      `gorm:"not null;index" json:"file_id"`
	InsightID uint      `gorm:"not null" json:"insight_id"`
	Status    string    `gorm:"size:32;not null" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	AnalysisStatusCompleted = "completed"
	AnalysisStatusDegraded  = "degraded"
)
