package entity

import (
	"database/sql"
	"time"

	"gorm.io/datatypes"
)

// RefreshJobType identifies a scheduled background job.
type RefreshJobType string

const (
	RefreshJobPriceUpdate   RefreshJobType = "price_update"
	RefreshJobHistoryRecord RefreshJobType = "history_record"
)

// RefreshRunStatus is the lifecycle state of a scheduled run.
type RefreshRunStatus string

const (
	RunStatusRunning   RefreshRunStatus = "running"
	RunStatusCompleted RefreshRunStatus = "completed"
	RunStatusFailed    RefreshRunStatus = "failed"
)

// RefreshRun is the audit record of one scheduled job execution.
type RefreshRun struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	JobType      RefreshJobType   `gorm:"type:varchar(50);not null" json:"job_type"`
	Status       RefreshRunStatus `gorm:"type:varchar(20);not null" json:"status"`
	StartedAt    time.Time        `gorm:"not null" json:"started_at"`
	CompletedAt  sql.NullTime     `json:"completed_at" swaggertype:"string" format:"date-time"`
	ErrorMessage sql.NullString   `json:"error_message" swaggertype:"string"`
	Details      datatypes.JSON   `gorm:"type:jsonb" json:"details"`
	CreatedAt    time.Time        `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the RefreshRun model.
func (RefreshRun) TableName() string {
	return "refresh_runs"
}
