package models

import (
	"time"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

type Report struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID    uint   `gorm:"index;not null" json:"user_id"`
	UserName  string `gorm:"size:100" json:"user_name"`
	UserEmail string `json:"user_email"`

	ImageURL     string `gorm:"not null" json:"image_url"`
	Location     string `gorm:"size:200;not null" json:"location"`
	Description  string `gorm:"size:1000;not null" json:"description"`
	Status       string `gorm:"size:20;index;not null;default:'pending'" json:"status"`
	AdminComment string `gorm:"default:''" json:"admin_comment"`
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ReportStats holds per-status report counts. Total is always the sum of the
// three status buckets.
type ReportStats struct {
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
	Total      int64 `json:"total"`
}
