package event

import (
	"time"
)

// Event is the canonical events row. The id is always database-generated.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"type:date;not null;index" json:"date"`
	Location    string    `gorm:"type:varchar(255);not null" json:"location"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// EventWithCount is the events-with-participant-count projection used by the
// reports module. Events without participants appear with a count of 0.
type EventWithCount struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Date              time.Time `json:"date"`
	Location          string    `json:"location"`
	ParticipantsCount int       `json:"participants_count"`
}

// ===========================
// 🟡 Create Event Request
type CreateEventRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"` // "2006-01-02"
	Location    string `json:"location" binding:"required"`
}

// ===========================
// 🟠 Update Event Request (full replacement, same required set as create)
type UpdateEventRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"` // "2006-01-02"
	Location    string `json:"location" binding:"required"`
}
