package participant

import (
	"time"
)

// Participant is the canonical participants row. EventID is nullable; the
// database sets it to NULL when the referenced event is deleted.
type Participant struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Enterprise string    `gorm:"type:varchar(255);not null;index" json:"enterprise"`
	Email      string    `gorm:"type:varchar(255);not null" json:"email"`
	Skills     string    `gorm:"type:text;not null" json:"skills"`
	Photo      string    `gorm:"type:varchar(255);not null" json:"photo"`
	EventID    *uint     `gorm:"index" json:"event_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ===========================
// 🟡 Participant write payload (create and full-record update share the same
// required set; Photo is already resolved to a stored filename)
type ParticipantRequest struct {
	Name       string `json:"name"`
	Enterprise string `json:"enterprise"`
	Email      string `json:"email"`
	Skills     string `json:"skills"`
	Photo      string `json:"photo"`
	EventID    *uint  `json:"event_id"`
}
