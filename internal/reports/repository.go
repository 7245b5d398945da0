package reports

import (
	"gorm.io/gorm"
)

// ReportRepository defines the read-only join projections the reports
// service renders from.
type ReportRepository interface {
	// GetParticipantsWithEvent returns every participant with the associated
	// event's name; participants without an event still appear (empty name).
	GetParticipantsWithEvent() ([]ParticipantReportRow, error)

	// GetEventsWithParticipantCount returns every event with its participant
	// count, ordered ascending by date; events with no participants still
	// appear with a count of 0.
	GetEventsWithParticipantCount() ([]EventReportRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ReportRepository {
	return &repository{db: db}
}

func (r *repository) GetParticipantsWithEvent() ([]ParticipantReportRow, error) {
	var out []ParticipantReportRow
	err := r.db.Table("participants p").
		Select(`
			p.id,
			p.name,
			p.enterprise,
			p.email,
			p.skills,
			COALESCE(e.name, '') AS event_name
		`).
		Joins("LEFT JOIN events e ON p.event_id = e.id").
		Order("p.id ASC").
		Scan(&out).Error
	return out, err
}

func (r *repository) GetEventsWithParticipantCount() ([]EventReportRow, error) {
	var out []EventReportRow
	err := r.db.Table("events e").
		Select(`
			e.id,
			e.name,
			e.date,
			e.location,
			e.description,
			COUNT(p.id) AS participants_count
		`).
		Joins("LEFT JOIN participants p ON p.event_id = e.id").
		Group("e.id").
		Order("e.date ASC").
		Scan(&out).Error
	return out, err
}
