package reports

import (
	"time"
)

const (
	// Report types
	ReportTypeParticipants = "participants"
	ReportTypeEvents       = "events"

	// Report format constants
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

// ParticipantReportRow is one row of the participants-with-event-name join.
// EventName is empty for participants without an associated event.
type ParticipantReportRow struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Enterprise string `json:"enterprise"`
	Email      string `json:"email"`
	Skills     string `json:"skills"`
	EventName  string `json:"event_name"`
}

// EventReportRow is one row of the events-with-participant-count join.
type EventReportRow struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	Date              time.Time `json:"date"`
	Location          string    `json:"location"`
	Description       string    `json:"description"`
	ParticipantsCount int       `json:"participants_count"`
}

// ReportData carries whichever row set the requested report type needs.
type ReportData struct {
	Participants []ParticipantReportRow `json:"participants,omitempty"`
	Events       []EventReportRow       `json:"events,omitempty"`
}
