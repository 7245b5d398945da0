package reports

import (
	"errors"
	"fmt"
)

// ErrNoData signals that the backing query matched zero rows; the handler
// turns this into a 404 and no document is emitted.
var ErrNoData = errors.New("no rows matched the report query")

// ReportService fetches the join projection and renders it in the requested
// format. One query per report, no caching.
type ReportService interface {
	ExportParticipants(format string) ([]byte, string, string, error)
	ExportEvents(format string) ([]byte, string, string, error)
}

type reportService struct {
	repo     ReportRepository
	exporter ReportExporter
}

func NewReportService(repo ReportRepository, exporter ReportExporter) ReportService {
	return &reportService{repo: repo, exporter: exporter}
}

func (s *reportService) ExportParticipants(format string) ([]byte, string, string, error) {
	rows, err := s.repo.GetParticipantsWithEvent()
	if err != nil {
		return nil, "", "", fmt.Errorf("participants report query failed: %w", err)
	}
	if len(rows) == 0 {
		return nil, "", "", ErrNoData
	}

	return s.exporter.Export(ReportTypeParticipants, format, ReportData{Participants: rows})
}

func (s *reportService) ExportEvents(format string) ([]byte, string, string, error) {
	rows, err := s.repo.GetEventsWithParticipantCount()
	if err != nil {
		return nil, "", "", fmt.Errorf("events report query failed: %w", err)
	}
	if len(rows) == 0 {
		return nil, "", "", ErrNoData
	}

	return s.exporter.Export(ReportTypeEvents, format, ReportData{Events: rows})
}
