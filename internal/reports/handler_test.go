package reports

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	participants []ParticipantReportRow
	events       []EventReportRow
	err          error
}

func (f *fakeReportRepo) GetParticipantsWithEvent() ([]ParticipantReportRow, error) {
	return f.participants, f.err
}

func (f *fakeReportRepo) GetEventsWithParticipantCount() ([]EventReportRow, error) {
	return f.events, f.err
}

func newReportsRouter(repo ReportRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(NewReportService(repo, NewReportExporter()))

	r := gin.New()
	r.GET("/api/reports/participants/export/:format", h.ExportParticipants)
	r.GET("/api/reports/events/export/:format", h.ExportEvents)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestExportParticipants_PDF(t *testing.T) {
	repo := &fakeReportRepo{participants: []ParticipantReportRow{
		{ID: 1, Name: "Ana", Enterprise: "ACME", Email: "ana@acme.com", Skills: "go", EventName: "Tech Congress"},
	}}
	r := newReportsRouter(repo)

	w := get(r, "/api/reports/participants/export/pdf")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/pdf", w.Header().Get("Content-Type"))

	disposition := w.Header().Get("Content-Disposition")
	require.True(t, strings.HasPrefix(disposition, "attachment; filename=participants_report_"))
	require.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestExportEvents_CSV(t *testing.T) {
	repo := &fakeReportRepo{events: []EventReportRow{
		{ID: 1, Name: "Tech Congress", Date: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), Location: "SP", ParticipantsCount: 3},
	}}
	r := newReportsRouter(repo)

	w := get(r, "/api/reports/events/export/csv")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	require.Contains(t, w.Body.String(), "Tech Congress")
}

func TestExportParticipants_NoRowsIs404(t *testing.T) {
	r := newReportsRouter(&fakeReportRepo{})

	w := get(r, "/api/reports/participants/export/pdf")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "No participants found.")
}

func TestExportEvents_NoRowsIs404(t *testing.T) {
	r := newReportsRouter(&fakeReportRepo{})

	w := get(r, "/api/reports/events/export/excel")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "No events found.")
}

func TestExport_UnknownFormatIs400(t *testing.T) {
	r := newReportsRouter(&fakeReportRepo{})

	w := get(r, "/api/reports/participants/export/docx")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Unsupported format")
}
