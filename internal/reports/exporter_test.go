package reports

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleParticipants() []ParticipantReportRow {
	return []ParticipantReportRow{
		{ID: 1, Name: "Ana", Enterprise: "ACME", Email: "ana@acme.com", Skills: "go,sql", EventName: "Tech Congress"},
		{ID: 2, Name: "Bruno", Enterprise: "Initech", Email: "bruno@initech.com", Skills: "js", EventName: ""},
	}
}

func sampleEvents() []EventReportRow {
	return []EventReportRow{
		{ID: 1, Name: "Tech Congress", Date: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), Location: "SP", Description: "annual meetup", ParticipantsCount: 12},
		{ID: 2, Name: "Go Meetup", Date: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), Location: "RJ", ParticipantsCount: 0},
	}
}

func TestExport_ParticipantsPDF(t *testing.T) {
	exp := NewReportExporter()

	data, fname, mime, err := exp.Export(ReportTypeParticipants, FormatPDF, ReportData{Participants: sampleParticipants()})
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	require.Equal(t, "application/pdf", mime)
	require.True(t, strings.HasPrefix(fname, "participants_report_"))
	require.True(t, strings.HasSuffix(fname, ".pdf"))
}

func TestExport_EventsPDF(t *testing.T) {
	exp := NewReportExporter()

	data, fname, mime, err := exp.Export(ReportTypeEvents, FormatPDF, ReportData{Events: sampleEvents()})
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	require.Equal(t, "application/pdf", mime)
	require.True(t, strings.HasSuffix(fname, ".pdf"))
}

func TestExport_ParticipantsCSV(t *testing.T) {
	exp := NewReportExporter()

	data, fname, mime, err := exp.Export(ReportTypeParticipants, FormatCSV, ReportData{Participants: sampleParticipants()})
	require.NoError(t, err)
	require.Equal(t, "text/csv", mime)
	require.True(t, strings.HasSuffix(fname, ".csv"))

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + two rows
	require.Equal(t, []string{"id", "name", "enterprise", "email", "skills", "event_name"}, records[0])
	require.Equal(t, "Ana", records[1][1])
	require.Equal(t, "", records[2][5]) // participant without an event
}

func TestExport_EventsCSV(t *testing.T) {
	exp := NewReportExporter()

	data, _, _, err := exp.Export(ReportTypeEvents, FormatCSV, ReportData{Events: sampleEvents()})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, "15/06/2025", records[1][2])
	require.Equal(t, "0", records[2][5])
}

func TestExport_ParticipantsExcel(t *testing.T) {
	exp := NewReportExporter()

	data, fname, mime, err := exp.Export(ReportTypeParticipants, FormatExcel, ReportData{Participants: sampleParticipants()})
	require.NoError(t, err)
	require.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", mime)
	require.True(t, strings.HasSuffix(fname, ".xlsx"))

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	require.NotContains(t, f.GetSheetList(), "Sheet1")

	rows, err := f.GetRows("Participants")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "Enterprise", rows[0][2])
	require.Equal(t, "ACME", rows[1][2])
}

func TestExport_EventsExcel(t *testing.T) {
	exp := NewReportExporter()

	data, _, _, err := exp.Export(ReportTypeEvents, FormatExcel, ReportData{Events: sampleEvents()})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Events")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "15/06/2025", rows[1][2])
	require.Equal(t, "12", rows[1][5])
}

func TestExport_UnsupportedFormat(t *testing.T) {
	exp := NewReportExporter()

	_, _, _, err := exp.Export(ReportTypeParticipants, "docx", ReportData{Participants: sampleParticipants()})
	require.Error(t, err)

	_, _, _, err = exp.Export("unknown", FormatPDF, ReportData{})
	require.Error(t, err)
}

func TestTruncateToWidth(t *testing.T) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 10)

	short := "ok"
	require.Equal(t, short, truncateToWidth(pdf, short, 40))

	long := strings.Repeat("participant", 10)
	got := truncateToWidth(pdf, long, 40)
	require.True(t, strings.HasSuffix(got, "..."))
	require.Less(t, pdf.GetStringWidth(got), 40.0)
}
