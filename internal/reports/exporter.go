package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// ReportExporter defines the interface for exporting reports in different formats
type ReportExporter interface {
	Export(reportType, format string, data ReportData) ([]byte, string, string, error)
}

type reportExporter struct{}

func NewReportExporter() ReportExporter {
	return &reportExporter{}
}

// Export renders the requested report type in the requested format and
// returns the document bytes, the download filename and the MIME type.
func (e *reportExporter) Export(reportType, format string, data ReportData) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch reportType {
	case ReportTypeParticipants:
		return e.exportParticipantsByFormat(format, timestamp, data.Participants)
	case ReportTypeEvents:
		return e.exportEventsByFormat(format, timestamp, data.Events)
	default:
		return nil, "", "", fmt.Errorf("unsupported report type: %s", reportType)
	}
}

//// ============================
/// PARTICIPANTS EXPORTS
//// ============================

func (e *reportExporter) exportParticipantsByFormat(format, timestamp string, rows []ParticipantReportRow) ([]byte, string, string, error) {
	switch format {
	case FormatPDF:
		data, err := e.exportParticipantsPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("participants_report_%s.pdf", timestamp), "application/pdf", nil

	case FormatExcel:
		data, err := e.exportParticipantsExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("participants_report_%s.xlsx", timestamp), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatCSV:
		data, err := e.exportParticipantsCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("participants_report_%s.csv", timestamp), "text/csv", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format for participants: %s", format)
	}
}

func (e *reportExporter) exportParticipantsPDF(rows []ParticipantReportRow) ([]byte, error) {
	headers := []string{"ID", "Name", "Enterprise", "Email", "Event"}
	widths := []float64{12, 45, 45, 50, 38}

	pdf := newReportPDF("Participants Report", headers, widths)

	for _, r := range rows {
		writeReportRow(pdf, widths, []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.Name,
			r.Enterprise,
			r.Email,
			r.EventName,
		})
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) exportParticipantsExcel(rows []ParticipantReportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Participants"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}

	headers := []string{"ID", "Name", "Enterprise", "Email", "Skills", "Event"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, r := range rows {
		values := []interface{}{r.ID, r.Name, r.Enterprise, r.Email, r.Skills, r.EventName}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) exportParticipantsCSV(rows []ParticipantReportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "name", "enterprise", "email", "skills", "event_name"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.Name,
			r.Enterprise,
			r.Email,
			r.Skills,
			r.EventName,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

//// ============================
/// EVENTS EXPORTS
//// ============================

func (e *reportExporter) exportEventsByFormat(format, timestamp string, rows []EventReportRow) ([]byte, string, string, error) {
	switch format {
	case FormatPDF:
		data, err := e.exportEventsPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("events_report_%s.pdf", timestamp), "application/pdf", nil

	case FormatExcel:
		data, err := e.exportEventsExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("events_report_%s.xlsx", timestamp), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatCSV:
		data, err := e.exportEventsCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("events_report_%s.csv", timestamp), "text/csv", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format for events: %s", format)
	}
}

func (e *reportExporter) exportEventsPDF(rows []EventReportRow) ([]byte, error) {
	headers := []string{"ID", "Name", "Date", "Location", "Description", "Participants"}
	widths := []float64{12, 40, 22, 35, 56, 25}

	pdf := newReportPDF("Events Report", headers, widths)

	for _, r := range rows {
		writeReportRow(pdf, widths, []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.Name,
			r.Date.Format("02/01/2006"),
			r.Location,
			r.Description,
			strconv.Itoa(r.ParticipantsCount),
		})
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) exportEventsExcel(rows []EventReportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Events"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}

	headers := []string{"ID", "Name", "Date", "Location", "Description", "Participants"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, r := range rows {
		values := []interface{}{r.ID, r.Name, r.Date.Format("02/01/2006"), r.Location, r.Description, r.ParticipantsCount}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) exportEventsCSV(rows []EventReportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "name", "date", "location", "description", "participants_count"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.Name,
			r.Date.Format("02/01/2006"),
			r.Location,
			r.Description,
			strconv.Itoa(r.ParticipantsCount),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

//// ============================
/// PDF TABLE PRIMITIVES
//// ============================

const reportRowHeight = 8.0

// newReportPDF writes the centered title, the bold header row and the rule
// beneath it, leaving the cursor on the first data row.
func newReportPDF(title string, headers []string, widths []float64) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "", 0, "L", false, 0, "")
	}
	pdf.Ln(7)

	left, _, right, _ := pdf.GetMargins()
	pageW, _ := pdf.GetPageSize()
	y := pdf.GetY()
	pdf.Line(left, y, pageW-right, y)
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 10)
	return pdf
}

// writeReportRow draws one data row at the fixed row height, truncating each
// cell with an ellipsis when the content exceeds its column width. Page
// overflow is left to gofpdf's automatic page breaks.
func writeReportRow(pdf *gofpdf.Fpdf, widths []float64, cells []string) {
	for i, cell := range cells {
		pdf.CellFormat(widths[i], reportRowHeight, truncateToWidth(pdf, cell, widths[i]), "", 0, "L", false, 0, "")
	}
	pdf.Ln(reportRowHeight)
}

func truncateToWidth(pdf *gofpdf.Fpdf, text string, width float64) string {
	const pad = 2.0
	if pdf.GetStringWidth(text) <= width-pad {
		return text
	}

	runes := []rune(text)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > width-pad {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
