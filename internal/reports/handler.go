package reports

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service ReportService
}

func NewHandler(svc ReportService) *Handler {
	return &Handler{service: svc}
}

func validFormat(format string) bool {
	switch format {
	case FormatPDF, FormatExcel, FormatCSV:
		return true
	}
	return false
}

// ExportParticipants godoc
// @Summary Export the participants report
// @Description Streams the participants-with-event-name report as pdf, excel or csv.
// @Tags reports
// @Produce application/pdf
// @Security ApiKeyAuth
// @Param format path string true "Export format" Enums(pdf, excel, csv)
// @Success 200 {file} file
// @Failure 404 {object} map[string]interface{} "no participants found"
// @Router /reports/participants/export/{format} [get]
func (h *Handler) ExportParticipants(c *gin.Context) {
	format := c.Param("format")
	if !validFormat(format) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unsupported format. Use pdf, excel or csv."})
		return
	}

	data, fname, mime, err := h.service.ExportParticipants(format)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No participants found."})
			return
		}
		log.Printf("❌ Failed to generate participants report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate participants report."})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fname))
	c.Data(http.StatusOK, mime, data)
}

// ExportEvents godoc
// @Summary Export the events report
// @Description Streams the events-with-participant-count report as pdf, excel or csv.
// @Tags reports
// @Produce application/pdf
// @Security ApiKeyAuth
// @Param format path string true "Export format" Enums(pdf, excel, csv)
// @Success 200 {file} file
// @Failure 404 {object} map[string]interface{} "no events found"
// @Router /reports/events/export/{format} [get]
func (h *Handler) ExportEvents(c *gin.Context) {
	format := c.Param("format")
	if !validFormat(format) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unsupported format. Use pdf, excel or csv."})
		return
	}

	data, fname, mime, err := h.service.ExportEvents(format)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No events found."})
			return
		}
		log.Printf("❌ Failed to generate events report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate events report."})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fname))
	c.Data(http.StatusOK, mime, data)
}
