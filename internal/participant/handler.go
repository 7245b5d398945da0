package participant

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"event-management-backend/utils"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(param))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid participant ID."})
		return 0, false
	}
	return uint(id), true
}

// bindMultipart reads the multipart form fields shared by create and update.
// The photo reference comes from an uploaded "photo" file when present,
// otherwise from a "photo" form field carrying an existing filename.
func (h *Handler) bindMultipart(c *gin.Context) (*ParticipantRequest, bool) {
	req := &ParticipantRequest{
		Name:       c.PostForm("name"),
		Enterprise: c.PostForm("enterprise"),
		Email:      c.PostForm("email"),
		Skills:     c.PostForm("skills"),
	}

	if file, err := c.FormFile("photo"); err == nil {
		filename, err := utils.SaveUploadedPhoto(c, file)
		if err != nil {
			log.Printf("❌ Failed to store uploaded photo: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store uploaded photo."})
			return nil, false
		}
		req.Photo = filename
	} else {
		req.Photo = c.PostForm("photo")
	}

	if raw := c.PostForm("event_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid event_id."})
			return nil, false
		}
		eventID := uint(id)
		req.EventID = &eventID
	}

	if req.Name == "" || req.Enterprise == "" || req.Email == "" || req.Skills == "" || req.Photo == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "The fields 'name', 'enterprise', 'email', 'skills' and 'photo' are required.",
		})
		return nil, false
	}

	return req, true
}

// List godoc
// @Summary List participants
// @Tags participants
// @Produce json
// @Security ApiKeyAuth
// @Param enterprise query string false "Filter by enterprise name"
// @Success 200 {object} map[string]interface{} "message + data"
// @Failure 404 {object} map[string]interface{} "no participants found"
// @Router /participants [get]
func (h *Handler) List(c *gin.Context) {
	participants, err := h.Service.List(c.Query("enterprise"))
	if err != nil {
		log.Printf("❌ Failed to list participants: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch participants."})
		return
	}
	if len(participants) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No participants found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Participant list retrieved successfully.",
		"data":    participants,
	})
}

// Get godoc
// @Summary Get one participant by ID
// @Tags participants
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Participant ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /participants/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	p, err := h.Service.Get(id)
	if err != nil {
		log.Printf("❌ Failed to fetch participant %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch participant."})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Participant not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Participant found successfully.",
		"data":    p,
	})
}

// ListByEvent godoc
// @Summary List participants registered for one event
// @Tags participants
// @Produce json
// @Security ApiKeyAuth
// @Param eventId path int true "Event ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /participants/event/{eventId} [get]
func (h *Handler) ListByEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("eventId"))
	if err != nil || eventID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid event ID."})
		return
	}

	participants, err := h.Service.ListByEvent(uint(eventID))
	if err != nil {
		log.Printf("❌ Failed to list participants for event %d: %v", eventID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch participants."})
		return
	}
	if len(participants) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No participants found for this event."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Participant list retrieved successfully.",
		"data":    participants,
	})
}

// Create godoc
// @Summary Create a participant
// @Description Multipart form; the photo comes from the uploaded "photo" file or a "photo" field with an existing filename.
// @Tags participants
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param name formData string true "Name"
// @Param enterprise formData string true "Enterprise"
// @Param email formData string true "Email"
// @Param skills formData string true "Skills (comma-delimited)"
// @Param photo formData file false "Photo upload"
// @Param event_id formData int false "Associated event ID"
// @Success 201 {object} map[string]interface{} "data contains the created participant"
// @Failure 400 {object} map[string]interface{}
// @Router /participants [post]
func (h *Handler) Create(c *gin.Context) {
	req, ok := h.bindMultipart(c)
	if !ok {
		return
	}

	p, err := h.Service.Create(req)
	if err != nil {
		log.Printf("❌ Failed to create participant: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create participant."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Participant created successfully.",
		"data":    p,
	})
}

// Update godoc
// @Summary Replace a participant
// @Tags participants
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Participant ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /participants/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	req, ok := h.bindMultipart(c)
	if !ok {
		return
	}

	p, err := h.Service.Update(id, req)
	if err != nil {
		log.Printf("❌ Failed to update participant %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update participant."})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Participant not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Participant updated successfully.",
		"data":    p,
	})
}

// Delete godoc
// @Summary Delete a participant
// @Tags participants
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Participant ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /participants/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.Service.Delete(id)
	if err != nil {
		log.Printf("❌ Failed to delete participant %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete participant."})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": "Participant not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Participant deleted successfully."})
}
