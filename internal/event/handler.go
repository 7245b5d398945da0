package event

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid event ID."})
		return 0, false
	}
	return uint(id), true
}

// List godoc
// @Summary List all events
// @Tags events
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "message + data"
// @Failure 404 {object} map[string]interface{} "no events found"
// @Router /events [get]
func (h *Handler) List(c *gin.Context) {
	events, err := h.Service.List()
	if err != nil {
		log.Printf("❌ Failed to list events: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch events."})
		return
	}
	if len(events) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No events found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event list retrieved successfully.",
		"data":    events,
	})
}

// Get godoc
// @Summary Get one event by ID
// @Tags events
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /events/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	e, err := h.Service.Get(id)
	if err != nil {
		log.Printf("❌ Failed to fetch event %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch event."})
		return
	}
	if e == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event found successfully.",
		"data":    e,
	})
}

// Create godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param event body CreateEventRequest true "Event payload"
// @Success 201 {object} map[string]interface{} "data contains the created event"
// @Failure 400 {object} map[string]interface{}
// @Router /events [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "The fields 'name', 'date' and 'location' are required."})
		return
	}

	e, err := h.Service.Create(&req)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		log.Printf("❌ Failed to create event: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create event."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event created successfully.",
		"data":    e,
	})
}

// Update godoc
// @Summary Replace an event
// @Tags events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Event ID"
// @Param event body UpdateEventRequest true "Full event payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /events/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "The fields 'name', 'date' and 'location' are required."})
		return
	}

	e, err := h.Service.Update(id, &req)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		log.Printf("❌ Failed to update event %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update event."})
		return
	}
	if e == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully.",
		"data":    e,
	})
}

// Delete godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /events/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.Service.Delete(id)
	if err != nil {
		log.Printf("❌ Failed to delete event %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete event."})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully."})
}
