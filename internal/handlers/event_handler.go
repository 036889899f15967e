package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-server/internal/middleware"
	"calendar-server/internal/schemas"
	"calendar-server/internal/services"
	"calendar-server/internal/utils"
)

type EventHdl interface {
	ListEvents(c *gin.Context)
	CreateEvent(c *gin.Context)
	GetEvent(c *gin.Context)
	UpdateEvent(c *gin.Context)
	DeleteEvent(c *gin.Context)
}

// EventHandler serves the events of the authenticated user. RequireAuth must run first.
type EventHandler struct {
	EventService *services.EventService
}

func NewEventHandler(eventService *services.EventService) EventHdl {
	return &EventHandler{EventService: eventService}
}

func (handler *EventHandler) ListEvents(c *gin.Context) {
	events, err := handler.EventService.ListEvents(c, middleware.CurrentAuth(c).UserID())
	if err != nil {
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(c, events, http.StatusOK)
}

func (handler *EventHandler) CreateEvent(c *gin.Context) {
	req := middleware.Payload[schemas.EventCreateRequest](c)

	event, err := handler.EventService.CreateEvent(c, middleware.CurrentAuth(c).UserID(), req)
	if err != nil {
		writeEventError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, event, http.StatusCreated)
}

func (handler *EventHandler) GetEvent(c *gin.Context) {
	eventID, ok := utils.ParseIdParam(c)
	if !ok {
		return
	}

	event, err := handler.EventService.GetEvent(c, middleware.CurrentAuth(c).UserID(), eventID)
	if err != nil {
		writeEventError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, event, http.StatusOK)
}

func (handler *EventHandler) UpdateEvent(c *gin.Context) {
	eventID, ok := utils.ParseIdParam(c)
	if !ok {
		return
	}
	req := middleware.Payload[schemas.EventUpdateRequest](c)

	event, err := handler.EventService.UpdateEvent(c, middleware.CurrentAuth(c).UserID(), eventID, req)
	if err != nil {
		writeEventError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, event, http.StatusOK)
}

func (handler *EventHandler) DeleteEvent(c *gin.Context) {
	eventID, ok := utils.ParseIdParam(c)
	if !ok {
		return
	}

	if err := handler.EventService.DeleteEvent(c, middleware.CurrentAuth(c).UserID(), eventID); err != nil {
		writeEventError(c, err)
		return
	}

	utils.LogMessageWithFields(c, "info", "Event deleted")
	c.Status(http.StatusNoContent)
}

func writeEventError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEventNotFound):
		utils.WriteAndLogError(c, schemas.EventNotFound, http.StatusNotFound, err)
	case errors.Is(err, services.ErrInvalidEventTiming):
		utils.WriteAndLogError(c, schemas.InvalidEventTiming, http.StatusBadRequest, err)
	default:
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
	}
}
