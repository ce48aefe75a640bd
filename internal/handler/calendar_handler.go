package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/services"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/transport/httpdto"
)

type CalendarHandler struct {
	service *services.CalendarService
}

func NewCalendarHandler(service *services.CalendarService) *CalendarHandler {
	return &CalendarHandler{service: service}
}

func (h *CalendarHandler) List(c *gin.Context) {
	owner, ok := services.OwnerFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	events, err := h.service.List(c.Request.Context(), owner.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.ListEventsResponse{
		Events: httpdto.FromEventSlice(events),
	}))
}

func (h *CalendarHandler) Create(c *gin.Context) {
	owner, ok := services.OwnerFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	var req httpdto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	contact := req.OwnerContact
	if contact == "" {
		contact = owner.Email
	}

	created, err := h.service.Create(c.Request.Context(), owner.ID, services.CreateEventInput{
		Title:        req.Title,
		ScheduledAt:  req.ScheduledAt,
		Platform:     req.Platform,
		Notify:       req.Notify,
		OwnerContact: contact,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.FromEvent(created)))
}

func (h *CalendarHandler) Delete(c *gin.Context) {
	owner, ok := services.OwnerFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("missing required fields", "VALIDATION_FAILED"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), owner.ID, eventID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.DeleteEventResponse{Deleted: true}))
}
