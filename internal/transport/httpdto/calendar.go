package httpdto

import (
	"time"

	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/domain/event"
)

type CreateEventRequest struct {
	Title        string    `json:"title"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	Platform     string    `json:"platform"`
	Notify       bool      `json:"notify"`
	OwnerContact string    `json:"owner_contact"`
}

type EventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Platform    string    `json:"platform"`
	Notify      bool      `json:"notify"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListEventsResponse struct {
	Events []EventResponse `json:"events"`
}

type DeleteEventResponse struct {
	Deleted bool `json:"deleted"`
}

type WatchdogResponse struct {
	Due       int    `json:"due"`
	Processed int    `json:"processed"`
	Message   string `json:"message,omitempty"`
}

func FromEvent(e event.ScheduledEvent) EventResponse {
	return EventResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		ScheduledAt: e.ScheduledAt,
		Platform:    e.Platform,
		Notify:      e.Notify,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
	}
}

func FromEventSlice(items []event.ScheduledEvent) []EventResponse {
	out := make([]EventResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromEvent(e))
	}
	return out
}
