package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viewcampus/eventportal/internal/domain/event"
)

type EventsDirectory interface {
	ActiveEvents() []event.Event
	Event(id string) (event.Event, bool)
	CreateEvent(req event.CreateEventRequest) event.Event
	UpdateEvent(id string, upd event.Update) (event.Event, bool)
}

type EventsHandler struct {
	store EventsDirectory
}

func NewEventsHandler(store EventsDirectory) *EventsHandler {
	return &EventsHandler{store: store}
}

// ListEvents returns the public listing: active events only, as a bare
// array, matching what the student dashboard consumes.
func (h *EventsHandler) ListEvents(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.store.ActiveEvents())
}

func (h *EventsHandler) GetEventByID(ctx *gin.Context) {
	id := ctx.Param("id")

	e, ok := h.store.Event(id)

	if !ok {
		RespondNotFound(ctx, "Event not found")
		return
	}

	ctx.JSON(http.StatusOK, e)
}

func (h *EventsHandler) CreateEvent(ctx *gin.Context) {
	var req event.CreateEventRequest

	if !BindJSON(ctx, &req) {
		return
	}

	ctx.JSON(http.StatusCreated, h.store.CreateEvent(req))
}

// DeleteEvent deactivates the event rather than removing the row; the
// registration history stays intact and the event simply drops out of the
// public listing.
func (h *EventsHandler) DeleteEvent(ctx *gin.Context) {
	id := ctx.Param("id")

	inactive := false
	_, ok := h.store.UpdateEvent(id, event.Update{IsActive: &inactive})

	if !ok {
		RespondNotFound(ctx, "Event not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
