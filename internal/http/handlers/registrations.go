package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viewcampus/eventportal/internal/domain/registration"
	"github.com/viewcampus/eventportal/internal/observability"
)

type RegistrationSubmitter interface {
	Submit(ctx context.Context, form registration.Form) (registration.Registration, error)
}

type RegistrationReader interface {
	RegistrationsByUser(userID string) []registration.Registration
}

type RegistrationsHandler struct {
	flow  RegistrationSubmitter
	store RegistrationReader
	prom  *observability.Prom
}

func NewRegistrationsHandler(flow RegistrationSubmitter, store RegistrationReader, prom *observability.Prom) *RegistrationsHandler {
	return &RegistrationsHandler{flow: flow, store: store, prom: prom}
}

const (
	msgRegistered = "Registration successful. Admin has been notified via email."
	// used when the registration was recorded but the notification
	// could not be delivered
	msgRegisteredNoEmail = "Registration submitted, but there was an issue sending the notification email."
)

func (h *RegistrationsHandler) Create(ctx *gin.Context) {
	var form registration.Form

	if !bindJSONWith(ctx, &form, "Registration failed") {
		return
	}

	reg, notifyErr := h.flow.Submit(ctx.Request.Context(), form)

	h.prom.RegistrationsTotal.Inc()

	message := msgRegistered
	if notifyErr != nil {
		message = msgRegisteredNoEmail
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"registration": reg,
		"message":      message,
	})
}

// ListByUser returns a bare array; an unknown user id simply yields an
// empty one.
func (h *RegistrationsHandler) ListByUser(ctx *gin.Context) {
	userID := ctx.Param("userId")

	ctx.JSON(http.StatusOK, h.store.RegistrationsByUser(userID))
}
