package handlers

import "github.com/gin-gonic/gin"

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Healthz(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"status": "ok"})
}

// Readyz matches Healthz today; the store is in memory and is ready the
// moment the process is.
func (h *HealthHandler) Readyz(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"status": "ready"})
}
