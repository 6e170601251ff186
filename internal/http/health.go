package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookcatalog/internal/database"
)

type HealthController struct {
	db *database.Database
}

func NewHealthController(db *database.Database) *HealthController {
	return &HealthController{db: db}
}

// Status handles GET /health-check.
func (h *HealthController) Status(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, Message{Detail: "Database unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, Message{Detail: "All system online"})
}
