package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Message is the response body for mutations and errors: {"detail": "..."}.
type Message struct {
	Detail string `json:"detail"`
}

// bookIDParam parses the :id path parameter. A non-numeric id is a
// validation failure; the helper writes the 422 response and reports false.
func bookIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, Message{Detail: "invalid book id"})
		return 0, false
	}
	return uint(id), true
}
