package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
)

const dateKeyLayout = "2006-01-02"

// dateKeyFromQuery reads the optional ?date=YYYY-MM-DD param, defaulting to
// today. Returns "" on a malformed date.
func dateKeyFromQuery(c *gin.Context) string {
	raw := c.Query("date")
	if raw == "" {
		return time.Now().Format(dateKeyLayout)
	}
	if _, err := time.Parse(dateKeyLayout, raw); err != nil {
		return ""
	}
	return raw
}
