package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ReferenceController struct {
	Svc *services.ReferenceService
}

func NewReferenceController(svc *services.ReferenceService) *ReferenceController {
	return &ReferenceController{Svc: svc}
}

// catalogs backing the temptation form selectors
func (rc *ReferenceController) GetReferenceData(c *gin.Context) {
	c.JSON(http.StatusOK, rc.Svc.Get(time.Now()))
}
