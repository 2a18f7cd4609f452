package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func SubmitMorningCheckIn(c *gin.Context) {
	uid := c.GetUint("userID")

	dateKey := dateKeyFromQuery(c)
	if dateKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	var input services.MorningCheckInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.SubmitMorningCheckIn(uid, dateKey, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "morning check-in saved", "date": dateKey})
}

func SubmitAfternoonCheckIn(c *gin.Context) {
	uid := c.GetUint("userID")

	dateKey := dateKeyFromQuery(c)
	if dateKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	var input services.AfternoonCheckInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.SubmitAfternoonCheckIn(uid, dateKey, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "afternoon check-in saved", "date": dateKey})
}

func SubmitEveningCheckIn(c *gin.Context) {
	uid := c.GetUint("userID")

	dateKey := dateKeyFromQuery(c)
	if dateKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	var input services.EveningCheckInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.SubmitEveningCheckIn(uid, dateKey, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "evening check-in saved", "date": dateKey})
}

func GetToday(c *gin.Context) {
	uid := c.GetUint("userID")

	dateKey := dateKeyFromQuery(c)
	if dateKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	view, err := services.GetTodayView(uid, dateKey, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}
