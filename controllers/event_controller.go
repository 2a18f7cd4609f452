package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func LogExercise(c *gin.Context) {
	uid := c.GetUint("userID")

	dateKey := dateKeyFromQuery(c)
	if dateKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	var input services.ExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.LogExercise(uid, dateKey, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func LogStudy(c *gin.Context) {
	uid := c.GetUint("userID")

	dateKey := dateKeyFromQuery(c)
	if dateKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	var input services.StudyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.LogStudy(uid, dateKey, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func LogTemptation(c *gin.Context) {
	uid := c.GetUint("userID")

	dateKey := dateKeyFromQuery(c)
	if dateKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	var input services.TemptationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.LogTemptation(uid, dateKey, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func LogSpiritualPractice(c *gin.Context) {
	uid := c.GetUint("userID")

	dateKey := dateKeyFromQuery(c)
	if dateKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	var input services.SpiritualPracticeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.LogSpiritualPractice(uid, dateKey, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
