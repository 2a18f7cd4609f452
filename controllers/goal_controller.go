package controllers

import (
	"net/http"
	"strconv"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type GoalInput struct {
	Kind        string `json:"kind"`
	Slot        int    `json:"slot"`
	Description string `json:"description" binding:"required"`
}

func CreateGoal(c *gin.Context) {
	uid := c.GetUint("userID")

	dateKey := dateKeyFromQuery(c)
	if dateKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	var input GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.CreateGoal(uid, dateKey, input.Kind, input.Description, input.Slot)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func SetGoalVerdict(c *gin.Context) {
	uid := c.GetUint("userID")

	goalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return
	}

	var input struct {
		Completed *bool `json:"completed" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.SetGoalVerdict(uid, uint(goalID), *input.Completed); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func ListGoals(c *gin.Context) {
	uid := c.GetUint("userID")

	rng := services.ResolveRange(
		c.DefaultQuery("range", "7d"),
		c.Query("from"),
		c.Query("to"),
		time.Now(),
	)

	goals, err := services.ListGoals(uid, rng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}
