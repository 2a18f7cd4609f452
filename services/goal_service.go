package services

import (
	"errors"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

func CreateGoal(userID uint, dateKey, kind, description string, slot int) (*models.Goal, error) {
	goal := models.Goal{
		UserID:      userID,
		DateKey:     dateKey,
		Kind:        kind,
		Slot:        slot,
		Description: description,
	}
	if err := config.DB.Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// SetGoalVerdict marks a goal completed or not. Only the owner can evaluate.
func SetGoalVerdict(userID, goalID uint, completed bool) error {
	var goal models.Goal
	err := config.DB.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("goal not found")
		}
		return err
	}
	goal.Completed = &completed
	return config.DB.Save(&goal).Error
}

func ListGoals(userID uint, rng DateRange) ([]models.Goal, error) {
	var goals []models.Goal
	err := config.DB.
		Where("user_id = ? AND date_key BETWEEN ? AND ?", userID, rng.Start, rng.End).
		Order("date_key ASC, slot ASC").
		Find(&goals).Error
	return goals, err
}
