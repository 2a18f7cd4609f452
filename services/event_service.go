package services

import (
	"fmt"

	"backend/config"
	"backend/models"
)

type ExerciseInput struct {
	MomentOfDay string   `json:"moment_of_day"`
	Kind        string   `json:"kind"`
	MuscleGroup string   `json:"muscle_group"`
	DurationMin *int     `json:"duration_min"`
	DistanceKM  *float64 `json:"distance_km"`
	Intensity   *int     `json:"intensity"`
	SkipReason  string   `json:"skip_reason"`
	Notes       string   `json:"notes"`
}

func LogExercise(userID uint, dateKey string, in ExerciseInput) error {
	session := models.ExerciseSession{
		UserID:      userID,
		DateKey:     dateKey,
		MomentOfDay: in.MomentOfDay,
		Kind:        in.Kind,
		MuscleGroup: in.MuscleGroup,
		DurationMin: in.DurationMin,
		DistanceKM:  in.DistanceKM,
		Intensity:   in.Intensity,
		SkipReason:  in.SkipReason,
		Notes:       in.Notes,
	}
	return config.DB.Create(&session).Error
}

type StudyInput struct {
	Topic       string `json:"topic"`
	DurationMin *int   `json:"duration_min"`
	Quality     *int   `json:"quality"`
	Notes       string `json:"notes"`
}

func LogStudy(userID uint, dateKey string, in StudyInput) error {
	session := models.StudySession{
		UserID:      userID,
		DateKey:     dateKey,
		Topic:       in.Topic,
		DurationMin: in.DurationMin,
		Quality:     in.Quality,
		Notes:       in.Notes,
	}
	return config.DB.Create(&session).Error
}

type TemptationInput struct {
	Kind      string `json:"kind"`
	Trigger   string `json:"trigger"`
	Intensity *int   `json:"intensity"`
	Resisted  bool   `json:"resisted"`
	Notes     string `json:"notes"`
}

func LogTemptation(userID uint, dateKey string, in TemptationInput) error {
	event := models.TemptationEvent{
		UserID:    userID,
		DateKey:   dateKey,
		Kind:      in.Kind,
		Trigger:   in.Trigger,
		Intensity: in.Intensity,
		Resisted:  in.Resisted,
		Notes:     in.Notes,
	}
	if err := config.DB.Create(&event).Error; err != nil {
		return err
	}

	if in.Resisted {
		EmitAlert(userID, "info", fmt.Sprintf("Temptation resisted (%s). Keep going.", in.Kind))
	} else {
		EmitAlert(userID, "warning", fmt.Sprintf("Temptation logged (%s, trigger: %s).", in.Kind, in.Trigger))
	}
	return nil
}

type SpiritualPracticeInput struct {
	MomentOfDay string `json:"moment_of_day"`
	Practice    string `json:"practice"`
	Book        string `json:"book"`
	Chapter     *int   `json:"chapter"`
	Insight     string `json:"insight"`
}

func LogSpiritualPractice(userID uint, dateKey string, in SpiritualPracticeInput) error {
	practice := models.SpiritualPractice{
		UserID:      userID,
		DateKey:     dateKey,
		MomentOfDay: in.MomentOfDay,
		Practice:    in.Practice,
		Book:        in.Book,
		Chapter:     in.Chapter,
		Insight:     in.Insight,
	}
	return config.DB.Create(&practice).Error
}
