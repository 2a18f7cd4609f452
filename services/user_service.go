package services

import (
	"errors"

	"backend/config"
	"backend/models"
)

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.First(&user, userID)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}

	return map[string]interface{}{
		"id":          user.ID,
		"email":       user.Email,
		"full_name":   user.FullName,
		"timezone":    user.Timezone,
		"mfa_enabled": user.MFAEnabled,
	}, nil
}

type ProfileInput struct {
	FullName   string `json:"full_name"`
	Timezone   string `json:"timezone"`
	MFAEnabled *bool  `json:"mfa_enabled"`
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	result := config.DB.First(&user, userID)
	if result.Error != nil {
		return errors.New("user not found")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Timezone != "" {
		user.Timezone = input.Timezone
	}
	if input.MFAEnabled != nil {
		user.MFAEnabled = *input.MFAEnabled
	}

	return config.DB.Save(&user).Error
}
