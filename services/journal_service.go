package services

import (
	"errors"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type JournalInput struct {
	Title           string `json:"title"`
	Body            string `json:"body"`
	Category        string `json:"category"`
	DominantEmotion string `json:"dominant_emotion"`

	// optional "data:<mime>;base64,..." image
	Attachment string `json:"attachment"`
}

func CreateJournalEntry(userID uint, dateKey string, in JournalInput) (*models.JournalEntry, error) {
	entry := models.JournalEntry{
		UserID:          userID,
		DateKey:         dateKey,
		Title:           in.Title,
		Body:            in.Body,
		Category:        in.Category,
		DominantEmotion: in.DominantEmotion,
	}

	if in.Attachment != "" {
		url, err := utils.UploadBase64ImageToS3(in.Attachment, "journal-attachments")
		if err != nil {
			return nil, err
		}
		entry.AttachmentURL = url
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func UpdateJournalEntry(userID, entryID uint, in JournalInput) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	err := config.DB.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("journal entry not found")
		}
		return nil, err
	}

	entry.Title = in.Title
	entry.Body = in.Body
	entry.Category = in.Category
	entry.DominantEmotion = in.DominantEmotion

	if in.Attachment != "" {
		url, err := utils.UploadBase64ImageToS3(in.Attachment, "journal-attachments")
		if err != nil {
			return nil, err
		}
		entry.AttachmentURL = url
	}

	if err := config.DB.Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func ListJournalEntries(userID uint, rng DateRange) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	err := config.DB.
		Where("user_id = ? AND date_key BETWEEN ? AND ?", userID, rng.Start, rng.End).
		Order("date_key DESC").
		Find(&entries).Error
	return entries, err
}

func DeleteJournalEntry(userID, entryID uint) error {
	result := config.DB.Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.JournalEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("journal entry not found")
	}
	return nil
}
