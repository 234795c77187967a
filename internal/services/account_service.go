package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tyforge/tyforge-backend/internal/models"
	"gorm.io/gorm"
)

// AccountService covers the owner-scoped reads and writes on a user's rows.
type AccountService struct {
	db *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

func (s *AccountService) Orders(userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (s *AccountService) Projects(userID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (s *AccountService) Synopses(userID uuid.UUID) ([]models.Synopsis, error) {
	var synopses []models.Synopsis
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&synopses).Error
	return synopses, err
}

// Meetings are ordered by schedule time, not creation time.
func (s *AccountService) Meetings(userID uuid.UUID) ([]models.Meeting, error) {
	var meetings []models.Meeting
	err := s.db.Where("user_id = ?", userID).Order("scheduled_at DESC").Find(&meetings).Error
	return meetings, err
}

// AddSynopsis records an already-persisted upload. The file is written to disk
// before this row exists; that window is an accepted limitation.
func (s *AccountService) AddSynopsis(userID uuid.UUID, filePath, originalName string) (*models.Synopsis, error) {
	syn := models.Synopsis{
		ID:           uuid.New(),
		UserID:       userID,
		FileName:     filePath,
		OriginalName: originalName,
		Status:       "Pending",
	}
	if err := s.db.Create(&syn).Error; err != nil {
		return nil, fmt.Errorf("failed to record synopsis: %w", err)
	}
	return &syn, nil
}

// BookMeeting schedules a consultation exactly one day out with a canned note.
// There is no double-booking check.
func (s *AccountService) BookMeeting(userID uuid.UUID) (*models.Meeting, error) {
	meeting := models.Meeting{
		ID:          uuid.New(),
		UserID:      userID,
		ScheduledAt: time.Now().Add(24 * time.Hour),
		Status:      "Scheduled",
		Notes:       "One-on-one meet",
	}
	if err := s.db.Create(&meeting).Error; err != nil {
		return nil, fmt.Errorf("failed to book meeting: %w", err)
	}
	return &meeting, nil
}

func (s *AccountService) RequestAdminHelp(userID uuid.UUID, requestType, description string) (*models.AdminRequest, error) {
	req := models.AdminRequest{
		ID:          uuid.New(),
		UserID:      userID,
		RequestType: requestType,
		Description: description,
		Status:      "pending",
	}
	if err := s.db.Create(&req).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin request: %w", err)
	}
	return &req, nil
}

func (s *AccountService) UpdateProfile(userID uuid.UUID, name, phone string) error {
	res := s.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"name":  name,
		"phone": phone,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
