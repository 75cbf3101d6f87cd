package services

import (
	"context"
	"errors"

	"quiz-admin-backend/internal/models"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type RosterService struct {
	db *gorm.DB
}

func NewRosterService(db *gorm.DB) *RosterService {
	return &RosterService{db: db}
}

// ListUsers fetches the entire login collection in one unordered batch.
// Boolean columns come back strictly false when the store never set them.
func (s *RosterService) ListUsers(ctx context.Context) ([]models.UserRecord, error) {
	var users []models.UserRecord
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// SaveFlags writes the six toggle columns for exactly one row. Name, email
// and isAdmin are read-only; other rows are untouched.
func (s *RosterService) SaveFlags(ctx context.Context, id string, flags models.UserFlags) (*models.UserRecord, error) {
	res := s.db.WithContext(ctx).
		Model(&models.UserRecord{}).
		Where("id = ?", id).
		Updates(flags.Columns())
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	var updated models.UserRecord
	if err := s.db.WithContext(ctx).First(&updated, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}
