package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"healthmate/internal/model"
)

// InsightRepository persists analysis results. There is deliberately no
// uniqueness constraint on (file, user): two analysis runs on the same file
// produce two rows.
type InsightRepository struct {
	db *gorm.DB
}

func NewInsightRepository(db *gorm.DB) *InsightRepository {
	return &InsightRepository{db: db}
}

func (r *InsightRepository) Create(insight *model.Insight) error {
	if err := r.db.Create(insight).Error; err != nil {
		return fmt.Errorf("create insight failed: %w", err)
	}
	return nil
}

// GetByFileID returns the insight for a file, or nil when no analysis has run
// yet. When duplicates exist, the most recent one wins.
func (r *InsightRepository) GetByFileID(fileID uint) (*model.Insight, error) {
	var insight model.Insight
	if err := r.db.Where("file_id = ?", fileID).Order("created_at DESC").First(&insight).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query insight by file id failed: %w", err)
	}
	return &insight, nil
}

func (r *InsightRepository) ListByUserID(userID uint) ([]model.Insight, error) {
	var insights []model.Insight
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&insights).Error; err != nil {
		return nil, fmt.Errorf("list insights failed: %w", err)
	}
	return insights, nil
}
