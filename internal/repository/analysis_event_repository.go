package repository

import (
	"fmt"

	"gorm.io/gorm"

	"healthmate/internal/model"
)

type AnalysisEventRepository struct {
	db *gorm.DB
}

func NewAnalysisEventRepository(db *gorm.DB) *AnalysisEventRepository {
	return &AnalysisEventRepository{db: db}
}

func (r *AnalysisEventRepository) Create(event *model.AnalysisEvent) error {
	if err := r.db.Create(event).Error; err != nil {
		return fmt.Errorf("create analysis event failed: %w", err)
	}
	return nil
}

func (r *AnalysisEventRepository) ListByFileID(fileID uint) ([]model.AnalysisEvent, error) {
	var events []model.AnalysisEvent
	if err := r.db.Where("file_id = ?", fileID).Order("created_at ASC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("list analysis events failed: %w", err)
	}
	return events, nil
}
