package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/hanjaplatform/hanja-api/internal/models"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new history repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// Create inserts a new record
func (r *RepositoryImpl) Create(ctx context.Context, record *models.History) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("creating history record: %w", err)
	}
	return nil
}

// GetByID retrieves a record by its ID
func (r *RepositoryImpl) GetByID(ctx context.Context, id string) (*models.History, error) {
	var record models.History
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting history record: %w", err)
	}
	return &record, nil
}

// List returns records matching filter, newest first
func (r *RepositoryImpl) List(ctx context.Context, filter Filter) ([]models.History, error) {
	q := r.db.WithContext(ctx).Model(&models.History{})
	if filter.Owner != "" {
		q = q.Where("owner = ?", filter.Owner)
	}
	if filter.InputOnly != nil {
		q = q.Where("input_only = ?", *filter.InputOnly)
	}

	var records []models.History
	if err := q.Order("created DESC").Order("id DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("listing history records: %w", err)
	}
	return records, nil
}

// Replace overwrites an existing record
func (r *RepositoryImpl) Replace(ctx context.Context, record *models.History) error {
	result := r.db.WithContext(ctx).
		Model(record).
		Select("action", "details", "input_only", "updated").
		Updates(record)
	if result.Error != nil {
		return fmt.Errorf("replacing history record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a record by its ID
func (r *RepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.History{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting history record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteInputOnlyBefore removes input-only records older than cutoff
func (r *RepositoryImpl) DeleteInputOnlyBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("input_only = ? AND created < ?", true, cutoff).
		Delete(&models.History{})
	if result.Error != nil {
		return 0, fmt.Errorf("purging input-only history: %w", result.Error)
	}
	return result.RowsAffected, nil
}
