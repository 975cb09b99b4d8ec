package repository

import (
	"context"
	"strings"

	"github.com/ageful/solar-ops-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaintenanceFilter narrows the maintenance log list
type MaintenanceFilter struct {
	ProjectID *uuid.UUID
	Status    string
	Search    string
}

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) Create(ctx context.Context, log *domain.MaintenanceLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *MaintenanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MaintenanceLog, error) {
	var log domain.MaintenanceLog
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Project.Customer").
		Where("id = ?", id).
		First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *MaintenanceRepository) Update(ctx context.Context, log *domain.MaintenanceLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

func (r *MaintenanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.MaintenanceLog{}, "id = ?", id).Error
}

// List returns maintenance logs matching the filter with reporter and
// project/customer preloaded, newest inquiry first.
func (r *MaintenanceRepository) List(ctx context.Context, filter MaintenanceFilter) ([]domain.MaintenanceLog, error) {
	var logs []domain.MaintenanceLog

	query := r.db.WithContext(ctx).Model(&domain.MaintenanceLog{}).
		Preload("User").
		Preload("Project.Customer")

	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(target_area) LIKE ? OR LOWER(situation) LIKE ?",
			pattern, pattern,
		)
	}

	err := query.Order("inquiry_date DESC").Find(&logs).Error
	return logs, err
}

// ListByProject returns a project's maintenance logs, newest inquiry first
func (r *MaintenanceRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.MaintenanceLog, error) {
	var logs []domain.MaintenanceLog
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("project_id = ?", projectID).
		Order("inquiry_date DESC").
		Find(&logs).Error
	return logs, err
}
