package repository

import (
	"context"
	"strings"

	"github.com/ageful/solar-ops-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectFilter narrows the project list
type ProjectFilter struct {
	CustomerID *uuid.UUID
	Status     string
	Search     string
}

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// CreateWithSatellites writes the project and any satellite records in a
// single transaction so a failed satellite insert cannot strand the parent.
func (r *ProjectRepository) CreateWithSatellites(ctx context.Context, project *domain.Project, spec *domain.PowerPlantSpec, reg *domain.RegulatoryInfo) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		if spec != nil {
			spec.ProjectID = project.ID
			if err := tx.Create(spec).Error; err != nil {
				return err
			}
		}
		if reg != nil {
			reg.ProjectID = project.ID
			if err := tx.Create(reg).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateWithSatellites saves the project and upserts the supplied
// satellites transactionally. A nil satellite is left untouched.
func (r *ProjectRepository) UpdateWithSatellites(ctx context.Context, project *domain.Project, spec *domain.PowerPlantSpec, reg *domain.RegulatoryInfo) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(project).Error; err != nil {
			return err
		}
		if spec != nil {
			spec.ProjectID = project.ID
			if err := upsertPlantSpec(tx, spec); err != nil {
				return err
			}
		}
		if reg != nil {
			reg.ProjectID = project.ID
			if err := upsertRegulatoryInfo(tx, reg); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsertPlantSpec(tx *gorm.DB, spec *domain.PowerPlantSpec) error {
	var existing domain.PowerPlantSpec
	err := tx.Where("project_id = ?", spec.ProjectID).First(&existing).Error
	switch {
	case err == nil:
		spec.ID = existing.ID
		spec.CreatedAt = existing.CreatedAt
		return tx.Save(spec).Error
	case err == gorm.ErrRecordNotFound:
		return tx.Create(spec).Error
	default:
		return err
	}
}

func upsertRegulatoryInfo(tx *gorm.DB, reg *domain.RegulatoryInfo) error {
	var existing domain.RegulatoryInfo
	err := tx.Where("project_id = ?", reg.ProjectID).First(&existing).Error
	switch {
	case err == nil:
		reg.ID = existing.ID
		reg.CreatedAt = existing.CreatedAt
		return tx.Save(reg).Error
	case err == gorm.ErrRecordNotFound:
		return tx.Create(reg).Error
	default:
		return err
	}
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("id = ?", id).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) GetPlantSpec(ctx context.Context, projectID uuid.UUID) (*domain.PowerPlantSpec, error) {
	var spec domain.PowerPlantSpec
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&spec).Error
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func (r *ProjectRepository) GetRegulatoryInfo(ctx context.Context, projectID uuid.UUID) (*domain.RegulatoryInfo, error) {
	var reg domain.RegulatoryInfo
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Project{}, "id = ?", id).Error
}

// List returns projects matching the filter with their customer preloaded,
// newest first.
func (r *ProjectRepository) List(ctx context.Context, filter ProjectFilter) ([]domain.Project, error) {
	var projects []domain.Project

	query := r.db.WithContext(ctx).Model(&domain.Project{}).Preload("Customer")

	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(project_name) LIKE ? OR LOWER(project_number) LIKE ?",
			pattern, pattern,
		)
	}

	err := query.Order("created_at DESC").Find(&projects).Error
	return projects, err
}
