package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ageful/solar-ops-api/internal/auth"
	"github.com/ageful/solar-ops-api/internal/domain"
	"github.com/ageful/solar-ops-api/internal/mapper"
	"github.com/ageful/solar-ops-api/internal/repository"
	"github.com/ageful/solar-ops-api/internal/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MaintenanceService struct {
	maintenanceRepo *repository.MaintenanceRepository
	projectRepo     *repository.ProjectRepository
	storage         storage.Storage
	logger          *zap.Logger
}

func NewMaintenanceService(
	maintenanceRepo *repository.MaintenanceRepository,
	projectRepo *repository.ProjectRepository,
	store storage.Storage,
	logger *zap.Logger,
) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		projectRepo:     projectRepo,
		storage:         store,
		logger:          logger,
	}
}

// Create records a maintenance log. The reporter is taken from the
// authenticated user when present.
func (s *MaintenanceService) Create(ctx context.Context, req *domain.CreateMaintenanceRequest) (*domain.MaintenanceLogDTO, error) {
	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	status := req.Status
	if status == "" {
		status = domain.MaintenanceStatusPending
	}

	log := &domain.MaintenanceLog{
		ProjectID:      req.ProjectID,
		InquiryDate:    req.InquiryDate,
		OccurrenceDate: req.OccurrenceDate,
		WorkType:       req.WorkType,
		TargetArea:     req.TargetArea,
		Situation:      req.Situation,
		Response:       req.Response,
		Report:         req.Report,
		Status:         status,
		PhotoURL:       req.PhotoURL,
	}
	if userCtx, ok := auth.FromContext(ctx); ok {
		userID := userCtx.UserID
		log.UserID = &userID
	}

	if err := s.maintenanceRepo.Create(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to create maintenance log: %w", err)
	}

	s.logger.Info("maintenance log created",
		zap.String("maintenance_id", log.ID.String()),
		zap.String("project_id", log.ProjectID.String()),
	)

	return s.GetByID(ctx, log.ID)
}

func (s *MaintenanceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.MaintenanceLogDTO, error) {
	log, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaintenanceLogNotFound
		}
		return nil, fmt.Errorf("failed to get maintenance log: %w", err)
	}
	dto := mapper.ToMaintenanceLogDTO(log)
	return &dto, nil
}

func (s *MaintenanceService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateMaintenanceRequest) (*domain.MaintenanceLogDTO, error) {
	log, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaintenanceLogNotFound
		}
		return nil, fmt.Errorf("failed to get maintenance log: %w", err)
	}

	if req.ProjectID != uuid.Nil {
		log.ProjectID = req.ProjectID
	}
	log.InquiryDate = req.InquiryDate
	log.OccurrenceDate = req.OccurrenceDate
	log.WorkType = req.WorkType
	log.TargetArea = req.TargetArea
	log.Situation = req.Situation
	log.Response = req.Response
	log.Report = req.Report
	if req.Status != "" {
		log.Status = req.Status
	}
	if req.PhotoURL != "" {
		log.PhotoURL = req.PhotoURL
	}
	log.User = nil
	log.Project = nil

	if err := s.maintenanceRepo.Update(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to update maintenance log: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *MaintenanceService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.maintenanceRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMaintenanceLogNotFound
		}
		return fmt.Errorf("failed to get maintenance log: %w", err)
	}

	if err := s.maintenanceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete maintenance log: %w", err)
	}

	s.logger.Info("maintenance log deleted", zap.String("maintenance_id", id.String()))
	return nil
}

// List returns maintenance logs matching the filter with reporter and
// site names attached. The result is never nil.
func (s *MaintenanceService) List(ctx context.Context, filter repository.MaintenanceFilter) ([]domain.MaintenanceLogDTO, error) {
	logs, err := s.maintenanceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance logs: %w", err)
	}

	dtos := make([]domain.MaintenanceLogDTO, 0, len(logs))
	for i := range logs {
		dtos = append(dtos, mapper.ToMaintenanceLogDTO(&logs[i]))
	}
	return dtos, nil
}

// ListByProject returns a project's maintenance logs. The result is
// never nil.
func (s *MaintenanceService) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.MaintenanceLogDTO, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	logs, err := s.maintenanceRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance logs: %w", err)
	}

	dtos := make([]domain.MaintenanceLogDTO, 0, len(logs))
	for i := range logs {
		dtos = append(dtos, mapper.ToMaintenanceLogDTO(&logs[i]))
	}
	return dtos, nil
}

// AttachPhoto uploads a report photo through the storage backend and
// stores the resulting path on the log.
func (s *MaintenanceService) AttachPhoto(ctx context.Context, id uuid.UUID, filename, contentType string, data io.Reader) (*domain.MaintenanceLogDTO, error) {
	log, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaintenanceLogNotFound
		}
		return nil, fmt.Errorf("failed to get maintenance log: %w", err)
	}

	path, size, err := s.storage.Upload(ctx, filename, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to upload photo: %w", err)
	}

	log.PhotoURL = path
	log.User = nil
	log.Project = nil
	if err := s.maintenanceRepo.Update(ctx, log); err != nil {
		// Don't leave an orphaned blob behind
		if delErr := s.storage.Delete(ctx, path); delErr != nil {
			s.logger.Warn("failed to clean up orphaned photo",
				zap.String("path", path),
				zap.Error(delErr),
			)
		}
		return nil, fmt.Errorf("failed to save photo reference: %w", err)
	}

	s.logger.Info("maintenance photo attached",
		zap.String("maintenance_id", id.String()),
		zap.String("path", path),
		zap.Int64("size", size),
	)

	return s.GetByID(ctx, id)
}
