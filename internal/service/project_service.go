package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ageful/solar-ops-api/internal/domain"
	"github.com/ageful/solar-ops-api/internal/mapper"
	"github.com/ageful/solar-ops-api/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type ProjectService struct {
	projectRepo  *repository.ProjectRepository
	customerRepo *repository.CustomerRepository
	logger       *zap.Logger
}

func NewProjectService(
	projectRepo *repository.ProjectRepository,
	customerRepo *repository.CustomerRepository,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepo:  projectRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create writes the project and any nested satellite payloads in one
// transaction.
func (s *ProjectService) Create(ctx context.Context, req *domain.CreateProjectRequest) (*domain.ProjectDetailDTO, error) {
	if _, err := s.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	status := req.Status
	if status == "" {
		status = domain.ProjectStatusOperating
	}

	project := &domain.Project{
		CustomerID:     req.CustomerID,
		ProjectNumber:  req.ProjectNumber,
		ProjectName:    req.ProjectName,
		Status:         status,
		SitePostalCode: req.SitePostalCode,
		SiteAddress:    req.SiteAddress,
		MapCoordinates: req.MapCoordinates,
		KeyNumber:      req.KeyNumber,
	}
	spec := plantSpecFromInput(req.PowerPlantSpec)
	reg := regulatoryInfoFromInput(req.RegulatoryInfo)

	if err := s.projectRepo.CreateWithSatellites(ctx, project, spec, reg); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.logger.Info("project created",
		zap.String("project_id", project.ID.String()),
		zap.String("customer_id", project.CustomerID.String()),
	)

	dto := mapper.ToProjectDetailDTO(project, spec, reg)
	return &dto, nil
}

// GetDetail fetches the project and both satellites, the satellites in
// parallel. A missing satellite is reported as null, not an error.
func (s *ProjectService) GetDetail(ctx context.Context, id uuid.UUID) (*domain.ProjectDetailDTO, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	var (
		spec *domain.PowerPlantSpec
		reg  *domain.RegulatoryInfo
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := s.projectRepo.GetPlantSpec(gctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get power plant spec: %w", err)
		}
		spec = result
		return nil
	})
	g.Go(func() error {
		result, err := s.projectRepo.GetRegulatoryInfo(gctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get regulatory info: %w", err)
		}
		reg = result
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dto := mapper.ToProjectDetailDTO(project, spec, reg)
	return &dto, nil
}

// GetSpec returns the project's power plant spec, or nil when the
// project has none recorded.
func (s *ProjectService) GetSpec(ctx context.Context, id uuid.UUID) (*domain.PowerPlantSpecDTO, error) {
	if _, err := s.projectRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	spec, err := s.projectRepo.GetPlantSpec(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get power plant spec: %w", err)
	}

	dto := mapper.ToPowerPlantSpecDTO(spec)
	return &dto, nil
}

// Update saves the project fields and upserts any nested satellite
// payloads transactionally.
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateProjectRequest) (*domain.ProjectDetailDTO, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if req.CustomerID != uuid.Nil {
		project.CustomerID = req.CustomerID
	}
	project.ProjectNumber = req.ProjectNumber
	project.ProjectName = req.ProjectName
	if req.Status != "" {
		project.Status = req.Status
	}
	project.SitePostalCode = req.SitePostalCode
	project.SiteAddress = req.SiteAddress
	project.MapCoordinates = req.MapCoordinates
	project.KeyNumber = req.KeyNumber
	project.Customer = nil

	spec := plantSpecFromInput(req.PowerPlantSpec)
	reg := regulatoryInfoFromInput(req.RegulatoryInfo)

	if err := s.projectRepo.UpdateWithSatellites(ctx, project, spec, reg); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return s.GetDetail(ctx, id)
}

func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.projectRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.logger.Info("project deleted", zap.String("project_id", id.String()))
	return nil
}

// List returns projects matching the filter with customer names
// attached. The result is never nil.
func (s *ProjectService) List(ctx context.Context, filter repository.ProjectFilter) ([]domain.ProjectDTO, error) {
	projects, err := s.projectRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	dtos := make([]domain.ProjectDTO, 0, len(projects))
	for i := range projects {
		dtos = append(dtos, mapper.ToProjectDTO(&projects[i]))
	}
	return dtos, nil
}

func plantSpecFromInput(in *domain.PowerPlantSpecInput) *domain.PowerPlantSpec {
	if in == nil {
		return nil
	}
	return &domain.PowerPlantSpec{
		PanelKW:           in.PanelKW,
		PanelCount:        in.PanelCount,
		PanelManufacturer: in.PanelManufacturer,
		PanelModel:        in.PanelModel,
		PcsKW:             in.PcsKW,
		PcsCount:          in.PcsCount,
		PcsManufacturer:   in.PcsManufacturer,
		PcsModel:          in.PcsModel,
	}
}

func regulatoryInfoFromInput(in *domain.RegulatoryInfoInput) *domain.RegulatoryInfo {
	if in == nil {
		return nil
	}
	return &domain.RegulatoryInfo{
		MetiID:                 in.MetiID,
		MetiCertificationDate:  in.MetiCertificationDate,
		FitRate:                in.FitRate,
		SupplyStartDate:        in.SupplyStartDate,
		PowerReceptionID:       in.PowerReceptionID,
		RemoteMonitoringStatus: in.RemoteMonitoringStatus,
		Is4GCompatible:         in.Is4GCompatible,
		MonitoringCredentials:  in.MonitoringCredentials,
	}
}
