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
	"gorm.io/gorm"
)

type ContractService struct {
	contractRepo *repository.ContractRepository
	projectRepo  *repository.ProjectRepository
	logger       *zap.Logger
}

func NewContractService(
	contractRepo *repository.ContractRepository,
	projectRepo *repository.ProjectRepository,
	logger *zap.Logger,
) *ContractService {
	return &ContractService{
		contractRepo: contractRepo,
		projectRepo:  projectRepo,
		logger:       logger,
	}
}

func (s *ContractService) Create(ctx context.Context, req *domain.CreateContractRequest) (*domain.ContractDTO, error) {
	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	contract := &domain.Contract{
		ProjectID:            req.ProjectID,
		ContractType:         req.ContractType,
		BusinessOwner:        req.BusinessOwner,
		Contractor:           req.Contractor,
		Subcontractor:        req.Subcontractor,
		AnnualMaintenanceFee: req.AnnualMaintenanceFee,
		LandRent:             req.LandRent,
		CommunicationFee:     req.CommunicationFee,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		Notes:                req.Notes,
	}

	if err := s.contractRepo.Create(ctx, contract); err != nil {
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}

	s.logger.Info("contract created",
		zap.String("contract_id", contract.ID.String()),
		zap.String("project_id", contract.ProjectID.String()),
	)

	dto := mapper.ToContractDTO(contract)
	return &dto, nil
}

func (s *ContractService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContractDTO, error) {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	dto := mapper.ToContractDTO(contract)
	return &dto, nil
}

func (s *ContractService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateContractRequest) (*domain.ContractDTO, error) {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}

	if req.ProjectID != uuid.Nil {
		contract.ProjectID = req.ProjectID
	}
	contract.ContractType = req.ContractType
	contract.BusinessOwner = req.BusinessOwner
	contract.Contractor = req.Contractor
	contract.Subcontractor = req.Subcontractor
	contract.AnnualMaintenanceFee = req.AnnualMaintenanceFee
	contract.LandRent = req.LandRent
	contract.CommunicationFee = req.CommunicationFee
	contract.StartDate = req.StartDate
	contract.EndDate = req.EndDate
	contract.Notes = req.Notes

	if err := s.contractRepo.Update(ctx, contract); err != nil {
		return nil, fmt.Errorf("failed to update contract: %w", err)
	}

	dto := mapper.ToContractDTO(contract)
	return &dto, nil
}

func (s *ContractService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.contractRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContractNotFound
		}
		return fmt.Errorf("failed to get contract: %w", err)
	}

	if err := s.contractRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete contract: %w", err)
	}

	s.logger.Info("contract deleted", zap.String("contract_id", id.String()))
	return nil
}

// ListByProject returns a project's contracts with their invoices,
// invoices newest billing period first. The result is never nil.
func (s *ContractService) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.ContractWithInvoicesDTO, error) {
	contracts, err := s.contractRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	dtos := make([]domain.ContractWithInvoicesDTO, 0, len(contracts))
	for i := range contracts {
		dtos = append(dtos, mapper.ToContractWithInvoicesDTO(&contracts[i]))
	}
	return dtos, nil
}
