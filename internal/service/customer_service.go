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

type CustomerService struct {
	customerRepo *repository.CustomerRepository
	logger       *zap.Logger
}

func NewCustomerService(customerRepo *repository.CustomerRepository, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (s *CustomerService) Create(ctx context.Context, req *domain.CreateCustomerRequest) (*domain.CustomerDTO, error) {
	custType := req.Type
	if custType == "" {
		custType = domain.CustomerTypeIndividual
	}

	customer := &domain.Customer{
		Type:               custType,
		CompanyName:        req.CompanyName,
		ContactName:        req.ContactName,
		Email:              req.Email,
		Phone:              req.Phone,
		PostalCode:         req.PostalCode,
		Address:            req.Address,
		BillingPostalCode:  req.BillingPostalCode,
		BillingAddress:     req.BillingAddress,
		BillingContactName: req.BillingContactName,
		Notes:              req.Notes,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info("customer created", zap.String("customer_id", customer.ID.String()))

	dto := mapper.ToCustomerDTO(customer)
	return &dto, nil
}

// GetByID returns the customer with its projects attached
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CustomerWithProjectsDTO, error) {
	customer, err := s.customerRepo.GetByIDWithProjects(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	dto := mapper.ToCustomerWithProjectsDTO(customer)
	return &dto, nil
}

func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateCustomerRequest) (*domain.CustomerDTO, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	if req.Type != "" {
		customer.Type = req.Type
	}
	customer.CompanyName = req.CompanyName
	customer.ContactName = req.ContactName
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.PostalCode = req.PostalCode
	customer.Address = req.Address
	customer.BillingPostalCode = req.BillingPostalCode
	customer.BillingAddress = req.BillingAddress
	customer.BillingContactName = req.BillingContactName
	customer.Notes = req.Notes

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	dto := mapper.ToCustomerDTO(customer)
	return &dto, nil
}

func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.customerRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("failed to get customer: %w", err)
	}

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	s.logger.Info("customer deleted", zap.String("customer_id", id.String()))
	return nil
}

// List returns customers matching the filter. The result is never nil.
func (s *CustomerService) List(ctx context.Context, filter repository.CustomerFilter) ([]domain.CustomerDTO, error) {
	customers, err := s.customerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	dtos := make([]domain.CustomerDTO, 0, len(customers))
	for i := range customers {
		dtos = append(dtos, mapper.ToCustomerDTO(&customers[i]))
	}
	return dtos, nil
}
