package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ageful/solar-ops-api/internal/domain"
	"github.com/ageful/solar-ops-api/internal/mapper"
	"github.com/ageful/solar-ops-api/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type InvoiceService struct {
	invoiceRepo  *repository.InvoiceRepository
	contractRepo *repository.ContractRepository
	logger       *zap.Logger
	now          func() time.Time
}

func NewInvoiceService(
	invoiceRepo *repository.InvoiceRepository,
	contractRepo *repository.ContractRepository,
	logger *zap.Logger,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		contractRepo: contractRepo,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *InvoiceService) Create(ctx context.Context, contractID uuid.UUID, req *domain.CreateInvoiceRequest) (*domain.InvoiceDTO, error) {
	if _, err := s.contractRepo.GetByID(ctx, contractID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}

	status := req.Status
	if status == "" {
		status = domain.InvoiceStatusUnbilled
	}

	invoice := &domain.Invoice{
		ContractID:    contractID,
		BillingPeriod: req.BillingPeriod,
		Amount:        req.Amount,
		Status:        status,
		DueDate:       req.DueDate,
		Notes:         req.Notes,
	}
	if status == domain.InvoiceStatusPaid {
		now := s.now().UTC()
		invoice.PaidAt = &now
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	s.logger.Info("invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("billing_period", invoice.BillingPeriod),
	)

	dto := mapper.ToInvoiceDTO(invoice)
	return &dto, nil
}

func (s *InvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.InvoiceDTO, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	dto := mapper.ToInvoiceDTO(invoice)
	return &dto, nil
}

func (s *InvoiceService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateInvoiceRequest) (*domain.InvoiceDTO, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	invoice.BillingPeriod = req.BillingPeriod
	invoice.Amount = req.Amount
	invoice.DueDate = req.DueDate
	invoice.Notes = req.Notes
	if req.Status != "" {
		s.applyStatus(invoice, req.Status, nil)
	}

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	dto := mapper.ToInvoiceDTO(invoice)
	return &dto, nil
}

// UpdateStatus changes the billing status. Moving to paid stamps paid_at
// with the supplied time, or now when none is given; moving to any other
// status clears it so the record cannot claim a payment date while unpaid.
func (s *InvoiceService) UpdateStatus(ctx context.Context, id uuid.UUID, req *domain.UpdateInvoiceStatusRequest) (*domain.InvoiceDTO, error) {
	if !req.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	var paidAt *time.Time
	if req.PaidAt != nil {
		parsed, err := parseTimestamp(*req.PaidAt)
		if err != nil {
			return nil, fmt.Errorf("%w: bad paid_at: %v", ErrInvalidStatus, err)
		}
		paidAt = &parsed
	}
	s.applyStatus(invoice, req.Status, paidAt)

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to update invoice status: %w", err)
	}

	s.logger.Info("invoice status updated",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("status", string(invoice.Status)),
	)

	dto := mapper.ToInvoiceDTO(invoice)
	return &dto, nil
}

func (s *InvoiceService) applyStatus(invoice *domain.Invoice, status domain.InvoiceStatus, paidAt *time.Time) {
	invoice.Status = status
	if status == domain.InvoiceStatusPaid {
		if paidAt != nil {
			invoice.PaidAt = paidAt
		} else if invoice.PaidAt == nil {
			now := s.now().UTC()
			invoice.PaidAt = &now
		}
	} else {
		invoice.PaidAt = nil
	}
}

func (s *InvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.invoiceRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvoiceNotFound
		}
		return fmt.Errorf("failed to get invoice: %w", err)
	}

	if err := s.invoiceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	s.logger.Info("invoice deleted", zap.String("invoice_id", id.String()))
	return nil
}

// ListByContract returns a contract's invoices, newest billing period
// first. The result is never nil.
func (s *InvoiceService) ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.InvoiceDTO, error) {
	if _, err := s.contractRepo.GetByID(ctx, contractID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}

	invoices, err := s.invoiceRepo.ListByContract(ctx, contractID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	dtos := make([]domain.InvoiceDTO, 0, len(invoices))
	for i := range invoices {
		dtos = append(dtos, mapper.ToInvoiceDTO(&invoices[i]))
	}
	return dtos, nil
}

// ListAll returns every invoice flattened with its project and customer
// names, newest billing period first. The result is never nil.
func (s *InvoiceService) ListAll(ctx context.Context) ([]domain.InvoiceWithProjectDTO, error) {
	invoices, err := s.invoiceRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	dtos := make([]domain.InvoiceWithProjectDTO, 0, len(invoices))
	for i := range invoices {
		dtos = append(dtos, mapper.ToInvoiceWithProjectDTO(&invoices[i]))
	}
	return dtos, nil
}

// parseTimestamp accepts RFC 3339 timestamps and plain dates
func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
