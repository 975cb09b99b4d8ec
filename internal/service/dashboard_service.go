package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ageful/solar-ops-api/internal/domain"
	"github.com/ageful/solar-ops-api/internal/mapper"
	"github.com/ageful/solar-ops-api/internal/repository"
	"go.uber.org/zap"
)

type DashboardService struct {
	invoiceRepo *repository.InvoiceRepository
	logger      *zap.Logger
	now         func() time.Time
}

func NewDashboardService(invoiceRepo *repository.InvoiceRepository, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		invoiceRepo: invoiceRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// BillingSummary aggregates invoices for one billing month, joined
// through contract and project to the owning customer. Zero year/month
// default to the current date. The month is always zero-padded so
// "2026-3" and "2026-03" address the same period.
func (s *DashboardService) BillingSummary(ctx context.Context, year, month int, status string) (*domain.BillingSummaryDTO, error) {
	now := s.now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month %d out of range", ErrInvalidPeriod, month)
	}
	if status != "" && !domain.InvoiceStatus(status).IsValid() {
		return nil, ErrInvalidStatus
	}

	period := fmt.Sprintf("%04d-%02d", year, month)

	invoices, err := s.invoiceRepo.ListByPeriod(ctx, period, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices for period %s: %w", period, err)
	}

	data := make([]domain.BillingSummaryItemDTO, 0, len(invoices))
	for i := range invoices {
		data = append(data, mapper.ToBillingSummaryItemDTO(&invoices[i]))
	}

	return &domain.BillingSummaryDTO{
		Period: period,
		Data:   data,
	}, nil
}
