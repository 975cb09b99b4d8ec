package repository

import (
	"context"

	"github.com/ageful/solar-ops-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&invoice).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *InvoiceRepository) Update(ctx context.Context, invoice *domain.Invoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Invoice{}, "id = ?", id).Error
}

func (r *InvoiceRepository) ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("billing_period DESC").
		Find(&invoices).Error
	return invoices, err
}

// ListAll returns every invoice with its contract, project and customer
// preloaded for flattening, newest billing period first.
func (r *InvoiceRepository) ListAll(ctx context.Context) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.WithContext(ctx).
		Preload("Contract.Project.Customer").
		Order("billing_period DESC").
		Find(&invoices).Error
	return invoices, err
}

// ListByPeriod returns invoices for one billing period, optionally
// filtered by status, with the contract chain preloaded.
func (r *InvoiceRepository) ListByPeriod(ctx context.Context, period string, status string) ([]domain.Invoice, error) {
	var invoices []domain.Invoice

	query := r.db.WithContext(ctx).
		Preload("Contract.Project.Customer").
		Where("billing_period = ?", period)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	err := query.Order("created_at ASC").Find(&invoices).Error
	return invoices, err
}
