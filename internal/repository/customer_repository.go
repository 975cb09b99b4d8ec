package repository

import (
	"context"
	"strings"

	"github.com/ageful/solar-ops-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerFilter narrows the customer list. Sort "company_name" orders
// alphabetically; anything else lists newest first.
type CustomerFilter struct {
	Search string
	Type   string
	Sort   string
}

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) GetByIDWithProjects(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.WithContext(ctx).
		Preload("Projects").
		Where("id = ?", id).
		First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Customer{}, "id = ?", id).Error
}

// List returns customers matching the filter.
func (r *CustomerRepository) List(ctx context.Context, filter CustomerFilter) ([]domain.Customer, error) {
	var customers []domain.Customer

	query := r.db.WithContext(ctx).Model(&domain.Customer{})

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(contact_name) LIKE ? OR LOWER(company_name) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	if filter.Sort == "company_name" {
		query = query.Order("company_name ASC")
	} else {
		query = query.Order("created_at DESC")
	}

	err := query.Find(&customers).Error
	return customers, err
}
