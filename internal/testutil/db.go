package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ageful/solar-ops-api/internal/domain"
)

// SetupTestDB opens an isolated in-memory SQLite database with the full
// schema migrated. Each call gets its own database, so tests never share
// state.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	// A single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Customer{},
		&domain.Project{},
		&domain.PowerPlantSpec{},
		&domain.RegulatoryInfo{},
		&domain.Contract{},
		&domain.Invoice{},
		&domain.MaintenanceLog{},
	)
	require.NoError(t, err, "failed to migrate test schema")

	return db
}

// CreateTestCustomer inserts a corporate customer fixture
func CreateTestCustomer(t *testing.T, db *gorm.DB, companyName string) *domain.Customer {
	t.Helper()

	customer := &domain.Customer{
		Type:        domain.CustomerTypeCorporate,
		CompanyName: companyName,
		ContactName: "Taro Yamada",
		Email:       "billing@example.com",
		Phone:       "03-1234-5678",
	}
	require.NoError(t, db.WithContext(context.Background()).Create(customer).Error)
	return customer
}

// CreateTestProject inserts a project fixture owned by the customer
func CreateTestProject(t *testing.T, db *gorm.DB, customerID uuid.UUID, name string) *domain.Project {
	t.Helper()

	project := &domain.Project{
		CustomerID:  customerID,
		ProjectName: name,
		Status:      domain.ProjectStatusOperating,
	}
	require.NoError(t, db.WithContext(context.Background()).Create(project).Error)
	return project
}

// CreateTestContract inserts a contract fixture under the project
func CreateTestContract(t *testing.T, db *gorm.DB, projectID uuid.UUID) *domain.Contract {
	t.Helper()

	contract := &domain.Contract{
		ProjectID:            projectID,
		ContractType:         "maintenance",
		AnnualMaintenanceFee: 120000,
	}
	require.NoError(t, db.WithContext(context.Background()).Create(contract).Error)
	return contract
}

// CreateTestUser inserts a user fixture with the given role
func CreateTestUser(t *testing.T, db *gorm.DB, email string, role domain.UserRole) *domain.User {
	t.Helper()

	user := &domain.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:         role,
	}
	require.NoError(t, db.WithContext(context.Background()).Create(user).Error)
	return user
}
