package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ageful/solar-ops-api/internal/domain"
	"github.com/ageful/solar-ops-api/internal/repository"
	"github.com/ageful/solar-ops-api/internal/testutil"
)

func newDashboardServiceForTest(t *testing.T) (*DashboardService, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := NewDashboardService(repository.NewInvoiceRepository(db), zap.NewNop())
	return svc, db
}

func seedBillingData(t *testing.T, db *gorm.DB, period string, status domain.InvoiceStatus, amount float64) {
	t.Helper()
	customer := testutil.CreateTestCustomer(t, db, "Komatsu Holdings")
	project := testutil.CreateTestProject(t, db, customer.ID, "Komatsu Plant")
	contract := testutil.CreateTestContract(t, db, project.ID)
	invoice := &domain.Invoice{
		ContractID:    contract.ID,
		BillingPeriod: period,
		Amount:        amount,
		Status:        status,
	}
	require.NoError(t, db.Create(invoice).Error)
}

func TestDashboardService_BillingSummary(t *testing.T) {
	svc, db := newDashboardServiceForTest(t)
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC) }

	seedBillingData(t, db, "2026-03", domain.InvoiceStatusBilled, 45000)

	t.Run("month is zero padded", func(t *testing.T) {
		summary, err := svc.BillingSummary(context.Background(), 2026, 3, "")
		require.NoError(t, err)
		assert.Equal(t, "2026-03", summary.Period)
		require.Len(t, summary.Data, 1)
		assert.Equal(t, 45000.0, summary.Data[0].Amount)
		assert.Equal(t, "Komatsu Holdings", summary.Data[0].CustomerName)
		assert.Equal(t, "Komatsu Plant", summary.Data[0].ProjectName)
	})

	t.Run("defaults to the current period", func(t *testing.T) {
		summary, err := svc.BillingSummary(context.Background(), 0, 0, "")
		require.NoError(t, err)
		assert.Equal(t, "2026-03", summary.Period)
		assert.Len(t, summary.Data, 1)
	})

	t.Run("status filter", func(t *testing.T) {
		summary, err := svc.BillingSummary(context.Background(), 2026, 3, "paid")
		require.NoError(t, err)
		assert.Empty(t, summary.Data)
		assert.NotNil(t, summary.Data)
	})

	t.Run("month out of range", func(t *testing.T) {
		_, err := svc.BillingSummary(context.Background(), 2026, 13, "")
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := svc.BillingSummary(context.Background(), 2026, 3, "overdue")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("empty period returns empty data not nil", func(t *testing.T) {
		summary, err := svc.BillingSummary(context.Background(), 2027, 1, "")
		require.NoError(t, err)
		assert.NotNil(t, summary.Data)
		assert.Empty(t, summary.Data)
	})
}
