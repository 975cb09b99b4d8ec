package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ageful/solar-ops-api/internal/domain"
	"github.com/ageful/solar-ops-api/internal/repository"
	"github.com/ageful/solar-ops-api/internal/testutil"
)

func newInvoiceServiceForTest(t *testing.T) (*InvoiceService, *domain.Contract) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	customer := testutil.CreateTestCustomer(t, db, "Billing Test KK")
	project := testutil.CreateTestProject(t, db, customer.ID, "Billing Plant")
	contract := testutil.CreateTestContract(t, db, project.ID)

	svc := NewInvoiceService(
		repository.NewInvoiceRepository(db),
		repository.NewContractRepository(db),
		zap.NewNop(),
	)
	return svc, contract
}

func TestInvoiceService_Create(t *testing.T) {
	svc, contract := newInvoiceServiceForTest(t)
	fixed := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	t.Run("defaults to unbilled", func(t *testing.T) {
		invoice, err := svc.Create(context.Background(), contract.ID, &domain.CreateInvoiceRequest{
			BillingPeriod: "2026-08",
			Amount:        50000,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.InvoiceStatusUnbilled, invoice.Status)
		assert.Nil(t, invoice.PaidAt)
	})

	t.Run("created as paid stamps paid_at", func(t *testing.T) {
		invoice, err := svc.Create(context.Background(), contract.ID, &domain.CreateInvoiceRequest{
			BillingPeriod: "2026-08",
			Amount:        50000,
			Status:        domain.InvoiceStatusPaid,
		})
		require.NoError(t, err)
		require.NotNil(t, invoice.PaidAt)
		assert.Equal(t, "2026-08-15T10:00:00Z", *invoice.PaidAt)
	})

	t.Run("unknown contract", func(t *testing.T) {
		_, err := svc.Create(context.Background(), uuid.New(), &domain.CreateInvoiceRequest{
			BillingPeriod: "2026-08",
		})
		assert.ErrorIs(t, err, ErrContractNotFound)
	})
}

func TestInvoiceService_UpdateStatus(t *testing.T) {
	svc, contract := newInvoiceServiceForTest(t)
	fixed := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	created, err := svc.Create(context.Background(), contract.ID, &domain.CreateInvoiceRequest{
		BillingPeriod: "2026-07",
		Amount:        12000,
	})
	require.NoError(t, err)

	t.Run("paid without timestamp stamps now", func(t *testing.T) {
		invoice, err := svc.UpdateStatus(context.Background(), created.ID, &domain.UpdateInvoiceStatusRequest{
			Status: domain.InvoiceStatusPaid,
		})
		require.NoError(t, err)
		require.NotNil(t, invoice.PaidAt)
		assert.Equal(t, "2026-08-15T10:00:00Z", *invoice.PaidAt)
	})

	t.Run("moving off paid clears paid_at", func(t *testing.T) {
		invoice, err := svc.UpdateStatus(context.Background(), created.ID, &domain.UpdateInvoiceStatusRequest{
			Status: domain.InvoiceStatusBilled,
		})
		require.NoError(t, err)
		assert.Nil(t, invoice.PaidAt)
	})

	t.Run("paid with supplied timestamp honors it", func(t *testing.T) {
		supplied := "2026-07-31"
		invoice, err := svc.UpdateStatus(context.Background(), created.ID, &domain.UpdateInvoiceStatusRequest{
			Status: domain.InvoiceStatusPaid,
			PaidAt: &supplied,
		})
		require.NoError(t, err)
		require.NotNil(t, invoice.PaidAt)
		assert.Equal(t, "2026-07-31T00:00:00Z", *invoice.PaidAt)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := svc.UpdateStatus(context.Background(), created.ID, &domain.UpdateInvoiceStatusRequest{
			Status: "overdue",
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("unknown invoice", func(t *testing.T) {
		_, err := svc.UpdateStatus(context.Background(), uuid.New(), &domain.UpdateInvoiceStatusRequest{
			Status: domain.InvoiceStatusPaid,
		})
		assert.ErrorIs(t, err, ErrInvoiceNotFound)
	})
}

func TestInvoiceService_ListByContract(t *testing.T) {
	svc, contract := newInvoiceServiceForTest(t)

	for _, period := range []string{"2026-01", "2026-02"} {
		_, err := svc.Create(context.Background(), contract.ID, &domain.CreateInvoiceRequest{
			BillingPeriod: period,
			Amount:        10000,
		})
		require.NoError(t, err)
	}

	invoices, err := svc.ListByContract(context.Background(), contract.ID)
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, "2026-02", invoices[0].BillingPeriod)

	_, err = svc.ListByContract(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrContractNotFound)
}
