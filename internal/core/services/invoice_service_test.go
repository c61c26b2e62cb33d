package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/biztime/biztime_backend/internal/apperrors"
	"github.com/biztime/biztime_backend/internal/core/domain"
	"github.com/biztime/biztime_backend/internal/core/services"
	"github.com/biztime/biztime_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice *domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoices(ctx context.Context) ([]domain.InvoiceSummary, error) {
	args := m.Called(ctx)
	var invoices []domain.InvoiceSummary
	if args.Get(0) != nil {
		invoices = args.Get(0).([]domain.InvoiceSummary)
	}
	return invoices, args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	var invoice *domain.Invoice
	if args.Get(0) != nil {
		invoice = args.Get(0).(*domain.Invoice)
	}
	return invoice, args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceWithCompany(ctx context.Context, id int64) (*domain.InvoiceWithCompany, error) {
	args := m.Called(ctx, id)
	var invoice *domain.InvoiceWithCompany
	if args.Get(0) != nil {
		invoice = args.Get(0).(*domain.InvoiceWithCompany)
	}
	return invoice, args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func boolPtr(b bool) *bool {
	return &b
}

func unpaidInvoice() *domain.Invoice {
	return &domain.Invoice{
		ID:       7,
		CompCode: "apple-inc",
		Amt:      decimal.NewFromInt(300),
		Paid:     false,
		AddDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		PaidDate: nil,
	}
}

func paidInvoice(paidAt time.Time) *domain.Invoice {
	inv := unpaidInvoice()
	inv.Paid = true
	inv.PaidDate = &paidAt
	return inv
}

func TestUpdateInvoice_MarkingUnpaidInvoicePaidStampsPaidDate(t *testing.T) {
	mockRepo := new(MockInvoiceRepository)
	svc := services.NewInvoiceService(mockRepo)

	mockRepo.On("FindInvoiceByID", mock.Anything, int64(7)).Return(unpaidInvoice(), nil).Once()

	var written domain.Invoice
	mockRepo.On("UpdateInvoice", mock.Anything, mock.AnythingOfType("domain.Invoice")).
		Run(func(args mock.Arguments) {
			written = args.Get(1).(domain.Invoice)
		}).
		Return(nil).Once()

	before := time.Now()
	updated, err := svc.UpdateInvoice(context.Background(), 7, dto.UpdateInvoiceRequest{
		Amt:  decimal.NewFromInt(300),
		Paid: boolPtr(true),
	})
	after := time.Now()

	require.NoError(t, err)
	assert.True(t, updated.Paid)
	require.NotNil(t, updated.PaidDate)
	assert.False(t, updated.PaidDate.Before(before))
	assert.False(t, updated.PaidDate.After(after))
	assert.True(t, written.Paid)
	require.NotNil(t, written.PaidDate)
	mockRepo.AssertExpectations(t)
}

func TestUpdateInvoice_RemarkingPaidInvoiceKeepsOriginalPaidDate(t *testing.T) {
	mockRepo := new(MockInvoiceRepository)
	svc := services.NewInvoiceService(mockRepo)

	paidAt := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	mockRepo.On("FindInvoiceByID", mock.Anything, int64(7)).Return(paidInvoice(paidAt), nil).Once()
	mockRepo.On("UpdateInvoice", mock.Anything, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	updated, err := svc.UpdateInvoice(context.Background(), 7, dto.UpdateInvoiceRequest{
		Amt:  decimal.NewFromInt(300),
		Paid: boolPtr(true),
	})

	require.NoError(t, err)
	assert.True(t, updated.Paid)
	require.NotNil(t, updated.PaidDate)
	assert.True(t, updated.PaidDate.Equal(paidAt), "re-marking paid must keep the original paid_date")
	mockRepo.AssertExpectations(t)
}

func TestUpdateInvoice_MarkingPaidInvoiceUnpaidClearsPaidDate(t *testing.T) {
	mockRepo := new(MockInvoiceRepository)
	svc := services.NewInvoiceService(mockRepo)

	paidAt := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	mockRepo.On("FindInvoiceByID", mock.Anything, int64(7)).Return(paidInvoice(paidAt), nil).Once()
	mockRepo.On("UpdateInvoice", mock.Anything, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	updated, err := svc.UpdateInvoice(context.Background(), 7, dto.UpdateInvoiceRequest{
		Amt:  decimal.NewFromInt(300),
		Paid: boolPtr(false),
	})

	require.NoError(t, err)
	assert.False(t, updated.Paid)
	assert.Nil(t, updated.PaidDate)
	mockRepo.AssertExpectations(t)
}

func TestUpdateInvoice_AbsentPaidFieldMeansUnpaid(t *testing.T) {
	mockRepo := new(MockInvoiceRepository)
	svc := services.NewInvoiceService(mockRepo)

	paidAt := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	mockRepo.On("FindInvoiceByID", mock.Anything, int64(7)).Return(paidInvoice(paidAt), nil).Once()
	mockRepo.On("UpdateInvoice", mock.Anything, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	updated, err := svc.UpdateInvoice(context.Background(), 7, dto.UpdateInvoiceRequest{
		Amt:  decimal.NewFromInt(450),
		Paid: nil,
	})

	require.NoError(t, err)
	assert.False(t, updated.Paid)
	assert.Nil(t, updated.PaidDate)
	mockRepo.AssertExpectations(t)
}

func TestUpdateInvoice_AmtIsAlwaysOverwritten(t *testing.T) {
	mockRepo := new(MockInvoiceRepository)
	svc := services.NewInvoiceService(mockRepo)

	mockRepo.On("FindInvoiceByID", mock.Anything, int64(7)).Return(unpaidInvoice(), nil).Once()

	var written domain.Invoice
	mockRepo.On("UpdateInvoice", mock.Anything, mock.AnythingOfType("domain.Invoice")).
		Run(func(args mock.Arguments) {
			written = args.Get(1).(domain.Invoice)
		}).
		Return(nil).Once()

	updated, err := svc.UpdateInvoice(context.Background(), 7, dto.UpdateInvoiceRequest{
		Amt:  decimal.NewFromInt(999),
		Paid: boolPtr(false),
	})

	require.NoError(t, err)
	assert.True(t, updated.Amt.Equal(decimal.NewFromInt(999)))
	assert.True(t, written.Amt.Equal(decimal.NewFromInt(999)))
	assert.Equal(t, "apple-inc", written.CompCode)
	assert.Equal(t, unpaidInvoice().AddDate, written.AddDate, "add_date is immutable")
	mockRepo.AssertExpectations(t)
}

func TestUpdateInvoice_UnknownIDDoesNotWrite(t *testing.T) {
	mockRepo := new(MockInvoiceRepository)
	svc := services.NewInvoiceService(mockRepo)

	mockRepo.On("FindInvoiceByID", mock.Anything, int64(404)).
		Return(nil, apperrors.NewNotFoundError("invalid invoice ID: 404")).Once()

	updated, err := svc.UpdateInvoice(context.Background(), 404, dto.UpdateInvoiceRequest{
		Amt:  decimal.NewFromInt(300),
		Paid: boolPtr(true),
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockRepo.AssertNotCalled(t, "UpdateInvoice", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestCreateInvoice_StartsUnpaid(t *testing.T) {
	mockRepo := new(MockInvoiceRepository)
	svc := services.NewInvoiceService(mockRepo)

	mockRepo.On("SaveInvoice", mock.Anything, mock.AnythingOfType("*domain.Invoice")).
		Run(func(args mock.Arguments) {
			// Simulate the database filling in the defaults.
			inv := args.Get(1).(*domain.Invoice)
			inv.ID = 42
			inv.Paid = false
			inv.AddDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
			inv.PaidDate = nil
		}).
		Return(nil).Once()

	invoice, err := svc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		CompCode: "apple-inc",
		Amt:      decimal.NewFromInt(300),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), invoice.ID)
	assert.Equal(t, "apple-inc", invoice.CompCode)
	assert.False(t, invoice.Paid)
	assert.Nil(t, invoice.PaidDate)
	mockRepo.AssertExpectations(t)
}

func TestListInvoices_NilBecomesEmptySlice(t *testing.T) {
	mockRepo := new(MockInvoiceRepository)
	svc := services.NewInvoiceService(mockRepo)

	mockRepo.On("FindInvoices", mock.Anything).Return(nil, nil).Once()

	invoices, err := svc.ListInvoices(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, invoices)
	assert.Empty(t, invoices)
	mockRepo.AssertExpectations(t)
}
