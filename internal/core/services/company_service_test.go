package services_test

import (
	"context"
	"testing"

	"github.com/biztime/biztime_backend/internal/apperrors"
	"github.com/biztime/biztime_backend/internal/core/domain"
	"github.com/biztime/biztime_backend/internal/core/services"
	"github.com/biztime/biztime_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock CompanyRepository ---
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindCompanies(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	var companies []domain.Company
	if args.Get(0) != nil {
		companies = args.Get(0).([]domain.Company)
	}
	return companies, args.Error(1)
}

func (m *MockCompanyRepository) FindCompanyByCode(ctx context.Context, code string) (*domain.Company, error) {
	args := m.Called(ctx, code)
	var company *domain.Company
	if args.Get(0) != nil {
		company = args.Get(0).(*domain.Company)
	}
	return company, args.Error(1)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) DeleteCompany(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func TestCreateCompany_DerivesSlugCode(t *testing.T) {
	testCases := []struct {
		name         string
		companyName  string
		expectedCode string
	}{
		{"simple name", "Apple", "apple"},
		{"name with spaces", "Apple Inc", "apple-inc"},
		{"mixed case and punctuation", "Maker & Sons, Ltd.", "maker-and-sons-ltd"},
		{"already lowercase", "ibm", "ibm"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := new(MockCompanyRepository)
			svc := services.NewCompanyService(mockRepo)

			var saved domain.Company
			mockRepo.On("SaveCompany", mock.Anything, mock.AnythingOfType("domain.Company")).
				Run(func(args mock.Arguments) {
					saved = args.Get(1).(domain.Company)
				}).
				Return(nil).Once()

			company, err := svc.CreateCompany(context.Background(), dto.CreateCompanyRequest{
				Name:        tc.companyName,
				Description: "a description",
			})

			require.NoError(t, err)
			assert.Equal(t, tc.expectedCode, company.Code)
			assert.Equal(t, tc.companyName, company.Name)
			assert.Equal(t, tc.expectedCode, saved.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCreateCompany_DuplicateNamePropagatesConflict(t *testing.T) {
	mockRepo := new(MockCompanyRepository)
	svc := services.NewCompanyService(mockRepo)

	conflictErr := apperrors.NewConflictError("the company name already exists")
	mockRepo.On("SaveCompany", mock.Anything, mock.Anything).Return(conflictErr).Once()

	company, err := svc.CreateCompany(context.Background(), dto.CreateCompanyRequest{
		Name:        "Apple Inc",
		Description: "x",
	})

	require.Error(t, err)
	assert.Nil(t, company)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Code)
	mockRepo.AssertExpectations(t)
}

func TestGetCompanyByCode_NotFound(t *testing.T) {
	mockRepo := new(MockCompanyRepository)
	svc := services.NewCompanyService(mockRepo)

	mockRepo.On("FindCompanyByCode", mock.Anything, "nope").
		Return(nil, apperrors.NewNotFoundError("cannot find company with code: nope")).Once()

	company, err := svc.GetCompanyByCode(context.Background(), "nope")

	require.Error(t, err)
	assert.Nil(t, company)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestUpdateCompany_CodeIsImmutable(t *testing.T) {
	mockRepo := new(MockCompanyRepository)
	svc := services.NewCompanyService(mockRepo)

	var updated domain.Company
	mockRepo.On("UpdateCompany", mock.Anything, mock.AnythingOfType("domain.Company")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.Company)
		}).
		Return(nil).Once()

	// The new name would slug to something else; the code must stay put.
	company, err := svc.UpdateCompany(context.Background(), "apple-inc", dto.UpdateCompanyRequest{
		Name:        "Apple Computer",
		Description: "Maker of OSX",
	})

	require.NoError(t, err)
	assert.Equal(t, "apple-inc", company.Code)
	assert.Equal(t, "apple-inc", updated.Code)
	assert.Equal(t, "Apple Computer", updated.Name)
	mockRepo.AssertExpectations(t)
}

func TestListCompanies_NilBecomesEmptySlice(t *testing.T) {
	mockRepo := new(MockCompanyRepository)
	svc := services.NewCompanyService(mockRepo)

	mockRepo.On("FindCompanies", mock.Anything).Return(nil, nil).Once()

	companies, err := svc.ListCompanies(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, companies)
	assert.Empty(t, companies)
	mockRepo.AssertExpectations(t)
}

func TestDeleteCompany_NotFoundPropagates(t *testing.T) {
	mockRepo := new(MockCompanyRepository)
	svc := services.NewCompanyService(mockRepo)

	mockRepo.On("DeleteCompany", mock.Anything, "ghost").
		Return(apperrors.NewNotFoundError("cannot delete company with code: ghost")).Once()

	err := svc.DeleteCompany(context.Background(), "ghost")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
