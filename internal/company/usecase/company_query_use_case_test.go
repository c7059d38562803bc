package usecase

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"companykata/internal/domain"
	"companykata/internal/errors"
	"companykata/internal/fixture"
)

// Mock implementations
type mockCompanyRepository struct {
	LoadFunc           func(ctx context.Context) (*domain.Company, error)
	SaveDeliveriesFunc func(ctx context.Context, orderIDs []uuid.UUID) error
}

func (m *mockCompanyRepository) Load(ctx context.Context) (*domain.Company, error) {
	return m.LoadFunc(ctx)
}

func (m *mockCompanyRepository) SaveDeliveries(ctx context.Context, orderIDs []uuid.UUID) error {
	return m.SaveDeliveriesFunc(ctx, orderIDs)
}

func fixtureRepository(company *domain.Company) *mockCompanyRepository {
	return &mockCompanyRepository{
		LoadFunc: func(ctx context.Context) (*domain.Company, error) {
			return company, nil
		},
		SaveDeliveriesFunc: func(ctx context.Context, orderIDs []uuid.UUID) error {
			return nil
		},
	}
}

func newTestUseCase(repo CompanyRepository) *CompanyQueryUseCase {
	return NewCompanyQueryUseCase(repo, zap.NewNop())
}

// Tests

func TestListCustomers(t *testing.T) {
	uc := newTestUseCase(fixtureRepository(fixture.NewCompany()))

	name, customers, err := uc.ListCustomers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, fixture.CompanyName, name)
	require.Len(t, customers, 3)
	assert.Equal(t, "Fred", customers[0].Name)
	assert.Equal(t, 2, customers[0].OrderCount)
	assert.Equal(t, 71.0, customers[0].TotalOrderValue)
}

func TestGetCustomer(t *testing.T) {
	uc := newTestUseCase(fixtureRepository(fixture.NewCompany()))

	customer, err := uc.GetCustomer(context.Background(), "Mary")
	require.NoError(t, err)

	assert.Equal(t, "Liphook", customer.City)
	assert.Equal(t, 857.0, customer.TotalOrderValue)
	require.Len(t, customer.Orders, 2)
	assert.Equal(t, 652.0, customer.Orders[0].Value)
	assert.False(t, customer.Orders[0].Delivered)
}

func TestGetCustomer_Errors(t *testing.T) {
	uc := newTestUseCase(fixtureRepository(fixture.NewCompany()))

	_, err := uc.GetCustomer(context.Background(), "Zed")
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)

	_, err = uc.GetCustomer(context.Background(), "  ")
	_, ok = errors.IsValidationError(err)
	assert.True(t, ok)
}

func TestTotalOrderValues(t *testing.T) {
	uc := newTestUseCase(fixtureRepository(fixture.NewCompany()))

	result, err := uc.TotalOrderValues(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []float64{71.0, 505.5, 857.0}, result.Values)
	assert.Equal(t, 71.0, result.Lowest)
	assert.Equal(t, 857.0, result.Highest)
}

func TestTotalOrderValues_NoCustomers(t *testing.T) {
	uc := newTestUseCase(fixtureRepository(domain.NewCompany("Empty")))

	_, err := uc.TotalOrderValues(context.Background())

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestTopCustomer(t *testing.T) {
	uc := newTestUseCase(fixtureRepository(fixture.NewCompany()))

	top, err := uc.TopCustomer(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Mary", top.Name)
	assert.Equal(t, 857.0, top.TotalOrderValue)
}

func TestSupplierNames(t *testing.T) {
	uc := newTestUseCase(fixtureRepository(fixture.NewCompany()))

	tests := []struct {
		name      string
		separator string
		expected  string
	}{
		{
			name:      "default separator",
			separator: "",
			expected:  "Shedtastic~Splendid Crocks~Annoying Pets~Gnomes 'R' Us~Furniture Hamlet~SFD~Doxins",
		},
		{
			name:      "custom separator",
			separator: "|",
			expected:  "Shedtastic|Splendid Crocks|Annoying Pets|Gnomes 'R' Us|Furniture Hamlet|SFD|Doxins",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names, err := uc.SupplierNames(context.Background(), tt.separator)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestDeliverToCity(t *testing.T) {
	company := fixture.NewCompany()
	var saved []uuid.UUID
	repo := fixtureRepository(company)
	repo.SaveDeliveriesFunc = func(ctx context.Context, orderIDs []uuid.UUID) error {
		saved = orderIDs
		return nil
	}
	uc := newTestUseCase(repo)

	delivery, err := uc.DeliverToCity(context.Background(), "London")
	require.NoError(t, err)

	assert.Equal(t, "London", delivery.City)
	assert.Len(t, delivery.OrderIDs, 4)
	assert.Equal(t, delivery.OrderIDs, saved)

	fred, err := company.CustomerNamed("Fred")
	require.NoError(t, err)
	assert.Equal(t, fred.Orders()[0].ID, saved[0])
}

func TestDeliverToCity_EmptyCity(t *testing.T) {
	uc := newTestUseCase(fixtureRepository(fixture.NewCompany()))

	_, err := uc.DeliverToCity(context.Background(), "")

	_, ok := errors.IsValidationError(err)
	assert.True(t, ok)
}

func TestDeliverToCity_SaveFails(t *testing.T) {
	repo := fixtureRepository(fixture.NewCompany())
	saveErr := stderrors.New("connection reset")
	repo.SaveDeliveriesFunc = func(ctx context.Context, orderIDs []uuid.UUID) error {
		return saveErr
	}
	uc := newTestUseCase(repo)

	_, err := uc.DeliverToCity(context.Background(), "London")

	assert.ErrorIs(t, err, saveErr)
}

func TestLoadFailure_WrappedAsInternal(t *testing.T) {
	loadErr := stderrors.New("database unavailable")
	repo := &mockCompanyRepository{
		LoadFunc: func(ctx context.Context) (*domain.Company, error) {
			return nil, loadErr
		},
	}
	uc := newTestUseCase(repo)

	_, err := uc.TopCustomer(context.Background())

	var internalErr *errors.InternalError
	require.ErrorAs(t, err, &internalErr)
	assert.ErrorIs(t, err, loadErr)
}

func TestLoadFailure_NotFoundPassesThrough(t *testing.T) {
	repo := &mockCompanyRepository{
		LoadFunc: func(ctx context.Context) (*domain.Company, error) {
			return nil, errors.NewNotFoundError("company Acme not found")
		},
	}
	uc := newTestUseCase(repo)

	_, _, err := uc.ListCustomers(context.Background())

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.Equal(t, "company Acme not found", nfe.Message)
}
