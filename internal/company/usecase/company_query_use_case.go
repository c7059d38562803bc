package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"companykata/internal/collections"
	"companykata/internal/domain"
	"companykata/internal/dto"
	"companykata/internal/errors"
	"companykata/internal/query"
)

const DefaultSeparator = "~"

type CompanyRepository interface {
	Load(ctx context.Context) (*domain.Company, error)
	SaveDeliveries(ctx context.Context, orderIDs []uuid.UUID) error
}

type TotalOrderValues struct {
	Values  []float64
	Lowest  float64
	Highest float64
}

type Delivery struct {
	City     string
	OrderIDs []uuid.UUID
}

// CompanyQueryUseCase runs the company queries against whatever the repository loads.
// Calls are serialised because the in-memory company is shared between requests.
type CompanyQueryUseCase struct {
	repo   CompanyRepository
	logger *zap.Logger
	mu     sync.Mutex
}

func NewCompanyQueryUseCase(repo CompanyRepository, logger *zap.Logger) *CompanyQueryUseCase {
	return &CompanyQueryUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *CompanyQueryUseCase) ListCustomers(ctx context.Context) (string, []dto.CustomerSummaryDTO, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	company, err := uc.load(ctx)
	if err != nil {
		return "", nil, err
	}

	return company.Name, collections.Map(company.Customers(), toCustomerSummary), nil
}

func (uc *CompanyQueryUseCase) GetCustomer(ctx context.Context, name string) (*dto.CustomerDetailDTO, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.NewValidationError("name is required", errors.ValidationDetail{
			Field:   "name",
			Message: "customer name must not be empty",
		})
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	company, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	customer, err := company.CustomerNamed(name)
	if err != nil {
		uc.logger.Debug("customer lookup failed", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	return &dto.CustomerDetailDTO{
		CustomerSummaryDTO: toCustomerSummary(customer),
		Orders: collections.Map(customer.Orders(), func(o *domain.Order) dto.OrderDTO {
			return dto.OrderDTO{ID: o.ID.String(), Value: o.Value, Delivered: o.IsDelivered()}
		}),
	}, nil
}

func (uc *CompanyQueryUseCase) TotalOrderValues(ctx context.Context) (*TotalOrderValues, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	company, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	sorted := query.SortedTotalOrderValues(company)
	lowest, err := collections.First(sorted)
	if err != nil {
		return nil, errors.NewNotFoundError("company has no customers")
	}
	highest, err := collections.Last(sorted)
	if err != nil {
		return nil, errors.NewNotFoundError("company has no customers")
	}

	uc.logger.Info("total order values computed", zap.Int("customerCount", len(sorted)), zap.Float64("lowest", lowest), zap.Float64("highest", highest))

	return &TotalOrderValues{Values: sorted, Lowest: lowest, Highest: highest}, nil
}

func (uc *CompanyQueryUseCase) TopCustomer(ctx context.Context) (*dto.CustomerSummaryDTO, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	company, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	byComparator, err := query.CustomerWithMaxTotalOrderValue(company)
	if err != nil {
		return nil, errors.NewNotFoundError("company has no customers")
	}

	byFold, err := query.CustomerWithMaxTotalOrderValueByFold(company)
	if err != nil {
		return nil, errors.NewNotFoundError("company has no customers")
	}
	if byFold != byComparator {
		uc.logger.Warn("max selections disagree", zap.String("byComparator", byComparator.Name), zap.String("byFold", byFold.Name))
	}

	summary := toCustomerSummary(byComparator)
	return &summary, nil
}

func (uc *CompanyQueryUseCase) SupplierNames(ctx context.Context, separator string) (string, error) {
	if separator == "" {
		separator = DefaultSeparator
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	company, err := uc.load(ctx)
	if err != nil {
		return "", err
	}

	return query.SupplierNames(company, separator), nil
}

// DeliverToCity delivers every order of the customers living in city and persists the deliveries.
func (uc *CompanyQueryUseCase) DeliverToCity(ctx context.Context, city string) (*Delivery, error) {
	if strings.TrimSpace(city) == "" {
		return nil, errors.NewValidationError("city is required", errors.ValidationDetail{
			Field:   "city",
			Message: "city must not be empty",
		})
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.logger.Info("delivery started", zap.String("city", city))

	company, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	orders := query.DeliverOrdersToCity(company, city)
	orderIDs := collections.Map(orders, func(o *domain.Order) uuid.UUID { return o.ID })

	if err := uc.repo.SaveDeliveries(ctx, orderIDs); err != nil {
		uc.logger.Error("failed to save deliveries", zap.String("city", city), zap.Int("orderCount", len(orderIDs)), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("orders delivered", zap.String("city", city), zap.Int("orderCount", len(orderIDs)))

	return &Delivery{City: city, OrderIDs: orderIDs}, nil
}

func (uc *CompanyQueryUseCase) load(ctx context.Context) (*domain.Company, error) {
	company, err := uc.repo.Load(ctx)
	if err != nil {
		if _, ok := errors.IsNotFoundError(err); ok {
			return nil, err
		}
		uc.logger.Error("failed to load company", zap.Error(err))
		return nil, errors.NewInternalError("loading company", err)
	}
	return company, nil
}

func toCustomerSummary(c *domain.Customer) dto.CustomerSummaryDTO {
	return dto.CustomerSummaryDTO{
		Name:            c.Name,
		City:            c.City,
		OrderCount:      len(c.Orders()),
		TotalOrderValue: c.TotalOrderValue(),
	}
}
