package controller

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"companykata/internal/collections"
	"companykata/internal/company/usecase"
	"companykata/internal/dto"
	apperrors "companykata/internal/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type CompanyUseCase interface {
	ListCustomers(ctx context.Context) (string, []dto.CustomerSummaryDTO, error)
	GetCustomer(ctx context.Context, name string) (*dto.CustomerDetailDTO, error)
	TotalOrderValues(ctx context.Context) (*usecase.TotalOrderValues, error)
	TopCustomer(ctx context.Context) (*dto.CustomerSummaryDTO, error)
	SupplierNames(ctx context.Context, separator string) (string, error)
	DeliverToCity(ctx context.Context, city string) (*usecase.Delivery, error)
}

type CompanyController struct {
	useCase CompanyUseCase
	logger  *zap.Logger
}

func NewCompanyController(useCase CompanyUseCase, logger *zap.Logger) *CompanyController {
	return &CompanyController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *CompanyController) ListCustomers(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	company, customers, err := c.useCase.ListCustomers(r.Context())
	if err != nil {
		c.handleUseCaseError(w, traceID, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.CustomersResponse{
		TraceID:   traceID,
		Company:   company,
		Customers: customers,
	})
}

func (c *CompanyController) GetCustomer(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	customer, err := c.useCase.GetCustomer(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		c.handleUseCaseError(w, traceID, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.CustomerResponse{
		TraceID:  traceID,
		Customer: *customer,
	})
}

func (c *CompanyController) TotalOrderValues(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	result, err := c.useCase.TotalOrderValues(r.Context())
	if err != nil {
		c.handleUseCaseError(w, traceID, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.TotalOrderValuesResponse{
		TraceID: traceID,
		Values:  result.Values,
		Lowest:  result.Lowest,
		Highest: result.Highest,
	})
}

func (c *CompanyController) TopCustomer(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	customer, err := c.useCase.TopCustomer(r.Context())
	if err != nil {
		c.handleUseCaseError(w, traceID, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.TopCustomerResponse{
		TraceID:  traceID,
		Customer: *customer,
	})
}

func (c *CompanyController) SupplierNames(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	separator := r.URL.Query().Get("separator")
	if len(separator) > 16 {
		c.handleUseCaseError(w, traceID, apperrors.NewValidationError("separator too long", apperrors.ValidationDetail{
			Field:   "separator",
			Message: "separator must be at most 16 bytes",
		}))
		return
	}
	if separator == "" {
		separator = usecase.DefaultSeparator
	}

	names, err := c.useCase.SupplierNames(r.Context(), separator)
	if err != nil {
		c.handleUseCaseError(w, traceID, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.SupplierNamesResponse{
		TraceID:   traceID,
		Separator: separator,
		Names:     names,
	})
}

func (c *CompanyController) DeliverToCity(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	city := chi.URLParam(r, "city")
	delivery, err := c.useCase.DeliverToCity(r.Context(), city)
	if err != nil {
		c.handleUseCaseError(w, traceID, err)
		return
	}

	logger.Info("deliveries recorded", zap.String("city", city), zap.Int("orderCount", len(delivery.OrderIDs)))

	c.writeJSON(w, http.StatusOK, dto.DeliveryResponse{
		TraceID:   traceID,
		City:      delivery.City,
		Delivered: len(delivery.OrderIDs),
		OrderIDs:  collections.Map(delivery.OrderIDs, uuid.UUID.String),
	})
}

func (c *CompanyController) handleUseCaseError(w http.ResponseWriter, traceID string, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusBadRequest, "VALIDATION_ERROR", ve.Message)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusConflict, "CONFLICT", err.Error())
		return
	}

	c.logger.Error("unexpected error", zap.String("traceId", traceID), zap.Error(err))
	c.writeErrorResponse(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

func (c *CompanyController) writeErrorResponse(w http.ResponseWriter, traceID string, statusCode int, code string, message string) {
	c.writeJSON(w, statusCode, dto.ErrorResponse{
		TraceID: traceID,
		Error:   code,
		Message: message,
	})
}

func (c *CompanyController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
