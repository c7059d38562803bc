package company

import (
	"companykata/internal/company/controller"
	"companykata/internal/company/usecase"

	"go.uber.org/zap"
)

func NewModule(repo usecase.CompanyRepository, logger *zap.Logger) *controller.CompanyController {
	uc := usecase.NewCompanyQueryUseCase(repo, logger)
	return controller.NewCompanyController(uc, logger)
}
