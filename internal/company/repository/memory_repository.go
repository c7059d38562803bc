package repository

import (
	"context"

	"github.com/google/uuid"

	"companykata/internal/domain"
)

// MemoryCompanyRepository serves a single in-process company. Deliveries mutate that company
// directly, so there is nothing left to save.
type MemoryCompanyRepository struct {
	company *domain.Company
}

func NewMemoryCompanyRepository(company *domain.Company) *MemoryCompanyRepository {
	return &MemoryCompanyRepository{company: company}
}

func (r *MemoryCompanyRepository) Load(_ context.Context) (*domain.Company, error) {
	return r.company, nil
}

func (r *MemoryCompanyRepository) SaveDeliveries(_ context.Context, _ []uuid.UUID) error {
	return nil
}
