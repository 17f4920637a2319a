package software

import (
	"context"
	"fmt"

	"github.com/accesshub/accesshub/internal/shared"
)

// Service wraps catalog business rules.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateSoftware persists a new catalog entry. Titles are not unique by name;
// the same name may be registered twice.
func (s *Service) CreateSoftware(ctx context.Context, req CreateSoftwareRequest) (*Software, error) {
	if len(req.AccessLevels) == 0 {
		return nil, fmt.Errorf("%w: accessLevels must not be empty", shared.ErrInvalidInput)
	}
	for _, level := range req.AccessLevels {
		if level == "" {
			return nil, fmt.Errorf("%w: access levels must be non-empty strings", shared.ErrInvalidInput)
		}
	}
	return s.repo.Create(ctx, Software{
		Name:         req.Name,
		Description:  req.Description,
		AccessLevels: req.AccessLevels,
	})
}

// ListSoftware returns every catalog entry.
func (s *Service) ListSoftware(ctx context.Context) ([]Software, error) {
	return s.repo.List(ctx)
}
