package catalogRepo

import (
	"context"
	"errors"

	"clinicbook/models"
)

// ErrNotFound is returned when a service or promotion id is unknown.
var ErrNotFound = errors.New("catalog entry not found")

// CatalogRepository stores the service and promotion catalog used to resolve
// appointment durations and pricing.
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id string) (*models.Service, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	GetPromotionByID(ctx context.Context, id string) (*models.Promotion, error)
	ListPromotions(ctx context.Context, activeOnly bool) ([]models.Promotion, error)
}
