package service

import (
	"context"

	"github.com/bestreads/bestreads/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// CatalogService exposes the read operations of the catalog. Errors wrap the
// store sentinels so transports can classify them with errors.Is.
type CatalogService interface {
	GetDescription(ctx context.Context, itemID string) (string, error)
	GetInfo(ctx context.Context, itemID string) (models.Info, error)
	GetReviews(ctx context.Context, itemID string) ([]models.Review, error)
	ListCatalog(ctx context.Context) ([]models.CatalogEntry, error)
}

// AppInfoService reports static information about the running application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
