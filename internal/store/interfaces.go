package store

import (
	"context"

	"github.com/bestreads/bestreads/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/catalog_repository_mock.go -package=mock

// CatalogRepository reads catalog records keyed by item id. The file-backed
// implementation resolves paths by glob under a root directory; another
// backing store can be swapped in without touching the service or HTTP
// layers.
//
// Every method returns an error wrapping one of the sentinels in errors.go:
// [ErrItemNotFound] and [ErrReadingFile] are client-facing, [ErrResolvingPaths]
// and [ErrListingCatalog] are server faults.
type CatalogRepository interface {
	// FindItem resolves the item directory and returns its path.
	FindItem(ctx context.Context, itemID string) (string, error)

	// ReadDescription returns the content of description.txt verbatim.
	ReadDescription(ctx context.Context, itemID string) (string, error)

	// ReadInfo returns the title and author lines of info.txt.
	ReadInfo(ctx context.Context, itemID string) (models.Info, error)

	// ReadReviews returns one review per review*.txt file, in glob order.
	// An item without review files is reported as [ErrItemNotFound].
	ReadReviews(ctx context.Context, itemID string) ([]models.Review, error)

	// ListItems returns every item directory name with its title.
	// Any failure aborts the whole listing.
	ListItems(ctx context.Context) ([]models.CatalogEntry, error)
}
