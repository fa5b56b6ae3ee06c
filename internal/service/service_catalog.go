package service

import (
	"context"
	"errors"

	"github.com/bestreads/bestreads/internal/logger"
	"github.com/bestreads/bestreads/internal/store"
	"github.com/bestreads/bestreads/models"
)

type catalogService struct {
	repository store.CatalogRepository

	logger *logger.Logger
}

// NewCatalogService returns a [CatalogService] backed by repository.
//
// Item-scoped operations first resolve the item through FindItem, so a
// missing item is reported the same way for every route.
func NewCatalogService(repository store.CatalogRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		repository: repository,
		logger:     logger,
	}
}

func (s *catalogService) GetDescription(ctx context.Context, itemID string) (string, error) {
	if err := s.findItem(ctx, itemID); err != nil {
		return "", err
	}

	description, err := s.repository.ReadDescription(ctx, itemID)
	if err != nil {
		s.logFailure(ctx, err, itemID, "read description")
		return "", err
	}

	return description, nil
}

func (s *catalogService) GetInfo(ctx context.Context, itemID string) (models.Info, error) {
	if err := s.findItem(ctx, itemID); err != nil {
		return models.Info{}, err
	}

	info, err := s.repository.ReadInfo(ctx, itemID)
	if err != nil {
		s.logFailure(ctx, err, itemID, "read info")
		return models.Info{}, err
	}

	return info, nil
}

func (s *catalogService) GetReviews(ctx context.Context, itemID string) ([]models.Review, error) {
	if err := s.findItem(ctx, itemID); err != nil {
		return nil, err
	}

	reviews, err := s.repository.ReadReviews(ctx, itemID)
	if err != nil {
		s.logFailure(ctx, err, itemID, "read reviews")
		return nil, err
	}

	return reviews, nil
}

func (s *catalogService) ListCatalog(ctx context.Context) ([]models.CatalogEntry, error) {
	entries, err := s.repository.ListItems(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*catalogService.ListCatalog").Msg("error listing catalog")
		return nil, err
	}

	logger.FromContext(ctx).Debug().Int("items", len(entries)).Msg("catalog listed")
	return entries, nil
}

func (s *catalogService) findItem(ctx context.Context, itemID string) error {
	if _, err := s.repository.FindItem(ctx, itemID); err != nil {
		s.logFailure(ctx, err, itemID, "find item")
		return err
	}
	return nil
}

// logFailure logs missing items at debug level and everything else as an
// error, so a crawler probing ids does not flood the error log.
func (s *catalogService) logFailure(ctx context.Context, err error, itemID, op string) {
	log := logger.FromContext(ctx)

	event := log.Error()
	if errors.Is(err, store.ErrItemNotFound) {
		event = log.Debug()
	}
	event.Err(err).Str("item_id", itemID).Msg(op)
}
