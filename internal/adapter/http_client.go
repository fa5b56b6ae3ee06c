package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/bestreads/bestreads/internal/config"
	"github.com/bestreads/bestreads/internal/logger"
	"github.com/bestreads/bestreads/models"
	"github.com/go-resty/resty/v2"
)

const (
	descriptionPath = "/bestreads/description/{item_id}"
	infoPath        = "/bestreads/info/{item_id}"
	reviewsPath     = "/bestreads/reviews/{item_id}"
	listingPrefix   = "/bestreads/"
)

type httpCatalogClient struct {
	client *resty.Client

	collection string
	idField    string

	logger *logger.Logger
}

// NewCatalogClient constructs the HTTP implementation of [CatalogClient].
// The base URL comes from adapterCfg.HTTPAddress; a bare "host:port" is
// treated as http. catalogCfg names the listing route and its JSON keys.
func NewCatalogClient(adapterCfg config.ClientAdapter, catalogCfg config.ClientCatalog, logger *logger.Logger) (CatalogClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	logger.Info().Str("base_url", baseURL).Msg("catalog client created")

	return &httpCatalogClient{
		client:     client,
		collection: catalogCfg.Collection,
		idField:    catalogCfg.IDField,
		logger:     logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpCatalogClient) ListCatalog(ctx context.Context) ([]models.CatalogEntry, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(listingPrefix + url.PathEscape(c.collection))
	if err != nil {
		return nil, fmt.Errorf("list catalog request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var payload map[string][]map[string]string
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("%w: decode listing: %w", ErrUnexpectedResponse, err)
	}

	items, ok := payload[c.collection]
	if !ok {
		return nil, fmt.Errorf("%w: listing has no %q key", ErrUnexpectedResponse, c.collection)
	}

	entries := make([]models.CatalogEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, models.CatalogEntry{
			ItemID: item[c.idField],
			Title:  item["title"],
		})
	}

	return entries, nil
}

func (c *httpCatalogClient) GetDescription(ctx context.Context, itemID string) (string, error) {
	resp, err := c.itemRequest(ctx, itemID).Get(descriptionPath)
	if err != nil {
		return "", fmt.Errorf("get description request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

func (c *httpCatalogClient) GetInfo(ctx context.Context, itemID string) (models.Info, error) {
	resp, err := c.itemRequest(ctx, itemID).Get(infoPath)
	if err != nil {
		return models.Info{}, fmt.Errorf("get info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Info{}, err
	}

	var info models.Info
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return models.Info{}, fmt.Errorf("%w: decode info: %w", ErrUnexpectedResponse, err)
	}
	return info, nil
}

func (c *httpCatalogClient) GetReviews(ctx context.Context, itemID string) ([]models.Review, error) {
	resp, err := c.itemRequest(ctx, itemID).Get(reviewsPath)
	if err != nil {
		return nil, fmt.Errorf("get reviews request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var reviews []models.Review
	if err = json.Unmarshal(resp.Body(), &reviews); err != nil {
		return nil, fmt.Errorf("%w: decode reviews: %w", ErrUnexpectedResponse, err)
	}
	return reviews, nil
}

// itemRequest prepares a request whose {item_id} path parameter is escaped
// by resty.
func (c *httpCatalogClient) itemRequest(ctx context.Context, itemID string) *resty.Request {
	c.logger.Debug().Str("item_id", itemID).Msg("catalog item request")

	return c.client.R().
		SetContext(ctx).
		SetPathParam("item_id", itemID)
}
