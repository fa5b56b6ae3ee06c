package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bestreads/bestreads/internal/logger"
	"github.com/bestreads/bestreads/models"
	"github.com/spf13/afero"
)

const (
	descriptionFile   = "description.txt"
	infoFile          = "info.txt"
	reviewFilePattern = "review*.txt"
)

// catalogFileRepository implements [CatalogRepository] on top of a directory
// tree: {root}/{item_id}/{description.txt,info.txt,review*.txt}.
//
// Paths are resolved with afero.Glob, which returns matches in lexical
// order; "first match" means index 0 of that order.
type catalogFileRepository struct {
	fs   afero.Fs
	root string

	logger *logger.Logger
}

// NewCatalogFileRepository returns a [CatalogRepository] reading items from
// root on fs.
func NewCatalogFileRepository(fs afero.Fs, root string, logger *logger.Logger) CatalogRepository {
	return &catalogFileRepository{
		fs:     fs,
		root:   root,
		logger: logger,
	}
}

func (r *catalogFileRepository) FindItem(ctx context.Context, itemID string) (string, error) {
	return r.resolveFirst(itemID, "")
}

func (r *catalogFileRepository) ReadDescription(ctx context.Context, itemID string) (string, error) {
	path, err := r.resolveFirst(itemID, descriptionFile)
	if err != nil {
		return "", err
	}

	content, err := r.readFile(path)
	if err != nil {
		return "", err
	}
	return content, nil
}

func (r *catalogFileRepository) ReadInfo(ctx context.Context, itemID string) (models.Info, error) {
	path, err := r.resolveFirst(itemID, infoFile)
	if err != nil {
		return models.Info{}, err
	}

	content, err := r.readFile(path)
	if err != nil {
		return models.Info{}, err
	}
	return parseInfo(content), nil
}

func (r *catalogFileRepository) ReadReviews(ctx context.Context, itemID string) ([]models.Review, error) {
	paths, err := r.resolve(itemID, reviewFilePattern)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no reviews for %q", ErrItemNotFound, itemID)
	}

	reviews := make([]models.Review, 0, len(paths))
	for _, path := range paths {
		content, err := r.readFile(path)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, parseReview(content))
	}

	return reviews, nil
}

// ListItems globs {root}/* and reads the title of every match. Hidden
// entries are skipped. An entry without a readable info.txt (including plain
// files sitting in root) aborts the listing.
func (r *catalogFileRepository) ListItems(ctx context.Context) ([]models.CatalogEntry, error) {
	paths, err := afero.Glob(r.fs, filepath.Join(r.root, "*"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrListingCatalog, ErrResolvingPaths, err)
	}

	entries := make([]models.CatalogEntry, 0, len(paths))
	for _, path := range paths {
		itemID := filepath.Base(path)
		if strings.HasPrefix(itemID, ".") {
			continue
		}

		content, err := r.readFile(filepath.Join(path, infoFile))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrListingCatalog, err)
		}

		entries = append(entries, models.CatalogEntry{
			ItemID: itemID,
			Title:  splitLines(content)[0],
		})
	}

	return entries, nil
}

// resolve expands {root}/{itemID}/{pattern}. An empty pattern resolves the
// item directory itself.
func (r *catalogFileRepository) resolve(itemID, pattern string) ([]string, error) {
	if !isValidItemID(itemID) {
		r.logger.Warn().Str("item_id", itemID).Msg("rejected item id")
		return nil, fmt.Errorf("%w: invalid item id %q", ErrItemNotFound, itemID)
	}

	paths, err := afero.Glob(r.fs, filepath.Join(r.root, escapeGlob(itemID), pattern))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResolvingPaths, err)
	}
	return paths, nil
}

func (r *catalogFileRepository) resolveFirst(itemID, pattern string) (string, error) {
	paths, err := r.resolve(itemID, pattern)
	if err != nil {
		return "", err
	}
	if len(paths) == 0 {
		return "", fmt.Errorf("%w: %q has no %q", ErrItemNotFound, itemID, pattern)
	}
	return paths[0], nil
}

func (r *catalogFileRepository) readFile(path string) (string, error) {
	content, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadingFile, err)
	}
	return string(content), nil
}

// isValidItemID rejects ids that would escape the item directory: path
// separators, the glob escape character and dot segments.
func isValidItemID(itemID string) bool {
	if itemID == "" || itemID == "." || itemID == ".." {
		return false
	}
	return !strings.ContainsAny(itemID, `/\`)
}

// globEscaper makes an item id match only the directory of that exact name.
// A lone "]" is already literal to filepath.Match.
var globEscaper = strings.NewReplacer(`*`, `\*`, `?`, `\?`, `[`, `\[`)

func escapeGlob(itemID string) string {
	return globEscaper.Replace(itemID)
}
