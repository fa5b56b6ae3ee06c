package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bestreads/bestreads/internal/config"
	"github.com/bestreads/bestreads/internal/logger"
	"github.com/bestreads/bestreads/models"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRoot = "/catalog"

// newTestCatalog writes files (path relative to testRoot → content) into an
// in-memory filesystem and returns a repository over it.
func newTestCatalog(t *testing.T, files map[string]string) (CatalogRepository, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(testRoot, 0o755))
	for name, content := range files {
		p := filepath.Join(testRoot, name)
		require.NoError(t, fs.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, afero.WriteFile(fs, p, []byte(content), 0o644))
	}
	return NewCatalogFileRepository(fs, testRoot, logger.Nop()), fs
}

// failingReadFs lets Open succeed for directories but fails for every file
// whose base name is in failOn.
type failingReadFs struct {
	afero.Fs
	failOn map[string]bool
}

func (f failingReadFs) Open(name string) (afero.File, error) {
	if f.failOn[filepath.Base(name)] {
		return nil, &os.PathError{Op: "open", Path: name, Err: errors.New("permission denied")}
	}
	return f.Fs.Open(name)
}

func (f failingReadFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if f.failOn[filepath.Base(name)] {
		return nil, &os.PathError{Op: "open", Path: name, Err: errors.New("permission denied")}
	}
	return f.Fs.OpenFile(name, flag, perm)
}

// ── FindItem ──────────────────────────────────────────────────────────────────

func TestFindItem(t *testing.T) {
	repo, _ := newTestCatalog(t, map[string]string{"42/info.txt": "x"})
	ctx := context.Background()

	t.Run("existing item", func(t *testing.T) {
		path, err := repo.FindItem(ctx, "42")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(testRoot, "42"), path)
	})

	t.Run("missing item", func(t *testing.T) {
		_, err := repo.FindItem(ctx, "99")
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestFindItem_RejectsUnsafeIDs(t *testing.T) {
	repo, _ := newTestCatalog(t, map[string]string{
		"42/info.txt": "x",
		"43/info.txt": "y",
	})

	for _, id := range []string{"", ".", "..", "../catalog", `a\b`} {
		t.Run(id, func(t *testing.T) {
			_, err := repo.FindItem(context.Background(), id)
			assert.ErrorIs(t, err, ErrItemNotFound)
		})
	}
}

func TestFindItem_MetacharactersAreLiteral(t *testing.T) {
	repo, _ := newTestCatalog(t, map[string]string{
		"42/info.txt":   "x",
		"43/info.txt":   "y",
		"a[b/info.txt":  "bracket",
		"[4]/info.txt":  "class",
		"why?/info.txt": "question",
		"a]b/info.txt":  "closing",
	})
	ctx := context.Background()

	t.Run("patterns do not expand", func(t *testing.T) {
		for _, id := range []string{"4*", "4?", "[4]2", "*"} {
			_, err := repo.FindItem(ctx, id)
			assert.ErrorIs(t, err, ErrItemNotFound, id)
		}
	})

	t.Run("names with metacharacters resolve", func(t *testing.T) {
		for id, title := range map[string]string{"a[b": "bracket", "[4]": "class", "why?": "question", "a]b": "closing"} {
			path, err := repo.FindItem(ctx, id)
			require.NoError(t, err, id)
			assert.Equal(t, filepath.Join(testRoot, id), path)

			info, err := repo.ReadInfo(ctx, id)
			require.NoError(t, err, id)
			assert.Equal(t, title, info.Title)
		}
	})
}

func TestEscapeGlob(t *testing.T) {
	assert.Equal(t, "42", escapeGlob("42"))
	assert.Equal(t, `a\[b]`, escapeGlob("a[b]"))
	assert.Equal(t, `\*\?`, escapeGlob("*?"))
	assert.Equal(t, "Tiger's Milk", escapeGlob("Tiger's Milk"))
}

// ── ReadDescription ───────────────────────────────────────────────────────────

func TestReadDescription_RoundTrip(t *testing.T) {
	descriptions := []string{
		"A hobbit goes on an adventure.",
		"line one\nline two\r\nline three\n",
		"",
		"unicode: 珍珠奶茶 🧋\n\n\ttabbed",
	}

	for _, want := range descriptions {
		repo, _ := newTestCatalog(t, map[string]string{"42/description.txt": want})

		got, err := repo.ReadDescription(context.Background(), "42")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestReadDescription_NotFound(t *testing.T) {
	repo, _ := newTestCatalog(t, map[string]string{"42/info.txt": "x"})

	t.Run("missing item", func(t *testing.T) {
		_, err := repo.ReadDescription(context.Background(), "99")
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("item without description", func(t *testing.T) {
		_, err := repo.ReadDescription(context.Background(), "42")
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestReadDescription_ReadError(t *testing.T) {
	_, fs := newTestCatalog(t, map[string]string{"42/description.txt": "x"})
	repo := NewCatalogFileRepository(failingReadFs{Fs: fs, failOn: map[string]bool{"description.txt": true}}, testRoot, logger.Nop())

	_, err := repo.ReadDescription(context.Background(), "42")
	assert.ErrorIs(t, err, ErrReadingFile)
}

// ── ReadInfo ──────────────────────────────────────────────────────────────────

func TestReadInfo(t *testing.T) {
	repo, _ := newTestCatalog(t, map[string]string{
		"42/info.txt":     "The Hobbit\nJ.R.R. Tolkien",
		"7/info.txt":      "Taro Milk Tea",
		"crlf/info.txt":   "Dune\r\nFrank Herbert\r\n",
		"noinfo/desc.txt": "x",
	})
	ctx := context.Background()

	got, err := repo.ReadInfo(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "The Hobbit", got.Title)
	require.NotNil(t, got.Author)
	assert.Equal(t, "J.R.R. Tolkien", *got.Author)

	got, err = repo.ReadInfo(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, models.Info{Title: "Taro Milk Tea"}, got)

	got, err = repo.ReadInfo(ctx, "crlf")
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)
	assert.Equal(t, "Frank Herbert", *got.Author)

	_, err = repo.ReadInfo(ctx, "noinfo")
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = repo.ReadInfo(ctx, "99")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

// ── ReadReviews ───────────────────────────────────────────────────────────────

func TestReadReviews(t *testing.T) {
	repo, _ := newTestCatalog(t, map[string]string{
		"42/info.txt":    "The Hobbit\nJ.R.R. Tolkien",
		"42/review1.txt": "Alice\n5\nLoved it",
		"42/review2.txt": "Bob\n3\nToo long",
		"42/review3.txt": "Carol\r\n4\r\nGood",
		"42/notes.txt":   "not a review",
	})

	reviews, err := repo.ReadReviews(context.Background(), "42")
	require.NoError(t, err)
	require.Len(t, reviews, 3)

	names := make([]string, 0, len(reviews))
	for _, r := range reviews {
		names = append(names, r.Name)
	}
	assert.ElementsMatch(t, []string{"Alice", "Bob", "Carol"}, names)
	assert.Equal(t, "4", *reviews[2].Rating)
	assert.Equal(t, "Good", *reviews[2].Text)
}

// TestReadReviews_NoReviewsIsNotFound pins the conflation of "no reviews"
// with "no item".
func TestReadReviews_NoReviewsIsNotFound(t *testing.T) {
	repo, _ := newTestCatalog(t, map[string]string{"42/info.txt": "x"})

	reviews, err := repo.ReadReviews(context.Background(), "42")
	assert.Nil(t, reviews)
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = repo.ReadReviews(context.Background(), "99")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestReadReviews_OneUnreadableFileAbortsAll(t *testing.T) {
	_, fs := newTestCatalog(t, map[string]string{
		"42/review1.txt": "Alice\n5\nLoved it",
		"42/review2.txt": "Bob\n3\nToo long",
	})
	repo := NewCatalogFileRepository(failingReadFs{Fs: fs, failOn: map[string]bool{"review2.txt": true}}, testRoot, logger.Nop())

	reviews, err := repo.ReadReviews(context.Background(), "42")
	assert.Nil(t, reviews)
	assert.ErrorIs(t, err, ErrReadingFile)
}

// ── ListItems ─────────────────────────────────────────────────────────────────

func TestListItems(t *testing.T) {
	repo, _ := newTestCatalog(t, map[string]string{
		"hobbit/info.txt":   "The Hobbit\nJ.R.R. Tolkien",
		"dune/info.txt":     "Dune\r\nFrank Herbert",
		"taro/info.txt":     "Taro Milk Tea",
		".hidden/notes.txt": "skipped",
	})

	entries, err := repo.ListItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.CatalogEntry{
		{ItemID: "dune", Title: "Dune"},
		{ItemID: "hobbit", Title: "The Hobbit"},
		{ItemID: "taro", Title: "Taro Milk Tea"},
	}, entries)
}

func TestListItems_EmptyRoot(t *testing.T) {
	repo, _ := newTestCatalog(t, nil)

	entries, err := repo.ListItems(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestListItems_MissingRoot(t *testing.T) {
	repo := NewCatalogFileRepository(afero.NewMemMapFs(), "/nowhere", logger.Nop())

	entries, err := repo.ListItems(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListItems_ItemWithoutInfoAbortsListing(t *testing.T) {
	repo, _ := newTestCatalog(t, map[string]string{
		"hobbit/info.txt":        "The Hobbit",
		"broken/description.txt": "no info here",
	})

	entries, err := repo.ListItems(context.Background())
	assert.Nil(t, entries)
	assert.ErrorIs(t, err, ErrListingCatalog)
}

func TestListItems_StrayFileAbortsListing(t *testing.T) {
	repo, _ := newTestCatalog(t, map[string]string{
		"hobbit/info.txt": "The Hobbit",
		"README":          "stray",
	})

	_, err := repo.ListItems(context.Background())
	assert.ErrorIs(t, err, ErrListingCatalog)
}

func TestListItems_BadRootPattern(t *testing.T) {
	_, fs := newTestCatalog(t, map[string]string{"hobbit/info.txt": "The Hobbit"})
	repo := NewCatalogFileRepository(fs, "/bad[", logger.Nop())

	_, err := repo.ListItems(context.Background())
	assert.ErrorIs(t, err, ErrListingCatalog)
	assert.ErrorIs(t, err, ErrResolvingPaths)
}

func TestResolve_BadRootPattern(t *testing.T) {
	_, fs := newTestCatalog(t, map[string]string{"hobbit/info.txt": "The Hobbit"})
	repo := NewCatalogFileRepository(fs, "/bad[", logger.Nop())

	_, err := repo.ReadInfo(context.Background(), "hobbit")
	assert.ErrorIs(t, err, ErrResolvingPaths)
}

// ── Storages ──────────────────────────────────────────────────────────────────

func TestNewStorages(t *testing.T) {
	s := NewStorages(config.Catalog{Root: t.TempDir()}, logger.Nop())
	require.NotNil(t, s)
	assert.NotNil(t, s.CatalogRepository)
}

func TestNewStorages_MissingRootStillServesEmptyListing(t *testing.T) {
	s := newStorages(afero.NewMemMapFs(), config.Catalog{Root: "/missing"}, logger.Nop())

	entries, err := s.CatalogRepository.ListItems(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
