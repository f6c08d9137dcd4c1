package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	apperrors "takeout-recommender/internal/common/errors"
	"takeout-recommender/internal/common/logger"
	"takeout-recommender/internal/models"
	"takeout-recommender/pkg/catalogfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	rs  []models.Restaurant
	err error
}

func (s stubSource) Name() string { return "stub" }

func (s stubSource) Restaurants(context.Context) ([]models.Restaurant, error) {
	return s.rs, s.err
}

func TestLoad(t *testing.T) {
	log := logger.NewTestLogger(t)
	ctx := context.Background()

	t.Run("builtin", func(t *testing.T) {
		c, err := Load(ctx, BuiltinSource{}, log)
		require.NoError(t, err)
		assert.Equal(t, 50, c.Len())
	})

	t.Run("empty source falls back to built-in data", func(t *testing.T) {
		c, err := Load(ctx, stubSource{}, log)
		require.NoError(t, err)
		assert.Equal(t, 50, c.Len())
	})

	t.Run("source error is a load failure", func(t *testing.T) {
		_, err := Load(ctx, stubSource{err: errors.New("connection refused")}, log)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeCatalogLoadFailed))
	})

	t.Run("invalid data is a load failure", func(t *testing.T) {
		_, err := Load(ctx, stubSource{rs: []models.Restaurant{{ID: 1, Name: "A"}, {ID: 1, Name: "B"}}}, log)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeCatalogLoadFailed))
	})

	t.Run("source data is used as-is", func(t *testing.T) {
		c, err := Load(ctx, stubSource{rs: []models.Restaurant{{ID: 9, Name: "Only"}}}, log)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Len())
	})
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	missing := FileSource{Path: filepath.Join(dir, "missing.json")}
	rs, err := missing.Restaurants(ctx)
	require.NoError(t, err)
	assert.Empty(t, rs)

	path := filepath.Join(dir, "restaurants.json")
	require.NoError(t, catalogfile.Save(path, &catalogfile.Snapshot{
		Version:     catalogfile.CurrentVersion,
		Restaurants: ToEntries(Default().All()[:3]),
	}))

	rs, err = FileSource{Path: path}.Restaurants(ctx)
	require.NoError(t, err)
	require.Len(t, rs, 3)
	assert.Equal(t, Default().All()[:3], rs)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0o600))
	_, err = FileSource{Path: bad}.Restaurants(ctx)
	assert.Error(t, err)
}

func TestEntriesRoundTrip(t *testing.T) {
	rs := Default().All()
	assert.Equal(t, rs, FromEntries(ToEntries(rs)))
}
