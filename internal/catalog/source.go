package catalog

import (
	"context"
	"errors"
	"io/fs"

	apperrors "takeout-recommender/internal/common/errors"
	"takeout-recommender/internal/common/logger"
	"takeout-recommender/internal/models"
	"takeout-recommender/pkg/catalogfile"
)

// Source yields raw restaurant records. An empty result means "no data" and
// is replaced by the built-in catalog.
type Source interface {
	Name() string
	Restaurants(ctx context.Context) ([]models.Restaurant, error)
}

// Load reads src once and builds the catalog. Source and validation errors
// are reported as CATALOG_LOAD_FAILED.
func Load(ctx context.Context, src Source, log logger.Logger) (*Catalog, error) {
	log = log.With(map[string]interface{}{"component": "catalog", "source": src.Name()})

	rs, err := src.Restaurants(ctx)
	if err != nil {
		return nil, apperrors.NewCatalogLoadFailedError(src.Name(), err)
	}

	if len(rs) == 0 {
		log.Warn("catalog source is empty, using built-in restaurants", nil)
		return Default(), nil
	}

	c, err := New(rs)
	if err != nil {
		return nil, apperrors.NewCatalogLoadFailedError(src.Name(), err)
	}

	log.Info("catalog loaded", map[string]interface{}{
		"restaurants": c.Len(),
		"cuisines":    len(c.Cuisines()),
	})
	return c, nil
}

// BuiltinSource serves the built-in restaurant data.
type BuiltinSource struct{}

func (BuiltinSource) Name() string { return string(models.CatalogSourceBuiltin) }

func (BuiltinSource) Restaurants(context.Context) ([]models.Restaurant, error) {
	out := make([]models.Restaurant, len(defaultRestaurants))
	copy(out, defaultRestaurants)
	return out, nil
}

// FileSource reads a catalogfile JSON snapshot. A missing file counts as empty.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return string(models.CatalogSourceFile) }

func (s FileSource) Restaurants(context.Context) ([]models.Restaurant, error) {
	snap, err := catalogfile.Load(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return FromEntries(snap.Restaurants), nil
}

// FromEntries converts snapshot entries into restaurants.
func FromEntries(entries []catalogfile.Entry) []models.Restaurant {
	out := make([]models.Restaurant, len(entries))
	for i, e := range entries {
		out[i] = models.Restaurant(e)
	}
	return out
}

// ToEntries converts restaurants into snapshot entries.
func ToEntries(rs []models.Restaurant) []catalogfile.Entry {
	out := make([]catalogfile.Entry, len(rs))
	for i, r := range rs {
		out[i] = catalogfile.Entry(r)
	}
	return out
}
