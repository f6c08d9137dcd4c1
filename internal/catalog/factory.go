package catalog

import (
	"fmt"

	"takeout-recommender/internal/common/config"
	"takeout-recommender/internal/common/database"
	"takeout-recommender/internal/models"
)

// NewSource builds the Source selected by cfg.Catalog.Source. The returned
// closer releases any connection the source opened.
func NewSource(cfg *config.Config) (Source, func() error, error) {
	noop := func() error { return nil }

	switch models.CatalogSource(cfg.Catalog.Source) {
	case models.CatalogSourceBuiltin, "":
		return BuiltinSource{}, noop, nil

	case models.CatalogSourceFile:
		return FileSource{Path: cfg.Catalog.FilePath}, noop, nil

	case models.CatalogSourcePostgres:
		db, err := database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return nil, nil, err
		}
		return NewPostgresSource(db, cfg.Catalog.Table), db.Close, nil

	case models.CatalogSourceElasticsearch:
		es, err := database.NewElasticsearch(cfg.Database.Elasticsearch, nil)
		if err != nil {
			return nil, nil, err
		}
		return NewElasticsearchSource(es, cfg.Catalog.Index), noop, nil

	default:
		return nil, nil, fmt.Errorf("unsupported catalog source %q", cfg.Catalog.Source)
	}
}
