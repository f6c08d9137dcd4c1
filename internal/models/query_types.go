// internal/models/query_types.go
package models

// CatalogSource names where the restaurant catalog is loaded from.
type CatalogSource string

const (
	CatalogSourceBuiltin       CatalogSource = "builtin"
	CatalogSourceFile          CatalogSource = "file"
	CatalogSourcePostgres      CatalogSource = "postgres"
	CatalogSourceElasticsearch CatalogSource = "elasticsearch"
)

// Valid reports whether s is a known catalog source.
func (s CatalogSource) Valid() bool {
	switch s {
	case CatalogSourceBuiltin, CatalogSourceFile, CatalogSourcePostgres, CatalogSourceElasticsearch:
		return true
	}
	return false
}
