package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"takeout-recommender/internal/common/database"
	"takeout-recommender/internal/models"

	"github.com/lib/pq"
)

// undefinedTable is the SQLSTATE postgres reports for a missing relation.
const undefinedTable = "42P01"

// PostgresSource reads the catalog from a restaurants table.
type PostgresSource struct {
	db    *database.PostgresClient
	table string
}

func NewPostgresSource(db *database.PostgresClient, table string) *PostgresSource {
	if table == "" {
		table = "restaurants"
	}
	return &PostgresSource{db: db, table: table}
}

func (s *PostgresSource) Name() string { return string(models.CatalogSourcePostgres) }

// Restaurants returns every row ordered by id. A missing table counts as empty.
func (s *PostgresSource) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	query := fmt.Sprintf(`SELECT id, name, cuisine, price, rating, delivery_time,
		COALESCE(description, ''), COALESCE(signature_dish, ''), COALESCE(reviews, '')
		FROM %s ORDER BY id`, pq.QuoteIdentifier(s.table))

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == undefinedTable {
			return nil, nil
		}
		return nil, fmt.Errorf("query restaurants: %w", err)
	}
	defer rows.Close()

	var out []models.Restaurant
	for rows.Next() {
		var r models.Restaurant
		if err := rows.Scan(
			&r.ID, &r.Name, &r.Cuisine, &r.Price, &r.Rating, &r.DeliveryTime,
			&r.Description, &r.SignatureDish, &r.Reviews,
		); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate restaurants: %w", err)
	}
	return out, nil
}

// EnsureTable creates the restaurants table when it does not exist.
func (s *PostgresSource) EnsureTable(ctx context.Context) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id             INTEGER PRIMARY KEY,
		name           TEXT NOT NULL UNIQUE,
		cuisine        TEXT NOT NULL,
		price          NUMERIC(10,2) NOT NULL,
		rating         NUMERIC(3,1) NOT NULL,
		delivery_time  INTEGER NOT NULL,
		description    TEXT,
		signature_dish TEXT,
		reviews        TEXT
	)`, pq.QuoteIdentifier(s.table))

	if _, err := s.db.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("create table %s: %w", s.table, err)
	}
	return nil
}

// Upsert writes rs in a single transaction, replacing rows with the same id.
func (s *PostgresSource) Upsert(ctx context.Context, rs []models.Restaurant) error {
	stmt := fmt.Sprintf(`INSERT INTO %s
		(id, name, cuisine, price, rating, delivery_time, description, signature_dish, reviews)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			cuisine = EXCLUDED.cuisine,
			price = EXCLUDED.price,
			rating = EXCLUDED.rating,
			delivery_time = EXCLUDED.delivery_time,
			description = EXCLUDED.description,
			signature_dish = EXCLUDED.signature_dish,
			reviews = EXCLUDED.reviews`, pq.QuoteIdentifier(s.table))

	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		for _, r := range rs {
			if _, err := tx.ExecContext(ctx, stmt,
				r.ID, r.Name, r.Cuisine, r.Price, r.Rating, r.DeliveryTime,
				r.Description, r.SignatureDish, r.Reviews,
			); err != nil {
				return fmt.Errorf("upsert restaurant %d: %w", r.ID, err)
			}
		}
		return nil
	})
}
