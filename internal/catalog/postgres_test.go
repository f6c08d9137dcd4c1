package catalog

import (
	"context"
	"errors"
	"testing"

	"takeout-recommender/internal/common/database"
	"takeout-recommender/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var restaurantColumns = []string{
	"id", "name", "cuisine", "price", "rating", "delivery_time",
	"description", "signature_dish", "reviews",
}

func newMockSource(t *testing.T) (*PostgresSource, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresSource(database.NewPostgresFromDB(db), ""), mock
}

func TestPostgresSource_Restaurants(t *testing.T) {
	tests := []struct {
		name      string
		mockQuery func(mock sqlmock.Sqlmock)
		wantLen   int
		wantErr   bool
	}{
		{
			name: "rows",
			mockQuery: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(restaurantColumns).
					AddRow(1, "川味小厨", "川菜", 45.0, 4.5, 35, "正宗川味", "麻婆豆腐、水煮鱼", "好吃|实惠").
					AddRow(2, "湘味轩", "湘菜", 52.0, 4.6, 40, "", "", "")
				mock.ExpectQuery(`FROM "restaurants" ORDER BY id`).WillReturnRows(rows)
			},
			wantLen: 2,
		},
		{
			name: "missing table is empty",
			mockQuery: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM "restaurants"`).WillReturnError(&pq.Error{Code: "42P01"})
			},
			wantLen: 0,
		},
		{
			name: "query failure",
			mockQuery: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM "restaurants"`).WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
		{
			name: "scan failure",
			mockQuery: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(restaurantColumns).
					AddRow("not-an-int", "x", "x", 1.0, 1.0, 1, "", "", "")
				mock.ExpectQuery(`FROM "restaurants"`).WillReturnRows(rows)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, mock := newMockSource(t)
			tt.mockQuery(mock)

			rs, err := src.Restaurants(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, rs, tt.wantLen)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresSource_RowMapping(t *testing.T) {
	src, mock := newMockSource(t)
	mock.ExpectQuery(`FROM "restaurants"`).WillReturnRows(
		sqlmock.NewRows(restaurantColumns).
			AddRow(21, "海底捞火锅", "火锅", 95.0, 4.7, 50, "火锅连锁", "毛肚、虾滑、牛肉片", "服务很好"),
	)

	rs, err := src.Restaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, models.Restaurant{
		ID: 21, Name: "海底捞火锅", Cuisine: "火锅", Price: 95, Rating: 4.7, DeliveryTime: 50,
		Description: "火锅连锁", SignatureDish: "毛肚、虾滑、牛肉片", Reviews: "服务很好",
	}, rs[0])
}

func TestPostgresSource_EnsureTableAndUpsert(t *testing.T) {
	src, mock := newMockSource(t)
	rs := Default().All()[:2]

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS "restaurants"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectBegin()
	for _, r := range rs {
		mock.ExpectExec(`INSERT INTO "restaurants"`).
			WithArgs(r.ID, r.Name, r.Cuisine, r.Price, r.Rating, r.DeliveryTime, r.Description, r.SignatureDish, r.Reviews).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, src.EnsureTable(context.Background()))
	require.NoError(t, src.Upsert(context.Background(), rs))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSource_UpsertRollsBack(t *testing.T) {
	src, mock := newMockSource(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "restaurants"`).WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err := src.Upsert(context.Background(), Default().All()[:1])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upsert restaurant 1")
	assert.NoError(t, mock.ExpectationsWereMet())
}
