package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"takeout-recommender/internal/common/database"
	"takeout-recommender/internal/models"
)

const maxIndexedRestaurants = 1000

// ElasticsearchSource reads the catalog from an index whose documents are
// restaurants in their JSON form.
type ElasticsearchSource struct {
	es    *database.ElasticsearchClient
	index string
}

func NewElasticsearchSource(es *database.ElasticsearchClient, index string) *ElasticsearchSource {
	if index == "" {
		index = "restaurants"
	}
	return &ElasticsearchSource{es: es, index: index}
}

func (s *ElasticsearchSource) Name() string { return string(models.CatalogSourceElasticsearch) }

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source models.Restaurant `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Restaurants returns the indexed documents ordered by id. A missing index
// counts as empty.
func (s *ElasticsearchSource) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	client := s.es.Client
	res, err := client.Search(
		client.Search.WithContext(ctx),
		client.Search.WithIndex(s.index),
		client.Search.WithSize(maxIndexedRestaurants),
		client.Search.WithSort("id:asc"),
		client.Search.WithBody(strings.NewReader(`{"query":{"match_all":{}}}`)),
	)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", s.index, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if res.IsError() {
		return nil, fmt.Errorf("search %s: %s", s.index, res.Status())
	}

	var body searchResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	out := make([]models.Restaurant, 0, len(body.Hits.Hits))
	for _, hit := range body.Hits.Hits {
		out = append(out, hit.Source)
	}
	return out, nil
}
