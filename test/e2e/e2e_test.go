//go:build e2e

// test/e2e/e2e_test.go
package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"takeout-recommender/internal/catalog"
	"takeout-recommender/internal/common/camunda"
	"takeout-recommender/internal/common/config"
	"takeout-recommender/internal/common/database"
	"takeout-recommender/internal/common/genai"
	"takeout-recommender/internal/common/logger"
	"takeout-recommender/internal/models"

	chatrecommend "takeout-recommender/internal/workers/recommendation/chat-recommend"
	filterrestaurants "takeout-recommender/internal/workers/recommendation/filter-restaurants"
)

const processID = "takeout-recommend"

var (
	cfg         *config.Config
	zeebeClient *camunda.Client
)

func TestMain(m *testing.M) {
	var err error

	cfg, err = config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// Local services for the e2e run
	cfg.Database.Postgres.Host = envOr("E2E_POSTGRES_HOST", "localhost")
	cfg.Database.Redis.Address = envOr("E2E_REDIS_ADDR", "localhost:6379")
	cfg.Database.Elasticsearch.Addresses = []string{envOr("E2E_ES_URL", "http://localhost:9200")}
	cfg.Camunda.BrokerAddress = envOr("E2E_ZEEBE_ADDR", "localhost:26500")
	cfg.Catalog.Table = "restaurants_e2e"

	zeebeClient, err = camunda.NewClient(cfg.Camunda.BrokerAddress)
	if err != nil {
		panic(fmt.Sprintf("failed to connect to Zeebe: %v", err))
	}

	code := m.Run()

	zeebeClient.Close()
	os.Exit(code)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestFullE2E(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	assertAllServicesConnectivity(t, ctx)
	cat := seedAndReloadCatalog(t, ctx)
	cache := reasonCacheRoundTrip(t, ctx)
	deployBPMN(t, ctx)
	runRecommendProcess(t, ctx, cat, cache)
}

// ==========================
// 1. Service Connectivity
// ==========================
func assertAllServicesConnectivity(t *testing.T, ctx context.Context) {
	t.Helper()

	db, err := database.NewPostgres(cfg.Database.Postgres)
	require.NoError(t, err)
	assert.NoError(t, db.Ping(ctx), "postgres ping failed")
	db.Close()

	rdb, err := database.NewRedis(cfg.Database.Redis)
	require.NoError(t, err)
	require.NotNil(t, rdb)
	assert.NoError(t, rdb.Ping(ctx), "redis ping failed")
	rdb.Close()

	es, err := database.NewElasticsearch(cfg.Database.Elasticsearch, nil)
	require.NoError(t, err)
	assert.NoError(t, es.Ping(ctx), "elasticsearch ping failed")

	assert.NoError(t, zeebeClient.HealthCheck(ctx), "zeebe topology failed")
}

// ==========================
// 2. Catalog Seed + Reload
// ==========================
func seedAndReloadCatalog(t *testing.T, ctx context.Context) *catalog.Catalog {
	t.Helper()

	db, err := database.NewPostgres(cfg.Database.Postgres)
	require.NoError(t, err)
	defer db.Close()

	src := catalog.NewPostgresSource(db, cfg.Catalog.Table)
	require.NoError(t, src.EnsureTable(ctx))
	require.NoError(t, src.Upsert(ctx, catalog.Default().All()))

	cat, err := catalog.Load(ctx, src, logger.NewTestLogger(t))
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().Len(), cat.Len())
	assert.Equal(t, catalog.Default().Cuisines(), cat.Cuisines())
	return cat
}

// ==========================
// 3. Reason Cache
// ==========================
func reasonCacheRoundTrip(t *testing.T, ctx context.Context) filterrestaurants.ReasonCache {
	t.Helper()

	rdb, err := database.NewRedis(cfg.Database.Redis)
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Close() })

	cache := filterrestaurants.NewRedisReasonCache(rdb.Client, time.Minute)
	require.NoError(t, cache.Set(ctx, 9999, "e2e reason"))

	got, ok, err := cache.Get(ctx, 9999)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "e2e reason", got)
	return cache
}

// ==========================
// 4. Process Deployment
// ==========================
func deployBPMN(t *testing.T, ctx context.Context) {
	t.Helper()

	_, err := zeebeClient.GetClient().NewDeployResourceCommand().
		AddResourceFile("testdata/takeout-recommend.bpmn").
		Send(ctx)
	require.NoError(t, err, "deploy takeout-recommend.bpmn")
}

// ==========================
// 5. Workers Through Zeebe
// ==========================
func runRecommendProcess(t *testing.T, ctx context.Context, cat *catalog.Catalog, cache filterrestaurants.ReasonCache) {
	t.Helper()
	log := logger.NewTestLogger(t)
	provider := genai.NewLazyProvider(genai.ConfigFrom(cfg.AI), log)

	chat := chatrecommend.NewHandler(chatrecommend.LoadConfig(cfg), cat, provider, nil, log)
	filter := filterrestaurants.NewHandler(filterrestaurants.LoadConfig(cfg), cat, provider, cache, log)

	workers := []*camunda.CamundaWorker{
		camunda.NewWorker(zeebeClient.GetClient(), chatrecommend.TaskType, 1, time.Minute, chat, log),
		camunda.NewWorker(zeebeClient.GetClient(), filterrestaurants.TaskType, 1, time.Minute, filter, log),
	}
	defer func() {
		for _, w := range workers {
			w.Stop()
		}
	}()

	result := createInstanceWithResult(t, ctx, zeebeClient.GetClient(), map[string]interface{}{
		"message": "想吃火锅，人均80左右",
		"cuisine": "火锅",
	})

	var vars struct {
		models.RecommendationResult
		Data            []models.Restaurant           `json:"data"`
		Recommendations []models.RecommendationReason `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal([]byte(result), &vars))

	assert.Contains(t, []models.ResultType{models.ResultRecommendation, models.ResultError}, vars.Type)
	assert.NotEmpty(t, vars.Message)
	assert.LessOrEqual(t, len(vars.Restaurants), 1)

	require.NotEmpty(t, vars.Data)
	for _, r := range vars.Data {
		assert.Equal(t, "火锅", r.Cuisine)
	}
	assert.Len(t, vars.Recommendations, min(len(vars.Data), 5))
}

func createInstanceWithResult(t *testing.T, ctx context.Context, client zbc.Client, vars map[string]interface{}) string {
	t.Helper()

	cmd, err := client.NewCreateInstanceCommand().
		BPMNProcessId(processID).
		LatestVersion().
		VariablesFromMap(vars)
	require.NoError(t, err)

	resp, err := cmd.WithResult().Send(ctx)
	require.NoError(t, err, "process instance did not complete")
	return resp.GetVariables()
}

// ==========================
// Benchmarks
// ==========================

func BenchmarkHandler_FilterRestaurants(b *testing.B) {
	provider := genai.NewProvider(func() (genai.Completer, error) {
		return nil, fmt.Errorf("benchmark runs without AI")
	})
	handler := filterrestaurants.NewHandler(filterrestaurants.DefaultConfig(), catalog.Default(), provider, nil,
		logger.NewNoOpLogger())

	cuisine := "川菜"
	input := &filterrestaurants.Input{FilterCriteria: models.FilterCriteria{Cuisine: &cuisine}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		handler.Execute(context.Background(), input)
	}
}

func BenchmarkHandler_ChatRecommendFallback(b *testing.B) {
	provider := genai.NewStaticProvider(failingCompleter{})
	handler := chatrecommend.NewHandler(chatrecommend.DefaultConfig(), catalog.Default(), provider, nil,
		logger.NewNoOpLogger())

	input := &chatrecommend.Input{Message: "想吃烧烤，人均100左右"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		handler.Execute(context.Background(), input)
	}
}

type failingCompleter struct{}

func (failingCompleter) Complete(context.Context, genai.CompletionRequest) (string, error) {
	return "", genai.ErrTransport
}
