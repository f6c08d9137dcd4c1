// internal/workers/recommendation/filter-restaurants/handler_test.go
package filterrestaurants

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"takeout-recommender/internal/catalog"
	"takeout-recommender/internal/common/genai"
	"takeout-recommender/internal/common/logger"
	"takeout-recommender/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

var promptName = regexp.MustCompile(`餐厅：(.+)`)

// reasonCompleter answers "AI:<name>" unless the restaurant is listed in fail.
type reasonCompleter struct {
	mu       sync.Mutex
	fail     map[string]bool
	empty    bool
	requests []genai.CompletionRequest
}

func (c *reasonCompleter) Complete(_ context.Context, req genai.CompletionRequest) (string, error) {
	c.mu.Lock()
	c.requests = append(c.requests, req)
	c.mu.Unlock()

	name := promptName.FindStringSubmatch(req.Messages[0].Content)[1]
	if c.fail[name] {
		return "", genai.ErrTransport
	}
	if c.empty {
		return "  ", nil
	}
	return " AI:" + name + "\n", nil
}

func (c *reasonCompleter) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func createTestHandler(t *testing.T, completer genai.Completer, cache ReasonCache) *Handler {
	t.Helper()
	provider := genai.NewStaticProvider(completer)
	if completer == nil {
		provider = genai.NewProvider(func() (genai.Completer, error) { return nil, genai.ErrNotConfigured })
	}
	return NewHandler(DefaultConfig(), catalog.Default(), provider, cache, logger.NewTestLogger(t))
}

func reasonsOf(out *Output) []string {
	var reasons []string
	for _, r := range out.Recommendations {
		reasons = append(reasons, r.Reason)
	}
	return reasons
}

func hotpotInput() *Input {
	return &Input{FilterCriteria: models.FilterCriteria{Cuisine: strPtr("火锅")}}
}

func quanjudeInput() *Input {
	return &Input{FilterCriteria: models.FilterCriteria{MinPrice: floatPtr(150)}}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_AIReasons(t *testing.T) {
	completer := &reasonCompleter{}
	h := createTestHandler(t, completer, nil)

	out, err := h.Execute(context.Background(), hotpotInput())
	require.NoError(t, err)

	require.Len(t, out.Data, 5)
	require.Len(t, out.Recommendations, 5)
	for i, rec := range out.Recommendations {
		assert.Equal(t, out.Data[i].ID, rec.RestaurantID)
		assert.Equal(t, out.Data[i].Name, rec.Name)
		assert.Equal(t, "AI:"+out.Data[i].Name, rec.Reason)
	}

	assert.Equal(t, 5, completer.calls())
	req := completer.requests[0]
	assert.Equal(t, genai.PurposeReason, req.Purpose)
	assert.Equal(t, 100, req.MaxTokens)
	assert.Equal(t, "user", req.Messages[0].Role)
}

func TestHandler_Execute_ReasonLimit(t *testing.T) {
	completer := &reasonCompleter{}
	h := createTestHandler(t, completer, nil)

	out, err := h.Execute(context.Background(), &Input{})
	require.NoError(t, err)

	assert.Len(t, out.Data, 50)
	assert.Len(t, out.Recommendations, 5)
	assert.Equal(t, 5, completer.calls())
	assert.Equal(t, "法式西餐", out.Recommendations[0].Name)
}

func TestHandler_Execute_AIUnavailable(t *testing.T) {
	h := createTestHandler(t, nil, nil)

	out, err := h.Execute(context.Background(), quanjudeInput())
	require.NoError(t, err)

	require.Len(t, out.Data, 1)
	assert.Equal(t, []string{"全聚德评分4.8分，价格¥150，配送60分钟，值得一试！"}, reasonsOf(out))
}

func TestHandler_Execute_PerRestaurantFailure(t *testing.T) {
	completer := &reasonCompleter{fail: map[string]bool{"小龙坎": true}}
	h := createTestHandler(t, completer, nil)

	out, err := h.Execute(context.Background(), hotpotInput())
	require.NoError(t, err)

	for _, rec := range out.Recommendations {
		if rec.Name == "小龙坎" {
			assert.Equal(t, "小龙坎评分4.6分，价格¥88，配送55分钟，值得一试！", rec.Reason)
			continue
		}
		assert.Equal(t, "AI:"+rec.Name, rec.Reason)
	}
}

func TestHandler_Execute_EmptyReplyUsesDefault(t *testing.T) {
	h := createTestHandler(t, &reasonCompleter{empty: true}, nil)

	out, err := h.Execute(context.Background(), quanjudeInput())
	require.NoError(t, err)
	assert.Equal(t, []string{"全聚德评分4.8分，价格¥150，配送60分钟，值得一试！"}, reasonsOf(out))
}

func TestHandler_Execute_NoMatches(t *testing.T) {
	completer := &reasonCompleter{}
	h := createTestHandler(t, completer, nil)

	out, err := h.Execute(context.Background(), &Input{FilterCriteria: models.FilterCriteria{Cuisine: strPtr("不存在")}})
	require.NoError(t, err)

	assert.NotNil(t, out.Data)
	assert.Empty(t, out.Data)
	assert.NotNil(t, out.Recommendations)
	assert.Empty(t, out.Recommendations)
	assert.Zero(t, completer.calls())
}

func TestHandler_Execute_NilInput(t *testing.T) {
	h := createTestHandler(t, nil, nil)
	out, err := h.Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, out.Data, 50)
}

// ==========================
// Reason Cache Tests
// ==========================

func TestHandler_Execute_CachesAIReasons(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	cache := NewRedisReasonCache(rdb, 24*time.Hour)

	first := &reasonCompleter{}
	out, err := createTestHandler(t, first, cache).Execute(context.Background(), quanjudeInput())
	require.NoError(t, err)
	assert.Equal(t, []string{"AI:全聚德"}, reasonsOf(out))

	cached, err := mr.Get("reason:36")
	require.NoError(t, err)
	assert.Equal(t, "AI:全聚德", cached)
	assert.Equal(t, 24*time.Hour, mr.TTL("reason:36"))

	second := &reasonCompleter{fail: map[string]bool{"全聚德": true}}
	out, err = createTestHandler(t, second, cache).Execute(context.Background(), quanjudeInput())
	require.NoError(t, err)
	assert.Equal(t, []string{"AI:全聚德"}, reasonsOf(out))
	assert.Zero(t, second.calls())

	mr.FastForward(25 * time.Hour)
	_, ok, err := cache.Get(context.Background(), 36)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHandler_Execute_DefaultReasonsAreNotCached(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	h := createTestHandler(t, &reasonCompleter{empty: true}, NewRedisReasonCache(rdb, time.Hour))
	_, err := h.Execute(context.Background(), quanjudeInput())
	require.NoError(t, err)

	assert.False(t, mr.Exists("reason:36"))
}

func TestHandler_Execute_CacheErrorsAreIgnored(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("reason:36").SetErr(errors.New("connection refused"))
	mock.ExpectSet("reason:36", "AI:全聚德", 24*time.Hour).SetErr(errors.New("READONLY"))

	completer := &reasonCompleter{}
	h := createTestHandler(t, completer, NewRedisReasonCache(rdb, 24*time.Hour))

	out, err := h.Execute(context.Background(), quanjudeInput())
	require.NoError(t, err)
	assert.Equal(t, []string{"AI:全聚德"}, reasonsOf(out))
	assert.Equal(t, 1, completer.calls())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisReasonCache_Miss(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("reason:7").RedisNil()

	_, ok, err := NewRedisReasonCache(rdb, time.Minute).Get(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Prompt Tests
// ==========================

func TestReasonPrompt(t *testing.T) {
	r, ok := catalog.Default().Get(36)
	require.True(t, ok)

	prompt := reasonPrompt(r)
	assert.Contains(t, prompt, "（30字以内）")
	assert.Contains(t, prompt, "餐厅：全聚德\n菜系：京菜\n价格：150元\n评分：4.8\n配送时间：60分钟")
	assert.Contains(t, prompt, "请给出推荐理由：")
}

func TestLoadConfig(t *testing.T) {
	assert.Equal(t, DefaultConfig(), LoadConfig(nil))
}
