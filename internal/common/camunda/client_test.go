package camunda

import (
	"context"
	"errors"
	"testing"
	"time"

	commonerrors "takeout-recommender/internal/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackoff_Delay(t *testing.T) {
	b := Backoff{Attempts: 5, Base: time.Second, Max: 5 * time.Second}

	assert.Equal(t, time.Second, b.delay(0))
	assert.Equal(t, 2*time.Second, b.delay(1))
	assert.Equal(t, 4*time.Second, b.delay(2))
	assert.Equal(t, 5*time.Second, b.delay(3))
	assert.Equal(t, 5*time.Second, b.delay(70))
}

func TestTransient(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{errors.New("rpc error: code = Unavailable desc = connection refused"), true},
		{errors.New("context deadline exceeded"), true},
		{errors.New("NOT_FOUND: no process with id"), false},
		{errors.New("invalid argument"), false},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, transient(tt.err))
		})
	}
}

func TestWithBackoff(t *testing.T) {
	fast := Backoff{Attempts: 3, Base: time.Millisecond, Max: time.Millisecond}

	t.Run("retries transient failures", func(t *testing.T) {
		calls := 0
		got, err := withBackoff(context.Background(), fast, "topology", func(context.Context) (int, error) {
			calls++
			if calls < 3 {
				return 0, errors.New("connection refused")
			}
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after the budget", func(t *testing.T) {
		calls := 0
		_, err := withBackoff(context.Background(), fast, "topology", func(context.Context) (int, error) {
			calls++
			return 0, errors.New("unavailable")
		})
		require.Error(t, err)
		assert.Equal(t, 3, calls)

		stdErr := commonerrors.AsStandard(err)
		assert.Equal(t, commonerrors.ErrCodeInternal, stdErr.Code)
		assert.True(t, stdErr.Retryable)
		assert.Equal(t, "topology", stdErr.Metadata["operation"])
	})

	t.Run("permanent failure is not retried", func(t *testing.T) {
		calls := 0
		_, err := withBackoff(context.Background(), fast, "deploy", func(context.Context) (int, error) {
			calls++
			return 0, errors.New("invalid resource")
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
		assert.False(t, commonerrors.AsStandard(err).Retryable)
	})

	t.Run("cancelled context stops waiting", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		slow := Backoff{Attempts: 3, Base: time.Hour, Max: time.Hour}

		_, err := withBackoff(ctx, slow, "topology", func(context.Context) (int, error) {
			return 0, errors.New("connection refused")
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
