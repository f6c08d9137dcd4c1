// internal/workers/recommendation/filter-restaurants/handler.go
package filterrestaurants

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"takeout-recommender/internal/catalog"
	commonerrors "takeout-recommender/internal/common/errors"
	"takeout-recommender/internal/common/genai"
	"takeout-recommender/internal/common/logger"
	"takeout-recommender/internal/common/metrics"
	"takeout-recommender/internal/common/validation"
	"takeout-recommender/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "filter-restaurants"
)

type Handler struct {
	config       *Config
	catalog      *catalog.Catalog
	provider     *genai.Provider
	cache        ReasonCache
	errorHandler *commonerrors.ErrorHandler
	logger       logger.Logger
}

// NewHandler accepts a nil cache.
func NewHandler(config *Config, cat *catalog.Catalog, provider *genai.Provider, cache ReasonCache, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		catalog:      cat,
		provider:     provider,
		cache:        cache,
		errorHandler: commonerrors.NewErrorHandler(log),
		logger:       log,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	input, err := h.parseInput(job)
	if err != nil {
		h.failJob(ctx, client, job, err)
		return
	}

	output, err := h.Execute(ctx, input)
	if err != nil {
		h.failJob(ctx, client, job, err)
		return
	}

	h.completeJob(ctx, client, job, output)
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
}

func (h *Handler) parseInput(job entities.Job) (*Input, error) {
	var vars map[string]interface{}
	if err := json.Unmarshal([]byte(job.Variables), &vars); err != nil {
		return nil, commonerrors.NewInvalidRequestError(fmt.Sprintf("parse variables: %v", err))
	}

	result, err := validation.ValidateFilterVariables(vars)
	if err != nil {
		return nil, commonerrors.NewInternalError(err)
	}
	if !result.Valid {
		return nil, commonerrors.NewInvalidRequestError(result.Summary())
	}

	var input Input
	if err := validation.DecodeVariables(vars, &input); err != nil {
		return nil, commonerrors.NewInvalidRequestError(err.Error())
	}
	return &input, nil
}

// Execute filters the catalog and attaches reasons to the leading results.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input == nil {
		input = &Input{}
	}
	log := h.logger.With(map[string]interface{}{"requestId": uuid.NewString()})

	data := h.catalog.Filter(input.FilterCriteria)

	top := data
	if len(top) > h.config.ReasonLimit {
		top = top[:h.config.ReasonLimit]
	}
	recommendations := h.reasons(ctx, log, top)

	log.Info("restaurants filtered", map[string]interface{}{
		"resultCount": len(data),
		"reasonCount": len(recommendations),
	})
	metrics.Recommendations.WithLabelValues(TaskType, string(models.ResultRecommendation)).Inc()

	return &Output{Data: data, Recommendations: recommendations}, nil
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
		return
	}

	if _, err := cmd.Send(ctx); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
		return
	}
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
}

func (h *Handler) failJob(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	code := commonerrors.AsStandard(err).Code
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(code)).Inc()
	h.errorHandler.HandleJobError(ctx, client, job, err)
}
