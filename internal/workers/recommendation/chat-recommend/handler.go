// internal/workers/recommendation/chat-recommend/handler.go
package chatrecommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"
	"unicode/utf8"

	"takeout-recommender/internal/catalog"
	commonerrors "takeout-recommender/internal/common/errors"
	"takeout-recommender/internal/common/genai"
	"takeout-recommender/internal/common/logger"
	"takeout-recommender/internal/common/metrics"
	"takeout-recommender/internal/common/validation"
	"takeout-recommender/internal/matching/fallback"
	"takeout-recommender/internal/matching/imagery"
	"takeout-recommender/internal/matching/reconcile"
	"takeout-recommender/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "chat-recommend"
)

type Handler struct {
	config       *Config
	catalog      *catalog.Catalog
	provider     *genai.Provider
	images       *imagery.Resolver
	errorHandler *commonerrors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, cat *catalog.Catalog, provider *genai.Provider, images *imagery.Resolver, log logger.Logger) *Handler {
	if images == nil {
		images = imagery.NewResolver()
	}
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		catalog:      cat,
		provider:     provider,
		images:       images,
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

	result, err := validation.ValidateChatVariables(vars)
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

// Execute runs one chat turn. Only a missing message is an error; every AI
// problem is answered with a fallback or an error-typed result.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input == nil || strings.TrimSpace(input.Message) == "" {
		return nil, commonerrors.NewInvalidRequestError("message is required")
	}

	requestID := uuid.NewString()
	log := h.logger.With(map[string]interface{}{"requestId": requestID})

	result := h.run(ctx, log, input)
	metrics.Recommendations.WithLabelValues(TaskType, string(result.Type)).Inc()

	return &Output{RecommendationResult: result, RequestID: requestID}, nil
}

func (h *Handler) run(ctx context.Context, log logger.Logger, input *Input) (result models.RecommendationResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("fallback failed", map[string]interface{}{
				"panic": fmt.Sprint(r),
				"stack": string(debug.Stack()),
			})
			result = models.RecommendationResult{
				Message:     fmt.Sprintf(MessageFailure, r),
				Restaurants: []models.EnrichedRestaurant{},
				Type:        models.ResultError,
			}
		}
	}()

	completer, err := h.provider.Get()
	if err != nil {
		h.transition(log, StateAIUnavailable, map[string]interface{}{"error": err.Error()})
		return models.RecommendationResult{
			Message:     MessageUnavailable,
			Restaurants: []models.EnrichedRestaurant{},
			Type:        models.ResultError,
		}
	}

	rs := h.catalog.All()
	if result, ok := h.converse(ctx, log, completer, input, rs); ok {
		return result
	}

	metrics.Fallbacks.WithLabelValues("panic").Inc()
	return h.recommendFallback(log, fmt.Sprintf(MessageFallbackEcho, input.Message), input.Message, rs)
}

// converse reports false when the turn panicked before producing a result.
func (h *Handler) converse(ctx context.Context, log logger.Logger, completer genai.Completer, input *Input, rs []models.Restaurant) (result models.RecommendationResult, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("chat turn panicked", map[string]interface{}{
				"panic": fmt.Sprint(r),
				"stack": string(debug.Stack()),
			})
			ok = false
		}
	}()

	messages := h.buildMessages(input, rs)
	h.transition(log, StateCallingAI, map[string]interface{}{
		"messageCount": len(messages),
	})

	reply, err := completer.Complete(ctx, genai.CompletionRequest{
		Purpose:     genai.PurposeChat,
		Messages:    messages,
		Temperature: h.config.Temperature,
		MaxTokens:   h.config.MaxTokens,
	})
	if err != nil {
		reason := failureReason(err)
		h.transition(log, StateAIFailed, map[string]interface{}{
			"reason": reason,
			"error":  err.Error(),
		})
		metrics.Fallbacks.WithLabelValues(reason).Inc()

		message := fmt.Sprintf(MessageFallbackEcho, input.Message)
		if genai.Answered(err) {
			message = MessageFallback
		}
		return h.recommendFallback(log, message, input.Message, rs), true
	}

	h.transition(log, StateAISucceeded, map[string]interface{}{
		"replyLength": utf8.RuneCountInString(reply),
	})
	best, found := reconcile.Best(reply, rs)
	return h.enrich(log, reply, best, found), true
}

func (h *Handler) recommendFallback(log logger.Logger, message, userMessage string, rs []models.Restaurant) models.RecommendationResult {
	return h.enrich(log, message, fallback.Recommend(userMessage, rs), true)
}

func (h *Handler) enrich(log logger.Logger, message string, r models.Restaurant, found bool) models.RecommendationResult {
	result := models.RecommendationResult{
		Message:     message,
		Restaurants: []models.EnrichedRestaurant{},
		Type:        models.ResultRecommendation,
	}
	if found {
		result.Restaurants = append(result.Restaurants, h.images.Enrich(r))
	}

	fields := map[string]interface{}{"recommended": found}
	if found {
		fields["restaurantId"] = r.ID
		fields["restaurant"] = r.Name
	}
	h.transition(log, StateEnriched, fields)
	return result
}

func (h *Handler) transition(log logger.Logger, state State, fields map[string]interface{}) {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields["state"] = string(state)
	if state == StateAIFailed || state == StateAIUnavailable {
		log.Warn("chat turn state", fields)
		return
	}
	log.Info("chat turn state", fields)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, genai.ErrCircuitOpen):
		return "circuit_open"
	case errors.Is(err, genai.ErrTimeout):
		return "timeout"
	case errors.Is(err, genai.ErrEmptyReply):
		return "empty_reply"
	case genai.Answered(err):
		return "status"
	default:
		return "transport"
	}
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
