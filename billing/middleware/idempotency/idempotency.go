package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"encore.app/billing/model"
)

const IdempotencyHeader = "X-Idempotency-Key"

const (
	statusProcessing = "processing"
	statusCompleted  = "completed"
)

//encore:middleware target=tag:idempotency
func IdempotencyMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := extractKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	bodyHash := hashPayload(req)
	cacheKey := model.IdempotencyKey{
		Resource: req.Data().Path,
		Key:      key,
	}

	entry, cacheErr := ReplayCache.Get(req.Context(), cacheKey)
	if cacheErr != nil {
		if errors.Is(cacheErr, cache.Miss) {
			return processNewRequest(req, next, cacheKey, bodyHash)
		}
		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"},
		}
	}

	// Same key, different body is a caller bug, not a retry.
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return middleware.Response{
			Err: &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"},
		}
	}

	switch entry.Status {
	case statusProcessing:
		rlog.Info("concurrent request detected", "key", key)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"},
		}
	case statusCompleted:
		return replayCompleted(req, next, entry, key)
	default:
		rlog.Warn("unknown idempotency entry status, processing as new request", "key", key, "status", entry.Status)
		return next(req)
	}
}

// processNewRequest marks the key as in flight, runs the handler, and
// caches the response on success. A failed request is cleared so the
// caller can retry with the same key.
func processNewRequest(req middleware.Request, next middleware.Next, cacheKey model.IdempotencyKey, bodyHash string) middleware.Response {
	if err := ReplayCache.Set(req.Context(), cacheKey, model.IdempotencyCacheEntry{
		Status:          statusProcessing,
		RequestBodyHash: bodyHash,
		CreatedAt:       time.Now(),
	}); err != nil {
		rlog.Error("failed to mark request as processing", "error", err)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "failed to record idempotency key"},
		}
	}

	response := next(req)

	if response.Err != nil {
		if _, err := ReplayCache.Delete(req.Context(), cacheKey); err != nil {
			rlog.Error("failed to clear failed request from cache", "error", err)
		}
		return response
	}

	storeCompleted(req.Context(), cacheKey, bodyHash, response)
	return response
}

func storeCompleted(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash string, response middleware.Response) {
	entry := model.IdempotencyCacheEntry{
		Status:          statusCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}
	if response.Payload != nil {
		payloadBytes, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("failed to marshal response payload for caching", "error", err)
			return
		}
		entry.Response = payloadBytes
	}
	if err := ReplayCache.Set(ctx, cacheKey, entry); err != nil {
		rlog.Error("failed to cache completed response", "error", err)
	}
}

// replayCompleted rebuilds the original typed response from the cached
// JSON. A corrupted entry falls through to the handler, whose own
// DB-level idempotency still replays correctly.
func replayCompleted(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, key string) middleware.Response {
	if len(entry.Response) > 0 {
		responseType := req.Data().API.ResponseType
		if responseType != nil {
			responseValue := reflect.New(responseType.Elem()).Interface()
			if err := json.Unmarshal(entry.Response, responseValue); err == nil {
				rlog.Info("returning cached response", "key", key)
				return middleware.Response{Payload: responseValue}
			}
			rlog.Error("failed to unmarshal cached response", "key", key)
		}
	}
	return next(req)
}

func extractKey(req middleware.Request) (string, *errs.Error) {
	var key string
	if headers := req.Data().Headers; headers != nil {
		key = strings.TrimSpace(headers.Get(IdempotencyHeader))
	}
	if key == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is required"}
	}
	return key, nil
}

func hashPayload(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}
	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body", "error", err)
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
