package idempotency

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"encore.dev"
	"encore.dev/middleware"
)

// newRequest creates a middleware.Request for testing
func newRequest(ctx context.Context, path string, headers http.Header, payload interface{}) middleware.Request {
	encoreReq := &encore.Request{
		Path:    path,
		Headers: headers,
		Payload: payload,
	}
	return middleware.NewRequest(ctx, encoreReq)
}

func TestExtractKey(t *testing.T) {
	testCases := []struct {
		name          string
		headers       http.Header
		expectedKey   string
		expectedError string
	}{
		{
			name:        "valid_key",
			headers:     http.Header{IdempotencyHeader: []string{"pay-key-123"}},
			expectedKey: "pay-key-123",
		},
		{
			name:        "key_with_special_chars",
			headers:     http.Header{IdempotencyHeader: []string{"pay-key_123-abc.def"}},
			expectedKey: "pay-key_123-abc.def",
		},
		{
			name:        "surrounding_whitespace_trimmed",
			headers:     http.Header{IdempotencyHeader: []string{"  pay-key-123  "}},
			expectedKey: "pay-key-123",
		},
		{
			name:          "missing_header",
			headers:       http.Header{},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:          "empty_header",
			headers:       http.Header{IdempotencyHeader: []string{""}},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:          "whitespace_only_header",
			headers:       http.Header{IdempotencyHeader: []string{"   "}},
			expectedError: "X-Idempotency-Key header is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := newRequest(context.Background(), "/v1/payments", tc.headers, nil)

			key, err := extractKey(req)

			if tc.expectedError != "" {
				assert.NotNil(t, err)
				if err != nil {
					assert.Contains(t, err.Error(), tc.expectedError)
				}
				assert.Empty(t, key)
			} else {
				assert.Nil(t, err)
				assert.Equal(t, tc.expectedKey, key)
			}
		})
	}
}

func TestHashPayload(t *testing.T) {
	type payment struct {
		CustomerID int64   `json:"customer_id"`
		PeriodIDs  []int64 `json:"billing_period_ids"`
	}

	t.Run("nil_payload_hashes_empty", func(t *testing.T) {
		req := newRequest(context.Background(), "/v1/payments", http.Header{}, nil)
		assert.Empty(t, hashPayload(req))
	})

	t.Run("equal_payloads_hash_equal", func(t *testing.T) {
		a := newRequest(context.Background(), "/v1/payments", http.Header{}, &payment{CustomerID: 5, PeriodIDs: []int64{1, 2}})
		b := newRequest(context.Background(), "/v1/payments", http.Header{}, &payment{CustomerID: 5, PeriodIDs: []int64{1, 2}})
		assert.NotEmpty(t, hashPayload(a))
		assert.Equal(t, hashPayload(a), hashPayload(b))
	})

	t.Run("different_payloads_hash_differently", func(t *testing.T) {
		a := newRequest(context.Background(), "/v1/payments", http.Header{}, &payment{CustomerID: 5, PeriodIDs: []int64{1}})
		b := newRequest(context.Background(), "/v1/payments", http.Header{}, &payment{CustomerID: 5, PeriodIDs: []int64{2}})
		assert.NotEqual(t, hashPayload(a), hashPayload(b))
	})
}
