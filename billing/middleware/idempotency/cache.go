package idempotency

import (
	"time"

	"encore.dev/storage/cache"

	"encore.app/billing/model"
)

// ReplayCluster is the cache cluster backing idempotent replay
var ReplayCluster = cache.NewCluster("idempotency-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// ReplayCache stores one entry per (endpoint, idempotency key). The
// authoritative idempotency record is the unique key column on
// fee_submissions; this cache only short-circuits the transport layer.
var ReplayCache = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	ReplayCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(24 * time.Hour),
	},
)
