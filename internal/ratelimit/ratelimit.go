// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit counts attempts per key inside a fixed window.
//
// Two implementations share the [RateLimiter] interface: [RedisRateLimiter]
// keeps counters in Redis so every server instance sees the same budget,
// and [MemoryRateLimiter] keeps them in process memory for single-instance
// deployments and tests.
package ratelimit

import (
	"context"
	"errors"
	"time"
)

// ErrRateLimitExceeded is returned once a key has used up its attempts for
// the current window.
var ErrRateLimitExceeded = errors.New("rate limit exceeded")

//go:generate mockgen -source=ratelimit.go -destination=../mock/ratelimit_mock.go -package=mock

// RateLimiter records one attempt for key and fails with
// [ErrRateLimitExceeded] when limit attempts were already made within
// window. A rejected attempt is not counted.
//
// Reset forgets every attempt recorded for key.
type RateLimiter interface {
	CheckAndIncrement(ctx context.Context, key string, limit int, window time.Duration) error
	Reset(ctx context.Context, key string) error
}
