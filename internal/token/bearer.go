// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package token

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

var bearerPattern = regexp.MustCompile(`(?i)^Bearer\s+(.*)$`)

// BearerToken extracts the token from a raw "Authorization" header value of
// the form "Bearer <token>" (scheme matched case-insensitively). The token is
// returned as is, without any decoding.
func BearerToken(authHeader string) (string, error) {
	m := bearerPattern.FindStringSubmatch(authHeader)
	if m == nil || m[1] == "" {
		return "", ErrMissingCredential
	}

	return m[1], nil
}

// UserID returns the user_id claim as int64.
func UserID(claims jwt.MapClaims) (int64, error) {
	raw, ok := claims[ClaimUserID]
	if !ok || raw == nil {
		return 0, fmt.Errorf("%w: no %s claim", ErrMalformedToken, ClaimUserID)
	}

	switch v := raw.(type) {
	case json.Number:
		id, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrMalformedToken, err)
		}
		return id, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: %s is not an integer", ErrMalformedToken, ClaimUserID)
		}
		return int64(v), nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrMalformedToken, err)
		}
		return id, nil
	default:
		return 0, fmt.Errorf("%w: unexpected %s type %T", ErrMalformedToken, ClaimUserID, raw)
	}
}
