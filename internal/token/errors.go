// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package token

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated is the common parent of every authentication failure
// produced by this package. All the errors below wrap it, so callers that only
// care about "not authenticated" can match it with [errors.Is].
var ErrUnauthenticated = errors.New("unauthenticated")

var (
	// ErrMalformedToken is returned when the token does not consist of exactly
	// three dot-separated parts, when its payload is not a JSON object, or when
	// a mandatory claim (exp, user_id) is missing or has the wrong type.
	ErrMalformedToken = fmt.Errorf("%w: malformed token", ErrUnauthenticated)

	// ErrBadSignature is returned when the signature part cannot be decoded or
	// does not match the HMAC of the header and payload parts.
	ErrBadSignature = fmt.Errorf("%w: token signature is invalid", ErrUnauthenticated)

	// ErrExpired is returned when the exp claim lies in the past.
	ErrExpired = fmt.Errorf("%w: token is expired", ErrUnauthenticated)

	// ErrMissingCredential is returned when the Authorization header does not
	// carry a bearer token.
	ErrMissingCredential = fmt.Errorf("%w: missing bearer credential", ErrUnauthenticated)
)

// ErrEmptySecret is returned by [NewCodec] when no signing secret is given.
var ErrEmptySecret = errors.New("token signing secret is empty")
