// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package token issues and verifies the stateless bearer tokens used to
// authenticate API callers.
//
// A token is the compact HS256 JWS form
//
//	base64url(header) "." base64url(payload) "." base64url(hmac_sha256(header "." payload, secret))
//
// with the header {"typ":"JWT","alg":"HS256"} and a payload made of the
// caller's claims plus integer iat and exp claims. Nothing is stored on the
// server: integrity comes from the signature and lifetime from exp.
package token

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// ClaimIssuedAt is the issued-at claim name (seconds since epoch).
	ClaimIssuedAt = "iat"
	// ClaimExpiresAt is the expiry claim name (seconds since epoch).
	ClaimExpiresAt = "exp"
	// ClaimUserID carries the authenticated subject.
	ClaimUserID = "user_id"
	// ClaimEmail carries the e-mail of the authenticated subject.
	ClaimEmail = "email"
)

// Codec signs and verifies tokens with a shared HMAC secret.
//
// The secret and the clock are fixed at construction and only read
// afterwards, so a single Codec may be shared by all request goroutines.
type Codec struct {
	secret []byte
	now    func() time.Time
	parser *jwt.Parser
}

// Option customizes a [Codec].
type Option func(*Codec)

// WithClock replaces the wall clock used for iat, exp and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		c.now = now
	}
}

// NewCodec returns a Codec signing with secret.
func NewCodec(secret []byte, opts ...Option) (*Codec, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	c := &Codec{
		secret: bytes.Clone(secret),
		now:    time.Now,
		// strict decoding rejects non-canonical base64 (set trailing bits),
		// so two different signature strings never decode to the same MAC.
		parser: jwt.NewParser(jwt.WithStrictDecoding()),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Issue returns a signed token carrying claims plus iat = now and
// exp = now + ttl. The caller's map is not modified.
func (c *Codec) Issue(claims jwt.MapClaims, ttl time.Duration) (string, error) {
	now := c.now().Unix()

	payload := make(jwt.MapClaims, len(claims)+2)
	for k, v := range claims {
		payload[k] = v
	}
	payload[ClaimIssuedAt] = now
	payload[ClaimExpiresAt] = now + int64(ttl/time.Second)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	return signed, nil
}

// Verify checks tokenString and returns its claims.
//
// The checks run in a fixed order: structure ([ErrMalformedToken]),
// signature ([ErrBadSignature]), payload decoding ([ErrMalformedToken]) and
// finally expiry ([ErrExpired]). Numeric claims are returned as
// [json.Number].
func (c *Codec) Verify(tokenString string) (jwt.MapClaims, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, ErrMalformedToken
	}

	signature, err := c.parser.DecodeSegment(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSignature, err)
	}

	signingString := parts[0] + "." + parts[1]
	if err = jwt.SigningMethodHS256.Verify(signingString, signature, c.secret); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSignature, err)
	}

	rawPayload, err := c.parser.DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	claims, err := decodeClaims(rawPayload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	if exp == nil {
		return nil, fmt.Errorf("%w: no exp claim", ErrMalformedToken)
	}

	if exp.Unix() < c.now().Unix() {
		return nil, ErrExpired
	}

	return claims, nil
}

func decodeClaims(raw []byte) (jwt.MapClaims, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var claims jwt.MapClaims
	if err := dec.Decode(&claims); err != nil {
		return nil, err
	}
	if claims == nil {
		return nil, errors.New("payload is not an object")
	}

	return claims, nil
}
