// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/finance-flow/internal/logger"
	"github.com/MKhiriev/finance-flow/internal/service"
	"github.com/MKhiriev/finance-flow/internal/token"
	"github.com/MKhiriev/finance-flow/internal/utils"
	"github.com/MKhiriev/finance-flow/models"
)

// ── route resolution ─────────────────────────────────────────────────────────

func TestPipeline_RouteNotFound(t *testing.T) {
	router := newTestRouter(service.Services{})

	tests := []struct {
		name   string
		method string
		target string
	}{
		{name: "unknown path", method: http.MethodGet, target: "/api/unknown"},
		{name: "unknown unprefixed path", method: http.MethodGet, target: "/nothing/here"},
		{name: "known path with wrong method", method: http.MethodPatch, target: "/api/transactions"},
		{name: "non-numeric id", method: http.MethodGet, target: "/api/transactions/abc"},
		{name: "trailing slash", method: http.MethodGet, target: "/api/categories/"},
		{name: "wrong method on operational endpoint", method: http.MethodPost, target: "/health"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, tt.method, tt.target, "", true)

			require.Equal(t, http.StatusNotFound, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, "route not found", env.Message)
		})
	}
}

func TestPipeline_PrefixIsOptional(t *testing.T) {
	calls := 0
	router := newTestRouter(service.Services{
		CategoryService: &mockCategoryService{
			categoriesFn: func(_ context.Context) ([]models.Category, error) {
				calls++
				return []models.Category{{ID: 1, Name: "Food"}}, nil
			},
		},
	})

	for _, target := range []string{"/api/categories", "/categories"} {
		rec := doRequest(t, router, http.MethodGet, target, "", true)
		assert.Equal(t, http.StatusOK, rec.Code, target)
	}
	assert.Equal(t, 2, calls)
}

// ── authentication ───────────────────────────────────────────────────────────

func TestPipeline_Authentication(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		authErr     error
		wantStatus  int
		wantMessage string
	}{
		{name: "no header", header: "", wantStatus: http.StatusUnauthorized, wantMessage: "missing token"},
		{name: "empty bearer", header: "Bearer ", wantStatus: http.StatusUnauthorized, wantMessage: "missing token"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized, wantMessage: "missing token"},
		{name: "expired", header: "Bearer a.b.c", authErr: token.ErrExpired, wantStatus: http.StatusUnauthorized, wantMessage: "invalid or expired token"},
		{name: "bad signature", header: "Bearer a.b.c", authErr: token.ErrBadSignature, wantStatus: http.StatusUnauthorized, wantMessage: "invalid or expired token"},
		{name: "non-token error", header: "Bearer a.b.c", authErr: errUnexpectedToken, wantStatus: http.StatusUnauthorized, wantMessage: "invalid or expired token"},
		{name: "lowercase scheme", header: "bearer " + testToken, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				authenticateFn: func(_ context.Context, raw string) (int64, error) {
					if tt.authErr != nil {
						return 0, tt.authErr
					}
					assert.Equal(t, testToken, raw)
					return testUserID, nil
				},
				meFn: func(_ context.Context, userID int64) (models.User, error) {
					return models.User{ID: userID}, nil
				},
			}
			router := newTestRouter(service.Services{AuthService: auth})

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeEnvelope(t, rec).Message)
			}
		})
	}
}

func TestPipeline_AuthenticationRunsBeforeBodyValidation(t *testing.T) {
	router := newTestRouter(service.Services{})

	rec := doRequest(t, router, http.MethodPost, "/api/transactions", "{broken", false)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "missing token", decodeEnvelope(t, rec).Message)
}

func TestPipeline_SubjectIsPutIntoContext(t *testing.T) {
	var gotID int64
	var gotOK bool
	router := newTestRouter(service.Services{
		TransactionService: &mockTransactionService{
			balanceFn: func(ctx context.Context, userID int64) (models.Balance, error) {
				gotID, gotOK = utils.GetUserIDFromContext(ctx)
				assert.Equal(t, testUserID, userID)
				return models.Balance{}, nil
			},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/api/transactions/balance", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotOK)
	assert.Equal(t, testUserID, gotID)
}

// ── body decoding and validation ─────────────────────────────────────────────

func TestPipeline_BodyDecoding(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantMessage string
	}{
		{name: "malformed JSON", body: `{"email":`, wantStatus: http.StatusBadRequest, wantMessage: "invalid JSON was passed"},
		{name: "trailing data", body: `{"email":"a@b.co"} {}`, wantStatus: http.StatusBadRequest, wantMessage: "invalid JSON was passed"},
		{name: "array body", body: `["a@b.co"]`, wantStatus: http.StatusBadRequest, wantMessage: "invalid JSON was passed"},
		{name: "empty body validates as empty object", body: "", wantStatus: http.StatusBadRequest, wantMessage: "the field 'email' is required"},
		{name: "null body validates as empty object", body: "null", wantStatus: http.StatusBadRequest, wantMessage: "the field 'email' is required"},
		{name: "first failing field wins", body: `{"email":"not-an-email"}`, wantStatus: http.StatusBadRequest, wantMessage: "the field 'password' is required"},
		{name: "invalid email", body: `{"email":"not-an-email","password":"x"}`, wantStatus: http.StatusBadRequest, wantMessage: "the email is not valid"},
		{name: "body too large", body: `{"email":"` + strings.Repeat("a", maxBodyBytes) + `"}`, wantStatus: http.StatusRequestEntityTooLarge, wantMessage: "request body too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(service.Services{})

			rec := doRequest(t, router, http.MethodPost, "/api/auth/login", tt.body, false)

			require.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantMessage, env.Message)
		})
	}
}

func TestDecodeBody_UsesNumbers(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"amount": 12.50, "category_id": 3}`))

	data, err := decodeBody(httptest.NewRecorder(), req)

	require.NoError(t, err)
	assert.Equal(t, "12.50", data["amount"].(interface{ String() string }).String())
	assert.Equal(t, "3", data["category_id"].(interface{ String() string }).String())
}

func TestInput_ParamID(t *testing.T) {
	in := input{params: []string{"42", "99999999999999999999"}}

	id, err := in.paramID(0)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = in.paramID(1)
	assert.Error(t, err)

	_, err = in.paramID(2)
	assert.Error(t, err)
}

func TestNewEndpoints_RouteTable(t *testing.T) {
	h := NewHandler(newTestServices(service.Services{}), logger.Nop())

	var got []string
	for _, r := range h.endpoints.Routes() {
		got = append(got, r.Method+" "+r.Pattern)
	}

	assert.Equal(t, []string{
		"POST /auth/register",
		"POST /auth/login",
		"GET /auth/me",
		"PUT /auth/change-password",
		"GET /transactions",
		"POST /transactions",
		"GET /transactions/balance",
		"GET /transactions/{id}",
		"PUT /transactions/{id}",
		"DELETE /transactions/{id}",
		"GET /categories",
		"GET /subcategories",
		"GET /categories/{id}/subcategories",
	}, got)
}
