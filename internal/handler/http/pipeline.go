// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/finance-flow/internal/logger"
	"github.com/MKhiriev/finance-flow/internal/metrics"
	"github.com/MKhiriev/finance-flow/internal/router"
	"github.com/MKhiriev/finance-flow/internal/token"
	"github.com/MKhiriev/finance-flow/internal/utils"
	"github.com/MKhiriev/finance-flow/internal/validators"
)

const maxBodyBytes = 1 << 20

// endpoint is one entry of the application route table.
type endpoint struct {
	name string
	// protected endpoints require a valid bearer token.
	protected bool
	// rules, when set, make the pipeline decode and validate the body.
	rules  validators.Rules
	handle func(w http.ResponseWriter, r *http.Request, in input)
}

// input is what the pipeline hands to an endpoint after the checks passed.
type input struct {
	// params are the path parameters in pattern order.
	params []string
	// userID is the authenticated subject; zero for public endpoints.
	userID int64
	// fields is the validated body; nil for endpoints without rules.
	fields *validators.FieldValidator
}

// paramID returns path parameter i as an id.
func (in input) paramID(i int) (int64, error) {
	if i >= len(in.params) {
		return 0, fmt.Errorf("no path parameter %d", i)
	}
	return strconv.ParseInt(in.params[i], 10, 64)
}

// newEndpoints builds the route table. Literal routes are registered before
// parametrized ones sharing a prefix.
func (h *Handler) newEndpoints() *router.Router[*endpoint] {
	endpoints := router.New[*endpoint]()

	add := func(method, pattern string, ep endpoint) {
		endpoints.Register(method, pattern, &ep)
	}

	add(http.MethodPost, "/auth/register", endpoint{name: "register", rules: validators.Register, handle: h.register})
	add(http.MethodPost, "/auth/login", endpoint{name: "login", rules: validators.Login, handle: h.login})
	add(http.MethodGet, "/auth/me", endpoint{name: "me", protected: true, handle: h.me})
	add(http.MethodPut, "/auth/change-password", endpoint{name: "change-password", protected: true, rules: validators.ChangePassword, handle: h.changePassword})

	add(http.MethodGet, "/transactions", endpoint{name: "list-transactions", protected: true, handle: h.listTransactions})
	add(http.MethodPost, "/transactions", endpoint{name: "create-transaction", protected: true, rules: validators.Transaction, handle: h.createTransaction})
	add(http.MethodGet, "/transactions/balance", endpoint{name: "balance", protected: true, handle: h.balance})
	add(http.MethodGet, "/transactions/{id}", endpoint{name: "get-transaction", protected: true, handle: h.getTransaction})
	add(http.MethodPut, "/transactions/{id}", endpoint{name: "update-transaction", protected: true, rules: validators.Transaction, handle: h.updateTransaction})
	add(http.MethodDelete, "/transactions/{id}", endpoint{name: "delete-transaction", protected: true, handle: h.deleteTransaction})

	add(http.MethodGet, "/categories", endpoint{name: "categories", protected: true, handle: h.listCategories})
	add(http.MethodGet, "/subcategories", endpoint{name: "subcategories", protected: true, handle: h.listSubcategories})
	add(http.MethodGet, "/categories/{id}/subcategories", endpoint{name: "category-subcategories", protected: true, handle: h.listCategorySubcategories})

	return endpoints
}

// dispatch resolves the endpoint, authenticates, validates the body and
// runs the endpoint handler. The first failing step writes the response.
func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request) {
	match, ok := h.endpoints.Resolve(r.Method, r.URL.Path)
	if !ok {
		h.writeError(w, r, ErrRouteNotFound)
		return
	}
	metrics.SetRoute(r.Context(), match.Pattern)

	ep := match.Handler
	in := input{params: match.Params}
	log := logger.FromRequest(r)

	if ep.protected {
		userID, err := h.authenticate(r)
		if err != nil {
			reason := authFailureReason(err)
			log.Warn().Err(err).Str("endpoint", ep.name).Str("reason", reason).Msg("authentication failed")
			if h.metrics != nil {
				h.metrics.RecordAuthFailure(reason)
			}
			h.writeError(w, r, err)
			return
		}

		in.userID = userID
		r = r.WithContext(utils.WithUserID(r.Context(), userID))
	}

	if ep.rules != nil {
		data, err := decodeBody(w, r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		in.fields = validators.Apply(data, ep.rules)
		if in.fields.Fails() {
			h.writeError(w, r, in.fields.Err())
			return
		}
	}

	ep.handle(w, r, in)
}

// authenticate returns the subject of the request's bearer token. Every
// failure wraps [token.ErrUnauthenticated].
func (h *Handler) authenticate(r *http.Request) (int64, error) {
	raw, err := token.BearerToken(r.Header.Get("Authorization"))
	if err != nil {
		return 0, err
	}

	userID, err := h.services.AuthService.Authenticate(r.Context(), raw)
	if err != nil {
		if !errors.Is(err, token.ErrUnauthenticated) {
			return 0, fmt.Errorf("%w: %w", token.ErrUnauthenticated, err)
		}
		return 0, err
	}
	return userID, nil
}

func authFailureReason(err error) string {
	switch {
	case errors.Is(err, token.ErrMissingCredential):
		return "missing"
	case errors.Is(err, token.ErrExpired):
		return "expired"
	case errors.Is(err, token.ErrBadSignature):
		return "bad_signature"
	case errors.Is(err, token.ErrMalformedToken):
		return "malformed"
	default:
		return "other"
	}
}

// decodeBody reads a JSON object from the request body. An empty body or
// a literal null decodes to an empty object.
func decodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	if r.Body == nil {
		return map[string]any{}, nil
	}

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: %w", ErrBodyTooLarge, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var body any
	if err = dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after the JSON value", ErrInvalidJSON)
	}

	switch data := body.(type) {
	case map[string]any:
		return data, nil
	case nil:
		return map[string]any{}, nil
	default:
		return nil, fmt.Errorf("%w: body is %T, want an object", ErrInvalidJSON, body)
	}
}
