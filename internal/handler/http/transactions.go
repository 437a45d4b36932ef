// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/finance-flow/internal/app"
	"github.com/MKhiriev/finance-flow/internal/store"
	"github.com/MKhiriev/finance-flow/internal/validators"
	"github.com/MKhiriev/finance-flow/models"
)

const queryCategoryID = "category_id"

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request, in input) {
	filter := models.TransactionFilter{UserID: in.userID}

	if raw := r.URL.Query().Get(queryCategoryID); raw != "" {
		query := validators.New(map[string]any{queryCategoryID: raw}).Integer(queryCategoryID)
		if query.Fails() {
			h.writeError(w, r, query.Err())
			return
		}
		filter.CategoryID = query.GetInt(queryCategoryID)
	}

	transactions, err := h.services.TransactionService.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgTransactionsRetrieved, map[string]any{"transactions": transactions})
}

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request, in input) {
	transaction, err := transactionFromInput(in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	id, err := h.services.TransactionService.Create(r.Context(), transaction)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusCreated, app.MsgTransactionCreated, map[string]any{"transaction_id": id})
}

func (h *Handler) balance(w http.ResponseWriter, r *http.Request, in input) {
	balance, err := h.services.TransactionService.Balance(r.Context(), in.userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgBalanceRetrieved, balance)
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request, in input) {
	id, err := in.paramID(0)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", store.ErrTransactionNotFound, err))
		return
	}

	transaction, err := h.services.TransactionService.Get(r.Context(), id, in.userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgTransactionFound, map[string]any{"transaction": transaction})
}

func (h *Handler) updateTransaction(w http.ResponseWriter, r *http.Request, in input) {
	id, err := in.paramID(0)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", store.ErrTransactionNotFound, err))
		return
	}

	transaction, err := transactionFromInput(in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	transaction.ID = id

	if err = h.services.TransactionService.Update(r.Context(), transaction); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgTransactionUpdated, nil)
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request, in input) {
	id, err := in.paramID(0)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", store.ErrTransactionNotFound, err))
		return
	}

	if err = h.services.TransactionService.Delete(r.Context(), id, in.userID); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgTransactionDeleted, nil)
}

// transactionFromInput builds a transaction owned by the caller from a
// validated body. Text fields are sanitized; empty optional ones become nil.
func transactionFromInput(in input) (models.Transaction, error) {
	f := in.fields

	date, err := models.ParseDate(deref(f.Sanitize(validators.FieldTransactionDate)))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %w", validators.ErrValidationFailed, err)
	}

	transaction := models.Transaction{
		UserID:          in.userID,
		Type:            models.TransactionType(deref(f.Sanitize(validators.FieldType))),
		TransactionDate: date,
		SubcategoryID:   f.GetInt(validators.FieldSubcategoryID),
		Description:     deref(f.Sanitize(validators.FieldDescription)),
		Title:           optional(f.Sanitize(validators.FieldTitle)),
		Location:        optional(f.Sanitize(validators.FieldLocation)),
	}
	if categoryID := f.GetInt(validators.FieldCategoryID); categoryID != nil {
		transaction.CategoryID = *categoryID
	}
	if amount := f.GetFloat(validators.FieldAmount); amount != nil {
		transaction.Amount = *amount
	}

	return transaction, nil
}

func optional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
