// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// finance-flow HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written
// into the message member of the response envelope. Clients match on some
// of them, so the wording is part of the API.
package app

// Success messages.
const (
	MsgRegistrationSuccessful = "registration successful"
	MsgLoginSuccessful        = "login successful"
	MsgUserFound              = "user found"
	MsgPasswordChanged        = "password changed successfully"

	MsgTransactionsRetrieved = "transactions retrieved"
	MsgTransactionCreated    = "transaction created successfully"
	MsgBalanceRetrieved      = "balance retrieved"
	MsgTransactionFound      = "transaction found"
	MsgTransactionUpdated    = "transaction updated successfully"
	MsgTransactionDeleted    = "transaction deleted successfully"

	MsgCategoriesRetrieved    = "categories retrieved"
	MsgSubcategoriesRetrieved = "subcategories retrieved"

	// MsgHealthy is returned by /health while storage answers pings.
	MsgHealthy = "ok"
)

// Error messages.
const (
	// MsgInternalServerError replaces the message of every 5xx response so
	// that storage details never reach the client.
	MsgInternalServerError = "internal server error"

	// MsgMissingToken is returned when a protected route is called without
	// a bearer token.
	MsgMissingToken = "missing token"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is present
	// but cannot be verified or has expired.
	MsgTokenIsExpiredOrInvalid = "invalid or expired token"

	MsgTooManyLoginAttempts = "too many login attempts, please try again later"

	// MsgEmailAlreadyInUse is returned when registration hits an existing
	// account.
	MsgEmailAlreadyInUse = "email already in use"

	MsgStorageUnreachable = "storage is unreachable"
	MsgInvalidGzipBody    = "invalid gzip body"
)
