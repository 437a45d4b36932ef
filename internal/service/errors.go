package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongCredentials covers both an unknown e-mail and a wrong
	// password, so a caller cannot probe which accounts exist.
	ErrWrongCredentials     = errors.New("invalid email or password")
	ErrWrongCurrentPassword = errors.New("current password is incorrect")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
