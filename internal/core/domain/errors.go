package domain

import "errors"

var (
	// ErrInvalidInput covers malformed or missing request fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserNotFound         = errors.New("user not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrEmailTaken           = errors.New("user already exists")
	ErrJobAlreadySaved      = errors.New("job already saved")
	ErrAlreadySubscribed    = errors.New("email already subscribed")
	ErrUnauthorized         = errors.New("unauthorized")
)
